package repository

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/DanRulev/flashdeck.git/internal/models"
	mock_repository "github.com/DanRulev/flashdeck.git/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCorpusMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *CorpusR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &CorpusR{db: db}
}

func TestCorpusR_AddItems(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		corpus string
		items  []models.Item
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success in one statement",
			args: args{
				ctx:    context.Background(),
				corpus: "hsk1",
				items: []models.Item{
					{Question: "Q1", Answer: "A1", Script: "S1"},
					{Question: "Q2", Answer: "A2"},
				},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "hsk1",
					pq.Array([]string{"Q1", "Q2"}),
					pq.Array([]string{"A1", "A2"}),
					pq.Array([]string{"S1", ""}),
				).Return(nil, nil).Times(1)
			},
		},
		{
			name: "repeated question keeps the last row",
			args: args{
				ctx:    context.Background(),
				corpus: "hsk1",
				items: []models.Item{
					{Question: "Q1", Answer: "old"},
					{Question: "Q2", Answer: "A2"},
					{Question: "Q1", Answer: "new"},
				},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "hsk1",
					pq.Array([]string{"Q1", "Q2"}),
					pq.Array([]string{"new", "A2"}),
					pq.Array([]string{"", ""}),
				).Return(nil, nil)
			},
		},
		{
			name: "no items",
			args: args{
				ctx:    context.Background(),
				corpus: "hsk1",
			},
		},
		{
			name: "failed statement is the only write",
			args: args{
				ctx:    context.Background(),
				corpus: "hsk1",
				items: []models.Item{
					{Question: "Q1", Answer: "A1"},
					{Question: "Q2", Answer: "A2"},
				},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("exec error")).Times(1)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			corpusR := newCorpusMock(t, ctrl, tt.f)

			err := corpusR.AddItems(tt.args.ctx, tt.args.corpus, tt.args.items)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCorpusR_AddWords(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corpusR := newCorpusMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "hsk1",
			pq.Array([]string{"cat", "big"}),
			pq.Array([]string{"māo", "dà"}),
			pq.Array([]string{"noun", "adj"}),
			pq.Array([]string{"猫", "大"}),
		).Return(nil, nil)
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "broken", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("exec error"))
	})

	words := []models.Word{
		{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun", Script: "猫"},
		{Gloss: "big", Reading: "dà", PartOfSpeech: "adj", Script: "大"},
	}
	require.NoError(t, corpusR.AddWords(context.Background(), "hsk1", words))
	require.Error(t, corpusR.AddWords(context.Background(), "broken", words))
	require.NoError(t, corpusR.AddWords(context.Background(), "hsk1", nil))
}

func TestCorpusR_RandomItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		f       func(*mock_repository.MockQueryI)
		want    []models.Item
		wantErr bool
	}{
		{
			name: "success",
			n:    2,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "hsk1", 2).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						out := dest.(*[]models.Item)
						*out = append(*out, models.Item{Question: "Q1", Answer: "A1"}, models.Item{Question: "Q2", Answer: "A2"})
						return nil
					},
				)
			},
			want: []models.Item{
				{Question: "Q1", Answer: "A1"},
				{Question: "Q2", Answer: "A2"},
			},
		},
		{
			name: "huge n is left to LIMIT",
			n:    math.MaxInt64,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "hsk1", math.MaxInt64).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						out := dest.(*[]models.Item)
						*out = append(*out, models.Item{Question: "Q1", Answer: "A1"})
						return nil
					},
				)
			},
			want: []models.Item{{Question: "Q1", Answer: "A1"}},
		},
		{
			name: "empty corpus",
			n:    2,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "hsk1", 2).Return(nil)
			},
			want: nil,
		},
		{
			name: "db error",
			n:    2,
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			corpusR := newCorpusMock(t, ctrl, tt.f)

			got, err := corpusR.RandomItems(context.Background(), "hsk1", tt.n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorpusR_ItemsAndWords(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corpusR := newCorpusMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&[]models.Item{}), gomock.Any(), "hsk1").DoAndReturn(
			func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*[]models.Item) = []models.Item{{Question: "Q1", Answer: "A1"}}
				return nil
			},
		)
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&[]models.Word{}), gomock.Any(), "hsk1").DoAndReturn(
			func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*[]models.Word) = []models.Word{{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun"}}
				return nil
			},
		)
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "broken").Return(errors.New("db error")).Times(2)
	})

	items, err := corpusR.Items(context.Background(), "hsk1")
	require.NoError(t, err)
	assert.Equal(t, []models.Item{{Question: "Q1", Answer: "A1"}}, items)

	words, err := corpusR.Words(context.Background(), "hsk1")
	require.NoError(t, err)
	assert.Equal(t, []models.Word{{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun"}}, words)

	_, err = corpusR.Items(context.Background(), "broken")
	require.Error(t, err)
	_, err = corpusR.Words(context.Background(), "broken")
	require.Error(t, err)
}

func TestCorpusR_DeleteCorpus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		f         func(*mock_repository.MockQueryI)
		wantItems int64
		wantWords int64
		wantErr   bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "hsk1").DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*deleted) = deleted{Items: 3, Words: 2}
						return nil
					},
				)
			},
			wantItems: 3,
			wantWords: 2,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "hsk1").Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			corpusR := newCorpusMock(t, ctrl, tt.f)

			items, words, err := corpusR.DeleteCorpus(context.Background(), "hsk1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantItems, items)
			assert.Equal(t, tt.wantWords, words)
		})
	}
}
