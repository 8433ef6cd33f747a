package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/DanRulev/flashdeck.git/internal/models"
	mock_service "github.com/DanRulev/flashdeck.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCorpusServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *CorpusS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewCorpusService(repo, zap.NewNop())
}

func TestParseItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []models.Item
		wantErr string
	}{
		{
			name:  "two and three fields",
			input: "hello\tnǐ hǎo\t你好\nthank you\txièxie\n",
			want: []models.Item{
				{Question: "hello", Answer: "nǐ hǎo", Script: "你好"},
				{Question: "thank you", Answer: "xièxie"},
			},
		},
		{
			name:  "blank lines, comments and spaces",
			input: "# greetings\n\n  hello \t nǐ hǎo \n\n",
			want: []models.Item{
				{Question: "hello", Answer: "nǐ hǎo"},
			},
		},
		{
			name:  "quotes kept",
			input: "say \"hi\"\tshuō \"nǐ hǎo\"",
			want: []models.Item{
				{Question: "say \"hi\"", Answer: "shuō \"nǐ hǎo\""},
			},
		},
		{
			name:  "template",
			input: "the :adj :noun1\t:adj de :noun1\n",
			want: []models.Item{
				{Question: "the :adj :noun1", Answer: ":adj de :noun1"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:    "too few fields",
			input:   "a\tb\nc\n",
			wantErr: "line 2: need 2 to 3 fields, got 1",
		},
		{
			name:    "too many fields",
			input:   "a\tb\tc\td\n",
			wantErr: "line 1",
		},
		{
			name:    "empty question",
			input:   "a\tb\n\tanswer\n",
			wantErr: "line 2: empty question",
		},
		{
			name:    "answer slot missing from question",
			input:   "the :noun\t:verb :noun\n",
			wantErr: "line 1: answer slot :verb is not in the question",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseItems(tt.input)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrBadEntries)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []models.Word
		wantErr string
	}{
		{
			name:  "success",
			input: "cat\tmāo\tnoun\t猫\nbig\tdà\tadj\t\n",
			want: []models.Word{
				{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun", Script: "猫"},
				{Gloss: "big", Reading: "dà", PartOfSpeech: "adj"},
			},
		},
		{
			name:    "three fields",
			input:   "cat\tmāo\tnoun\n",
			wantErr: "line 1: need 4 fields, got 3",
		},
		{
			name:    "empty reading",
			input:   "cat\t\tnoun\t猫\n",
			wantErr: "line 1: empty reading",
		},
		{
			name:    "part of speech with a digit",
			input:   "cat\tmāo\tnoun2\t猫\n",
			wantErr: "ends in a digit",
		},
		{
			name:    "part of speech with a colon",
			input:   "cat\tmāo\t:noun\t猫\n",
			wantErr: "bad part of speech",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWords(tt.input)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrBadEntries)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorpusS_Entries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		f       func(*mock_service.MockRepositoryI)
		want    []models.Entry
		wantErr bool
	}{
		{
			name: "plain items skip the lexicon",
			n:    10,
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().RandomItems(gomock.Any(), "hsk1", 10).Return([]models.Item{{Question: "Q", Answer: "A", Script: "S"}}, nil)
			},
			want: []models.Entry{{Question: "Q", Answer: "A"}},
		},
		{
			name: "templates are filled from the lexicon",
			n:    2,
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().RandomItems(gomock.Any(), "hsk1", 2).Return([]models.Item{
					{Question: "hello", Answer: "nǐ hǎo"},
					{Question: "a :noun", Answer: "yī zhī :noun"},
				}, nil)
				mr.EXPECT().Words(gomock.Any(), "hsk1").Return([]models.Word{
					{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun"},
				}, nil)
			},
			want: []models.Entry{
				{Question: "hello", Answer: "nǐ hǎo"},
				{Question: "a cat", Answer: "yī zhī māo"},
			},
		},
		{
			name: "huge count is clamped",
			n:    math.MaxInt64,
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().RandomItems(gomock.Any(), "hsk1", MaxCount).Return(nil, nil)
			},
			want: []models.Entry{},
		},
		{
			name:    "bad count",
			n:       0,
			wantErr: true,
		},
		{
			name: "repo error",
			n:    5,
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().RandomItems(gomock.Any(), "hsk1", 5).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "lexicon error",
			n:    5,
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().RandomItems(gomock.Any(), "hsk1", 5).Return([]models.Item{{Question: ":noun", Answer: ":noun"}}, nil)
				mr.EXPECT().Words(gomock.Any(), "hsk1").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newCorpusServiceMock(t, ctrl, tt.f)

			got, err := s.Entries(context.Background(), "hsk1", tt.n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorpusS_UploadItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		f       func(*mock_service.MockRepositoryI)
		want    int
		wantErr bool
	}{
		{
			name: "success",
			body: "Q1\tA1\nQ2\tA2\n",
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().AddItems(gomock.Any(), "hsk1", []models.Item{
					{Question: "Q1", Answer: "A1"},
					{Question: "Q2", Answer: "A2"},
				}).Return(nil)
			},
			want: 2,
		},
		{
			name:    "parse error never reaches repo",
			body:    "only one column\n",
			wantErr: true,
		},
		{
			name: "repo error",
			body: "Q1\tA1\n",
			f: func(mr *mock_service.MockRepositoryI) {
				mr.EXPECT().AddItems(gomock.Any(), "hsk1", gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newCorpusServiceMock(t, ctrl, tt.f)

			got, err := s.UploadItems(context.Background(), "hsk1", tt.body)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorpusS_UploadWords(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newCorpusServiceMock(t, ctrl, func(mr *mock_service.MockRepositoryI) {
		mr.EXPECT().AddWords(gomock.Any(), "hsk1", []models.Word{
			{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun", Script: "猫"},
		}).Return(nil)
	})

	n, err := s.UploadWords(context.Background(), "hsk1", "cat\tmāo\tnoun\t猫\n")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.UploadWords(context.Background(), "hsk1", "cat\tmāo\n")
	require.ErrorIs(t, err, ErrBadEntries)
}

func TestCorpusS_CorpusAndClear(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newCorpusServiceMock(t, ctrl, func(mr *mock_service.MockRepositoryI) {
		mr.EXPECT().Items(gomock.Any(), "hsk1").Return([]models.Item{{Question: "Q", Answer: "A"}}, nil)
		mr.EXPECT().Words(gomock.Any(), "hsk1").Return([]models.Word{{Gloss: "cat", Reading: "māo", PartOfSpeech: "noun"}}, nil)
		mr.EXPECT().Items(gomock.Any(), "broken").Return(nil, errors.New("db error"))
		mr.EXPECT().DeleteCorpus(gomock.Any(), "hsk1").Return(int64(1), int64(2), nil)
		mr.EXPECT().DeleteCorpus(gomock.Any(), "broken").Return(int64(0), int64(0), errors.New("db error"))
	})

	corpus, err := s.Corpus(context.Background(), "hsk1")
	require.NoError(t, err)
	assert.Equal(t, "hsk1", corpus.Name)
	assert.Len(t, corpus.Items, 1)
	assert.Len(t, corpus.Words, 1)

	_, err = s.Corpus(context.Background(), "broken")
	require.Error(t, err)

	items, words, err := s.Clear(context.Background(), "hsk1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), items)
	assert.Equal(t, int64(2), words)

	_, _, err = s.Clear(context.Background(), "broken")
	require.Error(t, err)
}
