package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DanRulev/flashdeck.git/internal/generator"
	"github.com/DanRulev/flashdeck.git/internal/models"
	"go.uber.org/zap"
)

// MaxCount caps how many entries one request may ask for.
const MaxCount = 1000

var (
	ErrBadEntries = errors.New("bad entries")
	ErrBadCount   = errors.New("count must be positive")
)

type CorpusS struct {
	repo RepositoryI
	log  *zap.Logger
}

func NewCorpusService(repo RepositoryI, log *zap.Logger) *CorpusS {
	return &CorpusS{
		repo: repo,
		log:  log,
	}
}

// Entries picks up to n random items of corpus and fills their template slots
// from the corpus lexicon. n above MaxCount is clamped.
func (c *CorpusS) Entries(ctx context.Context, corpus string, n int) ([]models.Entry, error) {
	if n < 1 {
		return nil, ErrBadCount
	}
	n = min(n, MaxCount)

	items, err := c.repo.RandomItems(ctx, corpus, n)
	if err != nil {
		c.log.Error("failed to load items", zap.String("corpus", corpus), zap.Int("n", n), zap.Error(err))
		return nil, err
	}

	var lexicon generator.Lexicon
	if hasTemplate(items) {
		words, err := c.repo.Words(ctx, corpus)
		if err != nil {
			c.log.Error("failed to load lexicon", zap.String("corpus", corpus), zap.Error(err))
			return nil, err
		}
		lexicon = generator.NewLexicon(words)
	}

	return generator.New(lexicon).Entries(items), nil
}

func (c *CorpusS) UploadItems(ctx context.Context, corpus, body string) (int, error) {
	items, err := ParseItems(body)
	if err != nil {
		return 0, err
	}

	if err := c.repo.AddItems(ctx, corpus, items); err != nil {
		c.log.Error("failed to save items", zap.String("corpus", corpus), zap.Error(err))
		return 0, err
	}

	c.log.Info("items uploaded", zap.String("corpus", corpus), zap.Int("count", len(items)))
	return len(items), nil
}

func (c *CorpusS) UploadWords(ctx context.Context, corpus, body string) (int, error) {
	words, err := ParseWords(body)
	if err != nil {
		return 0, err
	}

	if err := c.repo.AddWords(ctx, corpus, words); err != nil {
		c.log.Error("failed to save words", zap.String("corpus", corpus), zap.Error(err))
		return 0, err
	}

	c.log.Info("words uploaded", zap.String("corpus", corpus), zap.Int("count", len(words)))
	return len(words), nil
}

func (c *CorpusS) Corpus(ctx context.Context, corpus string) (models.Corpus, error) {
	items, err := c.repo.Items(ctx, corpus)
	if err != nil {
		c.log.Error("failed to load items", zap.String("corpus", corpus), zap.Error(err))
		return models.Corpus{}, err
	}

	words, err := c.repo.Words(ctx, corpus)
	if err != nil {
		c.log.Error("failed to load words", zap.String("corpus", corpus), zap.Error(err))
		return models.Corpus{}, err
	}

	return models.Corpus{
		Name:  corpus,
		Items: items,
		Words: words,
	}, nil
}

func (c *CorpusS) Clear(ctx context.Context, corpus string) (items, words int64, err error) {
	items, words, err = c.repo.DeleteCorpus(ctx, corpus)
	if err != nil {
		c.log.Error("failed to delete corpus", zap.String("corpus", corpus), zap.Error(err))
		return 0, 0, err
	}

	c.log.Info("corpus cleared", zap.String("corpus", corpus), zap.Int64("items", items), zap.Int64("words", words))
	return items, words, nil
}

func hasTemplate(items []models.Item) bool {
	for _, it := range items {
		if generator.IsTemplate(it.Question) {
			return true
		}
	}
	return false
}

// ParseItems reads one item per line: question, answer and an optional
// written form, separated by tabs. Every slot used in the answer must
// appear in the question.
func ParseItems(s string) ([]models.Item, error) {
	var items []models.Item
	err := readTSV(s, 2, 3, func(line int, record []string) error {
		if record[0] == "" {
			return fmt.Errorf("line %d: empty question", line)
		}

		bound := map[string]bool{}
		for _, slot := range generator.Slots(record[0]) {
			bound[slot] = true
		}
		for _, slot := range generator.Slots(record[1]) {
			if !bound[slot] {
				return fmt.Errorf("line %d: answer slot :%s is not in the question", line, slot)
			}
		}

		item := models.Item{Question: record[0], Answer: record[1]}
		if len(record) == 3 {
			item.Script = record[2]
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ParseWords reads one lexicon word per line: gloss, reading, part of speech
// and written form, separated by tabs.
func ParseWords(s string) ([]models.Word, error) {
	var words []models.Word
	err := readTSV(s, 4, 4, func(line int, record []string) error {
		for i, name := range []string{"gloss", "reading", "part of speech"} {
			if record[i] == "" {
				return fmt.Errorf("line %d: empty %s", line, name)
			}
		}
		if strings.ContainsAny(record[2], " :") {
			return fmt.Errorf("line %d: bad part of speech %q", line, record[2])
		}
		if last := record[2][len(record[2])-1]; last >= '0' && last <= '9' {
			return fmt.Errorf("line %d: part of speech %q ends in a digit", line, record[2])
		}

		words = append(words, models.Word{
			Gloss:        record[0],
			Reading:      record[1],
			PartOfSpeech: record[2],
			Script:       record[3],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return words, nil
}

// readTSV calls fn for every non-blank line that does not start with '#'.
// Fields are trimmed. Errors are wrapped in ErrBadEntries.
func readTSV(s string, minFields, maxFields int, fn func(line int, record []string) error) error {
	r := csv.NewReader(strings.NewReader(s))
	r.Comma = '\t'
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return fmt.Errorf("%w: line %d: %v", ErrBadEntries, parseErr.Line, parseErr.Err)
			}
			return fmt.Errorf("%w: %v", ErrBadEntries, err)
		}

		line, _ := r.FieldPos(0)
		if len(record) < minFields || len(record) > maxFields {
			return fmt.Errorf("%w: line %d: need %s fields, got %d", ErrBadEntries, line, fieldCount(minFields, maxFields), len(record))
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if err := fn(line, record); err != nil {
			return fmt.Errorf("%w: %v", ErrBadEntries, err)
		}
	}
}

func fieldCount(minFields, maxFields int) string {
	if minFields == maxFields {
		return fmt.Sprint(minFields)
	}
	return fmt.Sprintf("%d to %d", minFields, maxFields)
}
