package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/flashdeck.git/internal/models"
	"github.com/lib/pq"
)

type CorpusR struct {
	db QueryI
}

func NewCorpusRepository(db QueryI) *CorpusR {
	return &CorpusR{db: db}
}

// AddItems upserts items in a single statement, so a failed upload stores nothing.
// A question repeated in the batch keeps its last row.
func (c *CorpusR) AddItems(ctx context.Context, corpus string, items []models.Item) error {
	items = lastByKey(items, func(it models.Item) string { return it.Question })
	if len(items) == 0 {
		return nil
	}

	questions := make([]string, len(items))
	answers := make([]string, len(items))
	scripts := make([]string, len(items))
	for i, it := range items {
		questions[i], answers[i], scripts[i] = it.Question, it.Answer, it.Script
	}

	query := `INSERT INTO corpus_items (corpus, question, answer, script)
		SELECT $1, q, a, s FROM UNNEST($2::text[], $3::text[], $4::text[]) AS t(q, a, s)
		ON CONFLICT (corpus, question)
		DO UPDATE SET answer = EXCLUDED.answer, script = EXCLUDED.script`

	if _, err := c.db.ExecContext(ctx, query, corpus, pq.Array(questions), pq.Array(answers), pq.Array(scripts)); err != nil {
		return fmt.Errorf("failed to save %d items: %w", len(items), err)
	}

	return nil
}

// AddWords upserts lexicon words in a single statement.
func (c *CorpusR) AddWords(ctx context.Context, corpus string, words []models.Word) error {
	words = lastByKey(words, func(w models.Word) string { return w.Gloss })
	if len(words) == 0 {
		return nil
	}

	glosses := make([]string, len(words))
	readings := make([]string, len(words))
	pos := make([]string, len(words))
	scripts := make([]string, len(words))
	for i, w := range words {
		glosses[i], readings[i], pos[i], scripts[i] = w.Gloss, w.Reading, w.PartOfSpeech, w.Script
	}

	query := `INSERT INTO corpus_words (corpus, gloss, reading, pos, script)
		SELECT $1, g, r, p, s FROM UNNEST($2::text[], $3::text[], $4::text[], $5::text[]) AS t(g, r, p, s)
		ON CONFLICT (corpus, gloss)
		DO UPDATE SET reading = EXCLUDED.reading, pos = EXCLUDED.pos, script = EXCLUDED.script`

	if _, err := c.db.ExecContext(ctx, query, corpus, pq.Array(glosses), pq.Array(readings), pq.Array(pos), pq.Array(scripts)); err != nil {
		return fmt.Errorf("failed to save %d words: %w", len(words), err)
	}

	return nil
}

func (c *CorpusR) RandomItems(ctx context.Context, corpus string, n int) ([]models.Item, error) {
	query := `
	SELECT question, answer, script
		FROM corpus_items
		WHERE corpus = $1
		ORDER BY RANDOM()
		LIMIT $2;
	`

	var items []models.Item
	if err := c.db.SelectContext(ctx, &items, query, corpus, n); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return items, nil
}

func (c *CorpusR) Items(ctx context.Context, corpus string) ([]models.Item, error) {
	query := `
		SELECT question, answer, script
		FROM corpus_items
		WHERE corpus = $1
		ORDER BY question
	`

	var items []models.Item
	if err := c.db.SelectContext(ctx, &items, query, corpus); err != nil {
		return nil, fmt.Errorf("failed to load items of %s: %w", corpus, err)
	}

	return items, nil
}

func (c *CorpusR) Words(ctx context.Context, corpus string) ([]models.Word, error) {
	query := `
		SELECT gloss, reading, pos, script
		FROM corpus_words
		WHERE corpus = $1
		ORDER BY pos, gloss
	`

	var words []models.Word
	if err := c.db.SelectContext(ctx, &words, query, corpus); err != nil {
		return nil, fmt.Errorf("failed to load words of %s: %w", corpus, err)
	}

	return words, nil
}

type deleted struct {
	Items int64 `db:"items"`
	Words int64 `db:"words"`
}

// DeleteCorpus removes items and words of corpus together and reports how many of each went.
func (c *CorpusR) DeleteCorpus(ctx context.Context, corpus string) (items, words int64, err error) {
	query := `
	WITH i AS (DELETE FROM corpus_items WHERE corpus = $1 RETURNING 1),
		w AS (DELETE FROM corpus_words WHERE corpus = $1 RETURNING 1)
	SELECT (SELECT COUNT(*) FROM i) AS items, (SELECT COUNT(*) FROM w) AS words
	`

	var d deleted
	if err := c.db.GetContext(ctx, &d, query, corpus); err != nil {
		return 0, 0, fmt.Errorf("failed to delete corpus %s: %w", corpus, err)
	}

	return d.Items, d.Words, nil
}

func lastByKey[T any](rows []T, key func(T) string) []T {
	at := make(map[string]int, len(rows))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if i, ok := at[k]; ok {
			out[i] = r
			continue
		}
		at[k] = len(out)
		out = append(out, r)
	}
	return out
}
