package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/flashdeck.git/internal/flashcard"
	"go.uber.org/zap"
)

const DefaultCount = 10

type FlashcardS struct {
	api   EntriesAPII
	count int
	log   *zap.Logger
}

func NewFlashcardService(api EntriesAPII, count int, log *zap.Logger) *FlashcardS {
	if count < 1 {
		count = DefaultCount
	}
	return &FlashcardS{
		api:   api,
		count: count,
		log:   log,
	}
}

// NewDeck fetches entries for corpus and builds a deck from them.
// On a fetch failure nothing is built.
func (f *FlashcardS) NewDeck(ctx context.Context, corpus string) (*flashcard.Deck, error) {
	entries, err := f.api.Entries(ctx, corpus, f.count)
	if err != nil {
		f.log.Warn("failed to fetch entries", zap.String("corpus", corpus), zap.Int("count", f.count), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch corpus %s: %w", corpus, err)
	}

	if len(entries) == 0 {
		f.log.Warn("no entries returned", zap.String("corpus", corpus))
	}

	deck := flashcard.NewDeck(entries)
	f.log.Debug("deck built", zap.String("corpus", corpus), zap.String("deck_id", deck.ID()), zap.Int("cards", deck.Len()))

	return deck, nil
}

func (f *FlashcardS) NewSession(ctx context.Context, corpus string) (*flashcard.Session, error) {
	deck, err := f.NewDeck(ctx, corpus)
	if err != nil {
		return nil, err
	}

	return flashcard.NewSession(deck), nil
}
