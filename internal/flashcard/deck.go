package flashcard

import (
	"github.com/DanRulev/flashdeck.git/internal/models"
	"github.com/google/uuid"
)

// Deck is a fixed, ordered set of cards built once from fetched entries.
// Cards keep the order the entries arrived in.
type Deck struct {
	id    string
	cards []*Card
}

func NewDeck(entries []models.Entry) *Deck {
	cards := make([]*Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, NewCard(e))
	}

	return &Deck{
		id:    uuid.NewString(),
		cards: cards,
	}
}

// ID identifies the deck so that controls painted for an older deck can be recognised.
func (d *Deck) ID() string {
	return d.id
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Card(i int) (*Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return nil, false
	}
	return d.cards[i], true
}

func (d *Deck) Cards() []*Card {
	out := make([]*Card, len(d.cards))
	copy(out, d.cards)
	return out
}
