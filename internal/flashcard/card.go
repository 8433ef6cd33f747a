package flashcard

import "github.com/DanRulev/flashdeck.git/internal/models"

// Card is one entry with a question face and an answer face.
// A new card shows its question. Only Flip changes the visible face.
type Card struct {
	question string
	answer   string
	revealed bool
}

func NewCard(entry models.Entry) *Card {
	return &Card{
		question: entry.Question,
		answer:   entry.Answer,
	}
}

func (c *Card) Question() string {
	return c.question
}

func (c *Card) Answer() string {
	return c.answer
}

func (c *Card) Revealed() bool {
	return c.revealed
}

// Face returns the text currently visible on the card.
func (c *Card) Face() string {
	if c.revealed {
		return c.answer
	}
	return c.question
}

func (c *Card) Flip() {
	c.revealed = !c.revealed
}
