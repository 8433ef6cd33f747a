package flashcard

import "strconv"

// Session walks a deck with a cursor that wraps in both directions.
// Every operation is a no-op on an empty deck.
type Session struct {
	deck   *Deck
	cursor int
}

func NewSession(deck *Deck) *Session {
	return &Session{deck: deck}
}

func (s *Session) ID() string {
	return s.deck.ID()
}

func (s *Session) Deck() *Deck {
	return s.deck
}

func (s *Session) Len() int {
	return s.deck.Len()
}

func (s *Session) Empty() bool {
	return s.deck.Len() == 0
}

func (s *Session) Cursor() int {
	return s.cursor
}

func (s *Session) Next() {
	n := s.deck.Len()
	if n == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % n
}

func (s *Session) Prev() {
	n := s.deck.Len()
	if n == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + n) % n
}

func (s *Session) Current() (*Card, bool) {
	return s.deck.Card(s.cursor)
}

// Flip turns over the card at index cardID. It reports false if there is no such card.
func (s *Session) Flip(cardID int) bool {
	card, ok := s.deck.Card(cardID)
	if !ok {
		return false
	}
	card.Flip()
	return true
}

// PositionLabel renders the cursor 1-based, e.g. "3 / 10".
func (s *Session) PositionLabel() string {
	n := s.deck.Len()
	if n == 0 {
		return "0 / 0"
	}
	return strconv.Itoa(s.cursor+1) + " / " + strconv.Itoa(n)
}

// View is what a renderer needs to paint the current card.
type View struct {
	DeckID   string
	Cursor   int
	Total    int
	Label    string
	Face     string
	Revealed bool
}

func (s *Session) View() (View, error) {
	card, ok := s.Current()
	if !ok {
		return View{}, ErrEmptyDeck
	}

	return View{
		DeckID:   s.deck.ID(),
		Cursor:   s.cursor,
		Total:    s.deck.Len(),
		Label:    s.PositionLabel(),
		Face:     card.Face(),
		Revealed: card.Revealed(),
	}, nil
}
