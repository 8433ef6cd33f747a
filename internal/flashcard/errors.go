package flashcard

import "errors"

// ErrEmptyDeck reports a deck with no cards to show.
var ErrEmptyDeck = errors.New("flashcard: empty deck")
