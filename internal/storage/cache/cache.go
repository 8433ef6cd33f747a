package cache

import (
	"sync"

	"github.com/DanRulev/flashdeck.git/internal/flashcard"
)

type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*flashcard.Session
	decks    map[int64]*flashcard.Deck
	fetching map[int64]bool
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*flashcard.Session),
		decks:    make(map[int64]*flashcard.Deck),
		fetching: make(map[int64]bool),
	}
}

func (c *Cache) SetSession(chatID int64, session *flashcard.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[chatID] = session
}

func (c *Cache) GetSession(chatID int64) (*flashcard.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[chatID]
	return session, exists
}

func (c *Cache) DeleteSession(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, chatID)
}

func (c *Cache) SetDeck(chatID int64, deck *flashcard.Deck) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decks[chatID] = deck
}

func (c *Cache) GetDeck(chatID int64) (*flashcard.Deck, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	deck, exists := c.decks[chatID]
	return deck, exists
}

// BeginFetch marks a fetch as in flight for the chat.
// It returns false if one is already running.
func (c *Cache) BeginFetch(chatID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetching[chatID] {
		return false
	}
	c.fetching[chatID] = true
	return true
}

func (c *Cache) EndFetch(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fetching, chatID)
}
