// Package generator turns stored items into question/answer entries.
//
// An item question may contain slots such as ":noun" or ":noun2". Each slot
// is filled with the gloss of a random lexicon word of that part of speech
// (the trailing digit only tells two slots of the same kind apart), and the
// same slot in the answer gets that word's reading.
package generator

import (
	"math/rand/v2"
	"strings"

	"github.com/DanRulev/flashdeck.git/internal/models"
)

// Unknown fills a slot whose part of speech has no words.
const Unknown = "???"

// Lexicon groups words by part of speech.
type Lexicon map[string][]models.Word

func NewLexicon(words []models.Word) Lexicon {
	lex := Lexicon{}
	for _, w := range words {
		lex[w.PartOfSpeech] = append(lex[w.PartOfSpeech], w)
	}
	return lex
}

type Generator struct {
	lexicon Lexicon
	intn    func(n int) int
}

func New(lexicon Lexicon) *Generator {
	return &Generator{
		lexicon: lexicon,
		intn:    rand.IntN,
	}
}

// Entries builds one entry per item, in item order.
func (g *Generator) Entries(items []models.Item) []models.Entry {
	entries := make([]models.Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, g.Entry(it))
	}
	return entries
}

func (g *Generator) Entry(item models.Item) models.Entry {
	if !IsTemplate(item.Question) {
		return models.Entry{Question: item.Question, Answer: item.Answer}
	}

	bindings := map[string]string{}
	words := strings.Fields(item.Question)
	for i, w := range words {
		slot, ok := slotName(w)
		if !ok {
			continue
		}
		words[i] = g.choose(slot, bindings)
	}

	return models.Entry{
		Question: strings.Join(words, " "),
		Answer:   applyBindings(item.Answer, bindings),
	}
}

func (g *Generator) choose(slot string, bindings map[string]string) string {
	choices := g.lexicon[partOfSpeech(slot)]
	if len(choices) == 0 {
		bindings[slot] = Unknown
		return Unknown
	}

	word := choices[g.intn(len(choices))]
	bindings[slot] = word.Reading
	return word.Gloss
}

func applyBindings(s string, bindings map[string]string) string {
	words := strings.Fields(s)
	for i, w := range words {
		slot, ok := slotName(w)
		if !ok {
			continue
		}
		if b, ok := bindings[slot]; ok {
			words[i] = b
		}
	}
	return strings.Join(words, " ")
}

// IsTemplate reports whether s has at least one slot.
func IsTemplate(s string) bool {
	return len(Slots(s)) > 0
}

// Slots returns the slot names in s, in order, without the leading colon.
func Slots(s string) []string {
	var slots []string
	for _, w := range strings.Fields(s) {
		if slot, ok := slotName(w); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

func slotName(w string) (string, bool) {
	if len(w) < 2 || w[0] != ':' {
		return "", false
	}
	return w[1:], true
}

func partOfSpeech(slot string) string {
	if last := slot[len(slot)-1]; last >= '0' && last <= '9' && len(slot) > 1 {
		return slot[:len(slot)-1]
	}
	return slot
}
