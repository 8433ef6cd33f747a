package models

// Entry is one question/answer pair as served to clients.
type Entry struct {
	Question string `json:"Question" db:"question"`
	Answer   string `json:"Answer" db:"answer"`
}

// Item is a stored card. Its Question may be a template with :pos slots
// that are filled from the corpus lexicon; Answer refers to the same slots.
type Item struct {
	Question string `db:"question"`
	Answer   string `db:"answer"`
	Script   string `db:"script"`
}

// Word is a lexicon entry used to fill template slots.
type Word struct {
	Gloss        string `db:"gloss"`
	Reading      string `db:"reading"`
	PartOfSpeech string `db:"pos"`
	Script       string `db:"script"`
}

type Corpus struct {
	Name  string
	Items []Item
	Words []Word
}
