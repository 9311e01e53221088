// Package model defines shared data structures.
package model

import "time"

// Side is one face text of a card: a canonical main text plus accepted
// alternate phrasings of the same meaning.
type Side struct {
	Main       string   `json:"main"`
	Variations []string `json:"variations"`
}

// Texts returns the main text followed by every variation.
func (s Side) Texts() []string {
	texts := make([]string, 0, len(s.Variations)+1)
	texts = append(texts, s.Main)
	texts = append(texts, s.Variations...)
	return texts
}

// Card holds the two faces of a flashcard.
type Card struct {
	Front Side `json:"front"`
	Back  Side `json:"back"`
}

// Item is one trainable unit with its review statistics.
type Item struct {
	ID            string    `json:"id"`
	Card          Card      `json:"card"`
	Categories    []string  `json:"categories"`
	LastRevision  time.Time `json:"last_revision"`
	RevisionCount int       `json:"revision_count"`
	FavoriteLvl   int       `json:"favorite_lvl"`
	ErrorsLast    int       `json:"errors_last"`
	ErrorsTotal   int       `json:"errors_total"`
}

// Collection is the full deserialized deck.
type Collection struct {
	Items []*Item `json:"items"`
}

// Answer records one user response event during a session.
type Answer struct {
	Item       *Item
	UserAnswer string
	// Question is the exact side text that was shown, since a side may
	// display a random variation.
	Question string
}

// SkippedAnswer is the sentinel user text recorded for a skipped card.
const SkippedAnswer = "--skipped--"
