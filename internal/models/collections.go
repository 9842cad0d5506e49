package models

import (
	"encoding/json"
	"errors"
)

// Card is a question/answer pair belonging to exactly one collection.
type Card struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Collection is a named, user-created set of flashcards.
type Collection struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Cards []*Card `json:"cards"`
}

// CollectionsDocument is the sole unit of flashcard persistence. The whole
// document is rewritten on every mutation; last writer wins.
type CollectionsDocument struct {
	Collections []*Collection `json:"collections"`
}

// ErrInvalidDocument flags a stored record that parsed but failed the shape
// invariant (collections missing or not an array).
var ErrInvalidDocument = errors.New("collections document: collections must be an array")

// DecodeCollectionsDocument parses and validates a stored collections record.
// Substituting a default on failure is the caller's policy, not done here.
func DecodeCollectionsDocument(raw []byte) (*CollectionsDocument, error) {
	var doc CollectionsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Collections == nil {
		return nil, ErrInvalidDocument
	}
	return &doc, nil
}

// DecodeBestScores parses a stored best-scores record. Any parse failure
// makes the whole record malformed; there is no per-entry recovery.
func DecodeBestScores(raw []byte) (map[string]int, error) {
	var scores map[string]int
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, err
	}
	if scores == nil {
		scores = map[string]int{}
	}
	return scores, nil
}

// DefaultCollectionsDocument returns a fresh copy of the seeded document used
// whenever the stored record is absent or corrupt.
func DefaultCollectionsDocument() *CollectionsDocument {
	return &CollectionsDocument{
		Collections: []*Collection{
			{
				ID:    "html-basics",
				Title: "HTML Basics",
				Cards: []*Card{
					{ID: "c1", Question: "Quelle balise pour un paragraphe ?", Answer: "<p>"},
					{ID: "c2", Question: "Balise pour image ?", Answer: "<img>"},
				},
			},
		},
	}
}
