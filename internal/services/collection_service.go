package services

import (
	"strings"
	"sync"

	"github.com/cardbox/cardbox/internal/models"
	"github.com/cardbox/cardbox/internal/utils"
)

// CollectionService owns the in-memory collections document and the session
// browsing cursor. Every mutation persists the whole document through the
// gateway; cursor and flip state are session-only.
type CollectionService struct {
	mu      sync.Mutex
	gateway *Gateway
	doc     *models.CollectionsDocument

	openID  string
	cursor  int
	flipped bool

	idSuffix func() string
	cardID   func() string
}

// BrowsingView is the read-only projection the presentation layer renders
// from, recomputed after every call.
type BrowsingView struct {
	Collections []*models.Collection
	Open        *models.Collection
	CardIndex   int
	Card        *models.Card
	Flipped     bool
}

func NewCollectionService(gateway *Gateway) *CollectionService {
	return &CollectionService{
		gateway:  gateway,
		doc:      gateway.LoadCollections(),
		idSuffix: func() string { return utils.RandomSuffix(4) },
		cardID:   func() string { return utils.NewID("c") },
	}
}

func (s *CollectionService) find(id string) *models.Collection {
	for _, c := range s.doc.Collections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CreateCollection appends a new empty collection named title. The id is the
// slugified title plus a random suffix. The browsing cursor is untouched.
func (s *CollectionService) CreateCollection(title string) (*models.Collection, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewInvalidError("title required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	col := &models.Collection{
		ID:    utils.Slugify(title) + "-" + s.idSuffix(),
		Title: title,
		Cards: []*models.Card{},
	}
	s.doc.Collections = append(s.doc.Collections, col)
	s.gateway.SaveCollections(s.doc)
	return col, nil
}

// DeleteCollection removes a collection by id. If it was the open one, the
// open-collection reference is cleared. Confirmation is a presentation
// concern; here the removal is unconditional.
func (s *CollectionService) DeleteCollection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]*models.Collection, 0, len(s.doc.Collections))
	found := false
	for _, c := range s.doc.Collections {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return NewNotFoundError("collection not found")
	}
	s.doc.Collections = kept
	if s.openID == id {
		s.openID = ""
	}
	s.gateway.SaveCollections(s.doc)
	return nil
}

// OpenCollection makes id the current collection, resetting the cursor to the
// first card, unflipped. Session-only; nothing is persisted.
func (s *CollectionService) OpenCollection(id string) (*models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.find(id)
	if col == nil {
		return nil, NewNotFoundError("collection not found")
	}
	s.openID = id
	s.cursor = 0
	s.flipped = false
	return col, nil
}

// AddCard appends a card to the named collection and persists. If that
// collection is currently open the cursor jumps to the new card, unflipped.
func (s *CollectionService) AddCard(collectionID, question, answer string) (*models.Card, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return nil, NewInvalidError("question and answer required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.find(collectionID)
	if col == nil {
		return nil, NewNotFoundError("collection not found")
	}
	card := &models.Card{ID: s.cardID(), Question: question, Answer: answer}
	col.Cards = append(col.Cards, card)
	s.gateway.SaveCollections(s.doc)
	if s.openID == collectionID {
		s.cursor = len(col.Cards) - 1
		s.flipped = false
	}
	return card, nil
}

// NextCard advances the cursor cyclically; no-op without an open, non-empty
// collection. Always lands unflipped.
func (s *CollectionService) NextCard() { s.step(1) }

// PrevCard retreats the cursor cyclically, wrapping from 0 to the last card.
func (s *CollectionService) PrevCard() { s.step(-1) }

func (s *CollectionService) step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.find(s.openID)
	if col == nil || len(col.Cards) == 0 {
		return
	}
	n := len(col.Cards)
	s.cursor = ((s.cursor+delta)%n + n) % n
	s.flipped = false
}

// Flip toggles between question and answer side of the displayed card.
func (s *CollectionService) Flip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flipped = !s.flipped
}

// View snapshots the document and session state. The cursor is renormalized
// to 0 here if it drifted out of bounds, before anything is displayed.
func (s *CollectionService) View() BrowsingView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := BrowsingView{
		Collections: append([]*models.Collection(nil), s.doc.Collections...),
	}
	col := s.find(s.openID)
	if col == nil {
		return view
	}
	if s.cursor >= len(col.Cards) {
		s.cursor = 0
	}
	view.Open = col
	view.CardIndex = s.cursor
	view.Flipped = s.flipped
	if len(col.Cards) > 0 {
		view.Card = col.Cards[s.cursor]
	}
	return view
}
