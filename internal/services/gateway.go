package services

import (
	"encoding/json"
	"log"

	"github.com/cardbox/cardbox/internal/models"
)

// Storage record keys, matching the records the original browser profiles hold.
const (
	RecordCollections = "cards_collections"
	RecordBestScores  = "best_scores"
)

// RecordStore is the profile-scoped key-value store the gateway persists
// into. Implementations absorb their own I/O failures: a failed read reports
// absence, a failed write is logged and dropped.
type RecordStore interface {
	GetRecord(key string) ([]byte, bool)
	PutRecord(key string, value []byte)
}

// Gateway reads and writes the two persisted records, supplying defaults and
// recovering from corruption. No operation fails outward; corruption is fully
// absorbed into the default-recovery path.
type Gateway struct {
	records RecordStore
}

func NewGateway(records RecordStore) *Gateway {
	return &Gateway{records: records}
}

// LoadCollections returns the stored collections document. An absent or
// malformed record is replaced by the seeded default, which is re-persisted
// so a second load finds it well-formed.
func (g *Gateway) LoadCollections() *models.CollectionsDocument {
	if raw, ok := g.records.GetRecord(RecordCollections); ok {
		doc, err := models.DecodeCollectionsDocument(raw)
		if err == nil {
			return doc
		}
		log.Printf("gateway: collections record malformed, resetting to default: %v", err)
	}
	doc := models.DefaultCollectionsDocument()
	g.SaveCollections(doc)
	return doc
}

// SaveCollections overwrites the stored document unconditionally.
func (g *Gateway) SaveCollections(doc *models.CollectionsDocument) {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Printf("gateway: encode collections document: %v", err)
		return
	}
	g.records.PutRecord(RecordCollections, raw)
}

// LoadBestScores returns the stored best-scores map; absent or malformed
// records yield an empty map. Unlike collections, no default is re-persisted.
func (g *Gateway) LoadBestScores() map[string]int {
	raw, ok := g.records.GetRecord(RecordBestScores)
	if !ok {
		return map[string]int{}
	}
	scores, err := models.DecodeBestScores(raw)
	if err != nil {
		log.Printf("gateway: best-scores record malformed, starting empty: %v", err)
		return map[string]int{}
	}
	return scores
}

// SaveBestScores overwrites the stored map unconditionally.
func (g *Gateway) SaveBestScores(scores map[string]int) {
	raw, err := json.Marshal(scores)
	if err != nil {
		log.Printf("gateway: encode best scores: %v", err)
		return
	}
	g.records.PutRecord(RecordBestScores, raw)
}
