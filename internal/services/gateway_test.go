package services

import (
	"reflect"
	"testing"

	"github.com/cardbox/cardbox/internal/models"
)

// stubRecords is an in-memory RecordStore that counts writes, so tests can
// assert which operations persisted and which did not.
type stubRecords struct {
	records map[string][]byte
	puts    int
}

func newStubRecords() *stubRecords {
	return &stubRecords{records: map[string][]byte{}}
}

func (s *stubRecords) GetRecord(key string) ([]byte, bool) {
	v, ok := s.records[key]
	return v, ok
}

func (s *stubRecords) PutRecord(key string, value []byte) {
	s.records[key] = append([]byte(nil), value...)
	s.puts++
}

func TestLoadCollectionsSeedsDefault(t *testing.T) {
	records := newStubRecords()
	g := NewGateway(records)

	doc := g.LoadCollections()
	if !reflect.DeepEqual(doc, models.DefaultCollectionsDocument()) {
		t.Fatalf("expected seeded default, got %+v", doc)
	}
	if _, ok := records.records[RecordCollections]; !ok {
		t.Fatalf("default document was not persisted")
	}

	// Second load finds the persisted default; no further reset.
	puts := records.puts
	again := g.LoadCollections()
	if !reflect.DeepEqual(again, doc) {
		t.Fatalf("second load differs: %+v", again)
	}
	if records.puts != puts {
		t.Fatalf("second load wrote again")
	}
}

func TestLoadCollectionsRecoversFromCorruption(t *testing.T) {
	for _, raw := range []string{`{{{`, `{"collections":"nope"}`, `[]`} {
		records := newStubRecords()
		records.records[RecordCollections] = []byte(raw)
		g := NewGateway(records)

		doc := g.LoadCollections()
		if !reflect.DeepEqual(doc, models.DefaultCollectionsDocument()) {
			t.Fatalf("corrupt record %q not replaced by default", raw)
		}
		if restored, err := models.DecodeCollectionsDocument(records.records[RecordCollections]); err != nil || restored == nil {
			t.Fatalf("persisted replacement still malformed: %v", err)
		}
	}
}

func TestCollectionsRoundTrip(t *testing.T) {
	records := newStubRecords()
	g := NewGateway(records)

	doc := &models.CollectionsDocument{Collections: []*models.Collection{
		{ID: "a-1", Title: "A", Cards: []*models.Card{{ID: "c-1", Question: "q", Answer: "a"}}},
		{ID: "b-2", Title: "B", Cards: []*models.Card{}},
	}}
	g.SaveCollections(doc)
	if got := g.LoadCollections(); !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, doc)
	}
}

func TestLoadBestScores(t *testing.T) {
	records := newStubRecords()
	g := NewGateway(records)

	if got := g.LoadBestScores(); len(got) != 0 {
		t.Fatalf("absent record should yield empty map, got %v", got)
	}
	if records.puts != 0 {
		t.Fatalf("loading best scores should not persist anything")
	}

	records.records[RecordBestScores] = []byte(`broken`)
	if got := g.LoadBestScores(); len(got) != 0 {
		t.Fatalf("malformed record should yield empty map, got %v", got)
	}

	g.SaveBestScores(map[string]int{"q1": 4})
	got := g.LoadBestScores()
	if got["q1"] != 4 || len(got) != 1 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}
