package db

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestSQLiteRecordsRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, ok := store.GetRecord("cards_collections"); ok {
		t.Fatalf("fresh store should have no records")
	}

	store.PutRecord("cards_collections", []byte(`{"collections":[]}`))
	got, ok := store.GetRecord("cards_collections")
	if !ok || !bytes.Equal(got, []byte(`{"collections":[]}`)) {
		t.Fatalf("round trip failed: %q (%v)", got, ok)
	}

	store.PutRecord("cards_collections", []byte(`{"collections":[{"id":"x"}]}`))
	got, ok = store.GetRecord("cards_collections")
	if !ok || !bytes.Contains(got, []byte(`"x"`)) {
		t.Fatalf("overwrite failed: %q", got)
	}

	if _, ok := store.GetRecord("best_scores"); ok {
		t.Fatalf("unexpected record under a different key")
	}
}

func TestSQLiteRecordsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.PutRecord("best_scores", []byte(`{"q1":3}`))
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	got, ok := again.GetRecord("best_scores")
	if !ok || !bytes.Equal(got, []byte(`{"q1":3}`)) {
		t.Fatalf("record did not survive reopen: %q (%v)", got, ok)
	}
}

func TestMemoryRecords(t *testing.T) {
	store := NewMemoryRecords()
	if _, ok := store.GetRecord("missing"); ok {
		t.Fatalf("empty store should report absence")
	}

	value := []byte(`{"q1":1}`)
	store.PutRecord("best_scores", value)
	value[0] = 'X' // caller mutations must not leak into the store

	got, ok := store.GetRecord("best_scores")
	if !ok || !bytes.Equal(got, []byte(`{"q1":1}`)) {
		t.Fatalf("stored value was aliased: %q", got)
	}
}
