package db

import (
	"sync"

	"github.com/cardbox/cardbox/internal/services"
)

// MemoryRecords is the in-process record store used when no database path is
// configured, and as the test double. State does not survive a restart.
type MemoryRecords struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{records: map[string][]byte{}}
}

func (s *MemoryRecords) GetRecord(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (s *MemoryRecords) PutRecord(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), value...)
}

var _ services.RecordStore = (*MemoryRecords)(nil)
