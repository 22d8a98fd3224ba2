package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore keeps session fragments in process memory. Fragments are held
// serialized so that a value that cannot round-trip through JSON is caught at
// save time, the same way a browser storage write would fail.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, sessionID, key string, fragment map[string]any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := merge(s.loadLocked(sessionID, key), fragment)
	raw, err := json.Marshal(merged)
	if err != nil {
		log.Printf("session %s: error saving %s data: %v", sessionID, key, err)
		return false
	}
	if s.sessions[sessionID] == nil {
		s.sessions[sessionID] = make(map[string][]byte)
	}
	s.sessions[sessionID][key] = raw
	return true
}

func (s *MemoryStore) Load(_ context.Context, sessionID, key string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadLocked(sessionID, key)
}

func (s *MemoryStore) loadLocked(sessionID, key string) map[string]any {
	raw, ok := s.sessions[sessionID][key]
	if !ok {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		log.Printf("session %s: error retrieving %s data: %v", sessionID, key, err)
		return nil
	}
	return m
}

func (s *MemoryStore) LoadAll(ctx context.Context, sessionID string) Fragments {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Fragments{
		Search:       orEmpty(s.loadLocked(sessionID, KeySearch)),
		Room:         orEmpty(s.loadLocked(sessionID, KeyRoom)),
		Personal:     orEmpty(s.loadLocked(sessionID, KeyPersonal)),
		Confirmation: orEmpty(s.loadLocked(sessionID, KeyConfirmation)),
	}
}
