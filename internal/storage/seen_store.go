// Package storage persists which articles were already delivered, so
// consecutive runs do not re-select the same stories.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"newsbrief/internal/model"
)

// SeenArticle is one delivered article's read-state entry.
type SeenArticle struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	SourceID string    `json:"sourceId"`
	SeenAt   time.Time `json:"seenAt"`
}

// SeenStore keeps seen article IDs in a JSON file with a TTL, so old
// entries age out instead of growing forever.
type SeenStore struct {
	filePath string
	ttl      time.Duration
	items    map[string]SeenArticle
	mu       sync.RWMutex
}

func NewSeenStore(filePath string, ttlHours int) *SeenStore {
	return &SeenStore{
		filePath: filePath,
		ttl:      time.Duration(ttlHours) * time.Hour,
		items:    make(map[string]SeenArticle),
	}
}

// Load reads the store from disk, dropping entries past their TTL.
// A missing or empty file is a fresh store, not an error.
func (s *SeenStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read seen store: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items []SeenArticle
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("unmarshal seen store: %w", err)
	}

	cutoff := time.Now().Add(-s.ttl)
	for _, item := range items {
		if item.SeenAt.After(cutoff) {
			s.items[item.ID] = item
		}
	}
	return nil
}

// Save writes the live entries back to disk.
func (s *SeenStore) Save() error {
	s.mu.RLock()
	items := make([]SeenArticle, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seen store: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write seen store: %w", err)
	}
	return nil
}

// IsSeen reports whether the article ID is recorded and still within TTL.
func (s *SeenStore) IsSeen(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return false
	}
	return item.SeenAt.After(time.Now().Add(-s.ttl))
}

// MarkSeen records an article as delivered now.
func (s *SeenStore) MarkSeen(a model.ArticleRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[a.ID] = SeenArticle{
		ID:       a.ID,
		Title:    a.Title,
		SourceID: a.SourceID,
		SeenAt:   time.Now(),
	}
}

// SeenIDs snapshots the live IDs for the pipeline's selector.
func (s *SeenStore) SeenIDs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().Add(-s.ttl)
	ids := make(map[string]bool, len(s.items))
	for id, item := range s.items {
		if item.SeenAt.After(cutoff) {
			ids[id] = true
		}
	}
	return ids
}

// Prune drops expired entries from memory.
func (s *SeenStore) Prune() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, item := range s.items {
		if item.SeenAt.Before(cutoff) {
			delete(s.items, id)
		}
	}
}

// Len reports the number of entries currently held.
func (s *SeenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
