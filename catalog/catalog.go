package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"podorder/isbn"
	"podorder/model"
)

// Index is the in-memory lookup over the catalog reference document,
// keyed by normalized ISBN. A fresh or failed-to-load index is usable:
// every lookup simply misses.
type Index struct {
	mu      sync.RWMutex
	entries map[string]model.CatalogEntry
}

func NewIndex() *Index {
	return &Index{entries: make(map[string]model.CatalogEntry)}
}

// Build replaces the index contents from a list of catalog entries.
// Duplicate codes keep the last entry, matching document order.
func (ix *Index) Build(entries []model.CatalogEntry) {
	m := make(map[string]model.CatalogEntry, len(entries))
	for _, e := range entries {
		m[isbn.Normalize(e.Code)] = e
	}
	ix.mu.Lock()
	ix.entries = m
	ix.mu.Unlock()
}

// Lookup returns the entry for a normalized ISBN.
func (ix *Index) Lookup(code string) (model.CatalogEntry, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	e, ok := ix.entries[code]
	return e, ok
}

func (ix *Index) Size() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// LoadFile reads the JSON catalog document and rebuilds the index.
func (ix *Index) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var entries []model.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	ix.Build(entries)
	return nil
}
