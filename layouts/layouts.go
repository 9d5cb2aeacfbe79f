package layouts

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"podorder/model"
)

// Registry maps customer-type keys to their flat-file layout descriptors,
// as loaded from the customer configuration document. An empty registry is
// usable; every lookup misses and CSV export is refused at the handler.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]model.CustomerLayout
}

func NewRegistry() *Registry {
	return &Registry{layouts: make(map[string]model.CustomerLayout)}
}

// LoadFile reads the JSON customer configuration document.
func (rg *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("layouts: read %s: %w", path, err)
	}
	var m map[string]model.CustomerLayout
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("layouts: parse %s: %w", path, err)
	}
	rg.mu.Lock()
	rg.layouts = m
	rg.mu.Unlock()
	return nil
}

func (rg *Registry) Lookup(customerType string) (model.CustomerLayout, bool) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	l, ok := rg.layouts[customerType]
	return l, ok
}

// Keys returns the known customer-type keys in sorted order.
func (rg *Registry) Keys() []string {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	keys := make([]string, 0, len(rg.layouts))
	for k := range rg.layouts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
