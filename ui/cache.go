package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/lantern/layout"
)

// WindowState is the remembered placement of a window class.
type WindowState struct {
	Position layout.Position `json:"position"`
	Size     layout.Size     `json:"size"`
}

// WindowCache remembers where windows of each class were last placed so
// reopening one restores it.
type WindowCache struct {
	entries map[string]WindowState
}

// NewWindowCache creates an empty cache.
func NewWindowCache() *WindowCache {
	return &WindowCache{entries: make(map[string]WindowState)}
}

// Lookup returns the remembered state of a window class.
func (c *WindowCache) Lookup(class string) (WindowState, bool) {
	if c == nil {
		return WindowState{}, false
	}
	state, ok := c.entries[class]
	return state, ok
}

// Register stores the state of a window class, replacing any previous one.
func (c *WindowCache) Register(class string, state WindowState) {
	if c.entries == nil {
		c.entries = make(map[string]WindowState)
	}
	c.entries[class] = state
}

// Len returns the number of remembered classes.
func (c *WindowCache) Len() int {
	return len(c.entries)
}

// LoadWindowCache reads a cache from a JSON file. A missing file yields an
// empty cache.
func LoadWindowCache(path string) (*WindowCache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewWindowCache(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load window cache: %w", err)
	}
	c := NewWindowCache()
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, fmt.Errorf("load window cache: parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes the cache to a JSON file.
func (c *WindowCache) Save(path string) error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("save window cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save window cache: %w", err)
	}
	return nil
}
