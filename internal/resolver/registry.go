// Package resolver discovers themes in a workspace and resolves theme
// inheritance chains for the compiler.
package resolver

import (
	"sort"
	"sync"

	"github.com/stackbound/themeflat/internal/theme"
)

// Entry is a discovered theme.
type Entry struct {
	// Name is the theme's directory name, the canonical identifier used in
	// extends/mixins references.
	Name string
	// DisplayName is the optional "name" key from the descriptor.
	DisplayName string
	// Location is the absolute path of the theme directory.
	Location string
	// Config is the raw, unmerged descriptor.
	Config theme.Config
	// Reserved is the typed view of the reserved descriptor keys.
	Reserved theme.Reserved
}

// Registry maps theme names to discovered entries.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a theme to the registry, replacing any previous entry with
// the same name.
func (r *Registry) Register(e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Name] = e
}

// Get returns a theme entry by name.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Names returns all registered theme names, sorted for deterministic output.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered themes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
