package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/stackbound/themeflat/internal/theme"
)

// Layer is one theme's contribution to an inheritance chain.
type Layer struct {
	Name     string
	Location string
	Config   theme.Config
}

// Resolver produces the ordered overlay chain for a theme. The chain is
// ordered base first; the compiler applies layers in this exact order, and
// the first layer to supply a file path or config key wins.
type Resolver interface {
	ResolveChain(name string) ([]Layer, error)
	BaseDir() string
}

var (
	// ErrUnknownTheme is returned when a theme name cannot be resolved.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInheritanceCycle is returned when the extends chain loops.
	ErrInheritanceCycle = errors.New("theme inheritance cycle")
)

// DirResolver resolves themes from a directory containing one subdirectory
// per theme. Discovery runs once, on first use.
type DirResolver struct {
	baseDir  string
	logger   *slog.Logger
	registry *Registry

	discoverOnce sync.Once
	discoverErr  error
}

// NewDirResolver creates a resolver rooted at baseDir. The directory is not
// scanned until the first ResolveChain or Themes call.
func NewDirResolver(baseDir string, logger *slog.Logger) *DirResolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DirResolver{
		baseDir:  baseDir,
		logger:   logger,
		registry: NewRegistry(),
	}
}

// BaseDir returns the directory under which all theme directories live.
func (r *DirResolver) BaseDir() string {
	return r.baseDir
}

// Themes returns all discovered theme entries, sorted by name.
func (r *DirResolver) Themes() ([]*Entry, error) {
	if err := r.ensureDiscovered(); err != nil {
		return nil, err
	}
	names := r.registry.Names()
	entries := make([]*Entry, 0, len(names))
	for _, name := range names {
		if e, ok := r.registry.Get(name); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// ResolveChain resolves the full inheritance chain for the named theme.
// The returned slice is ordered base first, most-derived last, with each
// layer's mixins folded in immediately before the layer that declares them.
func (r *DirResolver) ResolveChain(name string) ([]Layer, error) {
	if err := r.ensureDiscovered(); err != nil {
		return nil, err
	}

	// Walk derived -> base, guarding against extends loops.
	var derivedFirst []*Entry
	seen := make(map[string]bool)
	for current := name; current != ""; {
		if seen[current] {
			return nil, fmt.Errorf("%w: %s", ErrInheritanceCycle, current)
		}
		seen[current] = true

		entry, ok := r.registry.Get(current)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, current)
		}
		derivedFirst = append(derivedFirst, entry)
		current = entry.Reserved.Extends
	}

	// Reverse to base-first, expanding mixins ahead of the declaring layer
	// so their content is physically present when the layer is applied.
	chain := make([]Layer, 0, len(derivedFirst))
	for i := len(derivedFirst) - 1; i >= 0; i-- {
		entry := derivedFirst[i]
		for _, mixin := range entry.Reserved.Mixins {
			m, ok := r.registry.Get(mixin)
			if !ok {
				return nil, fmt.Errorf("%w: mixin %q of theme %q", ErrUnknownTheme, mixin, entry.Name)
			}
			chain = append(chain, m.layer())
		}
		chain = append(chain, entry.layer())
	}

	r.logger.Debug("resolved theme chain", "theme", name, "layers", len(chain))
	return chain, nil
}

func (e *Entry) layer() Layer {
	return Layer{Name: e.Name, Location: e.Location, Config: e.Config}
}

func (r *DirResolver) ensureDiscovered() error {
	r.discoverOnce.Do(func() {
		r.discoverErr = r.discover()
	})
	return r.discoverErr
}

// discover scans the base directory and registers every theme subdirectory.
// A theme without a descriptor file is valid and contributes an empty config.
func (r *DirResolver) discover() error {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return fmt.Errorf("read themes directory %s: %w", r.baseDir, err)
	}

	for _, dirEntry := range entries {
		if !dirEntry.IsDir() {
			continue
		}
		name := dirEntry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		location, err := filepath.Abs(filepath.Join(r.baseDir, name))
		if err != nil {
			return fmt.Errorf("resolve theme path %s: %w", name, err)
		}

		cfg, err := loadDescriptor(location)
		if err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
		reserved, err := theme.DecodeReserved(cfg)
		if err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}

		r.registry.Register(&Entry{
			Name:        name,
			DisplayName: reserved.Name,
			Location:    location,
			Config:      cfg,
			Reserved:    reserved,
		})
		r.logger.Debug("discovered theme", "theme", name, "extends", reserved.Extends, "mixins", len(reserved.Mixins))
	}

	r.logger.Debug("theme discovery complete", "themes", r.registry.Count())
	return nil
}

// loadDescriptor reads the theme descriptor from a theme directory.
// Missing descriptors yield an empty config.
func loadDescriptor(dir string) (theme.Config, error) {
	for _, filename := range []string{theme.DescriptorFileName, theme.DescriptorFileNameAlt} {
		path := filepath.Join(dir, filename)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read descriptor %s: %w", path, err)
		}
		cfg, err := theme.ParseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("descriptor %s: %w", path, err)
		}
		return cfg, nil
	}
	return theme.Config{}, nil
}
