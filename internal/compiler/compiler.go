// Package compiler flattens a theme inheritance chain into a single
// standalone theme directory. It overlays each layer's files into the
// target without replacing already-placed files, folds each layer's
// descriptor into a merged config, and persists the merged descriptor at
// the target root.
package compiler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/stackbound/themeflat/internal/resolver"
	"github.com/stackbound/themeflat/internal/theme"
)

// Compiler flattens themes resolved by a chain resolver. A Compiler is not
// safe for concurrent use against the same target directory.
type Compiler struct {
	resolver resolver.Resolver
	logger   *slog.Logger
}

// Config holds compiler configuration.
type Config struct {
	// Resolver produces the ordered inheritance chain for a theme.
	Resolver resolver.Resolver
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// New creates a compiler.
func New(cfg Config) (*Compiler, error) {
	if cfg.Resolver == nil {
		return nil, fmt.Errorf("compiler: resolver is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Compiler{resolver: cfg.Resolver, logger: logger}, nil
}

// Result summarizes a successful compile.
type Result struct {
	// Target is the absolute path of the compiled theme directory.
	Target string
	// Layers lists the applied layer names, base first.
	Layers []string
	// FilesPlaced is the number of files copied into the target.
	FilesPlaced int
}

// Compile flattens the source theme's full inheritance chain into a new
// theme directory named target under the resolver's base directory.
//
// The chain is applied in resolver order (base first). Files and non-list
// config values from earlier layers are never replaced by later layers;
// list-valued config keys union with existing entries first. On any
// failure the compile aborts immediately and partially written output is
// left in place; re-running with force replaces it.
func (c *Compiler) Compile(source, target string, force bool) (*Result, error) {
	if !isThemeName(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	chain, err := c.resolver.ResolveChain(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSource, source, err)
	}

	targetDir := filepath.Join(c.resolver.BaseDir(), target)
	for _, layer := range chain {
		if filepath.Clean(layer.Location) == targetDir {
			return nil, fmt.Errorf("%w: %q is a layer of %q", ErrInvalidTarget, target, source)
		}
	}
	if _, err := os.Stat(targetDir); err == nil {
		if !force {
			return nil, fmt.Errorf("%w: %s", ErrTargetExists, targetDir)
		}
		c.logger.Debug("removing existing target", "dir", targetDir)
		if err := os.RemoveAll(targetDir); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDelete, targetDir, err)
		}
	}
	if err := os.MkdirAll(targetDir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCreateDir, targetDir, err)
	}

	result := &Result{Target: targetDir}
	merged := theme.Config{}
	for _, layer := range chain {
		c.logger.Debug("applying layer", "theme", layer.Name, "location", layer.Location)
		merged = mergeConfig(merged, layer.Config)

		placed, err := overlayTree(layer.Location, targetDir)
		result.FilesPlaced += placed
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		result.Layers = append(result.Layers, layer.Name)
	}

	// The flattened theme stands alone: no parent, no mixin references.
	merged[theme.KeyExtends] = false
	delete(merged, theme.KeyMixins)

	if err := c.persist(merged, targetDir); err != nil {
		return nil, err
	}

	c.logger.Info("theme compiled",
		"source", source,
		"target", targetDir,
		"layers", len(result.Layers),
		"files", result.FilesPlaced)
	return result, nil
}

// persist writes the merged descriptor to the target root, replacing the
// descriptor copied in from the base layer during overlay.
func (c *Compiler) persist(merged theme.Config, targetDir string) error {
	data, err := theme.EncodeConfig(merged)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty descriptor", ErrPersist)
	}
	path := filepath.Join(targetDir, theme.DescriptorFileName)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersist, path, err)
	}
	return nil
}

// isThemeName reports whether name is a single plain path element, so that
// joining it onto the themes directory cannot name the directory itself or
// anything outside it.
func isThemeName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}

// Remove deletes the named theme's directory under the resolver's base
// directory. Removing a theme that does not exist is an error.
func (c *Compiler) Remove(name string) error {
	if !isThemeName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, name)
	}
	dir := filepath.Join(c.resolver.BaseDir(), name)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDelete, dir, err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDelete, dir, err)
	}
	c.logger.Info("theme removed", "theme", name, "dir", dir)
	return nil
}
