// Package theme defines the theme descriptor model shared by the resolver
// and the compiler. A descriptor is free-form YAML; only a handful of
// reserved keys carry special meaning during chain resolution and merging.
package theme

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Descriptor filenames recognized inside a theme directory.
const (
	DescriptorFileName    = "theme.yaml"
	DescriptorFileNameAlt = "theme.yml"
)

// Reserved top-level descriptor keys with special merge semantics.
const (
	KeyName    = "name"
	KeyExtends = "extends"
	KeyMixins  = "mixins"
	KeyHelpers = "helpers"
)

// Config is a raw theme descriptor: string keys mapping to scalars, lists,
// or nested maps of the same shape.
type Config = map[string]any

// ErrInvalidShape is returned when descriptor content is not a mapping at
// the top level.
var ErrInvalidShape = errors.New("theme descriptor must be a mapping")

// ParseConfig decodes a YAML descriptor into a Config.
// An empty document yields an empty Config.
func ParseConfig(data []byte) (Config, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme descriptor: %w", err)
	}
	if raw == nil {
		return Config{}, nil
	}
	cfg, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrInvalidShape, raw)
	}
	return cfg, nil
}

// EncodeConfig serializes a Config back to YAML. The output is re-parsable
// by ParseConfig into the same shape.
func EncodeConfig(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode theme descriptor: %w", err)
	}
	return data, nil
}

// Reserved is the typed view of the reserved descriptor keys used during
// chain resolution.
type Reserved struct {
	Name    string   `mapstructure:"name"`
	Extends string   `mapstructure:"extends"`
	Mixins  []string `mapstructure:"mixins"`
}

// DecodeReserved extracts the reserved keys from a raw descriptor.
// A boolean false under "extends" marks an already-flattened theme and is
// treated as absent.
func DecodeReserved(cfg Config) (Reserved, error) {
	src := cfg
	if _, isBool := cfg[KeyExtends].(bool); isBool {
		src = make(Config, len(cfg))
		for k, v := range cfg {
			if k == KeyExtends {
				continue
			}
			src[k] = v
		}
	}

	var r Reserved
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &r})
	if err != nil {
		return Reserved{}, err
	}
	if err := dec.Decode(src); err != nil {
		return Reserved{}, fmt.Errorf("decode reserved theme keys: %w", err)
	}
	return r, nil
}
