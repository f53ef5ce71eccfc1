// merge.go contains the per-layer descriptor merge rules.
package compiler

import (
	"reflect"

	"github.com/stackbound/themeflat/internal/theme"
)

// mergePolicy selects how a descriptor key is folded into the accumulator.
type mergePolicy int

const (
	// policyDefault: copy if absent, union lists preferring existing
	// entries, otherwise keep the existing value.
	policyDefault mergePolicy = iota
	// policyRecurse: merge nested mappings with these same rules.
	policyRecurse
	// policySuppress: never copied into the result.
	policySuppress
	// policyForceFalse: always rewritten to false.
	policyForceFalse
)

// keyPolicies maps reserved descriptor keys to their merge policy. A
// flattened theme has no parent (extends is forced false) and its mixins
// are already physically merged into the chain by the resolver (dropped).
var keyPolicies = map[string]mergePolicy{
	theme.KeyExtends: policyForceFalse,
	theme.KeyMixins:  policySuppress,
	theme.KeyHelpers: policyRecurse,
}

// mergeConfig folds one layer's descriptor into the accumulator and returns
// the result. Neither input is mutated. The accumulator holds earlier
// (base) layers, so for scalar keys the first layer to set a value wins,
// mirroring the file overlay precedence.
func mergeConfig(acc, incoming theme.Config) theme.Config {
	out := make(theme.Config, len(acc)+len(incoming))
	for key, val := range acc {
		out[key] = val
	}

	for key, val := range incoming {
		switch keyPolicies[key] {
		case policySuppress:

		case policyForceFalse:
			out[key] = false

		case policyRecurse:
			in, inIsMap := val.(map[string]any)
			if !inIsMap {
				mergeDefault(out, key, val)
				continue
			}
			existing, ok := out[key]
			if !ok {
				out[key] = mergeConfig(theme.Config{}, in)
				continue
			}
			sub, subIsMap := existing.(map[string]any)
			if !subIsMap {
				// Existing non-map value wins over the incoming mapping.
				continue
			}
			out[key] = mergeConfig(sub, in)

		default:
			mergeDefault(out, key, val)
		}
	}
	return out
}

// mergeDefault applies the default per-key rule: absent keys are copied in,
// list values are unioned with existing entries first, and existing
// non-list values are kept.
func mergeDefault(out theme.Config, key string, val any) {
	existing, ok := out[key]
	if !ok {
		out[key] = val
		return
	}
	if list, isList := existing.([]any); isList {
		out[key] = unionList(list, val)
	}
}

// unionList appends incoming entries that are not already present, keeping
// existing entries first. Duplicates are detected by deep value equality.
// A non-list incoming value is treated as a single entry.
func unionList(existing []any, incoming any) []any {
	in, ok := incoming.([]any)
	if !ok {
		in = []any{incoming}
	}

	out := make([]any, len(existing), len(existing)+len(in))
	copy(out, existing)
	for _, candidate := range in {
		if !containsValue(out, candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

func containsValue(list []any, val any) bool {
	for _, item := range list {
		if reflect.DeepEqual(item, val) {
			return true
		}
	}
	return false
}
