package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackbound/themeflat/internal/theme"
)

func TestMergeConfig_FirstLayerWinsForScalars(t *testing.T) {
	layers := []theme.Config{
		{"accent": "navy"},
		{"accent": "red"},
		{"accent": "green"},
	}

	merged := theme.Config{}
	for _, layer := range layers {
		merged = mergeConfig(merged, layer)
	}

	assert.Equal(t, "navy", merged["accent"], "base layer's value must win")
}

func TestMergeConfig_AbsentKeysCopiedIn(t *testing.T) {
	merged := mergeConfig(theme.Config{"a": 1}, theme.Config{"b": 2})
	assert.Equal(t, 1, merged["a"])
	assert.Equal(t, 2, merged["b"])
}

func TestMergeConfig_ExtendsForcedFalse(t *testing.T) {
	tests := []struct {
		name     string
		incoming any
	}{
		{name: "string parent", incoming: "base"},
		{name: "already false", incoming: false},
		{name: "truthy bool", incoming: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mergeConfig(theme.Config{}, theme.Config{"extends": tt.incoming})
			assert.Equal(t, false, merged["extends"])
		})
	}
}

func TestMergeConfig_MixinsSuppressed(t *testing.T) {
	merged := theme.Config{}
	for _, layer := range []theme.Config{
		{"mixins": []any{"icons"}},
		{"mixins": []any{"grid"}},
	} {
		merged = mergeConfig(merged, layer)
	}
	_, present := merged["mixins"]
	assert.False(t, present, "mixins must never appear in the merged config")
}

func TestMergeConfig_HelpersMergeRecursively(t *testing.T) {
	base := theme.Config{"helpers": map[string]any{"a": 1}}
	derived := theme.Config{"helpers": map[string]any{"b": 2}}

	merged := mergeConfig(mergeConfig(theme.Config{}, base), derived)

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, merged["helpers"])
}

func TestMergeConfig_NestedHelpersFirstWins(t *testing.T) {
	base := theme.Config{"helpers": map[string]any{"nav": map[string]any{"sticky": true}}}
	derived := theme.Config{"helpers": map[string]any{"nav": map[string]any{"sticky": false, "width": 12}}}

	merged := mergeConfig(mergeConfig(theme.Config{}, base), derived)

	nav := merged["helpers"].(map[string]any)["nav"].(map[string]any)
	assert.Equal(t, true, nav["sticky"], "base helper value must win")
	assert.Equal(t, 12, nav["width"], "new helper keys are merged in")
}

func TestMergeConfig_HelpersScalarKeepsExisting(t *testing.T) {
	merged := mergeConfig(theme.Config{"helpers": "disabled"}, theme.Config{"helpers": map[string]any{"a": 1}})
	assert.Equal(t, "disabled", merged["helpers"])
}

func TestMergeConfig_ListUnionPrefersExisting(t *testing.T) {
	base := theme.Config{"tags": []any{"x", "y"}}
	derived := theme.Config{"tags": []any{"y", "z"}}

	merged := mergeConfig(mergeConfig(theme.Config{}, base), derived)

	assert.Equal(t, []any{"x", "y", "z"}, merged["tags"], "existing entries first, duplicate suppressed")
}

func TestMergeConfig_ListUnionDeepEquality(t *testing.T) {
	base := theme.Config{"fonts": []any{map[string]any{"family": "Inter", "weight": 400}}}
	derived := theme.Config{"fonts": []any{
		map[string]any{"family": "Inter", "weight": 400},
		map[string]any{"family": "Inter", "weight": 700},
	}}

	merged := mergeConfig(mergeConfig(theme.Config{}, base), derived)

	require.Len(t, merged["fonts"], 2)
}

func TestMergeConfig_ScalarIntoExistingListIsSingleEntry(t *testing.T) {
	merged := mergeConfig(theme.Config{"tags": []any{"x"}}, theme.Config{"tags": "y"})
	assert.Equal(t, []any{"x", "y"}, merged["tags"])
}

func TestMergeConfig_DoesNotMutateInputs(t *testing.T) {
	acc := theme.Config{"tags": []any{"x"}, "accent": "navy"}
	incoming := theme.Config{"tags": []any{"y"}, "accent": "red", "extra": 1}

	_ = mergeConfig(acc, incoming)

	assert.Equal(t, theme.Config{"tags": []any{"x"}, "accent": "navy"}, acc)
	assert.Equal(t, theme.Config{"tags": []any{"y"}, "accent": "red", "extra": 1}, incoming)
}
