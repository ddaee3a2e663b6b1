package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTokenGroupGet(t *testing.T) {
	t.Parallel()

	group := TokenGroup{
		Leaf("primary", "#3b82f6"),
		Nested("surface",
			Leaf("base", "#f9fafb"),
			Leaf("muted", "#e2e8f0"),
		),
	}

	value, ok := group.Get("primary")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", value)

	value, ok = group.Get("surface", "muted")
	require.True(t, ok)
	assert.Equal(t, "#e2e8f0", value)

	_, ok = group.Get("surface")
	assert.False(t, ok, "nested groups are not literals")

	_, ok = group.Get("missing")
	assert.False(t, ok)
}

func TestTokenGroupOverrideReplacesInPlace(t *testing.T) {
	t.Parallel()

	base := TokenGroup{
		Leaf("primary", "#3b82f6"),
		Leaf("secondary", "#a855f7"),
	}

	extended := base.Override(Leaf("primary", "#dc2626"), Leaf("accent", "#facc15"))

	value, _ := extended.Get("primary")
	assert.Equal(t, "#dc2626", value)

	// sibling keys survive a key-level override
	value, ok := extended.Get("secondary")
	require.True(t, ok)
	assert.Equal(t, "#a855f7", value)

	// new keys append after existing ones
	assert.Equal(t, "accent", extended[2].Key)

	// base is untouched
	value, _ = base.Get("primary")
	assert.Equal(t, "#3b82f6", value)
}

func TestTokenGroupCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := TokenGroup{
		Nested("radius", Leaf("md", "0.375rem")),
	}

	cloned := original.Clone()
	cloned[0].Value.Children[0].Value.Literal = "1rem"

	value, _ := original.Get("radius", "md")
	assert.Equal(t, "0.375rem", value)
}

func TestTokenGroupUnmarshalPreservesOrder(t *testing.T) {
	t.Parallel()

	input := `
zeta: "1"
alpha: "2"
middle:
  second: "3"
  first: "4"
`

	var group TokenGroup
	require.NoError(t, yaml.Unmarshal([]byte(input), &group))

	require.Len(t, group, 3)
	assert.Equal(t, "zeta", group[0].Key)
	assert.Equal(t, "alpha", group[1].Key)
	assert.Equal(t, "middle", group[2].Key)

	nested := group[2].Value.Children
	require.Len(t, nested, 2)
	assert.Equal(t, "second", nested[0].Key)
	assert.Equal(t, "first", nested[1].Key)
}

func TestTokenGroupUnmarshalRejectsSequences(t *testing.T) {
	t.Parallel()

	var group TokenGroup
	err := yaml.Unmarshal([]byte("key:\n  - a\n  - b\n"), &group)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key")
}

func TestDesignTokensIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, DesignTokens{}.IsZero())
	assert.False(t, DefaultTokens().IsZero())
}
