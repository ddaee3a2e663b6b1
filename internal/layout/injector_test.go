package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectorInjectsOncePerDefinition(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	inj := NewInjector(sink)
	def := defWith("title", SourceSystem, 0, "title{color:red}")

	assert.True(t, inj.Inject(def))
	assert.False(t, inj.Inject(def), "unchanged definition is a no-op")

	require.Equal(t, 1, sink.Len())
	css, ok := sink.Get("title")
	require.True(t, ok)
	assert.Equal(t, "title{color:red}", css)
}

func TestInjectorReplacesChangedDefinition(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	inj := NewInjector(sink)

	assert.True(t, inj.Inject(defWith("title", SourceTheme, 0, "old{}")))
	assert.True(t, inj.Inject(defWith("title", SourceDeck, 100, "new{}")), "a changed effective definition re-injects")

	require.Equal(t, 1, sink.Len(), "the sink holds the newer content only")
	css, _ := sink.Get("title")
	assert.Equal(t, "new{}", css)
}

func TestInjectorEmptyStylesRemovePreviousContent(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	inj := NewInjector(sink)

	assert.True(t, inj.Inject(defWith("title", SourceTheme, 0, "old{}")))
	assert.True(t, inj.Inject(defWith("title", SourceDeck, 100, "")))
	assert.Equal(t, 0, sink.Len())

	// and injecting nothing for an unknown layout does nothing
	assert.False(t, inj.Inject(defWith("bare", SourceSystem, 0, "")))
	assert.Equal(t, 0, sink.Len())
}

func TestInjectorResetForgetsFingerprints(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	inj := NewInjector(sink)
	def := defWith("title", SourceSystem, 0, "title{}")

	assert.True(t, inj.Inject(def))
	inj.Reset()
	assert.True(t, inj.Inject(def), "after reset the same definition injects again")
}

func TestMemorySinkPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	sink := NewMemorySink()
	sink.Set("b", "b{}")
	sink.Set("a", "a{}")
	sink.Set("b", "b2{}")

	assert.Equal(t, "b2{}\na{}\n", sink.CSS(), "overwrites keep the original position")

	sink.Remove("b")
	assert.Equal(t, "a{}\n", sink.CSS())
	assert.Equal(t, 1, sink.Len())

	sink.Clear()
	assert.Equal(t, "", sink.CSS())
}

func TestBuiltinLayoutsAreWellFormed(t *testing.T) {
	t.Parallel()

	defs := Builtin()
	require.NotEmpty(t, defs)

	seen := map[string]struct{}{}
	for _, def := range defs {
		assert.Equal(t, SourceSystem, def.Source)
		assert.Zero(t, def.Priority)
		assert.NotEmpty(t, def.Zones, "%s has no zones", def.Name)
		assert.Contains(t, def.CustomStyles, def.Name, "%s styles are scoped by layout name", def.Name)

		_, dup := seen[def.Name]
		assert.False(t, dup, "duplicate builtin %s", def.Name)
		seen[def.Name] = struct{}{}
	}
}
