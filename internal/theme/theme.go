package theme

import (
	"github.com/deckforge/deckforge/internal/layout"
)

// Theme bundles a name, a fully resolved token snapshot, and the layouts the
// theme contributes.
//
// Token composition is the caller's responsibility. A theme that extends a
// base set must copy the base tokens and overwrite only the categories or
// keys it changes before constructing the Theme; New performs no deep merge.
// Replacing an entire category object wholesale silently drops sibling keys
// that are not re-specified — use key-level overrides (TokenGroup.Override)
// to preserve inherited siblings.
type Theme struct {
	name    string
	tokens  DesignTokens
	layouts []layout.Definition
}

// New constructs a Theme owning its own copies of tokens and layouts.
func New(name string, tokens DesignTokens, layouts ...layout.Definition) *Theme {
	owned := make([]layout.Definition, len(layouts))
	for i, def := range layouts {
		owned[i] = def.Clone()
	}
	return &Theme{
		name:    name,
		tokens:  tokens.Clone(),
		layouts: owned,
	}
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	return t.name
}

// Tokens returns the stored token snapshot.
func (t *Theme) Tokens() DesignTokens {
	return t.tokens.Clone()
}

// Layouts returns the theme's own layout list. The theme does not register
// them anywhere itself; the caller feeds them into a layout registry.
func (t *Theme) Layouts() []layout.Definition {
	out := make([]layout.Definition, len(t.layouts))
	for i, def := range t.layouts {
		out[i] = def.Clone()
	}
	return out
}

// CSSVariables flattens the theme's tokens into an ordered flat variable
// list. The order is stable and reproduced identically on every call.
func (t *Theme) CSSVariables() []CSSVariable {
	return CSSVariables(t.tokens)
}

// CSSString renders the theme's variables as a :root stylesheet block.
func (t *Theme) CSSString() string {
	return CSSString(t.tokens)
}
