package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TokenValue is either a literal design value or a nested group of tokens.
type TokenValue struct {
	Literal  string
	Children TokenGroup
}

// IsLeaf reports whether the value holds a literal rather than a nested group.
func (v TokenValue) IsLeaf() bool {
	return v.Children == nil
}

// TokenEntry binds a semantic key to its value inside a category.
type TokenEntry struct {
	Key   string
	Value TokenValue
}

// TokenGroup is an ordered list of token entries. Order is structural, so
// flattening tokens into CSS variables is deterministic by construction.
type TokenGroup []TokenEntry

// Leaf builds an entry holding a literal value.
func Leaf(key, value string) TokenEntry {
	return TokenEntry{Key: key, Value: TokenValue{Literal: value}}
}

// Nested builds an entry holding a nested group.
func Nested(key string, children ...TokenEntry) TokenEntry {
	if children == nil {
		children = []TokenEntry{}
	}
	return TokenEntry{Key: key, Value: TokenValue{Children: TokenGroup(children)}}
}

// Get resolves a literal by key path, e.g. g.Get("fontSize", "sm").
func (g TokenGroup) Get(path ...string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	for _, e := range g {
		if e.Key != path[0] {
			continue
		}
		if len(path) == 1 {
			if e.Value.IsLeaf() {
				return e.Value.Literal, true
			}
			return "", false
		}
		return e.Value.Children.Get(path[1:]...)
	}
	return "", false
}

// Override returns a copy of g with the supplied entries replacing same-keyed
// entries in place and new keys appended. This is the key-level spread used
// to extend a base token set without dropping sibling keys; replacing a whole
// category wholesale is what silently loses them.
func (g TokenGroup) Override(entries ...TokenEntry) TokenGroup {
	out := g.Clone()
	for _, e := range entries {
		replaced := false
		for i := range out {
			if out[i].Key == e.Key {
				out[i] = cloneEntry(e)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, cloneEntry(e))
		}
	}
	return out
}

// Clone deep-copies the group.
func (g TokenGroup) Clone() TokenGroup {
	if g == nil {
		return nil
	}
	out := make(TokenGroup, len(g))
	for i, e := range g {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e TokenEntry) TokenEntry {
	e.Value.Children = e.Value.Children.Clone()
	return e
}

// UnmarshalYAML decodes a mapping node into a TokenGroup preserving document
// order, which Go maps would lose.
func (g *TokenGroup) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("tokens: line %d: expected a mapping, got %s", node.Line, nodeKind(node))
	}

	out := make(TokenGroup, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		switch valueNode.Kind {
		case yaml.ScalarNode:
			out = append(out, Leaf(keyNode.Value, valueNode.Value))
		case yaml.MappingNode:
			var children TokenGroup
			if err := valueNode.Decode(&children); err != nil {
				return err
			}
			out = append(out, TokenEntry{Key: keyNode.Value, Value: TokenValue{Children: children}})
		default:
			return fmt.Errorf("tokens: line %d: key %q must map to a value or a nested mapping", valueNode.Line, keyNode.Value)
		}
	}

	*g = out
	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unsupported node"
	}
}

// DesignTokens holds the fixed set of top-level token categories. The
// category set never varies; the key sets inside each category may differ
// between token sets, and callers composing a theme from a base set are
// responsible for completeness.
type DesignTokens struct {
	Colors     TokenGroup `yaml:"colors"`
	Typography TokenGroup `yaml:"typography"`
	Spacing    TokenGroup `yaml:"spacing"`
	Borders    TokenGroup `yaml:"borders"`
	Shadows    TokenGroup `yaml:"shadows"`
}

// Clone deep-copies the token set.
func (t DesignTokens) Clone() DesignTokens {
	return DesignTokens{
		Colors:     t.Colors.Clone(),
		Typography: t.Typography.Clone(),
		Spacing:    t.Spacing.Clone(),
		Borders:    t.Borders.Clone(),
		Shadows:    t.Shadows.Clone(),
	}
}

// IsZero reports whether no category holds any entries.
func (t DesignTokens) IsZero() bool {
	return len(t.Colors) == 0 &&
		len(t.Typography) == 0 &&
		len(t.Spacing) == 0 &&
		len(t.Borders) == 0 &&
		len(t.Shadows) == 0
}
