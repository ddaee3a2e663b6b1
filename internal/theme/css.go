package theme

import (
	"strings"
	"unicode"
)

// CSSVariable is one flattened design token: a custom-property name (without
// the leading dashes) and its literal value.
type CSSVariable struct {
	Name  string
	Value string
}

// Category normalization is a fixed table, not inferred:
//
//	colors.*      -> color-*
//	typography.*  -> the category segment is dropped and the child key is
//	                 kebab-cased (fontSize.sm -> font-size-sm)
//	spacing.*     -> spacing-*
//	borders.*     -> border-*
//	shadows.*     -> shadow-*
//
// Key path segments below the category are kebab-cased and joined with
// hyphens.
type category struct {
	key        string
	prefix     string
	dropPrefix bool
}

var categories = []category{
	{key: "colors", prefix: "color"},
	{key: "typography", dropPrefix: true},
	{key: "spacing", prefix: "spacing"},
	{key: "borders", prefix: "border"},
	{key: "shadows", prefix: "shadow"},
}

// CSSVariables flattens the token tree into an ordered flat variable list.
// Traversal follows category order then entry insertion order, so the output
// is byte-identical across calls for the same token set. Leaves holding an
// empty value are skipped entirely rather than emitted as partial
// declarations.
func CSSVariables(tokens DesignTokens) []CSSVariable {
	var out []CSSVariable
	for _, cat := range categories {
		group := tokens.category(cat.key)
		prefix := cat.prefix
		if cat.dropPrefix {
			prefix = ""
		}
		out = appendGroup(out, prefix, group)
	}
	return out
}

func (t DesignTokens) category(key string) TokenGroup {
	switch key {
	case "colors":
		return t.Colors
	case "typography":
		return t.Typography
	case "spacing":
		return t.Spacing
	case "borders":
		return t.Borders
	case "shadows":
		return t.Shadows
	}
	return nil
}

func appendGroup(out []CSSVariable, prefix string, group TokenGroup) []CSSVariable {
	for _, e := range group {
		name := kebabCase(e.Key)
		if prefix != "" {
			name = prefix + "-" + name
		}
		if e.Value.IsLeaf() {
			if e.Value.Literal == "" {
				continue
			}
			out = append(out, CSSVariable{Name: name, Value: e.Value.Literal})
			continue
		}
		out = appendGroup(out, name, e.Value.Children)
	}
	return out
}

// CSSString renders the flattened variables as a :root rule, one declaration
// per line, in the same stable order as CSSVariables.
func CSSString(tokens DesignTokens) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, v := range CSSVariables(tokens) {
		sb.WriteString("  --")
		sb.WriteString(v.Name)
		sb.WriteString(": ")
		sb.WriteString(v.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// kebabCase lowers camelCase segments into hyphenated form: fontFamily ->
// font-family. Numeric and already-lowercase keys pass through unchanged.
func kebabCase(key string) string {
	var sb strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
