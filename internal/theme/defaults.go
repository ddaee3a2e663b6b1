package theme

// DefaultTokens returns the built-in token set. Themes extend it by cloning
// and overriding individual keys rather than rebuilding categories from
// scratch.
func DefaultTokens() DesignTokens {
	return DesignTokens{
		Colors: TokenGroup{
			Leaf("primary", "#3b82f6"),
			Leaf("secondary", "#a855f7"),
			Leaf("accent", "#facc15"),
			Leaf("success", "#22c55e"),
			Leaf("warning", "#eab308"),
			Leaf("danger", "#ef4444"),
			Leaf("info", "#06b6d4"),
			Nested("surface",
				Leaf("base", "#f9fafb"),
				Leaf("muted", "#e2e8f0"),
				Leaf("inverted", "#111827"),
			),
			Nested("text",
				Leaf("base", "#111827"),
				Leaf("muted", "#64748b"),
				Leaf("inverted", "#f9fafb"),
			),
		},
		Typography: TokenGroup{
			Nested("fontFamily",
				Leaf("sans", `"Inter", "Helvetica Neue", sans-serif`),
				Leaf("mono", `"JetBrains Mono", "Fira Code", monospace`),
			),
			Nested("fontSize",
				Leaf("xs", "0.75rem"),
				Leaf("sm", "0.875rem"),
				Leaf("base", "1rem"),
				Leaf("lg", "1.25rem"),
				Leaf("xl", "1.5rem"),
				Leaf("2xl", "2rem"),
				Leaf("3xl", "3rem"),
			),
			Nested("fontWeight",
				Leaf("normal", "400"),
				Leaf("medium", "500"),
				Leaf("semibold", "600"),
				Leaf("bold", "700"),
			),
			Nested("lineHeight",
				Leaf("tight", "1.2"),
				Leaf("normal", "1.5"),
				Leaf("relaxed", "1.75"),
			),
		},
		Spacing: TokenGroup{
			Leaf("0", "0"),
			Leaf("1", "0.25rem"),
			Leaf("2", "0.5rem"),
			Leaf("3", "0.75rem"),
			Leaf("4", "1rem"),
			Leaf("6", "1.5rem"),
			Leaf("8", "2rem"),
			Leaf("12", "3rem"),
			Leaf("16", "4rem"),
		},
		Borders: TokenGroup{
			Nested("radius",
				Leaf("sm", "0.125rem"),
				Leaf("md", "0.375rem"),
				Leaf("lg", "0.75rem"),
				Leaf("full", "9999px"),
			),
			Nested("width",
				Leaf("thin", "1px"),
				Leaf("medium", "2px"),
				Leaf("thick", "4px"),
			),
		},
		Shadows: TokenGroup{
			Leaf("sm", "0 1px 2px rgba(15, 23, 42, 0.08)"),
			Leaf("md", "0 4px 6px rgba(15, 23, 42, 0.12)"),
			Leaf("lg", "0 10px 15px rgba(15, 23, 42, 0.18)"),
		},
	}
}
