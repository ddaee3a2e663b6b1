package manifest

import (
	"github.com/deckforge/deckforge/internal/layout"
	"github.com/deckforge/deckforge/internal/render"
	"github.com/deckforge/deckforge/internal/theme"
)

// ThemeManifest is the authored YAML shape of a theme: a name, a full token
// set, and optional theme-specific layouts.
type ThemeManifest struct {
	Name    string             `yaml:"name" validate:"required,token_key"`
	Tokens  theme.DesignTokens `yaml:"tokens"`
	Layouts []LayoutManifest   `yaml:"layouts" validate:"dive"`
}

// LayoutManifest is the authored YAML shape of a layout definition.
type LayoutManifest struct {
	Name                string         `yaml:"name" validate:"required,token_key"`
	Description         string         `yaml:"description"`
	Source              string         `yaml:"source" validate:"omitempty,oneof=system theme deck"`
	Priority            int            `yaml:"priority" validate:"gte=0"`
	Zones               []ZoneManifest `yaml:"zones" validate:"required,min=1,dive"`
	GridTemplateAreas   string         `yaml:"gridTemplateAreas"`
	GridTemplateColumns string         `yaml:"gridTemplateColumns"`
	GridTemplateRows    string         `yaml:"gridTemplateRows"`
	CustomStyles        string         `yaml:"customStyles"`
}

// ZoneManifest is the authored YAML shape of a layout zone. An omitted
// gridArea defaults to the zone name.
type ZoneManifest struct {
	Name        string `yaml:"name" validate:"required,token_key"`
	GridArea    string `yaml:"gridArea"`
	Description string `yaml:"description"`
}

// DeckManifest is the authored YAML shape of a presentation's content blocks.
type DeckManifest struct {
	Title          string          `yaml:"title"`
	Theme          string          `yaml:"theme"`
	BlockManifests []BlockManifest `yaml:"blocks" validate:"dive"`
}

// BlockManifest is one tagged content block. Fields irrelevant to the block's
// type are ignored; unrecognized keys are collected for custom renderers.
type BlockManifest struct {
	Type            string         `yaml:"type" validate:"required"`
	Language        string         `yaml:"language"`
	Code            string         `yaml:"code"`
	Text            string         `yaml:"text"`
	ID              string         `yaml:"id"`
	ClassName       string         `yaml:"className"`
	ShowLineNumbers bool           `yaml:"showLineNumbers"`
	HighlightLines  []int          `yaml:"highlightLines"`
	Caption         string         `yaml:"caption"`
	ShowCopyButton  bool           `yaml:"showCopyButton"`
	Extra           map[string]any `yaml:",inline"`
}

// Theme materializes the manifest into a Theme value. Layouts authored inside
// a theme manifest default to the theme tier unless the author explicitly
// tags them otherwise.
func (m *ThemeManifest) Theme() *theme.Theme {
	layouts := make([]layout.Definition, 0, len(m.Layouts))
	for _, lm := range m.Layouts {
		layouts = append(layouts, lm.Definition(layout.SourceTheme))
	}
	return theme.New(m.Name, m.Tokens, layouts...)
}

// Definition materializes the layout manifest, using defaultSource when the
// author left the tier untagged.
func (m *LayoutManifest) Definition(defaultSource layout.Source) layout.Definition {
	source := layout.Source(m.Source)
	if !source.Valid() {
		source = defaultSource
	}

	zones := make([]layout.Zone, 0, len(m.Zones))
	for _, z := range m.Zones {
		gridArea := z.GridArea
		if gridArea == "" {
			gridArea = z.Name
		}
		zones = append(zones, layout.Zone{
			Name:        z.Name,
			GridArea:    gridArea,
			Description: z.Description,
		})
	}

	return layout.Definition{
		Name:                m.Name,
		Description:         m.Description,
		Zones:               zones,
		GridTemplateAreas:   m.GridTemplateAreas,
		GridTemplateColumns: m.GridTemplateColumns,
		GridTemplateRows:    m.GridTemplateRows,
		CustomStyles:        m.CustomStyles,
		Source:              source,
		Priority:            m.Priority,
	}
}

// Blocks materializes the deck's content blocks for rendering. Known types
// map onto built-in blocks; anything else becomes a RawBlock for custom
// renderers.
func (m *DeckManifest) Blocks() []render.Block {
	out := make([]render.Block, 0, len(m.BlockManifests))
	for _, bm := range m.BlockManifests {
		switch bm.Type {
		case render.KindCode:
			out = append(out, render.CodeBlock{
				Language:        bm.Language,
				Code:            bm.Code,
				ID:              bm.ID,
				ClassName:       bm.ClassName,
				ShowLineNumbers: bm.ShowLineNumbers,
				HighlightLines:  bm.HighlightLines,
				Caption:         bm.Caption,
				ShowCopyButton:  bm.ShowCopyButton,
			})
		case render.KindText:
			out = append(out, render.TextBlock{
				Text:      bm.Text,
				ID:        bm.ID,
				ClassName: bm.ClassName,
			})
		default:
			out = append(out, render.RawBlock{Type: bm.Type, Fields: bm.Extra})
		}
	}
	return out
}
