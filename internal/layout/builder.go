package layout

import (
	deckerrors "github.com/deckforge/deckforge/pkg/errors"
)

// Builder assembles a layout Definition from a mutable draft. Zone names are
// validated eagerly as they are added; Build freezes the draft into an
// independent Definition value, so later builder calls cannot mutate a
// previously built result.
type Builder struct {
	draft     Definition
	zoneNames map[string]struct{}
}

// NewBuilder starts a layout draft with the given name and description.
func NewBuilder(name, description string) *Builder {
	return &Builder{
		draft: Definition{
			Name:        name,
			Description: description,
			Source:      SourceSystem,
		},
		zoneNames: make(map[string]struct{}),
	}
}

// AddZone appends a zone to the draft. Adding a zone whose name collides with
// an already-added zone fails immediately with a DuplicateZoneError.
func (b *Builder) AddZone(name, gridArea, description string) error {
	if _, exists := b.zoneNames[name]; exists {
		return deckerrors.NewDuplicateZoneError(b.draft.Name, name)
	}
	b.zoneNames[name] = struct{}{}
	b.draft.Zones = append(b.draft.Zones, Zone{
		Name:        name,
		GridArea:    gridArea,
		Description: description,
	})
	return nil
}

// SetGridTemplateAreas overwrites the raw grid-template-areas string.
// Calling it twice keeps only the last value.
func (b *Builder) SetGridTemplateAreas(value string) *Builder {
	b.draft.GridTemplateAreas = value
	return b
}

// SetGridTemplateColumns overwrites the raw grid-template-columns string.
func (b *Builder) SetGridTemplateColumns(value string) *Builder {
	b.draft.GridTemplateColumns = value
	return b
}

// SetGridTemplateRows overwrites the raw grid-template-rows string.
func (b *Builder) SetGridTemplateRows(value string) *Builder {
	b.draft.GridTemplateRows = value
	return b
}

// SetCustomStyles replaces the entire style block outright on each call.
// The text is trusted, pre-scoped CSS; no validation or rewriting happens.
func (b *Builder) SetCustomStyles(css string) *Builder {
	b.draft.CustomStyles = css
	return b
}

// SetSource tags the draft with its origin tier.
func (b *Builder) SetSource(source Source) *Builder {
	b.draft.Source = source
	return b
}

// SetPriority sets the numeric override strength used during resolution.
func (b *Builder) SetPriority(priority int) *Builder {
	b.draft.Priority = priority
	return b
}

// Build freezes the draft into an immutable Definition snapshot. The returned
// value shares no state with the builder. Zone-name to grid-area consistency
// is not checked here; authored manifests are cross-checked at parse time.
func (b *Builder) Build() Definition {
	return b.draft.Clone()
}
