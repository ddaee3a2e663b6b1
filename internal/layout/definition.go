package layout

// Source identifies the origin tier of a layout definition. It is used as a
// precedence signal when several definitions share a name.
type Source string

const (
	// SourceSystem marks built-in layouts shipped with the engine.
	SourceSystem Source = "system"
	// SourceTheme marks layouts contributed by a brand theme.
	SourceTheme Source = "theme"
	// SourceDeck marks per-presentation layouts.
	SourceDeck Source = "deck"
)

// Rank orders source tiers for conflict resolution: deck > theme > system.
// Unknown or empty sources collapse to the system tier.
func (s Source) Rank() int {
	switch s {
	case SourceDeck:
		return 2
	case SourceTheme:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the source names a known tier.
func (s Source) Valid() bool {
	switch s {
	case SourceSystem, SourceTheme, SourceDeck:
		return true
	}
	return false
}

// Zone is a named placement slot within a layout that content is routed into.
type Zone struct {
	Name        string
	GridArea    string
	Description string
}

// Definition describes a slide layout: its zones, the CSS grid template
// strings that place them, and an optional pre-scoped style block.
// Definitions are immutable once built; treat them as values.
type Definition struct {
	Name                string
	Description         string
	Zones               []Zone
	GridTemplateAreas   string
	GridTemplateColumns string
	GridTemplateRows    string
	CustomStyles        string
	Source              Source
	Priority            int
}

// Zone returns the zone with the given name, if declared.
func (d Definition) Zone(name string) (Zone, bool) {
	for _, z := range d.Zones {
		if z.Name == name {
			return z, true
		}
	}
	return Zone{}, false
}

// Clone returns a deep copy so callers cannot mutate shared zone slices.
func (d Definition) Clone() Definition {
	out := d
	if d.Zones != nil {
		out.Zones = make([]Zone, len(d.Zones))
		copy(out.Zones, d.Zones)
	}
	return out
}
