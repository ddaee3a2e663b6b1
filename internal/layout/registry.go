package layout

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

type entry struct {
	def      Definition
	source   Source
	priority int
	seq      uint64
}

// wins reports whether e beats other under the resolution rule:
// highest priority, then source tier (deck > theme > system), then the most
// recent registration. The sequence tie-break lets a deck intentionally
// re-register and override its own earlier registration.
func (e entry) wins(other entry) bool {
	if e.priority != other.priority {
		return e.priority > other.priority
	}
	if e.source.Rank() != other.source.Rank() {
		return e.source.Rank() > other.source.Rank()
	}
	return e.seq > other.seq
}

// Registry accumulates layout definitions keyed by name. Every registration
// is kept; Get resolves the effective definition on demand, so the same name
// can be registered by the system tier, a theme, and a deck without any of
// them clobbering the others.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]entry
	seq     uint64
}

// NewRegistry returns an empty layout registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]entry)}
}

// Register appends the definition under name. A missing source tag is treated
// as the system tier and a missing priority as zero, the lowest-precedence
// defaults. Registration never fails; conflicts are resolved at lookup time.
func (r *Registry) Register(name string, def Definition) {
	source := def.Source
	if !source.Valid() {
		source = SourceSystem
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	def.Source = source
	r.entries[name] = append(r.entries[name], entry{
		def:      def.Clone(),
		source:   source,
		priority: def.Priority,
		seq:      r.seq,
	})
}

// Get resolves the effective definition for name. The second return value is
// false if the name was never registered; that is a lookup miss, not an
// error. Resolution is pure: repeated calls without new registrations return
// an identical definition.
func (r *Registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entries[name]
	if len(entries) == 0 {
		return Definition{}, false
	}

	best := lo.MaxBy(entries, func(a, b entry) bool { return a.wins(b) })
	return best.def.Clone(), true
}

// History returns every registered definition for name in registration order.
// Useful for diagnostics; rendering code should use Get.
func (r *Registry) History(name string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.entries[name]
	out := make([]Definition, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.def.Clone())
	}
	return out
}

// Names returns all registered layout names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.entries)
	sort.Strings(names)
	return names
}

// Clear drops all entries and resets the registration counter.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string][]entry)
	r.seq = 0
}
