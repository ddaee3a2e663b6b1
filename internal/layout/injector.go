package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// Sink receives materialized layout styles. The document-level stylesheet
// store of the embedding runtime is the canonical implementation; MemorySink
// covers tests and offline stylesheet composition.
type Sink interface {
	Set(name, css string)
	Remove(name string)
}

// Injector materializes a resolved layout's custom styles into a Sink at most
// once per distinct effective definition. Because the registry can resolve a
// different definition for the same name after new registrations, injection
// is keyed by (name, content fingerprint): an unchanged definition is a
// no-op, a changed one replaces the previously injected content.
type Injector struct {
	mu       sync.Mutex
	sink     Sink
	injected map[string]string
}

// NewInjector returns an Injector writing into sink.
func NewInjector(sink Sink) *Injector {
	return &Injector{
		sink:     sink,
		injected: make(map[string]string),
	}
}

// Inject ensures def's custom styles are present in the sink. It returns true
// when the sink was updated and false when the call was a no-op. A definition
// with empty custom styles removes whatever was previously injected under its
// name.
func (i *Injector) Inject(def Definition) bool {
	fp := fingerprint(def.CustomStyles)

	i.mu.Lock()
	defer i.mu.Unlock()

	prev, seen := i.injected[def.Name]
	if seen && prev == fp {
		return false
	}
	i.injected[def.Name] = fp

	if def.CustomStyles == "" {
		if seen {
			i.sink.Remove(def.Name)
			return true
		}
		return false
	}

	i.sink.Set(def.Name, def.CustomStyles)
	return true
}

// Reset forgets all injection bookkeeping. The sink is left untouched;
// callers owning both typically reset them together.
func (i *Injector) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.injected = make(map[string]string)
}

func fingerprint(css string) string {
	sum := sha256.Sum256([]byte(css))
	return hex.EncodeToString(sum[:])
}

// MemorySink is an in-memory Sink preserving first-insertion order, so the
// composed stylesheet is reproducible across runs.
type MemorySink struct {
	mu     sync.RWMutex
	order  []string
	styles map[string]string
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{styles: make(map[string]string)}
}

// Set stores css under name. Overwriting keeps the original position.
func (s *MemorySink) Set(name, css string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.styles[name]; !exists {
		s.order = append(s.order, name)
	}
	s.styles[name] = css
}

// Remove drops the entry for name, if present.
func (s *MemorySink) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.styles[name]; !exists {
		return
	}
	delete(s.styles, name)
	for idx, n := range s.order {
		if n == name {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			break
		}
	}
}

// Get returns the stored css for name.
func (s *MemorySink) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	css, ok := s.styles[name]
	return css, ok
}

// Len reports how many entries the sink holds.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.styles)
}

// CSS concatenates all stored style blocks in insertion order.
func (s *MemorySink) CSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	for _, name := range s.order {
		sb.WriteString(s.styles[name])
		sb.WriteString("\n")
	}
	return sb.String()
}

// Clear drops every entry.
func (s *MemorySink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.styles = make(map[string]string)
}
