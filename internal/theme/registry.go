package theme

import (
	"sync"

	deckerrors "github.com/deckforge/deckforge/pkg/errors"
)

// Registry holds the single currently-active design-token set. Registering a
// new set is a full overwrite, never a merge: whatever was registered before
// is discarded.
type Registry struct {
	mu          sync.RWMutex
	tokens      DesignTokens
	initialized bool
}

// NewRegistry returns an uninitialized token registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register replaces the entire current token set.
func (r *Registry) Register(tokens DesignTokens) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens = tokens.Clone()
	r.initialized = true
}

// Tokens returns the current set, or a NotInitializedError if nothing has
// been registered.
func (r *Registry) Tokens() (DesignTokens, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return DesignTokens{}, deckerrors.NewNotInitializedError("token")
	}
	return r.tokens.Clone(), nil
}

// HasTokens reports whether a set is registered. It never fails.
func (r *Registry) HasTokens() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initialized
}

// Clear drops the current set, returning the registry to uninitialized.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens = DesignTokens{}
	r.initialized = false
}
