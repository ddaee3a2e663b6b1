package render

import (
	"sync"

	deckerrors "github.com/deckforge/deckforge/pkg/errors"
)

// Renderer is a pure function from block data to markup text.
type Renderer func(Block) (string, error)

// Registry maps content-type tags to renderers. Built-in kinds are handled by
// an exhaustive switch in Render; the table is the open extension point for
// user-registered kinds. Registering a built-in kind overrides it, since the
// last registration always wins.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns a registry with no custom renderers.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register stores or overwrites the renderer for a block kind. Overwriting is
// not an error; the last registration wins.
func (r *Registry) Register(kind string, fn Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[kind] = fn
}

// HasRenderer reports whether kind resolves to a renderer, either registered
// or built in.
func (r *Registry) HasRenderer(kind string) bool {
	r.mu.RLock()
	_, registered := r.renderers[kind]
	r.mu.RUnlock()
	if registered {
		return true
	}
	return kind == KindCode || kind == KindText
}

// Renderer returns the registered renderer for kind, failing with a
// RendererNotFoundError when absent. Built-in kinds are not in the table;
// dispatch through Render to reach them.
func (r *Registry) Renderer(kind string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.renderers[kind]
	if !ok {
		return nil, deckerrors.NewRendererNotFoundError(kind)
	}
	return fn, nil
}

// Render dispatches a block to its renderer. A registered renderer for the
// block's kind takes precedence, then the built-in kinds are handled
// exhaustively, and anything left is a RendererNotFoundError.
func (r *Registry) Render(b Block) (string, error) {
	r.mu.RLock()
	fn, registered := r.renderers[b.Kind()]
	r.mu.RUnlock()
	if registered {
		return fn(b)
	}

	switch blk := b.(type) {
	case CodeBlock:
		return RenderCodeBlock(blk), nil
	case TextBlock:
		return RenderTextBlock(blk), nil
	}

	return "", deckerrors.NewRendererNotFoundError(b.Kind())
}

// Clear drops all registered renderers. Built-in kinds keep working; this is
// the reset boundary between independent uses.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers = make(map[string]Renderer)
}
