package compositor

import (
	"strings"

	"github.com/deckforge/deckforge/internal/layout"
	"github.com/deckforge/deckforge/internal/logger"
	"github.com/deckforge/deckforge/internal/render"
	"github.com/deckforge/deckforge/internal/theme"
)

// Compositor owns one token registry, one layout registry, one component
// registry and one style injector for a presentation session. It is the
// explicit replacement for ambient global registries: construct one per
// application or test, pass it by reference, and Reset it at teardown.
type Compositor struct {
	log        *logger.Logger
	tokens     *theme.Registry
	layouts    *layout.Registry
	components *render.Registry
	sink       *layout.MemorySink
	injector   *layout.Injector
}

// Option configures a Compositor at construction time.
type Option func(*Compositor)

// WithLogger attaches a logger; the default discards diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(c *Compositor) {
		c.log = log
	}
}

// New constructs an empty Compositor.
func New(opts ...Option) *Compositor {
	sink := layout.NewMemorySink()
	c := &Compositor{
		log:        logger.Nop(),
		tokens:     theme.NewRegistry(),
		layouts:    layout.NewRegistry(),
		components: render.NewRegistry(),
		sink:       sink,
		injector:   layout.NewInjector(sink),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("compositor")
	return c
}

// Tokens exposes the session's token registry.
func (c *Compositor) Tokens() *theme.Registry { return c.tokens }

// Layouts exposes the session's layout registry.
func (c *Compositor) Layouts() *layout.Registry { return c.layouts }

// Components exposes the session's component registry.
func (c *Compositor) Components() *render.Registry { return c.components }

// RegisterBuiltins registers the system-tier layout set.
func (c *Compositor) RegisterBuiltins() {
	for _, def := range layout.Builtin() {
		c.layouts.Register(def.Name, def)
	}
	c.log.Debug("registered built-in system layouts")
}

// UseTheme activates a theme: its tokens replace the current set and its
// layouts are registered at the theme tier.
func (c *Compositor) UseTheme(t *theme.Theme) {
	c.tokens.Register(t.Tokens())
	for _, def := range t.Layouts() {
		if !def.Source.Valid() {
			def.Source = layout.SourceTheme
		}
		c.layouts.Register(def.Name, def)
	}
	c.log.WithFields(map[string]any{"theme": t.Name()}).Info("theme activated")
}

// RegisterDeckLayout registers a per-presentation layout. An untagged
// definition is stamped with the deck tier so it outranks same-priority
// theme and system definitions.
func (c *Compositor) RegisterDeckLayout(def layout.Definition) {
	if !def.Source.Valid() {
		def.Source = layout.SourceDeck
	}
	c.layouts.Register(def.Name, def)
	c.log.WithFields(map[string]any{"layout": def.Name, "source": string(def.Source)}).Debug("deck layout registered")
}

// UseLayout resolves the effective definition for name and injects its custom
// styles. The boolean mirrors the registry lookup: false means the name was
// never registered.
func (c *Compositor) UseLayout(name string) (layout.Definition, bool) {
	def, ok := c.layouts.Get(name)
	if !ok {
		return layout.Definition{}, false
	}
	if c.injector.Inject(def) {
		c.log.WithFields(map[string]any{"layout": name}).Debug("layout styles injected")
	}
	return def, true
}

// InjectAll resolves and injects every registered layout, in name order.
func (c *Compositor) InjectAll() {
	for _, name := range c.layouts.Names() {
		c.UseLayout(name)
	}
}

// Stylesheet composes the render-time stylesheet: the token variables as a
// :root rule followed by every injected layout's custom styles in injection
// order. It fails when no token set has been registered.
func (c *Compositor) Stylesheet() (string, error) {
	tokens, err := c.tokens.Tokens()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(theme.CSSString(tokens))
	sb.WriteString("\n")
	if layoutCSS := c.sink.CSS(); layoutCSS != "" {
		sb.WriteString("\n")
		sb.WriteString(layoutCSS)
	}
	return sb.String(), nil
}

// RenderBlocks renders content blocks in order, one markup fragment per line.
func (c *Compositor) RenderBlocks(blocks []render.Block) (string, error) {
	fragments := make([]string, 0, len(blocks))
	for _, b := range blocks {
		html, err := c.components.Render(b)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, html)
	}
	return strings.Join(fragments, "\n"), nil
}

// Reset drops all registered state: tokens, layout entries, custom renderers
// and the style-injection cache. The compositor is reusable afterwards.
func (c *Compositor) Reset() {
	c.tokens.Clear()
	c.layouts.Clear()
	c.components.Clear()
	c.injector.Reset()
	c.sink.Clear()
	c.log.Debug("compositor reset")
}
