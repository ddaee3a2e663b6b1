package render

// Built-in block kinds. Custom kinds registered at runtime use their own tags.
const (
	KindCode = "code"
	KindText = "text"
)

// Block is a tagged piece of slide content. Dispatch happens purely on the
// kind tag; the concrete shape carries the renderer's input.
type Block interface {
	Kind() string
}

// CodeBlock is the input to the code-block renderer.
type CodeBlock struct {
	Language        string
	Code            string
	ID              string
	ClassName       string
	ShowLineNumbers bool
	HighlightLines  []int
	Caption         string
	ShowCopyButton  bool
}

// Kind returns the code tag.
func (CodeBlock) Kind() string { return KindCode }

// TextBlock is a plain escaped paragraph of slide text.
type TextBlock struct {
	Text      string
	ID        string
	ClassName string
}

// Kind returns the text tag.
func (TextBlock) Kind() string { return KindText }

// RawBlock carries a custom block kind with free-form fields for renderers
// registered through the extension table.
type RawBlock struct {
	Type   string
	Fields map[string]any
}

// Kind returns the custom tag.
func (b RawBlock) Kind() string { return b.Type }
