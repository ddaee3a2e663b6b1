package render

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEscapeHTMLFiveEntityTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&amp;", EscapeHTML("&"))
	assert.Equal(t, "&lt;", EscapeHTML("<"))
	assert.Equal(t, "&gt;", EscapeHTML(">"))
	assert.Equal(t, "&quot;", EscapeHTML(`"`))
	assert.Equal(t, "&#039;", EscapeHTML("'"))

	// a pre-existing entity is escaped once, not twice
	assert.Equal(t, "&amp;lt;", EscapeHTML("&lt;"))
}

func TestEscapeHTMLLeavesNoRawMetacharacters(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		escaped := EscapeHTML(input)
		for _, forbidden := range []string{"<", ">", `"`, "'"} {
			if strings.Contains(escaped, forbidden) {
				rt.Fatalf("escaped output contains raw %q: %q", forbidden, escaped)
			}
		}
	})
}

func TestRenderCodeBlockEscapesScriptTags(t *testing.T) {
	t.Parallel()

	html := RenderCodeBlock(CodeBlock{
		Language: "html",
		Code:     `<script>alert("x")</script>`,
	})

	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&quot;x&quot;")
}

func TestRenderCodeBlockContainerAttributes(t *testing.T) {
	t.Parallel()

	html := RenderCodeBlock(CodeBlock{
		Language:  "go",
		Code:      "package main",
		ID:        "intro-snippet",
		ClassName: "slide-code",
	})

	assert.Contains(t, html, `class="code-block language-go slide-code"`)
	assert.Contains(t, html, `id="intro-snippet"`)
	assert.Contains(t, html, `<span class="code-block-language">go</span>`)
	assert.Contains(t, html, `<code class="language-go">`)
}

func TestRenderCodeBlockLineNumbers(t *testing.T) {
	t.Parallel()

	code := "one\ntwo\nthree\nfour\nfive"
	html := RenderCodeBlock(CodeBlock{Language: "go", Code: code, ShowLineNumbers: true})

	numbers := regexp.MustCompile(`<span class="code-line-number">(\d+)</span>`).FindAllStringSubmatch(html, -1)
	require.Len(t, numbers, 5)
	for i, m := range numbers {
		assert.Equal(t, fmt.Sprintf("%d", i+1), m[1])
	}
	assert.NotContains(t, html, `<span class="code-line-number">6</span>`)
}

func TestRenderCodeBlockWithoutLineNumbers(t *testing.T) {
	t.Parallel()

	html := RenderCodeBlock(CodeBlock{Language: "go", Code: "one\ntwo"})
	assert.NotContains(t, html, "code-line-number")
	assert.Contains(t, html, "one\ntwo")
}

func TestRenderCodeBlockHighlighting(t *testing.T) {
	t.Parallel()

	code := "a\nb\nc\nd"
	html := RenderCodeBlock(CodeBlock{
		Language:        "go",
		Code:            code,
		ShowLineNumbers: true,
		HighlightLines:  []int{2, 4},
	})

	assert.Equal(t, 2, strings.Count(html, "code-line-highlight"))
}

func TestRenderCodeBlockHighlightingWithoutNumbering(t *testing.T) {
	t.Parallel()

	// highlighting is evaluated independently of line numbers
	html := RenderCodeBlock(CodeBlock{
		Language:       "go",
		Code:           "a\nb\nc",
		HighlightLines: []int{2},
	})

	assert.Equal(t, 1, strings.Count(html, "code-line-highlight"))
	assert.NotContains(t, html, "code-line-number")
}

func TestRenderCodeBlockIgnoresOutOfRangeHighlights(t *testing.T) {
	t.Parallel()

	html := RenderCodeBlock(CodeBlock{
		Language:        "go",
		Code:            "a\nb",
		ShowLineNumbers: true,
		HighlightLines:  []int{0, 2, 99},
	})

	assert.Equal(t, 1, strings.Count(html, "code-line-highlight"))
}

func TestRenderCodeBlockCaption(t *testing.T) {
	t.Parallel()

	withCaption := RenderCodeBlock(CodeBlock{Language: "go", Code: "x", Caption: `a "quoted" caption`})
	assert.Contains(t, withCaption, `<div class="code-block-caption">a &quot;quoted&quot; caption</div>`)

	withoutCaption := RenderCodeBlock(CodeBlock{Language: "go", Code: "x"})
	assert.NotContains(t, withoutCaption, "code-block-caption")
}

func TestRenderCodeBlockCopyButtonAttributeSafety(t *testing.T) {
	t.Parallel()

	html := RenderCodeBlock(CodeBlock{
		Language:       "go",
		Code:           `fmt.Println("hi")`,
		ShowCopyButton: true,
	})

	attr := regexp.MustCompile(`data-code="([^"]*)"`).FindStringSubmatch(html)
	require.NotNil(t, attr, "copy button must carry the code in data-code")
	assert.Contains(t, attr[1], "&quot;hi&quot;")
	assert.NotContains(t, attr[1], `"`)

	withoutButton := RenderCodeBlock(CodeBlock{Language: "go", Code: "x"})
	assert.NotContains(t, withoutButton, "code-block-copy")
}

func TestRenderCodeBlockEmptyCode(t *testing.T) {
	t.Parallel()

	html := RenderCodeBlock(CodeBlock{Language: "go", Code: ""})
	assert.Contains(t, html, `<code class="language-go"></code>`)
}

func TestRenderTextBlockEscapes(t *testing.T) {
	t.Parallel()

	html := RenderTextBlock(TextBlock{Text: "a < b", ID: "note", ClassName: "lede"})
	assert.Equal(t, `<p class="text-block lede" id="note">a &lt; b</p>`, html)
}
