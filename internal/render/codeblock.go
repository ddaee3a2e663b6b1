package render

import (
	"strconv"
	"strings"
)

// RenderCodeBlock renders a code block to HTML. All author-supplied text is
// escaped; the copy affordance embeds the escaped code a second time inside a
// double-quoted attribute, so the attribute value can never contain a raw
// quote. Empty code is valid and renders a container with an empty code
// element.
func RenderCodeBlock(b CodeBlock) string {
	language := EscapeHTML(b.Language)
	escaped := EscapeHTML(b.Code)

	var sb strings.Builder
	sb.WriteString(`<div class="code-block language-` + language)
	if b.ClassName != "" {
		sb.WriteString(" " + EscapeHTML(b.ClassName))
	}
	sb.WriteString(`"`)
	if b.ID != "" {
		sb.WriteString(` id="` + EscapeHTML(b.ID) + `"`)
	}
	sb.WriteString(">")

	sb.WriteString(`<div class="code-block-header">`)
	sb.WriteString(`<span class="code-block-language">` + language + `</span>`)
	if b.ShowCopyButton {
		sb.WriteString(`<button type="button" class="code-block-copy" data-code="` + escaped + `">Copy</button>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<pre><code class="language-` + language + `">`)
	if b.ShowLineNumbers || len(b.HighlightLines) > 0 {
		writeLines(&sb, escaped, b.ShowLineNumbers, b.HighlightLines)
	} else {
		sb.WriteString(escaped)
	}
	sb.WriteString(`</code></pre>`)

	if b.Caption != "" {
		sb.WriteString(`<div class="code-block-caption">` + EscapeHTML(b.Caption) + `</div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

// writeLines splits escaped code strictly on newline boundaries, without
// trimming, and emits one span per 1-based line. Numbering and highlighting
// are evaluated independently: either can be requested on its own.
func writeLines(sb *strings.Builder, escaped string, numbered bool, highlightLines []int) {
	highlighted := make(map[int]struct{}, len(highlightLines))
	for _, n := range highlightLines {
		highlighted[n] = struct{}{}
	}

	lines := strings.Split(escaped, "\n")
	for i, line := range lines {
		number := i + 1
		class := "code-line"
		if _, ok := highlighted[number]; ok {
			class += " code-line-highlight"
		}
		sb.WriteString(`<span class="` + class + `">`)
		if numbered {
			sb.WriteString(`<span class="code-line-number">` + strconv.Itoa(number) + `</span>`)
		}
		sb.WriteString(`<span class="code-line-content">` + line + `</span>`)
		sb.WriteString(`</span>`)
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
}
