package render

import "strings"

// RenderTextBlock renders a plain paragraph block with its text escaped.
func RenderTextBlock(b TextBlock) string {
	var sb strings.Builder
	sb.WriteString(`<p class="text-block`)
	if b.ClassName != "" {
		sb.WriteString(" " + EscapeHTML(b.ClassName))
	}
	sb.WriteString(`"`)
	if b.ID != "" {
		sb.WriteString(` id="` + EscapeHTML(b.ID) + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(EscapeHTML(b.Text))
	sb.WriteString("</p>")
	return sb.String()
}
