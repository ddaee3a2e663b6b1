package layout

// Builtin returns the system-tier layouts every presentation can rely on.
// Their custom styles are scoped to the owning layout via the conventional
// [data-layout="<name>"] selector.
func Builtin() []Definition {
	title := NewBuilder("title", "Opening slide with a centered title and subtitle")
	_ = title.AddZone("title", "title", "Main presentation title")
	_ = title.AddZone("subtitle", "subtitle", "Supporting subtitle text")
	title.
		SetGridTemplateAreas(`"title" "subtitle"`).
		SetGridTemplateRows("2fr 1fr").
		SetCustomStyles(`[data-layout="title"] { display: grid; place-items: center; text-align: center; }`)

	content := NewBuilder("content", "Single content area under a heading")
	_ = content.AddZone("heading", "heading", "Slide heading")
	_ = content.AddZone("body", "body", "Main slide content")
	content.
		SetGridTemplateAreas(`"heading" "body"`).
		SetGridTemplateRows("auto 1fr").
		SetCustomStyles(`[data-layout="content"] { display: grid; gap: var(--spacing-4, 1rem); }`)

	twoColumn := NewBuilder("two-column", "Heading over two equal content columns")
	_ = twoColumn.AddZone("heading", "heading", "Slide heading")
	_ = twoColumn.AddZone("left", "left", "Left column")
	_ = twoColumn.AddZone("right", "right", "Right column")
	twoColumn.
		SetGridTemplateAreas(`"heading heading" "left right"`).
		SetGridTemplateColumns("1fr 1fr").
		SetGridTemplateRows("auto 1fr").
		SetCustomStyles(`[data-layout="two-column"] { display: grid; gap: var(--spacing-6, 1.5rem); }`)

	fullBleed := NewBuilder("full-bleed", "Edge-to-edge media with no chrome")
	_ = fullBleed.AddZone("media", "media", "Full-bleed media content")
	fullBleed.
		SetGridTemplateAreas(`"media"`).
		SetCustomStyles(`[data-layout="full-bleed"] { display: grid; padding: 0; }`)

	return []Definition{
		title.Build(),
		content.Build(),
		twoColumn.Build(),
		fullBleed.Build(),
	}
}
