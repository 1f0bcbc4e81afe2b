package slides

// FallbackTitle is used when a slide section has a header but no
// extractable title, so slide numbering downstream stays stable.
const FallbackTitle = "Untitled Slide"

// Record is one parsed slide: a display title, its bullet points in
// display order, and the narration script once resolved.
type Record struct {
	Title   string
	Bullets []string
	Script  string
}

// HasScript reports whether narration was already embedded in the
// generated content, in which case the resolver skips generation.
func (r Record) HasScript() bool {
	return r.Script != ""
}
