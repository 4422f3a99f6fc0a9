package outline

// ScriptKind is a coarse writing-system classification used to select
// heading heuristics. It is derived per span by majority vote over the
// span's characters.
type ScriptKind int

const (
	ScriptLatin ScriptKind = iota
	ScriptCJK
	ScriptArabic
	ScriptDevanagari
	ScriptCyrillic

	scriptCount
)

// String returns the script name for logging and debugging.
func (s ScriptKind) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptCJK:
		return "cjk"
	case ScriptArabic:
		return "arabic"
	case ScriptDevanagari:
		return "devanagari"
	case ScriptCyrillic:
		return "cyrillic"
	default:
		return "unknown"
	}
}

// Span is a run of text sharing one font size and style, as reported by
// the PDF-parsing collaborator. Text is non-empty and whitespace-normalized;
// Size is the nominal font size in points, rounded to one decimal place.
// Page is the 0-based page index.
type Span struct {
	Text       string
	Size       float64
	Page       int
	Script     ScriptKind
	FontName   string
	StyleFlags int
}

// Style flag bits carried on a Span.
const (
	StyleBold   = 1 << 0
	StyleItalic = 1 << 1
)

// SizeGroup is an ordered cluster of font sizes treated as one heading tier.
// Sizes[0] is the anchor: membership is decided by absolute difference from
// the anchor, and groups are ordered descending by anchor size.
type SizeGroup struct {
	Sizes []float64
}

// Anchor returns the group's first-inserted member.
func (g SizeGroup) Anchor() float64 {
	return g.Sizes[0]
}

// LevelMap assigns heading labels ("H1".."H4") to font sizes. Sizes in
// groups beyond the fourth are absent and can never become headings.
type LevelMap map[float64]string

// Level returns the heading label for a size, or "" when the size carries
// no level.
func (m LevelMap) Level(size float64) string {
	return m[size]
}

// OutlineEntry is a single heading in the inferred outline. Page is 1-based
// in the output contract.
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// UntitledSentinel is the title used when no candidate span is found.
const UntitledSentinel = "Untitled"

// DocumentResult is the inferred outline for one document.
type DocumentResult struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// RawSpan is a span as delivered by the PDF-parsing collaborator, before
// normalization. BBox holds x0, y0, x1, y1 with y0 the top edge measured
// from the top of the page.
type RawSpan struct {
	Text       string
	BBox       [4]float64
	Size       float64
	FontName   string
	StyleFlags int
}

// Line groups the spans of one text line.
type Line struct {
	Spans []RawSpan
}

// Block groups the lines of one text block.
type Block struct {
	Lines []Line
}

// Page is the per-page input contract from the PDF-parsing collaborator:
// the page height in points and a block -> line -> span text structure.
type Page struct {
	Height float64
	Blocks []Block
}
