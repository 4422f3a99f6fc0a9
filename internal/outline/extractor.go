package outline

import "math"

// ExtractorConfig configures span extraction behavior.
type ExtractorConfig struct {
	BandLow  float64 // Lower vertical band fraction of page height
	BandHigh float64 // Upper vertical band fraction of page height
}

// DefaultExtractorConfig returns default configuration. The default band
// keeps spans whose top edge lies between 10% and 90% of the page height,
// suppressing running headers and footers.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		BandLow:  0.1,
		BandHigh: 0.9,
	}
}

// SpanExtractor filters and normalizes the raw spans delivered by the
// PDF-parsing collaborator.
type SpanExtractor struct {
	config ExtractorConfig
}

// NewSpanExtractor creates a span extractor with default configuration.
func NewSpanExtractor() *SpanExtractor {
	return &SpanExtractor{config: DefaultExtractorConfig()}
}

// NewSpanExtractorWithConfig creates a span extractor with custom configuration.
func NewSpanExtractorWithConfig(config ExtractorConfig) *SpanExtractor {
	return &SpanExtractor{config: config}
}

// ExtractPage walks a page's block -> line -> span structure and emits one
// Span per retained raw span, tagged with the owning page's 0-based index.
// Spans whose top-edge y falls outside the vertical band are discarded, as
// are spans whose text is empty after normalization.
func (e *SpanExtractor) ExtractPage(page Page, pageIndex int) []Span {
	var spans []Span

	low := e.config.BandLow * page.Height
	high := e.config.BandHigh * page.Height

	for _, block := range page.Blocks {
		for _, line := range block.Lines {
			for _, raw := range line.Spans {
				topY := raw.BBox[1]
				if topY < low || topY > high {
					continue
				}

				script := ClassifyScript(raw.Text)
				text := NormalizeText(raw.Text, script)
				if text == "" {
					continue
				}

				spans = append(spans, Span{
					Text:       text,
					Size:       roundSize(raw.Size),
					Page:       pageIndex,
					Script:     script,
					FontName:   raw.FontName,
					StyleFlags: raw.StyleFlags,
				})
			}
		}
	}

	return spans
}

// ExtractDocument extracts spans from every page in document order.
func (e *SpanExtractor) ExtractDocument(pages []Page) []Span {
	var spans []Span
	for i, page := range pages {
		spans = append(spans, e.ExtractPage(page, i)...)
	}
	return spans
}

// roundSize rounds a font size to one decimal place, the precision used
// throughout clustering and level assignment.
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}
