package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageWithSpans(height float64, spans ...RawSpan) Page {
	return Page{
		Height: height,
		Blocks: []Block{{Lines: []Line{{Spans: spans}}}},
	}
}

func TestSpanExtractor_ExtractPage(t *testing.T) {
	extractor := NewSpanExtractor()

	page := pageWithSpans(1000,
		RawSpan{Text: "Running header", BBox: [4]float64{50, 20, 200, 32}, Size: 10.0},
		RawSpan{Text: "Report Title", BBox: [4]float64{50, 150, 400, 174}, Size: 24.0, FontName: "Helvetica-Bold", StyleFlags: StyleBold},
		RawSpan{Text: "   ", BBox: [4]float64{50, 300, 60, 312}, Size: 12.0},
		RawSpan{Text: "Body  text", BBox: [4]float64{50, 400, 300, 412}, Size: 12.04},
		RawSpan{Text: "Page footer", BBox: [4]float64{50, 950, 200, 962}, Size: 10.0},
	)

	spans := extractor.ExtractPage(page, 3)
	require.Len(t, spans, 2)

	assert.Equal(t, "Report Title", spans[0].Text)
	assert.Equal(t, 24.0, spans[0].Size)
	assert.Equal(t, 3, spans[0].Page)
	assert.Equal(t, "Helvetica-Bold", spans[0].FontName)
	assert.Equal(t, StyleBold, spans[0].StyleFlags)
	assert.Equal(t, ScriptLatin, spans[0].Script)

	// Whitespace collapses and sizes round to one decimal place.
	assert.Equal(t, "Body text", spans[1].Text)
	assert.Equal(t, 12.0, spans[1].Size)
}

func TestSpanExtractor_BandBoundaries(t *testing.T) {
	extractor := NewSpanExtractor()

	// Top edges exactly on the band boundaries are retained.
	page := pageWithSpans(1000,
		RawSpan{Text: "at lower bound", BBox: [4]float64{0, 100, 100, 112}, Size: 12.0},
		RawSpan{Text: "at upper bound", BBox: [4]float64{0, 900, 100, 912}, Size: 12.0},
		RawSpan{Text: "just outside", BBox: [4]float64{0, 99.9, 100, 111.9}, Size: 12.0},
	)

	spans := extractor.ExtractPage(page, 0)
	require.Len(t, spans, 2)
	assert.Equal(t, "at lower bound", spans[0].Text)
	assert.Equal(t, "at upper bound", spans[1].Text)
}

func TestSpanExtractor_CustomBand(t *testing.T) {
	extractor := NewSpanExtractorWithConfig(ExtractorConfig{BandLow: 0, BandHigh: 1})

	page := pageWithSpans(500,
		RawSpan{Text: "header text", BBox: [4]float64{0, 5, 100, 17}, Size: 12.0},
	)

	spans := extractor.ExtractPage(page, 0)
	assert.Len(t, spans, 1)
}

func TestSpanExtractor_ExtractDocument(t *testing.T) {
	extractor := NewSpanExtractor()

	pages := []Page{
		pageWithSpans(1000, RawSpan{Text: "Title", BBox: [4]float64{0, 150, 100, 174}, Size: 24.0}),
		pageWithSpans(1000, RawSpan{Text: "Section", BBox: [4]float64{0, 150, 100, 168}, Size: 18.0}),
		{Height: 1000}, // empty page contributes nothing
	}

	spans := extractor.ExtractDocument(pages)
	require.Len(t, spans, 2)
	assert.Equal(t, 0, spans[0].Page)
	assert.Equal(t, 1, spans[1].Page)
}

func TestSpanExtractor_ScriptTagging(t *testing.T) {
	extractor := NewSpanExtractor()

	page := pageWithSpans(1000,
		RawSpan{Text: "第一 章", BBox: [4]float64{0, 150, 100, 168}, Size: 18.0},
	)

	spans := extractor.ExtractPage(page, 0)
	require.Len(t, spans, 1)
	assert.Equal(t, ScriptCJK, spans[0].Script)
	// CJK normalization drops the intra-character space.
	assert.Equal(t, "第一章", spans[0].Text)
}
