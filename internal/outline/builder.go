package outline

// BuilderConfig configures the outline-inference pipeline.
type BuilderConfig struct {
	BandLow       float64 // Lower vertical band fraction for span extraction
	BandHigh      float64 // Upper vertical band fraction for span extraction
	SizeTolerance float64 // Maximum distance from a size group's anchor
}

// DefaultBuilderConfig returns default configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		BandLow:       0.1,
		BandHigh:      0.9,
		SizeTolerance: DefaultSizeTolerance,
	}
}

// Builder orchestrates the full pipeline: span extraction, font-size
// clustering, level assignment, heading validation and title resolution.
// A Builder holds no per-document state and may be reused across documents.
type Builder struct {
	config    BuilderConfig
	extractor *SpanExtractor
	validator *HeadingValidator
}

// NewBuilder creates an outline builder with default configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig())
}

// NewBuilderWithConfig creates an outline builder with custom configuration.
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	return &Builder{
		config: config,
		extractor: NewSpanExtractorWithConfig(ExtractorConfig{
			BandLow:  config.BandLow,
			BandHigh: config.BandHigh,
		}),
		validator: NewHeadingValidator(),
	}
}

// Build infers the outline for a document given its pages in order.
func (b *Builder) Build(pages []Page) DocumentResult {
	return b.BuildFromSpans(b.extractor.ExtractDocument(pages))
}

// BuildFromSpans runs clustering, level assignment, validation and title
// resolution over an already-extracted span list, preserving document
// order. Page numbers are emitted 1-based in outline entries. A document
// with zero spans yields the degenerate {"Untitled", []} result without
// clustering.
func (b *Builder) BuildFromSpans(spans []Span) DocumentResult {
	if len(spans) == 0 {
		return DocumentResult{Title: UntitledSentinel, Outline: []OutlineEntry{}}
	}

	sizes := make([]float64, len(spans))
	for i, span := range spans {
		sizes[i] = span.Size
	}

	groups := GroupSizes(sizes, b.config.SizeTolerance)
	levels := AssignLevels(groups)
	avgSize := AverageSize(spans)

	entries := []OutlineEntry{}
	for _, span := range spans {
		level := levels.Level(span.Size)
		if level == "" {
			continue
		}
		if !b.validator.IsHeading(span.Text, span.Size, avgSize, span.Script) {
			continue
		}
		entries = append(entries, OutlineEntry{
			Level: level,
			Text:  span.Text,
			Page:  span.Page + 1,
		})
	}

	return DocumentResult{
		Title:   ResolveTitle(spans, levels),
		Outline: entries,
	}
}
