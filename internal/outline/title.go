package outline

// ResolveTitle selects the document title. The first span in document order
// on page index 0 whose size maps to H1 wins. When page 0 has no H1-level
// span, the largest-font span on page 0 is used regardless of heading
// validation. A document with no page-0 spans at all gets the "Untitled"
// sentinel.
func ResolveTitle(spans []Span, levels LevelMap) string {
	for _, span := range spans {
		if span.Page != 0 {
			continue
		}
		if levels.Level(span.Size) == "H1" {
			return span.Text
		}
	}

	var best *Span
	for i := range spans {
		if spans[i].Page != 0 {
			continue
		}
		if best == nil || spans[i].Size > best.Size {
			best = &spans[i]
		}
	}
	if best != nil {
		return best.Text
	}

	return UntitledSentinel
}
