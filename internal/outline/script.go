package outline

import "unicode"

// scriptRange is a fixed inclusive code-point range belonging to a script
// bucket. The tables below are deliberately explicit rather than relying on
// unicode.RangeTable lookups so the classification is reproducible.
type scriptRange struct {
	lo, hi rune
}

var cjkRanges = []scriptRange{
	{0x4E00, 0x9FFF}, // CJK Unified Ideographs
	{0x3040, 0x309F}, // Hiragana
	{0x30A0, 0x30FF}, // Katakana
	{0xAC00, 0xD7AF}, // Hangul Syllables
}

var arabicRanges = []scriptRange{
	{0x0600, 0x06FF}, // Arabic
	{0x0750, 0x077F}, // Arabic Supplement
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

var devanagariRanges = []scriptRange{
	{0x0900, 0x097F}, // Devanagari
}

var cyrillicRanges = []scriptRange{
	{0x0400, 0x04FF}, // Cyrillic
}

func inRanges(r rune, ranges []scriptRange) bool {
	for _, rg := range ranges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// isCJK reports whether r falls in one of the CJK bucket ranges. The
// normalizer shares this check for its inter-character spacing rule.
func isCJK(r rune) bool {
	return inRanges(r, cjkRanges)
}

// ClassifyScript assigns text to its dominant writing script. Every
// alphabetic character votes for one of five buckets; the bucket with the
// highest count wins. Ties keep the earliest bucket in enumeration order
// (Latin, CJK, Arabic, Devanagari, Cyrillic), so mixed text with equal
// Latin and CJK counts classifies as Latin. Empty or non-alphabetic text
// defaults to Latin. This is a per-span heuristic, not a language detector.
func ClassifyScript(text string) ScriptKind {
	var counts [scriptCount]int

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case inRanges(r, cjkRanges):
			counts[ScriptCJK]++
		case inRanges(r, arabicRanges):
			counts[ScriptArabic]++
		case inRanges(r, devanagariRanges):
			counts[ScriptDevanagari]++
		case inRanges(r, cyrillicRanges):
			counts[ScriptCyrillic]++
		default:
			counts[ScriptLatin]++
		}
	}

	best := ScriptLatin
	for kind := ScriptLatin; kind < scriptCount; kind++ {
		if counts[kind] > counts[best] {
			best = kind
		}
	}

	return best
}
