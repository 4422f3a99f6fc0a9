package outline

import (
	"regexp"
	"unicode/utf8"
)

// Length ceilings for heading candidates that qualify by font size but
// match no pattern. Long passages are body text even when set large.
const (
	maxHeadingLenCJK     = 200
	maxHeadingLenDefault = 150
)

// scriptPatterns maps a script to its ordered list of literal chapter and
// section marker patterns, plus numbered-prefix forms in the script's own
// numerals. The table is static and evaluated in fixed order so validator
// behavior stays reproducible.
var scriptPatterns = map[ScriptKind][]*regexp.Regexp{
	ScriptCJK: {
		regexp.MustCompile(`^第[0-9０-９一二三四五六七八九十百千]+[章节節篇部卷課课回]`),
		regexp.MustCompile(`^[0-9]+[.、]`),
		regexp.MustCompile(`^[0-9]+\s`),
		regexp.MustCompile(`^[一二三四五六七八九十]+[、.]`),
	},
	ScriptArabic: {
		regexp.MustCompile(`^الفصل\s+[0-9٠-٩]+`),
		regexp.MustCompile(`^الباب\s+[0-9٠-٩]+`),
		regexp.MustCompile(`^القسم\s+[0-9٠-٩]+`),
		regexp.MustCompile(`^[0-9٠-٩]+[.\s]`),
	},
	ScriptDevanagari: {
		regexp.MustCompile(`^अध्याय\s+[0-9०-९]+`),
		regexp.MustCompile(`^भाग\s+[0-9०-९]+`),
		regexp.MustCompile(`^खंड\s+[0-9०-९]+`),
		regexp.MustCompile(`^[0-9०-९]+[.\s]`),
	},
}

// genericPatterns are cross-script heading markers checked for every span:
// a leading digit prefix with separator, a capitalized word followed by a
// number ("Chapter 1"), or a leading Roman-numeral token.
var genericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[0-9]+[.):]`),
	regexp.MustCompile(`^[0-9]+\s`),
	regexp.MustCompile(`^[A-Z][a-z]+\s+[0-9]+`),
	regexp.MustCompile(`^[IVXLCDM]+[.\s]`),
}

// HeadingValidator decides whether a candidate span is truly a heading.
type HeadingValidator struct{}

// NewHeadingValidator creates a heading validator.
func NewHeadingValidator() *HeadingValidator {
	return &HeadingValidator{}
}

// IsHeading applies the validation rules in order, first match deciding:
// empty text is rejected; text whose font size does not exceed the document
// average is rejected; a script-specific or generic pattern match accepts
// immediately, bypassing the length ceiling; text over the ceiling (200
// characters for CJK, 150 otherwise) is rejected; everything else is
// accepted as font-size-qualified and short enough.
func (v *HeadingValidator) IsHeading(text string, size, avgSize float64, script ScriptKind) bool {
	if text == "" {
		return false
	}

	if size <= avgSize {
		return false
	}

	for _, pattern := range scriptPatterns[script] {
		if pattern.MatchString(text) {
			return true
		}
	}

	for _, pattern := range genericPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	limit := maxHeadingLenDefault
	if script == ScriptCJK {
		limit = maxHeadingLenCJK
	}
	if utf8.RuneCountInString(text) > limit {
		return false
	}

	return true
}
