package outline

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// Arabic comma, semicolon and question mark take no space before and
	// exactly one space after.
	arabicPunctSpacing = regexp.MustCompile(`\s*([،؛؟])\s*`)
)

// NormalizeText cleans raw span text according to script-specific rules:
// whitespace runs collapse to a single space for every script; CJK text
// additionally drops any lone space sitting directly between two CJK-range
// characters (extraction artifacts, not word boundaries); Arabic text
// normalizes spacing around its native punctuation marks. The result is
// trimmed; an empty result means the span should be dropped.
func NormalizeText(text string, script ScriptKind) string {
	cleaned := whitespaceRun.ReplaceAllString(text, " ")

	switch script {
	case ScriptCJK:
		cleaned = stripIntraCJKSpaces(cleaned)
	case ScriptArabic:
		cleaned = arabicPunctSpacing.ReplaceAllString(cleaned, "$1 ")
	}

	return strings.TrimSpace(cleaned)
}

// stripIntraCJKSpaces removes single spaces whose immediate neighbors are
// both CJK-range characters.
func stripIntraCJKSpaces(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	for i, r := range runes {
		if r == ' ' && i > 0 && i < len(runes)-1 && isCJK(runes[i-1]) && isCJK(runes[i+1]) {
			continue
		}
		out = append(out, r)
	}

	return string(out)
}
