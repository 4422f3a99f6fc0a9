package pdf

import (
	"strings"

	"github.com/a3tai/pdf-outliner/internal/outline"
)

// styleFlags derives a style bitmask from the PostScript font name.
// PDF text runs carry no explicit style bits, so bold and italic are
// inferred from the name the way subset fonts conventionally encode them.
func styleFlags(fontName string) int {
	name := strings.ToLower(fontName)

	flags := 0
	if strings.Contains(name, "bold") || strings.Contains(name, "black") || strings.Contains(name, "heavy") {
		flags |= outline.StyleBold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		flags |= outline.StyleItalic
	}

	return flags
}
