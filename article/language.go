package article

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
)

// DetectLanguage returns a two-letter language code. Declared page metadata
// wins ("en-US" -> "en"); otherwise the language is guessed from the text.
func DetectLanguage(declared, text string) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexAny(declared, "-_"); i > 0 {
		declared = declared[:i]
	}
	if len(declared) == 2 {
		return declared
	}

	if strings.TrimSpace(text) == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391()
}
