package transform

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	markupRe     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]`)
)

// DescriptionPlaceholder stands in for products whose body yields no
// usable text after cleanup.
const DescriptionPlaceholder = "Producto de Joseph Joseph"

// maxDescriptionLen caps card descriptions on the storefront, counted in
// runes so accented text is never split mid-character.
const maxDescriptionLen = 200

// The feed only ever emits this handful of named entities, so a full HTML
// decoder is not needed here.
var entityReplacements = []struct {
	entity string
	text   string
}{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
}

// CleanDescription turns a rich-text product body into a short plain-text
// description: markup stripped, entities decoded, whitespace collapsed.
// The first sentence is preferred when it fits; otherwise the text is
// hard-truncated with an ellipsis.
func CleanDescription(html string) string {
	if html == "" {
		return DescriptionPlaceholder
	}

	text := markupRe.ReplaceAllString(html, " ")
	for _, r := range entityReplacements {
		text = strings.ReplaceAll(text, r.entity, r.text)
	}
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	if text == "" {
		return DescriptionPlaceholder
	}

	firstSentence := strings.SplitN(text, ".", 2)[0]
	if n := utf8.RuneCountInString(firstSentence); n > 0 && n < maxDescriptionLen {
		return firstSentence + "."
	}

	if runes := []rune(text); len(runes) > maxDescriptionLen {
		return string(runes[:maxDescriptionLen]) + "..."
	}
	return text
}

// NormalizeTitle reduces a product title to a key for fuzzy comparison:
// lowercase, trademark glyphs dropped, everything but ascii alphanumerics
// removed. Keys are for matching only, never for display.
func NormalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = strings.ReplaceAll(t, "™", "")
	t = strings.ReplaceAll(t, "®", "")
	return nonAlnumRe.ReplaceAllString(t, "")
}
