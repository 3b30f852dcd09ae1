package transform

import (
	"regexp"
	"strings"
)

var listItemRe = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)

// maxFeatureLen drops list items that are really paragraphs in disguise.
const maxFeatureLen = 150

// MaxFeatures and MaxFeaturesSimple are the caps used by the full and the
// simple import variants.
const (
	MaxFeatures       = 4
	MaxFeaturesSimple = 3
)

// featureTranslations covers the stock phrases the manufacturer repeats
// across product pages.
var featureTranslations = compileRules([][2]string{
	{"Folding", "Plegable"},
	{"Non-stick", "Antiadherente"},
	{"Dishwasher safe", "Apto para lavavajillas"},
	{"Suitable for all hobs", "Apto para todas las placas"},
	{"including induction", "incluida inducción"},
})

// defaultFeatures fills the gap when a body yields no usable list items;
// the extractor never returns an empty list.
var defaultFeatures = []string{
	"Diseño innovador de Joseph Joseph",
	"Alta calidad y durabilidad",
	"Fácil de limpiar",
}

// ExtractFeatures pulls up to max bullet-style features out of a rich-text
// body. Only the first max list items are considered; fragments that stay
// empty or run past the length cap after cleanup are discarded.
func ExtractFeatures(html string, max int) []string {
	matches := listItemRe.FindAllStringSubmatch(html, -1)
	if len(matches) > max {
		matches = matches[:max]
	}

	var features []string
	for _, m := range matches {
		text := strings.TrimSpace(markupRe.ReplaceAllString(m[1], ""))
		for _, rule := range featureTranslations {
			text = rule.re.ReplaceAllString(text, rule.replacement)
		}
		if text != "" && len(text) < maxFeatureLen {
			features = append(features, text)
		}
	}

	if len(features) == 0 {
		return append([]string(nil), defaultFeatures...)
	}
	return features
}
