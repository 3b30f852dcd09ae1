package transform

import (
	"regexp"
)

type replaceRule struct {
	re          *regexp.Regexp
	replacement string
}

func compileRules(pairs [][2]string) []replaceRule {
	rules := make([]replaceRule, len(pairs))
	for i, p := range pairs {
		rules[i] = replaceRule{
			re:          regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p[0])),
			replacement: p[1],
		}
	}
	return rules
}

// titleTranslations is applied in order; a later rule may rewrite the
// output of an earlier one, so the sequence must stay exactly as listed.
// Identity entries keep the original brand vocabulary untranslated.
var titleTranslations = compileRules([][2]string{
	{"Wok", "Wok"},
	{"Frying Pan", "Sartén"},
	{"Saucepan", "Cacerola"},
	{"Chopping Board", "Tabla de Cortar"},
	{"Knife", "Cuchillo"},
	{"Can Opener", "Abrelatas"},
	{"Storage", "Almacenamiento"},
	{"Organiser", "Organizador"},
	{"Organizer", "Organizador"},
	{"Set", "Set"},
	{"Non-stick", "Antiadherente"},
	{"Stainless Steel", "Acero Inoxidable"},
	{"Folding", "Plegable"},
	{"Handle", "Mango"},
	{"Lid", "Tapa"},
	{"Piece", "Piezas"},
	{"Bamboo", "Bambú"},
	{"Clear", "Transparente"},
	{"Drawer", "Cajón"},
	{"Shelf", "Estante"},
	{"Easy", "Fácil"},
	{"Kitchen", "Cocina"},
	{"Space", "Space"},
	{"Microwave", "Microondas"},
	{"Bowl", "Bowl"},
	{"Roll", "Rollo"},
	{"Holder", "Soporte"},
	{"Cutlery", "Cubiertos"},
	{"On-the-go", "Para llevar"},
})

// TranslateTitle localizes an upstream product title by applying the
// ordered replacement table, case-insensitively.
func TranslateTitle(title string) string {
	translated := title
	for _, rule := range titleTranslations {
		translated = rule.re.ReplaceAllString(translated, rule.replacement)
	}
	return translated
}
