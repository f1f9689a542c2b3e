package domain

// Lang selects which side of a bilingual pair is preferred for display.
type Lang string

const (
	LangArabic  Lang = "ar"
	LangEnglish Lang = "en"
)

// ParseLang returns the Lang for s, defaulting to Arabic for anything
// that is not "en". Arabic is the product's primary language.
func ParseLang(s string) Lang {
	if s == string(LangEnglish) {
		return LangEnglish
	}
	return LangArabic
}

// Localized picks the value for the active language, falling back to the
// other variant when the preferred one is empty. Every bilingual field in
// the system (titles, labels, descriptions) resolves through this rule.
func Localized(lang Lang, ar, en string) string {
	if lang == LangEnglish {
		if en != "" {
			return en
		}
		return ar
	}
	if ar != "" {
		return ar
	}
	return en
}
