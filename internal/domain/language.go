// Package domain contains core domain types for the HadithSahih bot.
package domain

import "fmt"

// Language identifies one of the two locales the bot can answer in.
type Language string

const (
	LanguageFR Language = "FR"
	LanguageEN Language = "EN"
)

// ParseLanguage converts a callback payload into a Language.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "fr", "FR":
		return LanguageFR, nil
	case "en", "EN", "eng", "ENG":
		return LanguageEN, nil
	default:
		return "", fmt.Errorf("unknown language %q", s)
	}
}

// FileSuffix returns the suffix used by per-language content files,
// e.g. hadiths_fr.txt / hadiths_en.txt.
func (l Language) FileSuffix() string {
	if l == LanguageFR {
		return "fr"
	}
	return "en"
}
