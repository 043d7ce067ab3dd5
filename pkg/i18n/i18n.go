package i18n

import (
	"fmt"
	"strings"
)

const (
	LangEnglish = "en"
	LangRussian = "ru"
	LangUzbek   = "uz"
)

const (
	KeyWelcome    = "welcome"
	KeyMenu       = "menu"
	KeyAbout      = "about"
	KeyAskName    = "ask_name"
	KeyAskSurname = "ask_surname"
	KeyAskPhone   = "ask_phone"
	KeyChooseSlot = "choose_slot"
	KeyBooked     = "booked"
	KeyFail       = "fail"
)

var knownLanguages = []string{LangEnglish, LangRussian, LangUzbek}

var knownKeys = []string{
	KeyWelcome, KeyMenu, KeyAbout,
	KeyAskName, KeyAskSurname, KeyAskPhone,
	KeyChooseSlot, KeyBooked, KeyFail,
}

// Table maps language -> key -> display string. Immutable after Load.
type Table struct {
	texts map[string]map[string]string
}

// Text resolves a display string, falling back to English for unknown
// or unset languages. Unknown keys return the key itself so a missing
// entry is visible in chat instead of silently blank.
func (t *Table) Text(language, key string) string {
	langTexts, ok := t.texts[language]
	if !ok {
		langTexts = t.texts[LangEnglish]
	}
	if s, ok := langTexts[key]; ok {
		return s
	}
	return key
}

// Booked renders the confirmation template with the chosen slot.
func (t *Table) Booked(language, slot string) string {
	return fmt.Sprintf(t.Text(language, KeyBooked), slot)
}

// IsKnownLanguage reports whether code is one of the supported languages.
func IsKnownLanguage(code string) bool {
	for _, l := range knownLanguages {
		if l == code {
			return true
		}
	}
	return false
}

func validate(texts map[string]map[string]string) error {
	for lang, entries := range texts {
		if !IsKnownLanguage(lang) {
			return fmt.Errorf("texts validation failed: unknown language '%s'", lang)
		}
		for key, value := range entries {
			if !isKnownKey(key) {
				return fmt.Errorf("texts validation failed: unknown key '%s' for language '%s'", key, lang)
			}
			if value == "" {
				return fmt.Errorf("texts validation failed: empty text for '%s'/'%s'", lang, key)
			}
			if key == KeyBooked && !strings.Contains(value, "%s") {
				return fmt.Errorf("texts validation failed: '%s'/'%s' must contain a %%s slot placeholder", lang, key)
			}
		}
	}
	return nil
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}
