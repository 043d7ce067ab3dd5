package i18n

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds the text table from the built-in defaults, optionally
// overlaying entries from a yaml file of the form:
//
//	en:
//	  about: "Custom about text"
//	ru:
//	  welcome: "..."
//
// An empty path means defaults only.
func Load(overridePath string) (*Table, error) {
	texts := defaultTexts()

	if overridePath != "" {
		log.Printf("Loading text overrides from %s...", overridePath)

		raw, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read texts file '%s': %w", overridePath, err)
		}

		var overrides map[string]map[string]string
		if err := yaml.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML from '%s': %w", overridePath, err)
		}
		if err := validate(overrides); err != nil {
			return nil, err
		}

		for lang, entries := range overrides {
			for key, value := range entries {
				texts[lang][key] = value
			}
		}
		log.Printf("Text overrides applied for %d language(s).", len(overrides))
	}

	if err := validate(texts); err != nil {
		return nil, err
	}
	return &Table{texts: texts}, nil
}

// MustLoad is Load for contexts where defaults cannot fail (tests, wiring).
func MustLoad() *Table {
	t, err := Load("")
	if err != nil {
		panic(err)
	}
	return t
}
