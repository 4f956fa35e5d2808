package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"demolocales/internal/domain/entities"
	"demolocales/internal/translations"
)

const localesDir = "frontend/src/i18n/locales"

type Config struct {
	Section      string
	Indent       string
	ReportLocale string
	Targets      []entities.LocaleTarget
}

// Load returns the built-in configuration and validates it. Nothing is read
// from flags or the environment: there is one locale file per bundled
// language, at <localesDir>/<lang>.json.
func Load() (*Config, error) {
	cfg := &Config{
		Section:      "demo",
		Indent:       "    ",
		ReportLocale: "en",
	}
	for _, lang := range translations.Languages() {
		cfg.Targets = append(cfg.Targets, entities.LocaleTarget{
			Lang: lang,
			Path: filepath.Join(localesDir, lang+".json"),
		})
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve returns the targets with relative paths joined onto root.
func (c *Config) Resolve(root string) []entities.LocaleTarget {
	targets := make([]entities.LocaleTarget, len(c.Targets))
	for i, t := range c.Targets {
		if !filepath.IsAbs(t.Path) {
			t.Path = filepath.Join(root, t.Path)
		}
		targets[i] = t
	}
	return targets
}

// validate checks the table for mistakes introduced when editing it.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Section) == "" {
		return fmt.Errorf("config: section is required")
	}
	// The section is used as a gjson/sjson path.
	if strings.ContainsAny(c.Section, `.*?|#@\`) {
		return fmt.Errorf("config: section %q must not contain path characters", c.Section)
	}

	if _, err := language.Parse(c.ReportLocale); err != nil {
		return fmt.Errorf("config: report locale %q: %w", c.ReportLocale, err)
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("config: at least one locale target is required")
	}

	seen := make(map[string]bool, len(c.Targets))
	for _, t := range c.Targets {
		if _, err := language.Parse(t.Lang); err != nil {
			return fmt.Errorf("config: invalid language %q: %w", t.Lang, err)
		}
		if !slices.Contains(translations.Languages(), t.Lang) {
			return fmt.Errorf("config: no bundled translations for language %q", t.Lang)
		}
		if seen[t.Lang] {
			return fmt.Errorf("config: duplicate language %q", t.Lang)
		}
		seen[t.Lang] = true

		if strings.TrimSpace(t.Path) == "" {
			return fmt.Errorf("config: path for %q is required", t.Lang)
		}
		if filepath.Ext(t.Path) != ".json" {
			return fmt.Errorf("config: path for %q must be a .json file (%q)", t.Lang, t.Path)
		}
	}

	return nil
}
