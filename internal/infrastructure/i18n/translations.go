package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"demolocales/internal/ports/output"
)

// Console status messages, one catalogue per locale the updater can report in.
//
//go:embed active.*.toml
var localeFS embed.FS

var messageFiles = []string{"active.en.toml", "active.ru.toml", "active.kk.toml"}

var _ output.T = (*Translator)(nil)

// Translator renders the updater's status lines ("update.success",
// "update.failure", "update.summary") from the embedded catalogues.
type Translator struct {
	bundle   *i18n.Bundle
	fallback language.Tag
}

// NewTranslator loads the embedded catalogues. fallback is the locale used
// when a line is missing in the requested one; an unparsable value means English.
// A catalogue that fails to load is logged and skipped.
func NewTranslator(fallback string) *Translator {
	tag, err := language.Parse(fallback)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: skipping catalogue %s: %v", file, err)
		}
	}

	return &Translator{bundle: bundle, fallback: tag}
}

// T implements output.T. A status line that cannot be rendered comes back as
// its message ID so the report still names the outcome.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	locales := []string{t.fallback.String()}
	if locale != "" {
		locales = append([]string{locale}, locales...)
	}

	msg, err := i18n.NewLocalizer(t.bundle, locales...).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: cannot render %s for %v: %v", key, locales, err)
		return key
	}
	return msg
}
