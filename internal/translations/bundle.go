// Package translations holds the demo section content shipped with the tool.
package translations

import (
	"demolocales/internal/domain/entities"
	"demolocales/internal/ports/output"
)

var demos = map[string]entities.Demo{
	"ru": ruDemo,
	"en": enDemo,
	"kk": kkDemo,
}

// Ensure Bundle implements the output.Bundle port.
var _ output.Bundle = Bundle{}

// Bundle exposes the embedded demo table through the output.Bundle port.
type Bundle struct{}

// Demo returns the demo content for lang.
func (Bundle) Demo(lang string) (entities.Demo, bool) {
	return Demo(lang)
}

// Demo returns a copy of the demo content for lang.
func Demo(lang string) (entities.Demo, bool) {
	d, ok := demos[lang]
	return d, ok
}

// Languages lists the bundled languages in update order.
func Languages() []string {
	return []string{"ru", "en", "kk"}
}
