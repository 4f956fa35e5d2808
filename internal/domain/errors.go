package domain

import "errors"

// Domain errors.
var (
	ErrLocaleNotFound   = errors.New("locale file not found")
	ErrLocaleUnreadable = errors.New("locale file unreadable")
	ErrInvalidJSON      = errors.New("locale file is not valid JSON")
	ErrNotJSONObject    = errors.New("locale file root is not a JSON object")
	ErrLocaleWrite      = errors.New("locale file could not be written")
	ErrUnknownLanguage  = errors.New("no translations for language")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrLocaleNotFound, "locale_not_found"},
	{ErrLocaleUnreadable, "locale_unreadable"},
	{ErrInvalidJSON, "invalid_json"},
	{ErrNotJSONObject, "not_json_object"},
	{ErrLocaleWrite, "locale_write"},
	{ErrUnknownLanguage, "unknown_language"},
}

// Code returns the stable code of the first domain error wrapped by err, or ""
// when err does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
