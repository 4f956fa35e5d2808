package output

// T renders user-facing console messages in a given locale.
type T interface {
	// T renders the message identified by key for locale. data fills template
	// placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
