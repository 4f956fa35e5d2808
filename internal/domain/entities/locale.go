package entities

// LocaleTarget is one configured (language, locale file) pair.
type LocaleTarget struct {
	Lang string
	Path string
}

// UpdateResult is the outcome of updating a single LocaleTarget.
type UpdateResult struct {
	Lang string
	Path string
	Err  error
}

// OK reports whether the locale file was rewritten.
func (r UpdateResult) OK() bool {
	return r.Err == nil
}
