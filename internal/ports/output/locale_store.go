package output

import "context"

// LocaleStore rewrites sections of on-disk locale files.
type LocaleStore interface {
	// ReplaceSection sets the top-level key section of the JSON object stored at
	// path to value, leaving every other key untouched. The file is left as it
	// was when any step fails.
	ReplaceSection(ctx context.Context, path, section string, value any) error
}
