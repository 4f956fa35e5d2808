package localefile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/google/renameio/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"demolocales/internal/domain"
	"demolocales/internal/ports/output"
)

// DefaultIndent matches the four-space layout the frontend locale files use.
const DefaultIndent = "    "

// Ensure Store implements the output.LocaleStore port.
var _ output.LocaleStore = (*Store)(nil)

// Store edits JSON locale files in place. Keys it does not touch keep their
// position in the document; the whole file is re-indented on write.
type Store struct {
	indent string
}

// NewStore returns a Store that indents with indent, or DefaultIndent when
// indent is empty.
func NewStore(indent string) *Store {
	if indent == "" {
		indent = DefaultIndent
	}
	return &Store{indent: indent}
}

// ReplaceSection implements output.LocaleStore.
func (s *Store) ReplaceSection(ctx context.Context, path, section string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, info, err := readLocale(path)
	if err != nil {
		return err
	}

	payload, err := encode(value)
	if err != nil {
		return fmt.Errorf("encode %s section: %w", section, err)
	}

	// A file with the section repeated keeps only one copy, so that every
	// parser sees the new content.
	for n := countKeys(raw, section); n > 1; n-- {
		if raw, err = sjson.DeleteBytes(raw, section); err != nil {
			return fmt.Errorf("%w: drop duplicate %s: %w", domain.ErrLocaleWrite, section, err)
		}
	}

	updated, err := sjson.SetRawBytes(raw, section, payload)
	if err != nil {
		return fmt.Errorf("%w: set %s: %w", domain.ErrLocaleWrite, section, err)
	}

	out := pretty.PrettyOptions(updated, &pretty.Options{
		Width:  80,
		Indent: s.indent,
	})
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	// renameio writes a temp file next to path and renames it over the
	// original; the existing file mode is kept.
	if err := renameio.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLocaleWrite, err)
	}
	return nil
}

// readLocale loads path and checks that it holds a JSON object.
func readLocale(path string) ([]byte, fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrLocaleNotFound, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrLocaleUnreadable, err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is a directory", domain.ErrLocaleUnreadable, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrLocaleUnreadable, err)
	}

	if !utf8.Valid(raw) {
		return nil, nil, fmt.Errorf("%w: %s is not UTF-8", domain.ErrInvalidJSON, path)
	}
	if !gjson.ValidBytes(raw) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidJSON, path)
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNotJSONObject, path)
	}
	return raw, info, nil
}

// countKeys returns how many top-level members of the object raw are named key.
func countKeys(raw []byte, key string) int {
	n := 0
	gjson.ParseBytes(raw).ForEach(func(k, _ gjson.Result) bool {
		if k.String() == key {
			n++
		}
		return true
	})
	return n
}

// encode marshals v without HTML escaping so text such as "<b>" or "&" is
// written as-is. Non-ASCII runes are never escaped by encoding/json.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
