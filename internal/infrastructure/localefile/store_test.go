package localefile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"demolocales/internal/domain"
	"demolocales/internal/infrastructure/localefile"
	"demolocales/internal/translations"
)

func writeLocale(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ru.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

// asJSONValue round-trips v so it compares equal to a decoded document.
func asJSONValue(t *testing.T, v any) any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestReplaceSectionAddsSection(t *testing.T) {
	path := writeLocale(t, `{"other": 1}`)
	demo, _ := translations.Demo("ru")

	err := localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", demo)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := decode(t, raw)
	assert.Equal(t, map[string]any{
		"other": float64(1),
		"demo":  asJSONValue(t, demo),
	}, doc)
}

func TestReplaceSectionKeepsSiblings(t *testing.T) {
	original := `{
  "common": {"yes": "Да", "no": "Нет", "list": [1, 2, 3]},
  "demo": {"stale": true, "call": "old"},
  "auth": {"login": "Войти"},
  "empty": null
}`
	path := writeLocale(t, original)
	demo, _ := translations.Demo("ru")

	require.NoError(t, localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", demo))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	before := decode(t, []byte(original))
	after := decode(t, raw)
	for _, key := range []string{"common", "auth", "empty"} {
		assert.Equal(t, before[key], after[key], key)
	}
	assert.Equal(t, asJSONValue(t, demo), after["demo"])

	var keys []string
	gjson.ParseBytes(raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{"common", "demo", "auth", "empty"}, keys)
}

func TestReplaceSectionWritesReadableText(t *testing.T) {
	path := writeLocale(t, `{}`)
	demo, _ := translations.Demo("kk")

	require.NoError(t, localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", demo))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "Кіріс қоңырау")
	assert.Contains(t, text, "15 000 ₸")
	assert.NotContains(t, text, `\u04`)
	assert.Contains(t, text, "\n    \"demo\": {")
	assert.Contains(t, text, "\n        \"call\": ")
	assert.Equal(t, byte('\n'), raw[len(raw)-1])
}

func TestReplaceSectionDoesNotEscapeHTML(t *testing.T) {
	path := writeLocale(t, `{}`)

	value := map[string]string{"tip": "<b>Kaspi</b> & egov.kz"}
	require.NoError(t, localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", value))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"<b>Kaspi</b> & egov.kz"`)
}

func TestReplaceSectionIsIdempotent(t *testing.T) {
	path := writeLocale(t, `{"a": {"b": [true, false]}, "z": "last"}`)
	demo, _ := translations.Demo("en")
	store := localefile.NewStore("")

	require.NoError(t, store.ReplaceSection(context.Background(), path, "demo", demo))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.ReplaceSection(context.Background(), path, "demo", demo))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestReplaceSectionKeepsFileMode(t *testing.T) {
	path := writeLocale(t, `{}`)
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", map[string]string{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestReplaceSectionErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "truncated", content: `{"other": `, want: domain.ErrInvalidJSON},
		{name: "empty file", content: ``, want: domain.ErrInvalidJSON},
		{name: "trailing garbage", content: `{"a": 1} x`, want: domain.ErrInvalidJSON},
		{name: "array root", content: `[1, 2]`, want: domain.ErrNotJSONObject},
		{name: "string root", content: `"demo"`, want: domain.ErrNotJSONObject},
		{name: "invalid utf-8 in string", content: "{\"a\": \"\xff\xfe\"}", want: domain.ErrInvalidJSON},
		{name: "latin-1 text", content: "{\"caf\xe9\": 1}", want: domain.ErrInvalidJSON},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeLocale(t, tc.content)

			err := localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", map[string]string{"a": "b"})
			require.ErrorIs(t, err, tc.want)

			raw, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tc.content, string(raw), "file must be left untouched")

			entries, readErr := os.ReadDir(filepath.Dir(path))
			require.NoError(t, readErr)
			assert.Len(t, entries, 1, "no temp files left behind")
		})
	}
}

func TestReplaceSectionCollapsesDuplicateSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "two copies", content: `{"demo": {"old": 1}, "x": 2, "demo": {"old": 2}}`},
		{name: "three copies", content: `{"demo": 1, "demo": {"old": 2}, "x": 2, "demo": []}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeLocale(t, tc.content)
			demo, _ := translations.Demo("ru")

			require.NoError(t, localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", demo))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)

			var demos int
			gjson.ParseBytes(raw).ForEach(func(key, _ gjson.Result) bool {
				if key.String() == "demo" {
					demos++
				}
				return true
			})
			assert.Equal(t, 1, demos)
			assert.Equal(t, map[string]any{
				"x":    float64(2),
				"demo": asJSONValue(t, demo),
			}, decode(t, raw))
		})
	}
}

func TestReplaceSectionMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kk.json")

	err := localefile.NewStore("").ReplaceSection(context.Background(), path, "demo", map[string]string{})
	require.ErrorIs(t, err, domain.ErrLocaleNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "locale_not_found", domain.Code(err))
	assert.NoFileExists(t, path)
}

func TestReplaceSectionDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "en.json")
	require.NoError(t, os.Mkdir(dir, 0o755))

	err := localefile.NewStore("").ReplaceSection(context.Background(), dir, "demo", map[string]string{})
	require.ErrorIs(t, err, domain.ErrLocaleUnreadable)
}

func TestReplaceSectionCancelled(t *testing.T) {
	path := writeLocale(t, `{"other": 1}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := localefile.NewStore("").ReplaceSection(ctx, path, "demo", map[string]string{})
	require.ErrorIs(t, err, context.Canceled)

	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, `{"other": 1}`, string(raw))
}
