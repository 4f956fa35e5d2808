package console

import (
	"fmt"
	"io"
	"log"
	"strings"

	"demolocales/internal/domain"
	"demolocales/internal/domain/entities"
	"demolocales/internal/ports/output"
)

// Message IDs in the active.*.toml catalogues.
const (
	msgSuccess = "update.success"
	msgFailure = "update.failure"
	msgSummary = "update.summary"
)

var _ output.Reporter = (*Reporter)(nil)

// Reporter prints one status line per locale update.
type Reporter struct {
	out        io.Writer
	translator output.T
	locale     string
}

func NewReporter(out io.Writer, translator output.T, locale string) *Reporter {
	return &Reporter{
		out:        out,
		translator: translator,
		locale:     locale,
	}
}

// Report writes a success or failure line for result. Failures are also
// logged with their error code and path.
func (r *Reporter) Report(result entities.UpdateResult) {
	data := map[string]any{"Lang": strings.ToUpper(result.Lang)}
	key := msgSuccess
	if !result.OK() {
		key = msgFailure
		data["Error"] = result.Err.Error()
		log.Printf("❌ locale update failed (lang=%s, code=%s, path=%s): %v",
			result.Lang, failureCode(result.Err), result.Path, result.Err)
	}
	fmt.Fprintln(r.out, r.translator.T(r.locale, key, data))
}

// Summary writes how many of results succeeded.
func (r *Reporter) Summary(results []entities.UpdateResult) {
	updated := 0
	for _, res := range results {
		if res.OK() {
			updated++
		}
	}
	fmt.Fprintln(r.out, r.translator.T(r.locale, msgSummary, map[string]any{
		"Updated": updated,
		"Total":   len(results),
	}))
}

// failureCode is the domain code of err, or "unknown" for errors raised
// outside the domain (I/O from a custom store, context cancellation).
func failureCode(err error) string {
	if code := domain.Code(err); code != "" {
		return code
	}
	return "unknown"
}
