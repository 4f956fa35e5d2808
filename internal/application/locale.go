package application

import (
	"context"
	"fmt"

	"demolocales/internal/domain"
	"demolocales/internal/domain/entities"
	"demolocales/internal/ports/input"
	"demolocales/internal/ports/output"
)

var _ input.LocaleUseCase = (*LocaleService)(nil)

// LocaleService replaces one section of each configured locale file with the
// bundled content for that language.
type LocaleService struct {
	store    output.LocaleStore
	bundle   output.Bundle
	reporter output.Reporter
	section  string
}

func NewLocaleService(
	store output.LocaleStore,
	bundle output.Bundle,
	reporter output.Reporter,
	section string,
) *LocaleService {
	return &LocaleService{
		store:    store,
		bundle:   bundle,
		reporter: reporter,
		section:  section,
	}
}

func (s *LocaleService) Update(ctx context.Context, target entities.LocaleTarget) error {
	demo, ok := s.bundle.Demo(target.Lang)
	if !ok {
		return fmt.Errorf("%w %q", domain.ErrUnknownLanguage, target.Lang)
	}
	return s.store.ReplaceSection(ctx, target.Path, s.section, demo)
}

// UpdateAll updates every target in order. A failing target is reported and
// skipped; it never stops the remaining ones.
func (s *LocaleService) UpdateAll(ctx context.Context, targets []entities.LocaleTarget) []entities.UpdateResult {
	results := make([]entities.UpdateResult, 0, len(targets))
	for _, target := range targets {
		result := entities.UpdateResult{
			Lang: target.Lang,
			Path: target.Path,
			Err:  s.Update(ctx, target),
		}
		if s.reporter != nil {
			s.reporter.Report(result)
		}
		results = append(results, result)
	}
	return results
}
