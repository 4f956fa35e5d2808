package main

import (
	"context"
	"io"
	"log"
	"os"

	"demolocales/internal/adapters/console"
	"demolocales/internal/application"
	"demolocales/internal/config"
	"demolocales/internal/domain/entities"
	"demolocales/internal/infrastructure/i18n"
	"demolocales/internal/infrastructure/localefile"
	"demolocales/internal/translations"
)

func main() {
	root, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ Cannot determine working directory: %v", err)
	}

	if _, err := run(context.Background(), root, os.Stdout); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run updates every configured locale file under root and writes status lines
// to out. Per-file failures are reported, not returned.
func run(ctx context.Context, root string, out io.Writer) ([]entities.UpdateResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	translator := i18n.NewTranslator(cfg.ReportLocale)
	reporter := console.NewReporter(out, translator, cfg.ReportLocale)
	svc := application.NewLocaleService(
		localefile.NewStore(cfg.Indent),
		translations.Bundle{},
		reporter,
		cfg.Section,
	)

	results := svc.UpdateAll(ctx, cfg.Resolve(root))
	reporter.Summary(results)
	return results, nil
}
