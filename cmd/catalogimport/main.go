package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skillpath/internal/app"
	"skillpath/internal/catalog"
	"skillpath/internal/config"
	"skillpath/internal/database/migration"
	"skillpath/internal/repository"
)

func main() {
	baseURL := flag.String("base-url", "", "provider course site base URL")
	provider := flag.String("provider", "", "provider name stored on courses (defaults to the site host)")
	pages := flag.Int("pages", 2, "listing pages to crawl")
	workers := flag.Int("workers", 6, "concurrent detail fetches")
	rate := flag.Int("rate", 4, "detail fetches per second")
	createSkills := flag.Bool("create-missing-skills", false, "register unmatched tags as technical skills")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	imp, err := catalog.NewImporter(
		repository.NewPostgresCourseRepository(c.DB),
		repository.NewPostgresSkillRepository(c.DB),
		c.Logger,
		catalog.Config{
			Provider:            *provider,
			BaseURL:             *baseURL,
			RateLimit:           *rate,
			CreateMissingSkills: *createSkills,
		},
	)
	if err != nil {
		log.Fatalf("importer init failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	report, err := imp.Run(ctx, *pages, *workers)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("catalog import finished | imported=%d failed=%d", report.Imported, report.Failed)
}
