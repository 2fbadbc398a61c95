package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skillpath/internal/app"
	"skillpath/internal/config"
	"skillpath/internal/database/migration"
)

// Recomputes every goal's progress against the current skill data. Meant
// to run from cron after catalog imports or bulk skill changes.
func main() {
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
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

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := c.GoalBatch.RecomputeAll(ctx)
	if err != nil {
		log.Fatalf("recompute failed: %v", err)
	}
	log.Printf("goal sweep finished | processed=%d failed=%d", result.Processed, result.Failed)
}
