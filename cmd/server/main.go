package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"skillpath/internal/app"
	"skillpath/internal/config"
	"skillpath/internal/database/migration"
	"skillpath/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	if err := migrateAndSeed(bootstrap.Container); err != nil {
		log.Fatalf("failed to prepare database: %v", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}

func migrateAndSeed(c *app.Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: os.Getenv("MIGRATIONS_DIR")}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return err
	}

	if strings.EqualFold(strings.TrimSpace(os.Getenv("SEED_DEFAULTS")), "true") {
		seed := seeder.Runner{Seeders: seeder.Defaults()}
		if err := seed.Run(ctx, c.DB); err != nil {
			return err
		}
	}
	return nil
}
