package main

import (
	"context"
	"log"
	"os"

	"github.com/Domenick1991/airport-ops/config"
	"github.com/Domenick1991/airport-ops/internal/bootstrap"
	"github.com/Domenick1991/airport-ops/internal/repository"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Storage.Driver = config.StorageDriverPostgres
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()
	pool, err := bootstrap.OpenPool(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("migrations applied")
}
