package main

import (
	"context"
	"log"
	"os"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply seed: %v", err)
	}

	logger.Println("seed data applied")
}
