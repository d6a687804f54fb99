package main

import (
	"context"
	"log"
	"os"

	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	if err := seed.Run(ctx, dbpool, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Printf("database seeded")
}
