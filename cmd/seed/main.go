package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/wishwaD7/digital-books-store/internal/catalog"
	"github.com/wishwaD7/digital-books-store/internal/config"
	"github.com/wishwaD7/digital-books-store/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if err := os.MkdirAll(filepath.Dir(cfg.CatalogPath), 0o755); err != nil {
		logger.Fatalf("create catalog directory: %v", err)
	}

	products := seed.Products()
	if err := catalog.WriteFile(cfg.CatalogPath, products); err != nil {
		logger.Fatalf("write catalog: %v", err)
	}

	logger.Printf("seed catalog written: %d books to %s", len(products), cfg.CatalogPath)
}
