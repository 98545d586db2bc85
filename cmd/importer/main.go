package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/wishwaD7/digital-books-store/internal/catalog"
	"github.com/wishwaD7/digital-books-store/internal/config"
	"github.com/wishwaD7/digital-books-store/internal/domain"
	"github.com/wishwaD7/digital-books-store/internal/importer"
)

type catalogFileWriter struct {
	path string
}

func (w catalogFileWriter) Write(products []domain.Product) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}
	return catalog.WriteFile(w.path, products)
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	csvPath := flag.String("csv", "", "path to the book catalog CSV export")
	flag.Parse()
	if *csvPath == "" {
		logger.Fatal("missing -csv flag")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, catalogFileWriter{path: cfg.CatalogPath})
	count, err := imp.Run()
	if err != nil {
		logger.Fatalf("import: %v", err)
	}

	logger.Printf("imported %d books to %s", count, cfg.CatalogPath)
}
