package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wishwaD7/digital-books-store/internal/cart"
	"github.com/wishwaD7/digital-books-store/internal/catalog"
	"github.com/wishwaD7/digital-books-store/internal/config"
	"github.com/wishwaD7/digital-books-store/internal/db"
	"github.com/wishwaD7/digital-books-store/internal/httpserver"
	"github.com/wishwaD7/digital-books-store/internal/kv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded: %d books, %d genres", cat.Len(), len(cat.Genres())-1)

	storage, err := openCartStorage(ctx, cfg)
	if err != nil {
		logger.Fatalf("open cart storage: %v", err)
	}
	defer storage.Close()

	store := cart.NewStore(storage, logger)
	store.Restore(ctx)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog: cat,
		Cart:    store,
		Storage: storage,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openCartStorage(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.CartStorage {
	case config.StorageMemory:
		return kv.NewMemory(), nil
	case config.StorageFile:
		return kv.NewFile(cfg.CartDir)
	case config.StorageSQLite:
		return kv.NewSQLite(cfg.CartDBPath)
	case config.StoragePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("unknown cart storage backend %q", cfg.CartStorage)
	}
}
