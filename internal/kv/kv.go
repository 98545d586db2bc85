// Package kv defines the key-value storage boundary the cart persists
// against. Any backend with get/set-by-key semantics satisfies it.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound indicates no value is stored under the requested key.
var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
