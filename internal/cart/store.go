// Package cart implements the shopping cart: insertion-ordered lines, derived
// totals, and best-effort persistence against a key-value store.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/wishwaD7/digital-books-store/internal/domain"
	"github.com/wishwaD7/digital-books-store/internal/kv"
)

// StorageKey is the fixed key the serialized cart lives under.
const StorageKey = "digital-books-cart"

// Store owns the cart state. In-memory state is the source of truth; the
// key-value store is a best-effort mirror and its failures never surface to
// callers. All operations are serialized by the internal lock.
type Store struct {
	mu          sync.Mutex
	storage     kv.Store
	logger      *log.Logger
	lines       []domain.CartLine
	initialized bool
}

func NewStore(storage kv.Store, logger *log.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Restore loads the persisted cart. Read and parse failures are swallowed and
// leave the cart empty. It marks the store initialized exactly once,
// regardless of outcome; persistence is suppressed until then so a restore is
// never clobbered by a premature save of the empty pre-restore state.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.initialized = true

	data, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Printf("restore cart: %v", err)
		}
		return
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Printf("restore cart: parse: %v", err)
		return
	}
	s.lines = sanitize(lines)
}

// Initialized reports whether the first restore attempt has completed.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// AddToCart increments the quantity of an existing line, or appends a new
// line with quantity 1. Line fields stay as captured at first add.
func (s *Store) AddToCart(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity++
			s.persist(ctx)
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: product, Quantity: 1})
	s.persist(ctx)
}

// RemoveFromCart deletes the line for id; absence is not an error.
func (s *Store) RemoveFromCart(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line; an unknown id is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// Lines returns the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of discounted unit price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// ItemCount is the total unit count, not the distinct-line count.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// persist mirrors the cart to storage. Callers must hold the lock. Write
// failures are logged and ignored; the next mutation supersedes them.
func (s *Store) persist(ctx context.Context) {
	if !s.initialized {
		return
	}

	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Printf("persist cart: encode: %v", err)
		return
	}
	if err := s.storage.Set(ctx, StorageKey, data); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
}

// sanitize drops lines a valid cart cannot contain: non-positive quantities
// and duplicate IDs. Stored data is untrusted after a round-trip.
func sanitize(lines []domain.CartLine) []domain.CartLine {
	seen := make(map[string]struct{}, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if l.Quantity < 1 || l.ID == "" {
			continue
		}
		if _, dup := seen[l.ID]; dup {
			continue
		}
		seen[l.ID] = struct{}{}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
