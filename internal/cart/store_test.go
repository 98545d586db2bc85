package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwaD7/digital-books-store/internal/domain"
	"github.com/wishwaD7/digital-books-store/internal/kv"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	storage := kv.NewMemory()
	store := NewStore(storage, discardLogger())
	store.Restore(t.Context())
	return store, storage
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:       gofakeit.UUID(),
		Title:    gofakeit.BookTitle(),
		Author:   gofakeit.BookAuthor(),
		Genre:    gofakeit.BookGenre(),
		Price:    decimal.NewFromFloat(gofakeit.Price(1, 50)).Round(2),
		Discount: decimal.Zero,
		Format:   domain.FormatEPUB,
		Rating:   4,
		Pages:    gofakeit.Number(50, 900),
	}
}

func productAB() (domain.Product, domain.Product) {
	a := randomProduct()
	a.Price = decimal.RequireFromString("10")
	b := randomProduct()
	b.Price = decimal.RequireFromString("20")
	b.Discount = decimal.RequireFromString("0.5")
	return a, b
}

func TestAddToCart_SameProductIncrementsQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()
	p := randomProduct()

	store.AddToCart(ctx, p)
	store.AddToCart(ctx, p)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, p.ID, lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddToCart_KeepsFieldsFromFirstAdd(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()
	p := randomProduct()
	store.AddToCart(ctx, p)

	// A later add with changed catalog data must not refresh the line.
	changed := p
	changed.Price = p.Price.Add(decimal.NewFromInt(5))
	changed.Title = "Revised Edition"
	store.AddToCart(ctx, changed)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, p.Title, lines[0].Title)
	assert.True(t, p.Price.Equal(lines[0].Price))
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartInvariants_HoldAfterOperationSequence(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()

	products := make([]domain.Product, 5)
	for i := range products {
		products[i] = randomProduct()
	}
	for _, p := range products {
		store.AddToCart(ctx, p)
		store.AddToCart(ctx, p)
	}
	store.RemoveFromCart(ctx, products[0].ID)
	store.UpdateQuantity(ctx, products[1].ID, 7)
	store.UpdateQuantity(ctx, products[2].ID, 0)
	store.AddToCart(ctx, products[0])

	seen := map[string]bool{}
	for _, l := range store.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, 1)
		assert.False(t, seen[l.ID], "duplicate line for %s", l.ID)
		seen[l.ID] = true
	}
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("zero removes the line", func(t *testing.T) {
		store, _ := newTestStore(t)
		p := randomProduct()
		store.AddToCart(ctx, p)

		store.UpdateQuantity(ctx, p.ID, 0)

		assert.Empty(t, store.Lines())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		store, _ := newTestStore(t)
		p := randomProduct()
		store.AddToCart(ctx, p)

		store.UpdateQuantity(ctx, p.ID, -3)

		assert.Empty(t, store.Lines())
	})

	t.Run("sets quantity of existing line", func(t *testing.T) {
		store, _ := newTestStore(t)
		p := randomProduct()
		store.AddToCart(ctx, p)

		store.UpdateQuantity(ctx, p.ID, 5)

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t)
		p := randomProduct()
		store.AddToCart(ctx, p)

		store.UpdateQuantity(ctx, "nonexistent", 5)

		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, p.ID, lines[0].ID)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestRemoveFromCart_AbsentIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()
	p := randomProduct()
	store.AddToCart(ctx, p)

	store.RemoveFromCart(ctx, "nonexistent")

	assert.Len(t, store.Lines(), 1)
}

func TestTotals_DiscountScenario(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := t.Context()
	a, b := productAB()

	store.AddToCart(ctx, a)
	store.AddToCart(ctx, b)
	store.AddToCart(ctx, b)

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)

	// A at 10, B at 20 with 50% off: 10*1 + 10*2.
	assert.True(t, store.Total().Equal(decimal.RequireFromString("30")),
		"total = %s", store.Total())
	assert.Equal(t, 3, store.ItemCount())
}

func TestClearCart(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := t.Context()
	store.AddToCart(ctx, randomProduct())
	store.AddToCart(ctx, randomProduct())

	store.ClearCart(ctx)

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.ItemCount())
	assert.True(t, store.Total().IsZero())

	// The cleared state is what got persisted.
	data, err := storage.Get(ctx, StorageKey)
	require.NoError(t, err)
	var persisted []domain.CartLine
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Empty(t, persisted)
}

func TestRestore_EmptyStorageYieldsEmptyInitializedCart(t *testing.T) {
	storage := kv.NewMemory()
	store := NewStore(storage, discardLogger())

	store.Restore(t.Context())

	assert.True(t, store.Initialized())
	assert.Empty(t, store.Lines())
}

func TestRestore_CorruptPayloadYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	require.NoError(t, storage.Set(ctx, StorageKey, []byte("{corrupt")))

	store := NewStore(storage, discardLogger())
	store.Restore(ctx)

	assert.True(t, store.Initialized())
	assert.Empty(t, store.Lines())
}

func TestRestore_DropsInvalidRestoredLines(t *testing.T) {
	ctx := context.Background()
	p := randomProduct()
	lines := []domain.CartLine{
		{Product: p, Quantity: 2},
		{Product: p, Quantity: 1},               // duplicate id
		{Product: randomProduct(), Quantity: 0}, // quantity below one
	}
	data, err := json.Marshal(lines)
	require.NoError(t, err)

	storage := kv.NewMemory()
	require.NoError(t, storage.Set(ctx, StorageKey, data))

	store := NewStore(storage, discardLogger())
	store.Restore(ctx)

	restored := store.Lines()
	require.Len(t, restored, 1)
	assert.Equal(t, p.ID, restored[0].ID)
	assert.Equal(t, 2, restored[0].Quantity)
}

func TestRestore_RunsOnce(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestStore(t)
	p := randomProduct()
	store.AddToCart(ctx, p)

	// Overwrite storage behind the store's back; a second Restore must not
	// re-read it.
	require.NoError(t, storage.Set(ctx, StorageKey, []byte("[]")))
	store.Restore(ctx)

	assert.Len(t, store.Lines(), 1)
}

func TestPersist_SuppressedUntilRestore(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()
	seeded, err := json.Marshal([]domain.CartLine{{Product: randomProduct(), Quantity: 3}})
	require.NoError(t, err)
	require.NoError(t, storage.Set(ctx, StorageKey, seeded))

	store := NewStore(storage, discardLogger())

	// Mutating before Restore operates on the empty cart and must not
	// clobber the stored state.
	store.AddToCart(ctx, randomProduct())
	data, err := storage.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, seeded, data)
}

func TestPersistence_RoundTripAcrossStores(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()

	first := NewStore(storage, discardLogger())
	first.Restore(ctx)
	a, b := productAB()
	first.AddToCart(ctx, a)
	first.AddToCart(ctx, b)
	first.UpdateQuantity(ctx, b.ID, 4)

	second := NewStore(storage, discardLogger())
	second.Restore(ctx)

	require.Len(t, second.Lines(), 2)
	assert.Equal(t, first.ItemCount(), second.ItemCount())
	assert.True(t, first.Total().Equal(second.Total()))
}

type failingStore struct {
	getErr error
	setErr error
}

func (f *failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.getErr }
func (f *failingStore) Set(context.Context, string, []byte) error   { return f.setErr }
func (f *failingStore) Ping(context.Context) error                  { return nil }
func (f *failingStore) Close() error                                { return nil }

func TestStorageFailures_NeverSurface(t *testing.T) {
	ctx := context.Background()
	broken := &failingStore{
		getErr: errors.New("disk on fire"),
		setErr: errors.New("disk still on fire"),
	}

	store := NewStore(broken, discardLogger())
	store.Restore(ctx)
	assert.True(t, store.Initialized())

	p := randomProduct()
	store.AddToCart(ctx, p)
	store.UpdateQuantity(ctx, p.ID, 2)

	// In-memory state is the source of truth despite every write failing.
	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, store.ItemCount())
}
