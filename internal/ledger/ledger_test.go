package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"LearnHub/internal/catalog"
	"LearnHub/internal/ledger"
)

// twoCoursePrices prices course A at 100 with a 60 discount and course
// B at 50 with none, the canonical cart scenario.
func twoCoursePrices() ledger.PriceFunc {
	prices := map[string]string{"A": "60", "B": "50"}
	return func(ctx context.Context, id string) (decimal.Decimal, bool, error) {
		p, ok := prices[id]
		if !ok {
			return decimal.Zero, false, nil
		}
		return decimal.RequireFromString(p), true, nil
	}
}

func newLedger(t *testing.T) (*ledger.Ledger, *ledger.MemStorage) {
	t.Helper()
	store := ledger.NewMemStorage()
	return ledger.Open(context.Background(), store, "", zap.NewNop()), store
}

func TestToggleSave_DoubleToggleRestores(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	assert.False(t, l.IsSaved("1"))

	assert.True(t, l.ToggleSave(ctx, "1"))
	assert.True(t, l.IsSaved("1"))

	assert.False(t, l.ToggleSave(ctx, "1"))
	assert.False(t, l.IsSaved("1"))
	assert.Empty(t, l.SavedIDs())
}

func TestAddToCart_Idempotent(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	assert.True(t, l.AddToCart(ctx, "A"))
	assert.False(t, l.AddToCart(ctx, "A"))
	assert.Equal(t, []string{"A"}, l.CartIDs())

	once, err := l.TotalPrice(ctx, twoCoursePrices())
	require.NoError(t, err)

	l.AddToCart(ctx, "A")
	twice, err := l.TotalPrice(ctx, twoCoursePrices())
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
}

func TestCart_OrderAndTotals(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()
	price := twoCoursePrices()

	l.AddToCart(ctx, "A")
	l.AddToCart(ctx, "B")
	assert.Equal(t, []string{"A", "B"}, l.CartIDs())
	assert.True(t, l.InCart("A"))
	assert.False(t, l.InCart("Z"))

	total, err := l.TotalPrice(ctx, price)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("110")), "got %s", total)

	l.RemoveFromCart(ctx, "A")
	total, err = l.TotalPrice(ctx, price)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("50")), "got %s", total)

	// Removing an absent id is a no-op.
	l.RemoveFromCart(ctx, "A")
	assert.Equal(t, []string{"B"}, l.CartIDs())

	l.ClearCart(ctx)
	assert.Empty(t, l.CartIDs())

	total, err = l.TotalPrice(ctx, price)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotalPrice_SkipsUnknownIDs(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	// The ledger accepts ids the catalog has never heard of.
	l.AddToCart(ctx, "ghost")
	l.AddToCart(ctx, "B")

	total, err := l.TotalPrice(ctx, twoCoursePrices())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("50")))
}

func TestPurchase_IdempotentAndKeepsCart(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.AddToCart(ctx, "A")
	l.Purchase(ctx, "A", "B", "A")

	assert.True(t, l.IsPurchased("A"))
	assert.True(t, l.IsPurchased("B"))
	assert.Equal(t, []string{"A", "B"}, l.PurchasedIDs())

	// Purchase never touches the cart; clearing is the caller's step.
	assert.Equal(t, []string{"A"}, l.CartIDs())
}

func TestPurchase_LeavesCatalogUntouched(t *testing.T) {
	engine := catalog.NewEngine(catalog.NewMemRepo())
	l, _ := newLedger(t)
	ctx := context.Background()

	before, err := engine.Search(ctx, catalog.Filters{})
	require.NoError(t, err)

	l.Purchase(ctx, "1")

	after, err := engine.Search(ctx, catalog.Filters{})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.True(t, l.IsPurchased("1"))
	_, ok, err := engine.Repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHydration_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemStorage()

	l := ledger.Open(ctx, store, "", zap.NewNop())
	l.AddToCart(ctx, "3")
	l.AddToCart(ctx, "1")
	l.AddToCart(ctx, "2")
	l.ToggleSave(ctx, "5")
	l.ToggleSave(ctx, "9")
	l.Purchase(ctx, "7")

	// A fresh ledger over the same store sees identical collections,
	// cart order included.
	fresh := ledger.Open(ctx, store, "", zap.NewNop())
	assert.Equal(t, []string{"3", "1", "2"}, fresh.CartIDs())
	assert.Equal(t, []string{"5", "9"}, fresh.SavedIDs())
	assert.Equal(t, []string{"7"}, fresh.PurchasedIDs())
}

func TestHydration_MissingAndCorruptAreEmpty(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemStorage()

	require.NoError(t, store.Save(ctx, "savedCourses", `{"not":"a list"`))
	require.NoError(t, store.Save(ctx, "cart", `["1","1","2"]`))

	l := ledger.Open(ctx, store, "", zap.NewNop())
	assert.Empty(t, l.SavedIDs(), "corrupt entry hydrates empty")
	assert.Empty(t, l.PurchasedIDs(), "missing entry hydrates empty")
	assert.Equal(t, []string{"1", "2"}, l.CartIDs(), "duplicates collapse on hydrate")
}

func TestLedgers_AreNamespacedPerUser(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewMemStorage()
	set := ledger.NewSet(store, zap.NewNop())

	set.For(ctx, "u_1").AddToCart(ctx, "1")
	set.For(ctx, "u_2").AddToCart(ctx, "2")

	assert.Equal(t, []string{"1"}, set.For(ctx, "u_1").CartIDs())
	assert.Equal(t, []string{"2"}, set.For(ctx, "u_2").CartIDs())
}

func TestTheme_RoundTrip(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	assert.Equal(t, "", l.Theme(ctx))
	l.SetTheme(ctx, "dark")
	assert.Equal(t, "dark", l.Theme(ctx))
}
