package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceFunc resolves a course id to its effective price. ok is false
// when the id is unknown to the catalog; the ledger itself never
// validates ids, so a resolver may legitimately decline one.
type PriceFunc func(ctx context.Context, courseID string) (decimal.Decimal, bool, error)

// Ledger holds one profile's saved/cart/purchased membership. All
// three collections are insertion-ordered and duplicate-free. Every
// mutation is written through to Storage before the call returns;
// write failures are logged and the in-memory state stands, matching
// the best-effort contract of browser local storage.
type Ledger struct {
	mu    sync.Mutex
	store Storage
	log   *zap.Logger
	ns    string

	saved     []string
	purchased []string
	cart      []string
}

// Open hydrates a ledger from storage. Missing or corrupt entries
// hydrate to empty collections, never to an error.
func Open(ctx context.Context, store Storage, ns string, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Ledger{store: store, log: log, ns: ns}
	l.saved = l.loadIDs(ctx, keySaved)
	l.purchased = l.loadIDs(ctx, keyPurchased)
	l.cart = l.loadIDs(ctx, keyCart)
	return l
}

// ToggleSave flips saved membership and reports the new state.
func (l *Ledger) ToggleSave(ctx context.Context, courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if contains(l.saved, courseID) {
		l.saved = remove(l.saved, courseID)
	} else {
		l.saved = append(l.saved, courseID)
	}
	l.persist(ctx, keySaved, l.saved)
	return contains(l.saved, courseID)
}

func (l *Ledger) IsSaved(courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return contains(l.saved, courseID)
}

// AddToCart appends the id unless already present. It deliberately
// does not check purchase status; preventing a re-buy is the caller's
// concern.
func (l *Ledger) AddToCart(ctx context.Context, courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if contains(l.cart, courseID) {
		return false
	}
	l.cart = append(l.cart, courseID)
	l.persist(ctx, keyCart, l.cart)
	return true
}

func (l *Ledger) RemoveFromCart(ctx context.Context, courseID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !contains(l.cart, courseID) {
		return
	}
	l.cart = remove(l.cart, courseID)
	l.persist(ctx, keyCart, l.cart)
}

func (l *Ledger) ClearCart(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cart = nil
	l.persist(ctx, keyCart, l.cart)
}

func (l *Ledger) InCart(courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return contains(l.cart, courseID)
}

// Purchase marks each id purchased, idempotently. It does NOT touch
// the cart: checkout clears the cart as its own explicit step.
func (l *Ledger) Purchase(ctx context.Context, courseIDs ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	changed := false
	for _, id := range courseIDs {
		if contains(l.purchased, id) {
			continue
		}
		l.purchased = append(l.purchased, id)
		changed = true
	}
	if changed {
		l.persist(ctx, keyPurchased, l.purchased)
	}
}

func (l *Ledger) IsPurchased(courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return contains(l.purchased, courseID)
}

func (l *Ledger) SavedIDs() []string     { return l.snapshot(&l.saved) }
func (l *Ledger) PurchasedIDs() []string { return l.snapshot(&l.purchased) }
func (l *Ledger) CartIDs() []string      { return l.snapshot(&l.cart) }

// TotalPrice sums the effective price of every cart item, evaluated
// live against the resolver. Ids the resolver cannot price contribute
// nothing.
func (l *Ledger) TotalPrice(ctx context.Context, price PriceFunc) (decimal.Decimal, error) {
	ids := l.CartIDs()

	total := decimal.Zero
	for _, id := range ids {
		p, ok, err := price(ctx, id)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			continue
		}
		total = total.Add(p)
	}
	return total, nil
}

// Theme returns the stored display preference, empty when unset.
func (l *Ledger) Theme(ctx context.Context) string {
	v, ok, err := l.store.Load(ctx, storageKey(l.ns, keyTheme))
	if err != nil || !ok {
		return ""
	}
	return v
}

func (l *Ledger) SetTheme(ctx context.Context, theme string) {
	if err := l.store.Save(ctx, storageKey(l.ns, keyTheme), theme); err != nil {
		l.log.Warn("mirror write failed", zap.String("key", keyTheme), zap.Error(err))
	}
}

func (l *Ledger) snapshot(field *[]string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(*field))
	copy(out, *field)
	return out
}

func (l *Ledger) loadIDs(ctx context.Context, key string) []string {
	v, ok, err := l.store.Load(ctx, storageKey(l.ns, key))
	if err != nil {
		l.log.Warn("mirror read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(v), &ids); err != nil {
		// Corrupt entry: hydrate empty, same as a missing key.
		l.log.Warn("mirror entry corrupt", zap.String("key", key))
		return nil
	}
	return dedupe(ids)
}

// persist serializes under the caller-held lock so the durable state
// never lags the in-memory state within a session.
func (l *Ledger) persist(ctx context.Context, key string, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	buf, err := json.Marshal(ids)
	if err != nil {
		l.log.Warn("mirror encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := l.store.Save(ctx, storageKey(l.ns, key), string(buf)); err != nil {
		l.log.Warn("mirror write failed", zap.String("key", key), zap.Error(err))
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
