package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Order is a checkout receipt. Items are course ids only; the catalog
// resolves them to full records.
type Order struct {
	ID        string          `json:"id"`
	CourseIDs []string        `json:"course_ids"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentForm carries the mock checkout fields. Nothing here ever
// reaches a real processor.
type PaymentForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrBadPaymentForm = errors.New("invalid payment details")
	ErrUnknownCourse  = errors.New("cart contains unknown course")
)

// Validate checks the form the way the storefront's checkout page did:
// inline, field by field, aborting before any state changes.
func (f PaymentForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name required")
	}
	if !strings.Contains(f.Email, "@") {
		return errors.New("valid email required")
	}

	digits := strings.ReplaceAll(strings.ReplaceAll(f.CardNumber, " ", ""), "-", "")
	if len(digits) < 13 || len(digits) > 19 {
		return errors.New("card number must be 13-19 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errors.New("card number must be digits")
		}
	}

	if err := validateExpiry(f.Expiry); err != nil {
		return err
	}

	if n := len(f.CVC); n < 3 || n > 4 {
		return errors.New("cvc must be 3 or 4 digits")
	}
	if _, err := strconv.Atoi(f.CVC); err != nil {
		return errors.New("cvc must be digits")
	}
	return nil
}

func validateExpiry(expiry string) error {
	parts := strings.SplitN(expiry, "/", 2)
	if len(parts) != 2 {
		return errors.New("expiry must be MM/YY")
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return errors.New("expiry month invalid")
	}
	if _, err := strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return errors.New("expiry year invalid")
	}
	return nil
}

// Checkout runs the mock payment flow for one ledger: validate, wait
// out the simulated gateway delay, price every cart item, mark them
// purchased, record a receipt, then clear the cart as its own explicit
// step. The delay honors context cancellation.
type Checkout struct {
	Courses CourseSource
	Delay   time.Duration
	Log     *zap.Logger
}

func (c *Checkout) Process(ctx context.Context, l *Ledger, form PaymentForm) (Order, error) {
	if err := form.Validate(); err != nil {
		return Order{}, errors.Join(ErrBadPaymentForm, err)
	}

	ids := l.CartIDs()
	if len(ids) == 0 {
		return Order{}, ErrEmptyCart
	}

	// Price first so a cart holding an id the catalog does not know
	// fails before any money math or state change.
	total := decimal.Zero
	for _, id := range ids {
		info, err := c.Courses.GetCourse(ctx, id)
		if errors.Is(err, ErrCourseNotFound) {
			return Order{}, errors.Join(ErrUnknownCourse, errors.New("course "+id))
		}
		if err != nil {
			return Order{}, err
		}
		total = total.Add(info.EffectivePrice())
	}

	if err := sleepCtx(ctx, c.Delay); err != nil {
		return Order{}, err
	}

	o := Order{
		ID:        "ord_" + uuid.NewString(),
		CourseIDs: ids,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}

	l.Purchase(ctx, ids...)
	l.appendOrder(ctx, o)
	l.ClearCart(ctx)

	if c.Log != nil {
		c.Log.Info("checkout complete",
			zap.String("order_id", o.ID),
			zap.Int("items", len(ids)),
			zap.String("total", o.Total.String()),
		)
	}
	return o, nil
}

// Orders returns this profile's receipts, oldest first.
func (l *Ledger) Orders(ctx context.Context) []Order {
	v, ok, err := l.store.Load(ctx, storageKey(l.ns, keyOrders))
	if err != nil || !ok {
		return nil
	}
	var orders []Order
	if err := json.Unmarshal([]byte(v), &orders); err != nil {
		return nil
	}
	return orders
}

func (l *Ledger) appendOrder(ctx context.Context, o Order) {
	orders := append(l.Orders(ctx), o)
	buf, err := json.Marshal(orders)
	if err != nil {
		l.log.Warn("mirror encode failed", zap.String("key", keyOrders), zap.Error(err))
		return
	}
	if err := l.store.Save(ctx, storageKey(l.ns, keyOrders), string(buf)); err != nil {
		l.log.Warn("mirror write failed", zap.String("key", keyOrders), zap.Error(err))
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
