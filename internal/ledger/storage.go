package ledger

import "context"

// Storage is the persistence mirror: a durable string-keyed store the
// ledger writes through on every mutation and hydrates from on open.
// Values are opaque strings (JSON for collections). A missing key is
// (_, false, nil), never an error.
type Storage interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Logical key names, mirrored from the storefront's storage layout.
const (
	keySaved          = "savedCourses"
	keyPurchased      = "purchasedCourses"
	keyCart           = "cart"
	keyOrders         = "orders"
	keyTheme          = "theme"
	keyProgressPrefix = "completedLessons_"
)

// storageKey namespaces a logical key per user profile. An empty
// namespace keeps the flat key, which is what library users and tests
// see.
func storageKey(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + "/" + key
}
