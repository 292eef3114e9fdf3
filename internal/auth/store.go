package auth

import (
	"context"
	"errors"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is a storefront account. Avatar is a display URL and may be
// empty for self-registered users.
type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	Hash   []byte
	Role   string
}

type UserStore interface {
	Create(ctx context.Context, u User, password string) error
	Verify(ctx context.Context, email, password string) (User, error)
	Ping(ctx context.Context) error
}

// NewStore returns the default in-memory store seeded with the demo
// account.
func NewStore() UserStore {
	return NewMemStore()
}
