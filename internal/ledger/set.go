package ledger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Set hands out one Ledger per user profile, hydrating lazily on first
// touch and keeping it for the life of the process.
type Set struct {
	mu    sync.Mutex
	store Storage
	log   *zap.Logger
	m     map[string]*Ledger
}

func NewSet(store Storage, log *zap.Logger) *Set {
	return &Set{store: store, log: log, m: make(map[string]*Ledger)}
}

func (s *Set) For(ctx context.Context, userID string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.m[userID]; ok {
		return l
	}
	l := Open(ctx, s.store, userID, s.log)
	s.m[userID] = l
	return l
}

func (s *Set) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
