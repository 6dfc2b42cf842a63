// Package memory holds a fixed in-memory ledger, used as the default
// backend and as a test double for the loader port.
package memory

import (
	"context"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
)

type Store struct {
	items core.Ledger
}

var _ ledger.Loader = (*Store)(nil)

func New(items core.Ledger) *Store {
	return &Store{items: items}
}

// Load returns a copy so callers can never mutate the seed data.
func (s *Store) Load(_ context.Context) (core.Ledger, error) {
	out := make(core.Ledger, len(s.items))
	copy(out, s.items)
	return out, nil
}
