// Package memory implements the calculation store on an in-process slice.
// It backs tests and the STORE_TYPE=memory configuration.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/greenit/huella-digital/internal/domain"
	"github.com/greenit/huella-digital/internal/storage"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64
	rows   []domain.Calculation
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(ctx context.Context, c *domain.Calculation) (*domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *c
	stored.ID = s.nextID
	stored.CreatedAt = time.Now().UTC()
	s.rows = append(s.rows, stored)

	out := stored
	return &out, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = storage.NormalizeLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Calculation, 0, limit)
	for i := len(s.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.rows[i])
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }
