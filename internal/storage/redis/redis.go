// Package redis implements the calculation store on Redis. Identifiers
// come from an INCR counter, rows live in a hash keyed by id and a sorted
// set scored by id serves newest-first reads.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenit/huella-digital/internal/domain"
	"github.com/greenit/huella-digital/internal/storage"
)

const (
	keyCounter = "huella:calculations:next_id"
	keyRows    = "huella:calculations:rows"
	keyIndex   = "huella:calculations:index"
)

type Store struct {
	client *redis.Client
}

func New(addr string) *Store {
	return &Store{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *Store) Append(ctx context.Context, c *domain.Calculation) (*domain.Calculation, error) {
	id, err := s.client.Incr(ctx, keyCounter).Result()
	if err != nil {
		return nil, fmt.Errorf("assign calculation id: %w", err)
	}

	stored := *c
	stored.ID = id
	stored.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode calculation: %w", err)
	}

	field := strconv.FormatInt(id, 10)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, keyRows, field, payload)
	pipe.ZAdd(ctx, keyIndex, redis.Z{Score: float64(id), Member: field})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store calculation: %w", err)
	}
	return &stored, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	limit = storage.NormalizeLimit(limit)

	ids, err := s.client.ZRevRange(ctx, keyIndex, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read calculation index: %w", err)
	}
	out := make([]domain.Calculation, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.client.HMGet(ctx, keyRows, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("read calculations: %w", err)
	}
	for _, row := range rows {
		raw, ok := row.(string)
		if !ok {
			// index entry without a row; skip rather than fail the read
			continue
		}
		var c domain.Calculation
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("decode calculation: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error { return s.client.Close() }
