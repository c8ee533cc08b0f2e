package storage

import (
	"context"

	"github.com/greenit/huella-digital/internal/domain"
)

// DefaultListLimit caps history reads when the caller does not ask for a
// smaller window.
const DefaultListLimit = 200

// Store persists footprint calculations. The collection is append-only;
// there is no update or delete.
type Store interface {
	// Append assigns the identifier and creation timestamp, persists the
	// record and returns the canonical stored row. Identifiers are unique
	// and strictly increasing, including under concurrent calls.
	Append(ctx context.Context, c *domain.Calculation) (*domain.Calculation, error)

	// List returns stored calculations newest first. A limit of zero or
	// less falls back to DefaultListLimit.
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// NormalizeLimit substitutes the default cap when the caller passes no
// limit. Callers with a stricter configured cap enforce it themselves.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
