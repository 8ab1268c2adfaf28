// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache caches the rendered overview per user. A cache failure is
// never fatal: callers fall back to recomputing from the store.
type SummaryCache interface {
	// Get returns the cached payload for a user, with ok=false on a miss.
	Get(ctx context.Context, userID uuid.UUID) (payload []byte, ok bool, err error)

	// Set stores the payload for a user until it expires or is invalidated.
	Set(ctx context.Context, userID uuid.UUID, payload []byte) error

	// Invalidate drops the cached payload after a mutation, forcing the next
	// read to re-fetch from the store.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
