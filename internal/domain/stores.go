package domain

import (
	"context"
	"errors"
)

// ErrContextNotFound is returned when a session has no stored context.
var ErrContextNotFound = errors.New("conversation context not found")

// ContextStore holds per-session conversation context. Implementations must
// make Update an atomic read-modify-write: concurrent turns for the same
// session may not drop each other's changes.
type ContextStore interface {
	// Get returns a snapshot of the session's context, or ErrContextNotFound.
	Get(ctx context.Context, sessionID string) (*ConversationContext, error)

	// Update atomically applies fn to the session's context, creating an
	// empty context first if none exists, and returns the updated snapshot.
	Update(ctx context.Context, sessionID string, fn func(*ConversationContext)) (*ConversationContext, error)

	// Evict removes the session's context. Evicting an absent session is not
	// an error.
	Evict(ctx context.Context, sessionID string) error

	// PruneExpired drops contexts past their TTL and returns how many were
	// removed. Backends with native expiry may report zero.
	PruneExpired(ctx context.Context) (int, error)
}
