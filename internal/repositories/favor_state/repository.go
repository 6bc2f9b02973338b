// Package favorstate persists the per-session favor record
package favorstate

import (
	"context"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=favorstatemock github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state Repository

// Repository stores one pantheon.State per session
type Repository interface {
	// Get returns NotFound when the session has never been saved
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	// Save overwrites the stored record and stamps UpdatedAt
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
	// List returns every stored session ID
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// GetInput identifies a session
type GetInput struct {
	SessionID string
}

// GetOutput carries the stored state
type GetOutput struct {
	State *pantheon.State
}

// SaveInput carries the state to store. State.SessionID is the key.
type SaveInput struct {
	State *pantheon.State
}

// SaveOutput carries the state as stored
type SaveOutput struct {
	State *pantheon.State
}

// DeleteInput identifies a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput reports whether a record was removed
type DeleteOutput struct {
	Deleted bool
}

// ListInput has no filters yet
type ListInput struct{}

// ListOutput lists stored sessions
type ListOutput struct {
	SessionIDs []string
}
