package favorstate

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock"
)

// InMemoryRepository keeps favor state in process memory. Used by the
// simulate command and by tests that do not need Redis.
type InMemoryRepository struct {
	mu     sync.RWMutex
	states map[string]*pantheon.State
	clock  clock.Clock
}

// NewInMemoryRepository creates a new in-memory repository. A nil clock
// falls back to wall time.
func NewInMemoryRepository(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		states: make(map[string]*pantheon.State),
		clock:  c,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns a copy of the stored state
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[input.SessionID]
	if !ok {
		return nil, errors.NotFoundf("favor state for session %s not found", input.SessionID)
	}

	return &GetOutput{State: state.Clone()}, nil
}

// Save stores a copy of the state
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if err := input.State.Validate(); err != nil {
		return nil, errors.Wrap(err, "refusing to store invalid favor state")
	}

	state := input.State.Clone()
	state.UpdatedAt = r.clock.Now()

	r.mu.Lock()
	r.states[state.SessionID] = state
	r.mu.Unlock()

	return &SaveOutput{State: state.Clone()}, nil
}

// Delete removes the state if present
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.states[input.SessionID]
	delete(r.states, input.SessionID)
	return &DeleteOutput{Deleted: ok}, nil
}

// List returns stored session IDs in order
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &ListOutput{SessionIDs: ids}, nil
}
