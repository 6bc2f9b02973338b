package favorstate

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-pantheon/internal/redis"
)

const (
	// Key pattern: favor_state:{session_id}
	keyPrefix  = "favor_state:"
	defaultTTL = 7 * 24 * time.Hour
	scanCount  = 100

	errSessionIDEmpty = "session ID is required"
	errStateNil       = "state is required"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL of a stored record, refreshed on every save. Defaults to a week.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Fieldf("TTL", "must not be negative, got %s", c.TTL)
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for favor state
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get loads and validates a session's state
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.SessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("favor state for session %s not found", input.SessionID)
		}
		return nil, errors.Wrap(err, "failed to get favor state from Redis")
	}

	state, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "favor state for session %s is unreadable", input.SessionID)
	}

	return &GetOutput{State: state}, nil
}

// Save writes the state with a fresh TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
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

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal favor state")
	}

	if err := r.client.Set(ctx, buildKey(state.SessionID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store favor state in Redis")
	}

	return &SaveOutput{State: state}, nil
}

// Delete removes a session's state
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete favor state from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

// List scans for every stored session
func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan favor state keys")
	}
	sort.Strings(ids)

	return &ListOutput{SessionIDs: ids}, nil
}

// Key returns the Redis key a session is stored under
func Key(sessionID string) string {
	return buildKey(sessionID)
}

func buildKey(sessionID string) string {
	return keyPrefix + sessionID
}

// Decode parses a stored record. Older records missing maps are normalized;
// records that violate the state bounds are reported as data loss.
func Decode(data []byte) (*pantheon.State, error) {
	var state pantheon.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "corrupt favor state")
	}
	state.Normalize()
	if err := state.Validate(); err != nil {
		return &state, errors.WrapWithCode(err, errors.CodeDataLoss, "favor state out of bounds")
	}
	return &state, nil
}
