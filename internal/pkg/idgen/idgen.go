// Package idgen issues identifiers for sessions and placed followers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen Generator

// Generator issues unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// SequentialGenerator counts up from 1. The sandbox world uses it so placed
// followers get short readable handles like "game_3".
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a counter whose IDs carry prefix
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

// UUIDGenerator issues random v4 UUIDs. Session IDs use it.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator whose IDs carry prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a fresh ID
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
