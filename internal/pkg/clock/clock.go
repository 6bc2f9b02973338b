// Package clock stamps stored favor records
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock Clock

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC
type Real struct{}

// Now returns the current UTC time
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return Real{}
}

// Fixed reports At until moved with Advance. Repository tests stamp records with it.
type Fixed struct {
	At time.Time
}

// Now returns the held instant
func (c *Fixed) Now() time.Time {
	return c.At
}

// Advance moves the held instant forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
