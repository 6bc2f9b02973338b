// Package rng adapts an rpg-toolkit dice roller into the small set of random
// helpers the favor engine draws from. One Source is shared per session and
// is not safe for concurrent use.
package rng

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// Source is the single random source of a favor session
type Source struct {
	roller dice.Roller
}

// New wraps a roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// Random2 returns a value in [0, n). Non-positive n yields 0.
func (s *Source) Random2(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := s.roller.Roll(n)
	errors.Assert(err == nil, "dice roller failed for d%d: %v", n, err)
	return v - 1
}

// OneChanceIn is true with probability 1/n
func (s *Source) OneChanceIn(n int) bool {
	if n <= 1 {
		return true
	}
	return s.Random2(n) == 0
}

// XChanceInY is true with probability x/y
func (s *Source) XChanceInY(x, y int) bool {
	if x <= 0 {
		return false
	}
	if x >= y {
		return true
	}
	return s.Random2(y) < x
}

// CoinFlip is true half of the time
func (s *Source) CoinFlip() bool {
	return s.Random2(2) == 0
}

// Random2Avg averages several draws below n to flatten the distribution
// toward n/2.
func (s *Source) Random2Avg(n, rolls int) int {
	if rolls <= 0 {
		rolls = 1
	}
	sum := s.Random2(n)
	for i := 1; i < rolls; i++ {
		sum += s.Random2(n + 1)
	}
	return sum / rolls
}

// RollDice sums count dice of the given size
func (s *Source) RollDice(count, size int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += s.Random2(size) + 1
	}
	return total
}

// DivRandRound divides and rounds the remainder up with probability
// remainder/den, so the expected value equals num/den.
func (s *Source) DivRandRound(num, den int) int {
	errors.Assert(den > 0, "division by non-positive denominator %d", den)
	q, r := num/den, num%den
	if r > 0 && s.Random2(den) < r {
		q++
	}
	return q
}
