package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// SeededRoller is a reproducible dice.Roller for simulations and replays
type SeededRoller struct {
	r *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller returns a roller whose sequence is fixed by seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a face in [1, size]
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size %d", size)
	}
	return s.r.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
