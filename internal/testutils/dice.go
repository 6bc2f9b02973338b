package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that replays queued results and then falls
// back to a fixed policy. Results are raw die faces in [1, size].
type ScriptedRoller struct {
	queue    []int
	fallback func(size int) int
	Calls    int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller replays faces in order, then always rolls the lowest face
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{queue: faces, fallback: func(int) int { return 1 }}
}

// LowRoller always rolls 1. Every probabilistic check in the favor engine
// succeeds and every random2 draw is zero.
func LowRoller() *ScriptedRoller {
	return &ScriptedRoller{fallback: func(int) int { return 1 }}
}

// HighRoller always rolls the highest face. Every "one chance in N" check with
// N > 1 fails.
func HighRoller() *ScriptedRoller {
	return &ScriptedRoller{fallback: func(size int) int { return size }}
}

// Push appends faces to the replay queue
func (r *ScriptedRoller) Push(faces ...int) {
	r.queue = append(r.queue, faces...)
}

// Roll returns the next scripted face, clamped to the die size
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.Calls++
	if len(r.queue) == 0 {
		return r.fallback(size), nil
	}
	face := r.queue[0]
	r.queue = r.queue[1:]
	if face < 1 {
		face = 1
	}
	if face > size {
		face = size
	}
	return face, nil
}

// RollN rolls count dice
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
