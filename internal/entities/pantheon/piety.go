package pantheon

import "math"

const (
	// MaxPiety bounds piety for every patron
	MaxPiety = 200
	// HysteresisLimit bounds how much loss can be banked against future gains
	HysteresisLimit = 1
	// MaxPenance bounds every penance counter
	MaxPenance = 255
	// MaxGiftTimeout bounds gift_timeout
	MaxGiftTimeout = 200
	// SpellOfferTicks is how long an ordinary spell offer stays open
	SpellOfferTicks = 100
	// NoBreakpoint is returned for breakpoint indexes past the table
	NoBreakpoint = 255
	// NumRanks is the number of rank thresholds; ranks run 0..NumRanks
	NumRanks = 6
)

var breakpoints = [NumRanks]int{30, 50, 75, 100, 120, 160}

// chaos ranks count upward by upper bound instead of lower bound
var chaosBreakpoints = [NumRanks]int{20, 50, 80, 120, 180, math.MaxInt}

// Breakpoint returns the piety needed for rank i+1
func Breakpoint(i int) int {
	if i < 0 || i >= NumRanks {
		return NoBreakpoint
	}
	return breakpoints[i]
}

// Rank derives the favor rank of piety for patron p
func Rank(p Patron, piety int) int {
	if ConfigFor(p).ChaosRanks {
		for i, bp := range chaosBreakpoints {
			if piety <= bp {
				return i + 1
			}
		}
		return NumRanks
	}

	for i := NumRanks; i >= 1; i-- {
		if piety >= breakpoints[i-1] {
			return i
		}
	}
	return 0
}
