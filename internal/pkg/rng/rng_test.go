package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-pantheon/internal/testutils"
)

type SourceTestSuite struct {
	suite.Suite
}

func TestSourceSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) TestLowRollerAlwaysSucceeds() {
	src := rng.New(testutils.LowRoller())

	s.Assert().Equal(0, src.Random2(10))
	s.Assert().True(src.OneChanceIn(4))
	s.Assert().True(src.XChanceInY(1, 20))
	s.Assert().True(src.CoinFlip())
	s.Assert().Equal(2, src.RollDice(2, 4))
	s.Assert().Equal(4, src.DivRandRound(7, 2))
}

func (s *SourceTestSuite) TestHighRollerAlwaysFails() {
	src := rng.New(testutils.HighRoller())

	s.Assert().Equal(9, src.Random2(10))
	s.Assert().False(src.OneChanceIn(4))
	s.Assert().False(src.XChanceInY(19, 20))
	s.Assert().False(src.CoinFlip())
	s.Assert().Equal(3, src.DivRandRound(7, 2))
}

func (s *SourceTestSuite) TestEdgeArguments() {
	src := rng.New(testutils.HighRoller())

	s.Assert().Equal(0, src.Random2(0))
	s.Assert().True(src.OneChanceIn(1))
	s.Assert().False(src.XChanceInY(0, 5))
	s.Assert().True(src.XChanceInY(5, 5))
	s.Assert().Equal(3, src.DivRandRound(6, 2))
	s.Assert().Panics(func() { src.DivRandRound(1, 0) })
}

func (s *SourceTestSuite) TestRandom2Avg() {
	src := rng.New(testutils.NewScriptedRoller(10, 1))
	// (9 + 0) / 2
	s.Assert().Equal(4, src.Random2Avg(10, 2))
}

func (s *SourceTestSuite) TestReservoirSingleCandidate() {
	src := rng.New(testutils.HighRoller())
	res := rng.NewReservoir[string](src)
	res.Offer("fireball", 100)

	pick, ok := res.Pick()
	s.Assert().True(ok)
	s.Assert().Equal("fireball", pick)
}

func (s *SourceTestSuite) TestReservoirEmpty() {
	src := rng.New(testutils.LowRoller())
	pick, ok := rng.Choose[string](src)
	s.Assert().False(ok)
	s.Assert().Empty(pick)
}

func (s *SourceTestSuite) TestReservoirReplacement() {
	// Low rolls replace at every offer, so the last candidate wins.
	low := rng.New(testutils.LowRoller())
	pick, ok := rng.Choose(low,
		rng.Weighted[string]{Value: "common", Weight: 90},
		rng.Weighted[string]{Value: "rare", Weight: 10},
	)
	s.Require().True(ok)
	s.Assert().Equal("rare", pick)

	// High rolls never replace after the first, so the first candidate stays.
	high := rng.New(testutils.HighRoller())
	pick, ok = rng.Choose(high,
		rng.Weighted[string]{Value: "common", Weight: 90},
		rng.Weighted[string]{Value: "rare", Weight: 10},
		rng.Weighted[string]{Value: "skipped", Weight: 0},
	)
	s.Require().True(ok)
	s.Assert().Equal("common", pick)
}
