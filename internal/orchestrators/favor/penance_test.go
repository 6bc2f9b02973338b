package favor_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/orchestrators/favor"
	"github.com/KirkDiggler/rpg-pantheon/internal/testutils"
)

type PenanceTestSuite struct {
	favorSuite
}

func TestPenanceSuite(t *testing.T) {
	suite.Run(t, new(PenanceTestSuite))
}

func (s *PenanceTestSuite) TestInvalidPatron() {
	s.start(pantheon.NewState("session-1"), testutils.LowRoller())

	_, err := s.svc.IncurPenance(s.ctx, &favor.IncurPenanceInput{Patron: pantheon.None, Amount: 5})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.NumPatrons, Amount: 5})
	s.True(errors.IsInvalidArgument(err))
}

func (s *PenanceTestSuite) TestPenanceSuppressesAndRestoresPassives() {
	s.start(s.following(pantheon.Dithmenos, 60), testutils.LowRoller())
	s.Require().True(s.svc.HasPassive(pantheon.PassiveUmbra))

	out, err := s.svc.IncurPenance(s.ctx, &favor.IncurPenanceInput{Patron: pantheon.Dithmenos, Amount: 5})
	s.Require().NoError(err)
	s.Equal(5, out.Penance)
	s.False(s.svc.HasPassive(pantheon.PassiveUmbra))
	s.True(s.svc.IsActivelyRetributive(pantheon.Dithmenos))
	s.Equal([]pantheon.Passive{pantheon.PassiveUmbra}, s.svc.State().SuppressedPassives[pantheon.Dithmenos])
	s.Contains(s.messages(), "Your aura of darkness fades away.")

	decay, err := s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Dithmenos, Amount: 5})
	s.Require().NoError(err)
	s.True(decay.Mollified)
	s.Equal(0, decay.Penance)
	s.True(s.svc.HasPassive(pantheon.PassiveUmbra))
	s.Empty(s.svc.State().SuppressedPassives)

	msgs := s.messages()
	s.Contains(msgs, "Dithmenos seems mollified.")
	s.Contains(msgs, "You are shrouded in an aura of darkness!")
	s.Equal(1, s.events.count(rpgtoolkit.TopicMollified))
}

func (s *PenanceTestSuite) TestMollifyPublishesSnapshotRestore() {
	s.start(s.following(pantheon.Dithmenos, 60), testutils.LowRoller())

	_, err := s.svc.IncurPenance(s.ctx, &favor.IncurPenanceInput{Patron: pantheon.Dithmenos, Amount: 3})
	s.Require().NoError(err)
	_, err = s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Dithmenos, Amount: 3})
	s.Require().NoError(err)

	var restored []*rpgtoolkit.Notice
	for _, n := range s.events.notices {
		if n.Topic == rpgtoolkit.TopicPassiveChanged && n.Fields[rpgtoolkit.KeyRestored] == true {
			restored = append(restored, n)
		}
	}
	s.Require().Len(restored, 1)
	s.Equal(string(pantheon.PassiveUmbra), restored[0].Fields[rpgtoolkit.KeyPassive])
	s.Equal(1, s.countMessages(s.messages(), "You are shrouded in an aura of darkness!"))
}

func (s *PenanceTestSuite) TestSnapshotPassiveLostToRankDrop() {
	s.start(s.following(pantheon.Dithmenos, 60), testutils.LowRoller())

	_, err := s.svc.IncurPenance(s.ctx, &favor.IncurPenanceInput{Patron: pantheon.Dithmenos, Amount: 3})
	s.Require().NoError(err)
	_, err = s.svc.SetPiety(s.ctx, &favor.SetPietyInput{Target: 5})
	s.Require().NoError(err)
	_, err = s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Dithmenos, Amount: 3})
	s.Require().NoError(err)

	s.False(s.svc.HasPassive(pantheon.PassiveUmbra))
	s.NotContains(s.messages(), "You are shrouded in an aura of darkness!")
	s.Empty(s.svc.State().SuppressedPassives)
}

func (s *PenanceTestSuite) TestTeardownRunsOnlyWhenClean() {
	s.start(s.following(pantheon.Qazlal, 60), testutils.LowRoller())

	for i := 0; i < 3; i++ {
		_, err := s.svc.IncurPenance(s.ctx, &favor.IncurPenanceInput{Patron: pantheon.Qazlal, Amount: 2})
		s.Require().NoError(err)
	}

	removed := 0
	for _, e := range s.sandbox.Effects() {
		if e.Remove && e.Patron == pantheon.Qazlal {
			removed++
		}
	}
	s.Equal(2, removed, "storm and resistances are stripped once")
	s.Equal(6, s.svc.State().Penance[pantheon.Qazlal])
}

func (s *PenanceTestSuite) TestMollifyRestoresEffects() {
	state := s.following(pantheon.Qazlal, 60)
	state.Penance[pantheon.Qazlal] = 1
	s.start(state, testutils.LowRoller())

	_, err := s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Qazlal, Amount: 1})
	s.Require().NoError(err)

	effects := s.sandbox.Effects()
	s.Require().Len(effects, 1)
	s.Equal(pantheon.EffectQazlalStorm, effects[0].Effect)
	s.False(effects[0].Remove)
}

func (s *PenanceTestSuite) TestPenanceIsCapped() {
	s.start(pantheon.NewState("session-1"), testutils.LowRoller())

	out, err := s.svc.IncurPenance(s.ctx, &favor.IncurPenanceInput{Patron: pantheon.Trog, Amount: 1000})
	s.Require().NoError(err)
	s.Equal(pantheon.MaxPenance, out.Penance)
	s.Equal(5, s.svc.State().WrathXPTimeout)
}

func (s *PenanceTestSuite) TestNegativeDecayIsFatal() {
	s.start(pantheon.NewState("session-1"), testutils.LowRoller())

	s.Panics(func() {
		_, _ = s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Trog, Amount: -1})
	})
}

func (s *PenanceTestSuite) TestTwoPhaseMollification() {
	state := pantheon.NewState("session-1")
	state.Penance[pantheon.Nemelex] = 104
	s.start(state, testutils.LowRoller())
	s.True(s.svc.IsActivelyRetributive(pantheon.Nemelex))

	out, err := s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Nemelex, Amount: 2})
	s.Require().NoError(err)
	s.False(out.PartiallyMollified, "still above the threshold")

	out, err = s.svc.DecayPenance(s.ctx, &favor.DecayPenanceInput{Patron: pantheon.Nemelex, Amount: 5})
	s.Require().NoError(err)
	s.True(out.PartiallyMollified)
	s.False(out.Mollified)
	s.Equal(97, out.Penance)
	s.True(s.svc.IsIndebted(pantheon.Nemelex))
	s.False(s.svc.IsActivelyRetributive(pantheon.Nemelex))
	s.Contains(s.messages(), "Nemelex Xobeh seems mollified... mostly.")
}

func (s *PenanceTestSuite) TestActiveRetribution() {
	state := s.following(pantheon.ShiningOne, 40)
	state.Penance[pantheon.ShiningOne] = 5
	state.Penance[pantheon.Makhleb] = 5
	state.Penance[pantheon.Ashenzari] = 5
	state.Penance[pantheon.Ru] = 5
	state.Penance[pantheon.Zin] = 5
	s.start(state, testutils.LowRoller())

	s.False(s.svc.IsActivelyRetributive(pantheon.ShiningOne), "good patrons spare their own followers")
	s.True(s.svc.IsActivelyRetributive(pantheon.Makhleb))
	s.False(s.svc.IsActivelyRetributive(pantheon.Ashenzari), "experience wrath never strikes")
	s.False(s.svc.IsActivelyRetributive(pantheon.Ru))
	s.False(s.svc.IsActivelyRetributive(pantheon.Zin), "Zin tolerates the Shining One")
	s.False(s.svc.IsActivelyRetributive(pantheon.Okawaru), "no penance, no wrath")
}

func (s *PenanceTestSuite) TestExperiencePaysDebtFirst() {
	state := pantheon.NewState("session-1")
	state.ExpDebt[pantheon.Ashenzari] = 100
	s.start(state, testutils.LowRoller())

	out, err := s.svc.OnExperienceGained(s.ctx, &favor.ExperienceGainedInput{XP: 150})
	s.Require().NoError(err)
	s.Equal(50, out.XPRetained)
	s.Equal(100, out.DebtPaid)
	s.Empty(s.svc.State().ExpDebt)
	s.Contains(s.messages(), "You feel your debt to Ashenzari is settled.")
}

func (s *PenanceTestSuite) TestExperienceDecaysPenance() {
	state := pantheon.NewState("session-1")
	state.Penance[pantheon.Ashenzari] = 2
	state.WrathXPTimeout = 5
	s.start(state, testutils.LowRoller())

	out, err := s.svc.OnExperienceGained(s.ctx, &favor.ExperienceGainedInput{XP: 5})
	s.Require().NoError(err)
	s.Equal([]pantheon.Patron{pantheon.Ashenzari}, out.Decayed)
	s.Equal(1, s.svc.State().Penance[pantheon.Ashenzari])
	s.Equal(5, s.svc.State().WrathXPTimeout, "re-armed while penance remains")

	out, err = s.svc.OnExperienceGained(s.ctx, &favor.ExperienceGainedInput{XP: 5})
	s.Require().NoError(err)
	s.Equal([]pantheon.Patron{pantheon.Ashenzari}, out.Decayed)
	s.False(s.svc.IsIndebted(pantheon.Ashenzari))
	s.Equal(0, s.svc.State().WrathXPTimeout)
	s.Contains(s.messages(), "Ashenzari seems mollified.")
}

func (s *PenanceTestSuite) TestExperienceRearmsClearedTimer() {
	state := pantheon.NewState("session-1")
	state.Penance[pantheon.Gozag] = 3
	s.start(state, testutils.LowRoller())

	_, err := s.svc.OnExperienceGained(s.ctx, &favor.ExperienceGainedInput{XP: 1})
	s.Require().NoError(err)
	s.Equal(4, s.svc.State().WrathXPTimeout)
}

func (s *PenanceTestSuite) TestNegativeExperienceRejected() {
	s.start(pantheon.NewState("session-1"), testutils.LowRoller())

	_, err := s.svc.OnExperienceGained(s.ctx, &favor.ExperienceGainedInput{XP: -1})
	s.True(errors.IsInvalidArgument(err))
}
