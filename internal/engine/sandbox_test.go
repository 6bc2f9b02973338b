package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen"
)

type SandboxTestSuite struct {
	suite.Suite
	ctx     context.Context
	sandbox *engine.Sandbox
}

func TestSandboxSuite(t *testing.T) {
	suite.Run(t, new(SandboxTestSuite))
}

func (s *SandboxTestSuite) SetupTest() {
	s.ctx = context.Background()
	var err error
	s.sandbox, err = engine.NewSandbox(&engine.SandboxConfig{
		Profile:        &engine.Profile{Species: "human", Gold: 100},
		IDGenerator:    idgen.NewSequential("ent"),
		AllyCap:        2,
		ExhaustedItems: []engine.ItemCategory{engine.ItemRod},
	})
	s.Require().NoError(err)
}

func (s *SandboxTestSuite) TestConfigRequired() {
	_, err := engine.NewSandbox(nil)
	s.Error(err)

	_, err = engine.NewSandbox(&engine.SandboxConfig{})
	s.Error(err)
}

func (s *SandboxTestSuite) TestAllyCap() {
	in := &engine.CreateEntityInput{
		Patron: pantheon.Yredelemnul,
		Spec:   engine.EntitySpec{Kind: engine.EntityUndeadServant, Group: pantheon.GroupUndeadServants},
	}
	for i := 0; i < 2; i++ {
		out, err := s.sandbox.CreateEntity(s.ctx, in)
		s.Require().NoError(err)
		s.True(out.Placed)
	}
	out, err := s.sandbox.CreateEntity(s.ctx, in)
	s.Require().NoError(err)
	s.False(out.Placed)
}

func (s *SandboxTestSuite) TestBulkReaffiliate() {
	in := &engine.CreateEntityInput{
		Patron: pantheon.Yredelemnul,
		Spec:   engine.EntitySpec{Kind: engine.EntityUndeadServant, Group: pantheon.GroupUndeadServants},
	}
	_, err := s.sandbox.CreateEntity(s.ctx, in)
	s.Require().NoError(err)

	out, err := s.sandbox.BulkReaffiliate(s.ctx, &engine.BulkReaffiliateInput{
		Directive: pantheon.Directive{Group: pantheon.GroupUndeadServants, Disposition: pantheon.DispositionHostile},
	})
	s.Require().NoError(err)
	s.Equal(1, out.Affected)
	s.Equal(1, s.sandbox.Followers(pantheon.GroupUndeadServants, pantheon.DispositionHostile))
	s.Equal(0, s.sandbox.Followers(pantheon.GroupUndeadServants, ""))
}

func (s *SandboxTestSuite) TestExhaustedItems() {
	out, err := s.sandbox.AcquireItem(s.ctx, &engine.AcquireItemInput{Category: engine.ItemRod})
	s.Require().NoError(err)
	s.False(out.Acquired)

	out, err = s.sandbox.AcquireItem(s.ctx, &engine.AcquireItemInput{Category: engine.ItemWand})
	s.Require().NoError(err)
	s.True(out.Acquired)
	s.Equal([]string{"wand"}, s.sandbox.Items())
}

func (s *SandboxTestSuite) TestEffectsToggleCapabilities() {
	_, err := s.sandbox.ApplyEffect(s.ctx, &engine.ApplyEffectInput{Effect: pantheon.EffectDivineShield})
	s.Require().NoError(err)
	on, err := s.sandbox.QueryCapability(s.ctx, string(pantheon.EffectDivineShield))
	s.Require().NoError(err)
	s.True(on)

	_, err = s.sandbox.ApplyEffect(s.ctx, &engine.ApplyEffectInput{Effect: pantheon.EffectDivineShield, Remove: true})
	s.Require().NoError(err)
	on, _ = s.sandbox.QueryCapability(s.ctx, string(pantheon.EffectDivineShield))
	s.False(on)
}

func (s *SandboxTestSuite) TestGoldFee() {
	out, err := s.sandbox.ApplyEffect(s.ctx, &engine.ApplyEffectInput{Effect: pantheon.EffectGoldFee, Magnitude: 60})
	s.Require().NoError(err)
	s.True(out.Applied)

	out, err = s.sandbox.ApplyEffect(s.ctx, &engine.ApplyEffectInput{Effect: pantheon.EffectGoldFee, Magnitude: 60})
	s.Require().NoError(err)
	s.False(out.Applied)

	p, err := s.sandbox.Profile(s.ctx)
	s.Require().NoError(err)
	s.Equal(40, p.Gold)
}

func (s *SandboxTestSuite) TestMutationNeedsSafety() {
	out, err := s.sandbox.ApplyEffect(s.ctx, &engine.ApplyEffectInput{Patron: pantheon.Jiyva, Effect: pantheon.EffectMutation})
	s.Require().NoError(err)
	s.False(out.Applied)

	s.sandbox.UpdateProfile(func(p *engine.Profile) { p.CanSafelyMutate = true })
	out, err = s.sandbox.ApplyEffect(s.ctx, &engine.ApplyEffectInput{Patron: pantheon.Jiyva, Effect: pantheon.EffectMutation})
	s.Require().NoError(err)
	s.True(out.Applied)
}

func (s *SandboxTestSuite) TestTranscript() {
	s.sandbox.Narrate(s.ctx, &engine.Narration{Message: "hello"})
	s.sandbox.Narrate(s.ctx, nil)
	lines := s.sandbox.DrainTranscript()
	s.Len(lines, 1)
	s.Empty(s.sandbox.DrainTranscript())
}
