package favor_test

import (
	"context"
	"strings"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/orchestrators/favor"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-pantheon/internal/testutils"
)

type recordingPublisher struct {
	notices []*rpgtoolkit.Notice
}

func (r *recordingPublisher) Publish(_ context.Context, n *rpgtoolkit.Notice) error {
	r.notices = append(r.notices, n)
	return nil
}

func (r *recordingPublisher) count(topic string) int {
	n := 0
	for _, notice := range r.notices {
		if notice.Topic == topic {
			n++
		}
	}
	return n
}

// favorSuite runs a session against the in-memory sandbox world
type favorSuite struct {
	suite.Suite
	ctx     context.Context
	profile *engine.Profile
	sandbox *engine.Sandbox
	events  *recordingPublisher
	svc     favor.Service
}

func (s *favorSuite) SetupTest() {
	s.ctx = context.Background()
	s.profile = &engine.Profile{
		Species:       "human",
		Class:         "fighter",
		XPLevel:       1,
		XPToNextLevel: 1000,
	}
	s.events = &recordingPublisher{}
}

// start builds the session. Profile tweaks must happen before it is called.
func (s *favorSuite) start(state *pantheon.State, roller dice.Roller) {
	var err error
	s.sandbox, err = engine.NewSandbox(&engine.SandboxConfig{
		Profile:     s.profile,
		IDGenerator: idgen.NewSequential("ent"),
	})
	s.Require().NoError(err)

	s.svc, err = favor.NewOrchestrator(&favor.Config{
		State:  state,
		World:  s.sandbox,
		Random: rng.New(roller),
		Events: s.events,
	})
	s.Require().NoError(err)
}

func (s *favorSuite) following(patron pantheon.Patron, piety int) *pantheon.State {
	state := pantheon.NewState("session-1")
	state.ActivePatron = patron
	state.Piety = piety
	state.Worshipped[patron] = true
	return state
}

func (s *favorSuite) messages() []string {
	var out []string
	for _, n := range s.sandbox.DrainTranscript() {
		out = append(out, n.Message)
	}
	return out
}

func (s *favorSuite) countMessages(msgs []string, want string) int {
	n := 0
	for _, m := range msgs {
		if strings.Contains(m, want) {
			n++
		}
	}
	return n
}

type OrchestratorTestSuite struct {
	favorSuite
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := favor.NewOrchestrator(nil)
	s.Error(err)

	_, err = favor.NewOrchestrator(&favor.Config{})
	s.Error(err)

	sandbox, err := engine.NewSandbox(&engine.SandboxConfig{
		Profile:     s.profile,
		IDGenerator: idgen.NewSequential("ent"),
	})
	s.Require().NoError(err)

	bad := pantheon.NewState("session-1")
	bad.Piety = 40
	_, err = favor.NewOrchestrator(&favor.Config{
		State:  bad,
		World:  sandbox,
		Random: rng.New(testutils.LowRoller()),
	})
	s.Error(err, "piety without a patron is rejected")
}

func (s *OrchestratorTestSuite) TestQueriesWithoutPatron() {
	s.start(pantheon.NewState("session-1"), testutils.LowRoller())

	s.Equal(0, s.svc.CurrentRank())
	s.False(s.svc.HasGiftCooldown())
	s.False(s.svc.IsIndebted(pantheon.Zin))
	s.False(s.svc.HasPassive(pantheon.PassiveHalo))
}

func (s *OrchestratorTestSuite) TestStateIsACopy() {
	s.start(s.following(pantheon.Okawaru, 40), testutils.LowRoller())

	snapshot := s.svc.State()
	snapshot.Piety = 199
	snapshot.Penance[pantheon.Trog] = 9

	s.Equal(40, s.svc.State().Piety)
	s.False(s.svc.IsIndebted(pantheon.Trog))
}

func (s *OrchestratorTestSuite) TestPassivesFollowRank() {
	s.start(s.following(pantheon.Beogh, 40), testutils.LowRoller())

	s.True(s.svc.HasPassive(pantheon.PassiveArmourAid))
	s.False(s.svc.HasPassive(pantheon.PassiveWaterWalk))

	_, err := s.svc.SetPiety(s.ctx, &favor.SetPietyInput{Target: 20})
	s.Require().NoError(err)
	s.False(s.svc.HasPassive(pantheon.PassiveArmourAid))
	s.Equal(1, s.events.count(rpgtoolkit.TopicPassiveChanged))
}

func (s *OrchestratorTestSuite) TestHaloNarration() {
	s.start(s.following(pantheon.ShiningOne, 29), testutils.LowRoller())

	_, err := s.svc.GainPiety(s.ctx, &favor.GainPietyInput{Amount: 1, Denominator: 1})
	s.Require().NoError(err)

	s.True(s.svc.HasPassive(pantheon.PassiveHalo))
	s.Contains(s.messages(), "A divine halo surrounds you!")
}
