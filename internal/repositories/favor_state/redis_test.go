package favorstate_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
	"github.com/KirkDiggler/rpg-pantheon/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	mr   *miniredis.Miniredis
	now  time.Time
	repo favorstate.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	repo, err := favorstate.NewRedisRepository(&favorstate.Config{
		Client: client,
		Clock:  &clock.Fixed{At: s.now},
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) fixture() *pantheon.State {
	state := pantheon.NewState("session-1")
	state.ActivePatron = pantheon.Okawaru
	state.Piety = 62
	state.Penance[pantheon.Trog] = 12
	state.TotalGifts[pantheon.Okawaru] = 2
	state.Worshipped[pantheon.Okawaru] = true
	state.SuppressedPassives[pantheon.Dithmenos] = []pantheon.Passive{pantheon.PassiveUmbra}
	return state
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := favorstate.NewRedisRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = favorstate.NewRedisRepository(&favorstate.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, &favorstate.SaveInput{State: s.fixture()})
	s.Require().NoError(err)
	s.Equal(s.now, saved.State.UpdatedAt)

	s.True(s.mr.Exists("favor_state:session-1"))
	s.Equal(time.Hour, s.mr.TTL("favor_state:session-1"))

	got, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(pantheon.Okawaru, got.State.ActivePatron)
	s.Equal(62, got.State.Piety)
	s.Equal(12, got.State.Penance[pantheon.Trog])
	s.Equal([]pantheon.Passive{pantheon.PassiveUmbra}, got.State.SuppressedPassives[pantheon.Dithmenos])
	s.True(s.now.Equal(got.State.UpdatedAt))
}

func (s *RedisRepositoryTestSuite) TestSaveDoesNotMutateInput() {
	state := s.fixture()
	_, err := s.repo.Save(s.ctx, &favorstate.SaveInput{State: state})
	s.Require().NoError(err)
	s.True(state.UpdatedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestSaveRejectsInvalidState() {
	_, err := s.repo.Save(s.ctx, &favorstate.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	state := s.fixture()
	state.SessionID = ""
	_, err = s.repo.Save(s.ctx, &favorstate.SaveInput{State: state})
	s.True(errors.IsInvalidArgument(err))

	state = s.fixture()
	state.Piety = pantheon.MaxPiety + 1
	_, err = s.repo.Save(s.ctx, &favorstate.SaveInput{State: state})
	s.True(errors.IsInvalidArgument(err))
	s.False(s.mr.Exists("favor_state:session-1"))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, &favorstate.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorruptRecord() {
	s.Require().NoError(s.mr.Set("favor_state:broken", "{not json"))

	_, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "broken"})
	s.True(errors.IsDataLoss(err))

	s.Require().NoError(s.mr.Set("favor_state:bounds", `{"session_id":"bounds","active_patron":"okawaru","piety":9000}`))
	_, err = s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "bounds"})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestGetNormalizesOlderRecords() {
	s.Require().NoError(s.mr.Set("favor_state:old", `{"session_id":"old","active_patron":"trog","piety":40}`))

	got, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "old"})
	s.Require().NoError(err)
	s.Equal(pantheon.Trog, got.State.ActivePatron)
	s.NotNil(got.State.Penance)
	s.NotNil(got.State.SpellsSeen)
}

func (s *RedisRepositoryTestSuite) TestDeleteAndList() {
	for _, id := range []string{"b", "a", "c"} {
		_, err := s.repo.Save(s.ctx, &favorstate.SaveInput{State: pantheon.NewState(id)})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set("unrelated:key", "x"))

	list, err := s.repo.List(s.ctx, &favorstate.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, list.SessionIDs)

	out, err := s.repo.Delete(s.ctx, &favorstate.DeleteInput{SessionID: "b"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, &favorstate.DeleteInput{SessionID: "b"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	list, err = s.repo.List(s.ctx, &favorstate.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "c"}, list.SessionIDs)
}

func (s *RedisRepositoryTestSuite) TestKey() {
	s.Equal("favor_state:abc", favorstate.Key("abc"))
}
