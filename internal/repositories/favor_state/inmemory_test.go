package favorstate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *favorstate.InMemoryRepository
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = favorstate.NewInMemoryRepository(&clock.Fixed{At: time.Unix(100, 0)})
}

func (s *InMemoryRepositoryTestSuite) TestRoundTripReturnsCopies() {
	state := pantheon.NewState("s1")
	state.ActivePatron = pantheon.SifMuna
	state.Piety = 30

	_, err := s.repo.Save(s.ctx, &favorstate.SaveInput{State: state})
	s.Require().NoError(err)

	state.Piety = 99
	got, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(30, got.State.Piety)
	s.Equal(time.Unix(100, 0), got.State.UpdatedAt)

	got.State.Penance[pantheon.Trog] = 5
	again, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Empty(again.State.Penance)
}

func (s *InMemoryRepositoryTestSuite) TestErrors() {
	_, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	bad := pantheon.NewState("s1")
	bad.Piety = 10
	_, err = s.repo.Save(s.ctx, &favorstate.SaveInput{State: bad})
	s.True(errors.IsInvalidArgument(err), "piety without a patron")

	_, err = s.repo.Delete(s.ctx, &favorstate.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestDeleteAndList() {
	for _, id := range []string{"z", "y"} {
		_, err := s.repo.Save(s.ctx, &favorstate.SaveInput{State: pantheon.NewState(id)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, &favorstate.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"y", "z"}, list.SessionIDs)

	out, err := s.repo.Delete(s.ctx, &favorstate.DeleteInput{SessionID: "z"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	list, err = s.repo.List(s.ctx, &favorstate.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"y"}, list.SessionIDs)
}
