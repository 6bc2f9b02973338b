package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
	"github.com/KirkDiggler/rpg-pantheon/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *favorstate.InMemoryRepository
	handler *v1alpha1.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = favorstate.NewInMemoryRepository(nil)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Repository: s.repo,
		Roller:     testutils.LowRoller(),
		SessionIDs: idgen.NewSequential("game"),
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) messages(resp *structpb.Struct) []string {
	var out []string
	for _, v := range resp.GetFields()["messages"].GetListValue().GetValues() {
		out = append(out, v.GetStringValue())
	}
	return out
}

func (s *HandlerTestSuite) status(resp *structpb.Struct) map[string]any {
	return resp.GetFields()["status"].GetStructValue().AsMap()
}

func (s *HandlerTestSuite) TestConfigValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestSessionLifecycle() {
	started, err := s.handler.StartSession(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)
	id := started.GetFields()["session_id"].GetStringValue()
	s.Equal("game_1", id)
	s.Equal("none", s.status(started)["patron"])

	joined, err := s.handler.Join(s.ctx, s.request(map[string]any{"session_id": id, "patron": "okawaru"}))
	s.Require().NoError(err)
	s.True(joined.GetFields()["joined"].GetBoolValue())
	s.Contains(s.messages(joined), "Okawaru welcomes you!")
	s.Equal("okawaru", s.status(joined)["patron"])
	s.Equal(float64(15), s.status(joined)["piety"])

	stored, err := s.repo.Get(s.ctx, &favorstate.GetInput{SessionID: id})
	s.Require().NoError(err)
	s.Equal(pantheon.Okawaru, stored.State.ActivePatron)

	gained, err := s.handler.GainPiety(s.ctx, s.request(map[string]any{"session_id": id, "amount": 20}))
	s.Require().NoError(err)
	s.True(gained.GetFields()["accepted"].GetBoolValue())
	s.Equal(float64(35), gained.GetFields()["piety"].GetNumberValue())

	left, err := s.handler.Leave(s.ctx, s.request(map[string]any{"session_id": id}))
	s.Require().NoError(err)
	s.Equal("okawaru", left.GetFields()["former"].GetStringValue())
	s.Equal(float64(30), left.GetFields()["penance"].GetNumberValue())
	s.Contains(s.messages(left), "You have lost your religion!")
	s.Equal(map[string]any{"okawaru": float64(30)}, s.status(left)["penance"])
}

func (s *HandlerTestSuite) TestRefusalIsNotAnError() {
	started, err := s.handler.StartSession(s.ctx, s.request(map[string]any{"session_id": "g", "undead": true}))
	s.Require().NoError(err)
	s.Equal("g", started.GetFields()["session_id"].GetStringValue())

	resp, err := s.handler.Join(s.ctx, s.request(map[string]any{"session_id": "g", "patron": "Zin"}))
	s.Require().NoError(err)
	s.False(resp.GetFields()["joined"].GetBoolValue())
	s.Equal("unholy", resp.GetFields()["refusal"].GetStringValue())
}

func (s *HandlerTestSuite) TestErrors() {
	_, err := s.handler.GetStatus(s.ctx, s.request(map[string]any{}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GetStatus(s.ctx, s.request(map[string]any{"session_id": "missing"}))
	s.Equal(codes.NotFound, status.Code(err))

	_, err = s.handler.StartSession(s.ctx, s.request(map[string]any{"session_id": "dup"}))
	s.Require().NoError(err)
	_, err = s.handler.StartSession(s.ctx, s.request(map[string]any{"session_id": "dup"}))
	s.Equal(codes.AlreadyExists, status.Code(err))

	_, err = s.handler.Join(s.ctx, s.request(map[string]any{"session_id": "dup", "patron": "nobody"}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.Leave(s.ctx, s.request(map[string]any{"session_id": "dup"}))
	s.Equal(codes.FailedPrecondition, status.Code(err))

	_, err = s.handler.PassTime(s.ctx, s.request(map[string]any{"session_id": "dup", "ticks": -2}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestRestoresStoredSession() {
	state := pantheon.NewState("stored")
	state.ActivePatron = pantheon.Trog
	state.Piety = 80
	state.Penance[pantheon.Makhleb] = 4
	_, err := s.repo.Save(s.ctx, &favorstate.SaveInput{State: state})
	s.Require().NoError(err)

	resp, err := s.handler.GetStatus(s.ctx, s.request(map[string]any{"session_id": "stored"}))
	s.Require().NoError(err)
	st := s.status(resp)
	s.Equal("trog", st["patron"])
	s.Equal(float64(80), st["piety"])
	s.Equal(map[string]any{"makhleb": float64(4)}, st["penance"])
}

func (s *HandlerTestSuite) TestRestoredSessionStartsWithEmptyQueue() {
	_, err := s.handler.StartSession(s.ctx, s.request(map[string]any{"session_id": "q"}))
	s.Require().NoError(err)
	_, err = s.handler.Join(s.ctx, s.request(map[string]any{"session_id": "q", "patron": "hepliaklqana"}))
	s.Require().NoError(err)

	restarted, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Repository: s.repo,
		Roller:     testutils.LowRoller(),
	})
	s.Require().NoError(err)

	turn, err := restarted.EndTurn(s.ctx, s.request(map[string]any{"session_id": "q"}))
	s.Require().NoError(err)
	s.Zero(turn.GetFields()["attempted"].GetNumberValue())
	s.Equal("hepliaklqana", s.status(turn)["patron"])

	turn, err = s.handler.EndTurn(s.ctx, s.request(map[string]any{"session_id": "q"}))
	s.Require().NoError(err)
	s.Equal(float64(1), turn.GetFields()["placed"].GetNumberValue())
}

func (s *HandlerTestSuite) TestPenanceAndTime() {
	_, err := s.handler.StartSession(s.ctx, s.request(map[string]any{"session_id": "t"}))
	s.Require().NoError(err)

	resp, err := s.handler.IncurPenance(s.ctx, s.request(map[string]any{
		"session_id": "t", "patron": "makhleb", "amount": 10,
	}))
	s.Require().NoError(err)
	s.Equal(float64(10), resp.GetFields()["penance"].GetNumberValue())

	resp, err = s.handler.PassTime(s.ctx, s.request(map[string]any{"session_id": "t", "ticks": 2}))
	s.Require().NoError(err)
	s.Len(resp.GetFields()["retributions"].GetListValue().GetValues(), 2)
	s.Contains(s.messages(resp), "Makhleb's wrath finds you!")
}

func (s *HandlerTestSuite) TestServantsOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterFavorServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // returns when the test stops the server
	}()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	client := v1alpha1.NewFavorServiceClient(conn)

	_, err = client.Call(s.ctx, v1alpha1.MethodStartSession, s.request(map[string]any{"session_id": "wire"}))
	s.Require().NoError(err)

	_, err = client.Call(s.ctx, v1alpha1.MethodJoin, s.request(map[string]any{"session_id": "wire", "patron": "yredelemnul"}))
	s.Require().NoError(err)

	_, err = client.Call(s.ctx, v1alpha1.MethodGainPiety, s.request(map[string]any{"session_id": "wire", "amount": 100}))
	s.Require().NoError(err)

	gift, err := client.Call(s.ctx, v1alpha1.MethodGrantGift, s.request(map[string]any{"session_id": "wire", "forced": true}))
	s.Require().NoError(err)
	s.True(gift.GetFields()["granted"].GetBoolValue())
	s.True(gift.GetFields()["deferred"].GetBoolValue())

	turn, err := client.Call(s.ctx, v1alpha1.MethodEndTurn, s.request(map[string]any{"session_id": "wire"}))
	s.Require().NoError(err)
	s.Equal(float64(1), turn.GetFields()["placed"].GetNumberValue())
	s.Contains(s.messages(turn), "Yredelemnul grants you an undead servant!")

	_, err = client.Call(s.ctx, v1alpha1.MethodGetStatus, s.request(map[string]any{"session_id": "nope"}))
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestDescribe() {
	resp, err := s.handler.StartSession(s.ctx, s.request(map[string]any{"session_id": "d"}))
	s.Require().NoError(err)
	s.Equal("[d] no patron piety=0 rank=0", v1alpha1.Describe(resp))
}
