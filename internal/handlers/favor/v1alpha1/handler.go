// Package v1alpha1 handles the favor gRPC service
package v1alpha1

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-pantheon/internal/clients/external"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/orchestrators/favor"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
)

const fieldSessionID = "session_id"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Repository favorstate.Repository

	// Optional. Defaults to dice.DefaultRoller.
	Roller dice.Roller
	// Optional. Defaults to the built-in evocation list.
	Catalog external.SpellCatalog
	// Optional. Favor events are published here when set.
	EventBus events.EventBus
	// Optional. Session IDs default to prefixed UUIDs.
	SessionIDs idgen.Generator
	// Optional. Defaults to the sandbox default.
	AllyCap int
	// Optional. Defaults to favor.NewOrchestrator.
	NewService func(cfg *favor.Config) (favor.Service, error)
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.AllyCap < 0 {
		vb.Fieldf("AllyCap", "must not be negative, got %d", c.AllyCap)
	}
	return vb.Build()
}

// session is one live game. Calls on the same session are serialized.
// Placements queued for the end of the turn live only here and are not
// persisted, so a restored session starts with an empty queue.
type session struct {
	mu    sync.Mutex
	world *engine.Sandbox
	svc   favor.Service
}

// Handler implements FavorServiceServer. Each session runs against an
// in-memory sandbox world and its favor state is persisted after every call.
type Handler struct {
	repo       favorstate.Repository
	roller     dice.Roller
	catalog    external.SpellCatalog
	bus        events.EventBus
	sessionIDs idgen.Generator
	allyCap    int
	newService func(cfg *favor.Config) (favor.Service, error)
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

var _ FavorServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sessionIDs := cfg.SessionIDs
	if sessionIDs == nil {
		sessionIDs = idgen.NewUUID("session")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	newService := cfg.NewService
	if newService == nil {
		newService = favor.NewOrchestrator
	}

	return &Handler{
		repo:       cfg.Repository,
		roller:     cfg.Roller,
		catalog:    cfg.Catalog,
		bus:        cfg.EventBus,
		sessionIDs: sessionIDs,
		allyCap:    cfg.AllyCap,
		newService: newService,
		logger:     logger,
		sessions:   make(map[string]*session),
	}, nil
}

// StartSession creates a new session from the supplied profile fields
func (h *Handler) StartSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := stringField(req, fieldSessionID)
	if id == "" {
		id = h.sessionIDs.Generate()
	} else if _, err := h.repo.Get(ctx, &favorstate.GetInput{SessionID: id}); err == nil {
		return nil, errors.ToGRPCError(errors.AlreadyExistsf("session %s already exists", id))
	} else if !errors.IsNotFound(err) {
		return nil, errors.ToGRPCError(err)
	}

	s, err := h.build(pantheon.NewState(id), profileFromRequest(req))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()

	h.logger.Info("session started", "session_id", id)

	s.mu.Lock()
	defer s.mu.Unlock()
	return h.finish(ctx, id, s, map[string]any{})
}

// GetStatus reports the session's standing without changing it
func (h *Handler) GetStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(context.Context, *session) (map[string]any, error) {
		return map[string]any{}, nil
	})
}

// Join converts the player to the requested patron
func (h *Handler) Join(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		patron, err := pantheon.Parse(stringField(req, "patron"))
		if err != nil {
			return nil, err
		}
		out, err := s.svc.Join(ctx, &favor.JoinInput{Patron: patron})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"joined":  out.Joined,
			"refusal": string(out.Refusal),
			"former":  out.Former.Key(),
			"fee":     out.Fee,
		}, nil
	})
}

// Leave abandons the current patron
func (h *Handler) Leave(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		out, err := s.svc.Leave(ctx, &favor.LeaveInput{})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"former":  out.Former.Key(),
			"penance": out.Penance,
		}, nil
	})
}

// GainPiety credits piety, optionally scaled
func (h *Handler) GainPiety(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		denominator := intField(req, "denominator")
		if _, ok := req.GetFields()["denominator"]; !ok {
			denominator = 1
		}
		out, err := s.svc.GainPiety(ctx, &favor.GainPietyInput{
			Amount:      intField(req, "amount"),
			Denominator: denominator,
			Scale:       boolField(req, "scale"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"accepted": out.Accepted,
			"piety":    out.Piety,
			"rank":     out.Rank,
		}, nil
	})
}

// LosePiety removes piety
func (h *Handler) LosePiety(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		out, err := s.svc.LosePiety(ctx, &favor.LosePietyInput{Amount: intField(req, "amount")})
		if err != nil {
			return nil, err
		}
		return map[string]any{"piety": out.Piety, "rank": out.Rank}, nil
	})
}

// DockPiety punishes a transgression against the active patron
func (h *Handler) DockPiety(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		out, err := s.svc.DockPiety(ctx, &favor.DockPietyInput{
			PietyLoss: intField(req, "piety_loss"),
			Penance:   intField(req, "penance"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"piety":          out.Piety,
			"penance":        out.Penance,
			"excommunicated": out.Excommunicated,
		}, nil
	})
}

// IncurPenance adds penance toward any patron
func (h *Handler) IncurPenance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		patron, err := pantheon.Parse(stringField(req, "patron"))
		if err != nil {
			return nil, err
		}
		out, err := s.svc.IncurPenance(ctx, &favor.IncurPenanceInput{
			Patron: patron,
			Amount: intField(req, "amount"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"penance": out.Penance}, nil
	})
}

// PassTime advances idle time by the requested ticks
func (h *Handler) PassTime(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		out, err := s.svc.OnTimePassed(ctx, &favor.TimePassedInput{Ticks: intField(req, "ticks")})
		if err != nil {
			return nil, err
		}
		retributions := make([]any, 0, len(out.Retributions))
		for _, p := range out.Retributions {
			retributions = append(retributions, p.Key())
		}
		return map[string]any{
			"retributions":   retributions,
			"piety_lost":     out.PietyLost,
			"excommunicated": out.Excommunicated,
			"offers_lapsed":  out.OffersLapsed,
		}, nil
	})
}

// EndTurn flushes deferred placements
func (h *Handler) EndTurn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		out, err := s.svc.OnTurnEnd(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"attempted": out.Attempted, "placed": out.Placed}, nil
	})
}

// GrantGift asks the active patron for a gift
func (h *Handler) GrantGift(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.withSession(ctx, req, func(ctx context.Context, s *session) (map[string]any, error) {
		out, err := s.svc.MaybeGrantGift(ctx, &favor.GrantGiftInput{Forced: boolField(req, "forced")})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"granted":  out.Granted,
			"kind":     string(out.Kind),
			"detail":   out.Detail,
			"deferred": out.Deferred,
		}, nil
	})
}

type sessionCall func(ctx context.Context, s *session) (map[string]any, error)

func (h *Handler) withSession(ctx context.Context, req *structpb.Struct, call sessionCall) (*structpb.Struct, error) {
	id := stringField(req, fieldSessionID)
	if id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	s, err := h.lookup(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	defer h.evictOnPanic(id)

	fields, err := call(ctx, s)
	if err != nil {
		s.world.DrainTranscript()
		return nil, errors.ToGRPCError(err)
	}
	return h.finish(ctx, id, s, fields)
}

// finish persists the state and assembles the response. Callers hold s.mu.
func (h *Handler) finish(ctx context.Context, id string, s *session, fields map[string]any) (*structpb.Struct, error) {
	state := s.svc.State()
	if _, err := h.repo.Save(ctx, &favorstate.SaveInput{State: state}); err != nil {
		h.logger.Error("failed to persist favor state", "session_id", id, "error", err)
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to persist favor state"))
	}

	messages := make([]any, 0)
	for _, n := range s.world.DrainTranscript() {
		messages = append(messages, n.Message)
	}

	fields[fieldSessionID] = id
	fields["status"] = statusFields(state, s.svc)
	fields["messages"] = messages

	resp, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return resp, nil
}

// evictOnPanic drops a session whose state may be half updated, so the next
// call reloads the last stored record. The panic continues to the recovery
// interceptor.
func (h *Handler) evictOnPanic(id string) {
	if r := recover(); r != nil {
		h.mu.Lock()
		delete(h.sessions, id)
		h.mu.Unlock()
		panic(r)
	}
}

// lookup returns the live session, rebuilding it from storage on a miss.
// Storage is read without holding h.mu.
func (h *Handler) lookup(ctx context.Context, id string) (*session, error) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	h.mu.Unlock()
	if ok {
		return s, nil
	}

	stored, err := h.repo.Get(ctx, &favorstate.GetInput{SessionID: id})
	if err != nil {
		return nil, err
	}

	built, err := h.build(stored.State, defaultProfile())
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	// a concurrent call may have restored it first
	if s, ok := h.sessions[id]; ok {
		return s, nil
	}
	h.sessions[id] = built
	h.logger.Info("session restored", "session_id", id, "patron", stored.State.ActivePatron.Key())
	return built, nil
}

func (h *Handler) build(state *pantheon.State, profile *engine.Profile) (*session, error) {
	world, err := engine.NewSandbox(&engine.SandboxConfig{
		Profile:     profile,
		IDGenerator: idgen.NewSequential(state.SessionID),
		AllyCap:     h.allyCap,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world")
	}

	cfg := &favor.Config{
		State:   state,
		World:   world,
		Random:  rng.New(h.roller),
		Catalog: h.catalog,
		Logger:  h.logger.With("session_id", state.SessionID),
	}
	if h.bus != nil {
		publisher, err := rpgtoolkit.NewPublisher(&rpgtoolkit.PublisherConfig{
			EventBus: h.bus,
			PlayerID: state.SessionID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create publisher")
		}
		cfg.Events = publisher
	}

	svc, err := h.newService(cfg)
	if err != nil {
		return nil, err
	}
	return &session{world: world, svc: svc}, nil
}

func defaultProfile() *engine.Profile {
	return &engine.Profile{Species: "human", XPLevel: 1, XPToNextLevel: 1000}
}

func profileFromRequest(req *structpb.Struct) *engine.Profile {
	p := defaultProfile()
	if v := stringField(req, "species"); v != "" {
		p.Species = v
	}
	p.Class = stringField(req, "class")
	p.Form = engine.Form(stringField(req, "form"))
	if v := intField(req, "xp_level"); v > 0 {
		p.XPLevel = v
	}
	if v := intField(req, "xp_to_next_level"); v > 0 {
		p.XPToNextLevel = v
	}
	p.Gold = intField(req, "gold")
	p.GoldGenerated = intField(req, "gold_generated")
	p.Felid = boolField(req, "felid")
	p.Undead = boolField(req, "undead")
	p.Demonic = boolField(req, "demonic")
	p.Artificial = boolField(req, "artificial")
	p.Orc = boolField(req, "orc")
	p.Demigod = boolField(req, "demigod")
	p.CanSafelyMutate = boolField(req, "can_safely_mutate")
	p.MissilesLow = boolField(req, "missiles_low")
	return p
}

func statusFields(state *pantheon.State, svc favor.Service) map[string]any {
	penance := make(map[string]any)
	for p, v := range state.Penance {
		if v > 0 {
			penance[p.Key()] = v
		}
	}

	passives := make([]any, 0)
	if state.ActivePatron != pantheon.None {
		for _, passive := range pantheon.ConfigFor(state.ActivePatron).PassivesAt(svc.CurrentRank()) {
			if svc.HasPassive(passive) {
				passives = append(passives, string(passive))
			}
		}
	}

	offers := make([]any, 0, len(state.SpellOffers))
	for _, spell := range state.SpellOffers {
		offers = append(offers, spell)
	}

	return map[string]any{
		"patron":        state.ActivePatron.Key(),
		"patron_name":   state.ActivePatron.String(),
		"piety":         state.Piety,
		"rank":          svc.CurrentRank(),
		"gift_timeout":  state.GiftTimeout,
		"gift_cooldown": svc.HasGiftCooldown(),
		"penance":       penance,
		"passives":      passives,
		"spell_offers":  offers,
	}
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

func intField(req *structpb.Struct, key string) int {
	return int(req.GetFields()[key].GetNumberValue())
}

func boolField(req *structpb.Struct, key string) bool {
	return req.GetFields()[key].GetBoolValue()
}

// Describe renders a response for terminal output
func Describe(resp *structpb.Struct) string {
	status := resp.GetFields()["status"].GetStructValue()
	line := fmt.Sprintf("[%s] %s piety=%d rank=%d",
		stringField(resp, fieldSessionID),
		stringField(status, "patron_name"),
		intField(status, "piety"),
		intField(status, "rank"),
	)
	for _, m := range resp.GetFields()["messages"].GetListValue().GetValues() {
		line += "\n  " + m.GetStringValue()
	}
	return line
}
