package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen"
)

const defaultAllyCap = 12

// SandboxConfig configures the in-memory world
type SandboxConfig struct {
	Profile     *Profile
	IDGenerator idgen.Generator
	// AllyCap bounds how many followers one patron may have placed at once
	AllyCap int
	// ExhaustedItems are categories item generation can no longer produce
	ExhaustedItems []ItemCategory
}

// Validate checks the sandbox config
func (c *SandboxConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Profile == nil {
		vb.RequiredField("Profile")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.AllyCap < 0 {
		vb.Fieldf("AllyCap", "must not be negative, got %d", c.AllyCap)
	}
	return vb.Build()
}

type sandboxEntity struct {
	ID          string
	Patron      pantheon.Patron
	Kind        EntityKind
	Group       pantheon.FollowerGroup
	Disposition pantheon.Disposition
}

// Sandbox is an in-memory World. The simulate command and the gRPC handler
// run sessions against it.
type Sandbox struct {
	mu           sync.RWMutex
	profile      Profile
	ids          idgen.Generator
	allyCap      int
	exhausted    map[ItemCategory]bool
	entities     map[string]*sandboxEntity
	capabilities map[string]bool
	items        []string
	effects      []ApplyEffectInput
	transcript   []Narration
}

var _ World = (*Sandbox)(nil)

// NewSandbox creates a sandbox world around a profile
func NewSandbox(cfg *SandboxConfig) (*Sandbox, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	allyCap := cfg.AllyCap
	if allyCap == 0 {
		allyCap = defaultAllyCap
	}
	exhausted := make(map[ItemCategory]bool, len(cfg.ExhaustedItems))
	for _, c := range cfg.ExhaustedItems {
		exhausted[c] = true
	}

	return &Sandbox{
		profile:      *cfg.Profile.Copy(),
		ids:          cfg.IDGenerator,
		allyCap:      allyCap,
		exhausted:    exhausted,
		entities:     make(map[string]*sandboxEntity),
		capabilities: make(map[string]bool),
	}, nil
}

// CreateEntity places a follower unless the patron's ally cap is reached
func (s *Sandbox) CreateEntity(_ context.Context, input *CreateEntityInput) (*CreateEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, e := range s.entities {
		if e.Patron == input.Patron && e.Disposition == "" {
			count++
		}
	}
	if count >= s.allyCap {
		return &CreateEntityOutput{Placed: false}, nil
	}

	id := s.ids.Generate()
	s.entities[id] = &sandboxEntity{
		ID:     id,
		Patron: input.Patron,
		Kind:   input.Spec.Kind,
		Group:  input.Spec.Group,
	}
	return &CreateEntityOutput{Placed: true, EntityID: id}, nil
}

// AcquireItem generates an item unless its category is exhausted
func (s *Sandbox) AcquireItem(_ context.Context, input *AcquireItemInput) (*AcquireItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exhausted[input.Category] {
		return &AcquireItemOutput{Acquired: false}, nil
	}

	name := string(input.Category)
	if input.Subtype != "" {
		name = fmt.Sprintf("%s of %s", input.Category, input.Subtype)
	}
	id := s.ids.Generate()
	s.items = append(s.items, name)
	return &AcquireItemOutput{Acquired: true, ItemID: id, Name: name}, nil
}

// QueryCapability reports a capability previously switched on by an effect
func (s *Sandbox) QueryCapability(_ context.Context, capability string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.capabilities[capability], nil
}

// ApplyEffect records the effect and toggles the capability of the same name.
// Mutations only take hold when the profile can safely mutate; gold fees
// reduce the profile's gold.
func (s *Sandbox) ApplyEffect(_ context.Context, input *ApplyEffectInput) (*ApplyEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.effects = append(s.effects, *input)

	switch input.Effect {
	case pantheon.EffectMutation:
		if !s.profile.CanSafelyMutate {
			return &ApplyEffectOutput{Applied: false}, nil
		}
		s.profile.Mutations = append(s.profile.Mutations, fmt.Sprintf("%s_gift_%d", input.Patron.Key(), len(s.profile.Mutations)))
		return &ApplyEffectOutput{Applied: true}, nil
	case pantheon.EffectGoldFee:
		if input.Magnitude > s.profile.Gold {
			return &ApplyEffectOutput{Applied: false}, nil
		}
		s.profile.Gold -= input.Magnitude
		return &ApplyEffectOutput{Applied: true}, nil
	case pantheon.EffectRetribution:
		return &ApplyEffectOutput{Applied: true}, nil
	}

	s.capabilities[string(input.Effect)] = !input.Remove
	return &ApplyEffectOutput{Applied: true}, nil
}

// BulkReaffiliate switches every follower in the group
func (s *Sandbox) BulkReaffiliate(_ context.Context, input *BulkReaffiliateInput) (*BulkReaffiliateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	affected := 0
	for id, e := range s.entities {
		if e.Group != input.Directive.Group {
			continue
		}
		affected++
		if input.Directive.Disposition == pantheon.DispositionRemoved {
			delete(s.entities, id)
			continue
		}
		e.Disposition = input.Directive.Disposition
	}
	return &BulkReaffiliateOutput{Affected: affected}, nil
}

// Profile returns a copy of the player profile
func (s *Sandbox) Profile(_ context.Context) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile.Copy(), nil
}

// Narrate appends to the transcript
func (s *Sandbox) Narrate(_ context.Context, narration *Narration) {
	if narration == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, *narration)
}

// SetCapability switches a capability directly, e.g. faith from an amulet
func (s *Sandbox) SetCapability(capability string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.capabilities[capability] = on
}

// UpdateProfile applies fn to the stored profile
func (s *Sandbox) UpdateProfile(fn func(p *Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.profile)
}

// DrainTranscript returns and clears the narration collected so far
func (s *Sandbox) DrainTranscript() []Narration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.transcript
	s.transcript = nil
	return out
}

// Effects returns every effect applied so far
func (s *Sandbox) Effects() []ApplyEffectInput {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]ApplyEffectInput(nil), s.effects...)
}

// Followers counts entities in group with the given disposition; an empty
// disposition means still allied.
func (s *Sandbox) Followers(group pantheon.FollowerGroup, disposition pantheon.Disposition) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.entities {
		if e.Group == group && e.Disposition == disposition {
			n++
		}
	}
	return n
}

// Items lists generated item names in order
func (s *Sandbox) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.items...)
}
