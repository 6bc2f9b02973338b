// Package external is the location for the dnd5e-api backed spell catalog
package external

//go:generate mockgen -destination=mock/mock_catalog.go -package=externalmock github.com/KirkDiggler/rpg-pantheon/internal/clients/external SpellCatalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// SchoolEvocation is the school spell gifts are drawn from
const SchoolEvocation = "Evocation"

// SpellCatalog lists the spells available at a level
type SpellCatalog interface {
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error)
}

// spellSource is the part of the dnd5e-api client the catalog needs
type spellSource interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

const (
	defaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour

	// detailFetchLimit bounds concurrent spell detail requests per listing
	detailFetchLimit = 8
)

// Config configures the dnd5e-api backed catalog. Zero values take defaults.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	// CacheTTL is how long spell listings and details stay cached
	CacheTTL time.Duration
}

// Validate fills in defaults and rejects negative durations
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Fieldf("HTTPTimeout", "must not be negative, got %s", cfg.HTTPTimeout)
	}
	if cfg.CacheTTL < 0 {
		vb.Fieldf("CacheTTL", "must not be negative, got %s", cfg.CacheTTL)
	}
	return vb.Build()
}

type catalog struct {
	source spellSource
}

// New builds a SpellCatalog over a cached dnd5e-api client
func New(cfg *Config) (SpellCatalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create dnd5e api client")
	}

	return &catalog{source: dnd5e.NewCachedClient(api, cfg.CacheTTL)}, nil
}

func (c *catalog) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 0 {
		return nil, errors.InvalidArgumentf("level must not be negative, got %d", input.Level)
	}

	level := input.Level
	refs, err := c.source.ListSpells(&dnd5e.ListSpellsInput{Level: &level})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to list level %d spells", level))
	}
	slog.Debug("listed spell references", "level", level, "count", len(refs))

	// The listing carries no school, so every detail record is fetched
	details := make([]*SpellData, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFetchLimit)
	for i, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spell, err := c.source.GetSpell(ref.Key)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+ref.Key)
			}
			details[i] = convertSpell(spell)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*SpellData, 0, len(details))
	for _, spell := range details {
		if spell != nil && (input.School == "" || strings.EqualFold(spell.School, input.School)) {
			out = append(out, spell)
		}
	}
	return out, nil
}

// convertSpell keeps the fields spell gifts care about
func convertSpell(spell *entities.Spell) *SpellData {
	if spell == nil {
		return nil
	}

	data := &SpellData{ID: spell.Key, Name: spell.Name, Level: spell.SpellLevel}
	if school := spell.SpellSchool; school != nil {
		data.School = school.Name
	}
	if dmg := spell.SpellDamage; dmg != nil && dmg.SpellDamageType != nil {
		data.Element = strings.ToLower(dmg.SpellDamageType.Name)
	}
	return data
}
