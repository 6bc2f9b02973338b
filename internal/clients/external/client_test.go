package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockSpellSource is a mock implementation of the dnd5e spell endpoints for testing
type mockSpellSource struct {
	mock.Mock
}

func (m *mockSpellSource) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockSpellSource) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func levelIs(level int) any {
	return mock.MatchedBy(func(in *dnd5e.ListSpellsInput) bool {
		return in != nil && in.Level != nil && *in.Level == level
	})
}

func TestCatalogListSpells(t *testing.T) {
	t.Run("filters by school and converts", func(t *testing.T) {
		source := new(mockSpellSource)
		c := &catalog{source: source}

		source.On("ListSpells", levelIs(3)).Return([]*entities.ReferenceItem{
			{Key: "fireball", Name: "Fireball"},
			{Key: "counterspell", Name: "Counterspell"},
		}, nil)
		source.On("GetSpell", "fireball").Return(&entities.Spell{
			Key:         "fireball",
			Name:        "Fireball",
			SpellLevel:  3,
			SpellSchool: &entities.ReferenceItem{Name: "Evocation"},
		}, nil)
		source.On("GetSpell", "counterspell").Return(&entities.Spell{
			Key:         "counterspell",
			Name:        "Counterspell",
			SpellLevel:  3,
			SpellSchool: &entities.ReferenceItem{Name: "Abjuration"},
		}, nil)

		spells, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: 3, School: SchoolEvocation})
		require.NoError(t, err)
		require.Len(t, spells, 1)
		assert.Equal(t, "fireball", spells[0].ID)
		assert.Equal(t, 3, spells[0].Level)
		assert.Empty(t, spells[0].Element)
		source.AssertExpectations(t)
	})

	t.Run("list error", func(t *testing.T) {
		source := new(mockSpellSource)
		c := &catalog{source: source}
		source.On("ListSpells", levelIs(1)).Return([]*entities.ReferenceItem(nil), errors.New("boom"))

		_, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: 1})
		assert.Error(t, err)
	})

	t.Run("detail error", func(t *testing.T) {
		source := new(mockSpellSource)
		c := &catalog{source: source}
		source.On("ListSpells", levelIs(2)).Return([]*entities.ReferenceItem{{Key: "shatter"}}, nil)
		source.On("GetSpell", "shatter").Return((*entities.Spell)(nil), errors.New("timeout"))

		_, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: 2})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "shatter")
	})

	t.Run("cancelled context skips detail fetches", func(t *testing.T) {
		source := new(mockSpellSource)
		c := &catalog{source: source}
		source.On("ListSpells", levelIs(4)).Return([]*entities.ReferenceItem{{Key: "ice-storm"}}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ListSpells(ctx, &ListSpellsInput{Level: 4})
		assert.ErrorIs(t, err, context.Canceled)
		source.AssertNotCalled(t, "GetSpell", "ice-storm")
	})

	t.Run("rejects bad input", func(t *testing.T) {
		c := &catalog{source: new(mockSpellSource)}
		_, err := c.ListSpells(context.Background(), nil)
		assert.Error(t, err)
		_, err = c.ListSpells(context.Background(), &ListSpellsInput{Level: -1})
		assert.Error(t, err)
	})
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.BaseURL)
	assert.NotZero(t, cfg.HTTPTimeout)
	assert.NotZero(t, cfg.CacheTTL)
}

func TestConfigRejectsNegativeDurations(t *testing.T) {
	err := (&Config{HTTPTimeout: -time.Second}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTPTimeout")

	_, err = New(&Config{CacheTTL: -time.Minute})
	assert.Error(t, err)
}

func TestStaticCatalog(t *testing.T) {
	c := NewStaticCatalog(DefaultEvocations())

	spells, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: 3, School: "evocation"})
	require.NoError(t, err)
	assert.Len(t, spells, 2)

	spells, err = c.ListSpells(context.Background(), &ListSpellsInput{Level: 3, School: "necromancy"})
	require.NoError(t, err)
	assert.Empty(t, spells)

	for lvl := 1; lvl <= 9; lvl++ {
		spells, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: lvl})
		require.NoError(t, err)
		assert.NotEmpty(t, spells, "level %d", lvl)
	}
}
