//go:build integration
// +build integration

package external_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-pantheon/internal/clients/external"
)

func TestListSpells_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	catalog, err := external.New(&external.Config{})
	require.NoError(t, err)

	spells, err := catalog.ListSpells(context.Background(), &external.ListSpellsInput{
		Level:  3,
		School: external.SchoolEvocation,
	})
	require.NoError(t, err)
	require.NotEmpty(t, spells)

	found := false
	for _, s := range spells {
		assert.Equal(t, 3, s.Level)
		if s.ID == "fireball" {
			found = true
			assert.Equal(t, "fire", s.Element)
		}
	}
	assert.True(t, found, "fireball should be a level 3 evocation")
}
