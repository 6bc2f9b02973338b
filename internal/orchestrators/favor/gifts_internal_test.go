package favor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
)

func TestEveryGivingPatronHasARule(t *testing.T) {
	for _, p := range pantheon.All() {
		assert.Equal(t, pantheon.ConfigFor(p).GivesGifts, giftRuleFor(p) != nil, p.Key())
	}
	assert.Nil(t, giftRuleFor(pantheon.None))
}

func TestSpellGiftWindows(t *testing.T) {
	assert.Len(t, spellGiftMaxLevel, numSpellGifts)
	for i := 0; i < numSpellGifts; i++ {
		assert.LessOrEqual(t, spellGiftMinLevel[i], spellGiftMaxLevel[i])
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", joinList(nil))
	assert.Equal(t, "Fireball", joinList([]string{"Fireball"}))
	assert.Equal(t, "Fireball and Shatter", joinList([]string{"Fireball", "Shatter"}))
	assert.Equal(t, "Fireball, Shatter, and Sunbeam", joinList([]string{"Fireball", "Shatter", "Sunbeam"}))
}

func TestGozagServiceFee(t *testing.T) {
	assert.Equal(t, 0, GozagServiceFee(0, false))
	assert.Equal(t, 0, GozagServiceFee(1000, true))
	assert.Equal(t, 333, GozagServiceFee(1000, false))
}
