// Package engine describes the game world the favor engine acts upon. The
// dungeon simulation, item generation and active-effects systems all live on
// the far side of World.
package engine

//go:generate mockgen -destination=mock/mock_world.go -package=enginemock github.com/KirkDiggler/rpg-pantheon/internal/engine World

import (
	"context"
)

// World is every collaborator the favor engine consumes
type World interface {
	// Entity and item creation. Both may come back empty when there is no
	// room or the category is exhausted.
	CreateEntity(ctx context.Context, input *CreateEntityInput) (*CreateEntityOutput, error)
	AcquireItem(ctx context.Context, input *AcquireItemInput) (*AcquireItemOutput, error)

	// Active effects
	QueryCapability(ctx context.Context, capability string) (bool, error)
	ApplyEffect(ctx context.Context, input *ApplyEffectInput) (*ApplyEffectOutput, error)

	// Fleet-wide disposition change for every entity in a follower group
	BulkReaffiliate(ctx context.Context, input *BulkReaffiliateInput) (*BulkReaffiliateOutput, error)

	// Profile is a read-only snapshot of the player
	Profile(ctx context.Context) (*Profile, error)

	// Narrate never fails
	Narrate(ctx context.Context, narration *Narration)
}
