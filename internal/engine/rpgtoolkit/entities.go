package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
)

// Entity types used as event sources and targets
const (
	EntityTypePatron = "patron"
	EntityTypePlayer = "player"
)

// PatronEntity wraps a pantheon.Patron to implement core.Entity
type PatronEntity struct {
	Patron pantheon.Patron
}

var _ core.Entity = (*PatronEntity)(nil)

// GetID returns the patron key
func (p *PatronEntity) GetID() string {
	return p.Patron.Key()
}

// GetType returns the entity type for rpg-toolkit
func (p *PatronEntity) GetType() string {
	return EntityTypePatron
}

// PlayerEntity identifies the player of a favor session
type PlayerEntity struct {
	ID string
}

var _ core.Entity = (*PlayerEntity)(nil)

// GetID returns the session's player ID
func (p *PlayerEntity) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

func wrapPatron(p pantheon.Patron) *PatronEntity {
	return &PatronEntity{Patron: p}
}
