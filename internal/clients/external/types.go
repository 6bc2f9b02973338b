package external

// SpellData is a spell a patron can offer as a gift
type SpellData struct {
	ID     string
	Name   string
	Level  int
	School string
	// Element is the lower-cased damage type, empty for utility spells
	Element string
}

// ListSpellsInput filters the catalog
type ListSpellsInput struct {
	Level  int
	School string
}
