package pantheon

// Alignment is a set of moral tags carried by a patron
type Alignment uint8

// Alignment tags
const (
	AlignGood Alignment = 1 << iota
	AlignEvil
	AlignChaotic
)

// Has reports whether every tag in want is present
func (a Alignment) Has(want Alignment) bool {
	return a&want == want
}

// IsGood reports whether p belongs to the good subset
func IsGood(p Patron) bool {
	return p != None && ConfigFor(p).Alignment.Has(AlignGood)
}

// IsEvil reports whether p belongs to the evil subset
func IsEvil(p Patron) bool {
	return p != None && ConfigFor(p).Alignment.Has(AlignEvil)
}

// IsChaotic reports whether p belongs to the chaotic subset
func IsChaotic(p Patron) bool {
	return p != None && ConfigFor(p).Alignment.Has(AlignChaotic)
}

// Hates reports whether patron god takes offence at the player serving
// yours.
func Hates(god, yours Patron) bool {
	if god == Ru || god == yours {
		return false
	}
	if !IsGood(god) {
		return true
	}
	if god == Zin && IsChaotic(yours) {
		return true
	}
	return IsEvil(yours)
}
