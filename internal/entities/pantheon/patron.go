// Package pantheon holds the static data of the patron deities: identities,
// alignments, powers, per-patron configuration and the persisted favor
// record.
package pantheon

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// Patron identifies one of the fixed deities a player may serve
type Patron int

// Patrons, in canonical order. None is the sentinel for "no patron".
const (
	None Patron = iota
	Zin
	ShiningOne
	Kikubaaqudgha
	Yredelemnul
	Xom
	Vehumet
	Okawaru
	Makhleb
	SifMuna
	Trog
	Nemelex
	Elyvilon
	Lugonu
	Beogh
	Jiyva
	Fedhas
	Cheibriados
	Ashenzari
	Dithmenos
	Gozag
	Qazlal
	Ru
	Pakellas
	Hepliaklqana

	// NumPatrons counts every value including None
	NumPatrons
)

var patronKeys = [NumPatrons]string{
	None:          "none",
	Zin:           "zin",
	ShiningOne:    "shining_one",
	Kikubaaqudgha: "kikubaaqudgha",
	Yredelemnul:   "yredelemnul",
	Xom:           "xom",
	Vehumet:       "vehumet",
	Okawaru:       "okawaru",
	Makhleb:       "makhleb",
	SifMuna:       "sif_muna",
	Trog:          "trog",
	Nemelex:       "nemelex",
	Elyvilon:      "elyvilon",
	Lugonu:        "lugonu",
	Beogh:         "beogh",
	Jiyva:         "jiyva",
	Fedhas:        "fedhas",
	Cheibriados:   "cheibriados",
	Ashenzari:     "ashenzari",
	Dithmenos:     "dithmenos",
	Gozag:         "gozag",
	Qazlal:        "qazlal",
	Ru:            "ru",
	Pakellas:      "pakellas",
	Hepliaklqana:  "hepliaklqana",
}

// All returns every real patron, excluding None
func All() []Patron {
	out := make([]Patron, 0, NumPatrons-1)
	for p := None + 1; p < NumPatrons; p++ {
		out = append(out, p)
	}
	return out
}

// Valid reports whether p is inside the enumeration (None included)
func (p Patron) Valid() bool {
	return p >= None && p < NumPatrons
}

// Key is the stable identifier used on the wire and in storage
func (p Patron) Key() string {
	if !p.Valid() {
		return "unknown"
	}
	return patronKeys[p]
}

// String returns the display name
func (p Patron) String() string {
	if p == None {
		return "no patron"
	}
	if !p.Valid() {
		return "unknown patron"
	}
	return ConfigFor(p).Name
}

// Says attributes msg to the patron when it starts with a space or an
// apostrophe, e.g. " grants you a gift!" or "'s voice booms out."
func (p Patron) Says(msg string) string {
	if msg == "" || (msg[0] != ' ' && msg[0] != '\'') {
		return msg
	}
	name := p.String()
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:] + msg
}

// Parse resolves a key or display name, case-insensitively
func Parse(s string) (Patron, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for p := None; p < NumPatrons; p++ {
		if needle == patronKeys[p] || (p != None && needle == strings.ToLower(ConfigFor(p).Name)) {
			return p, nil
		}
	}
	return None, errors.InvalidArgumentf("unknown patron %q", s)
}

// MarshalText encodes the patron as its key, so maps keyed by Patron
// serialize with readable keys
func (p Patron) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, errors.InvalidArgumentf("patron %d out of range", int(p))
	}
	return []byte(p.Key()), nil
}

// UnmarshalText decodes a key produced by MarshalText
func (p *Patron) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
