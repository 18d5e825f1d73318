// internal/alphabet/alphabet.go
package alphabet

import (
	"math/rand/v2"
	"strings"
)

// Alphabet names configurable on a lobby.
const (
	Hiragana = "hiragana"
	Katakana = "katakana"
	Kanji    = "kanji"
)

// Character holds the accepted answers for one prompt. Romaji is the
// primary reading; variants and meanings are optional alternates, any of
// which counts as a correct answer.
type Character struct {
	Romaji         string
	RomajiVariant  string
	Meaning        string
	MeaningVariant string
}

// keys caches a stable key slice per table so sampling is O(1).
var keys = map[string][]string{}

func init() {
	for name, table := range tables {
		ks := make([]string, 0, len(table))
		for k := range table {
			ks = append(ks, k)
		}
		keys[name] = ks
	}
}

// Valid reports whether name is a known alphabet.
func Valid(name string) bool {
	_, ok := tables[name]
	return ok
}

// Table returns the character table for name, or nil if unknown.
func Table(name string) map[string]Character {
	return tables[name]
}

// SelectRandom returns a uniformly random character key from the named
// alphabet, different from exclude. Pass "" to allow any key.
func SelectRandom(name, exclude string) string {
	return Pick(keys[name], exclude)
}

// Pick samples a key different from exclude. Resampling is bounded: after
// a few collisions it falls back to a linear scan, and a single-entry
// table yields its lone key instead of looping forever.
func Pick(ks []string, exclude string) string {
	if len(ks) == 0 {
		return ""
	}
	for i := 0; i < 8; i++ {
		picked := ks[rand.IntN(len(ks))]
		if picked != exclude {
			return picked
		}
	}
	for _, k := range ks {
		if k != exclude {
			return k
		}
	}
	return ks[0]
}

// Check reports whether input answers the given character. The input is
// whitespace-trimmed and lowercased, then compared exactly against the
// primary reading, its variant, the meaning, and its variant.
func Check(name, character, input string) bool {
	meta, ok := tables[name][character]
	if !ok {
		return false
	}
	processed := strings.ToLower(strings.TrimSpace(input))
	if processed == "" {
		return false
	}
	switch processed {
	case meta.Romaji:
		return true
	case meta.RomajiVariant, meta.Meaning, meta.MeaningVariant:
		// Variants are optional; an empty field never matches because
		// processed is non-empty here.
		return true
	}
	return false
}
