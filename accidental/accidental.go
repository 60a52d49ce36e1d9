package accidental

import (
	"math/big"

	"golang.org/x/exp/slices"

	"github.com/jsphweid/scorepoint/music"
	"github.com/jsphweid/scorepoint/score"
	"github.com/jsphweid/scorepoint/timeline"
)

// Effective is the accidental context in force at one point of one measure:
// the letters the governing key signature alters plus the measure-local
// overrides established by accidental modifiers sounded at or before that
// point. Overrides are keyed by letter+octave ("f/4"); the signature by
// bare letter. Derived fresh per query, never cached.
type Effective struct {
	KeySig    map[string]string `json:"key_signature"`
	Overrides map[string]string `json:"overrides"`
}

// Accidental resolves one letter+octave through the context: override
// first, then the signature's entry for the letter, then natural.
func (e *Effective) Accidental(letter string, octave int) string {
	if acc, ok := e.Overrides[music.OverrideKey(letter, octave)]; ok {
		return acc
	}
	return e.KeySig[letter]
}

// entry is one override candidate: a modifier-carrying pitch key and the
// beat it sounds at.
type entry struct {
	key  music.Key
	acc  string
	beat *big.Rat
}

// EffectiveAt derives the accidental context for staff staffIdx of measure
// measureIdx at the given cutoff beat.
//
// The key signature comes from the nearest measure at or before measureIdx
// whose staff carries a key-signature modifier; a score with no signature
// anywhere reads as all natural, and an unparseable signature name on the
// carrying staff does too. Overrides come from pitch keys with accidental
// modifiers on beats at or before cutoff in the target measure itself,
// merged across the staff's voices in beat order so the latest wins per
// letter+octave. A nil cutoff takes the whole measure.
func EffectiveAt(systems []*score.System, staffIdx, measureIdx int, cutoff *big.Rat) Effective {
	eff := Effective{
		KeySig:    map[string]string{},
		Overrides: map[string]string{},
	}

	for i := measureIdx; i >= 0 && i < len(systems); i-- {
		part, ok := partAt(systems, i, staffIdx)
		if !ok {
			continue
		}
		name, ok := part.Stave.KeySignature()
		if !ok {
			continue
		}
		if sig, ok := music.KeyAccidentals(name); ok {
			eff.KeySig = sig
		}
		break
	}

	part, ok := partAt(systems, measureIdx, staffIdx)
	if !ok {
		return eff
	}

	var entries []entry
	for vi := range part.Voices {
		for _, te := range timeline.Build(&part.Voices[vi]) {
			if cutoff != nil && te.Beat.Cmp(cutoff) > 0 {
				break
			}
			if !te.Event.IsNote() {
				continue
			}
			for ki, raw := range te.Event.Keys {
				acc := te.Event.Accidentals[ki]
				if acc == "" {
					continue
				}
				key, ok := music.ParseKey(raw)
				if !ok {
					continue
				}
				entries = append(entries, entry{key: key, acc: acc, beat: te.Beat})
			}
		}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.beat.Cmp(b.beat)
	})
	for _, e := range entries {
		eff.Overrides[e.key.OverrideKey()] = e.acc
	}
	return eff
}

func partAt(systems []*score.System, measureIdx, staffIdx int) (*score.Part, bool) {
	if measureIdx < 0 || measureIdx >= len(systems) {
		return nil, false
	}
	sys := systems[measureIdx]
	if sys == nil || staffIdx < 0 || staffIdx >= len(sys.Parts) {
		return nil, false
	}
	return &sys.Parts[staffIdx], true
}
