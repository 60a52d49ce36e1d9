package pitch

import (
	"github.com/jsphweid/scorepoint/accidental"
	"github.com/jsphweid/scorepoint/music"
)

// Resolve maps a staff-line offset on a clef to a concrete pitch. line
// counts half line-spaces from the stave's center line, positive above.
// octaveShift raises or lowers clefs notated an octave off their sounding
// range.
//
// When acc is non-nil an override for the landed letter+octave wins, then
// the key signature's entry for the letter, then natural. An accidental
// token the note table doesn't know falls back to natural. ok is false only
// when the note mapping cannot answer at all, which callers treat as "no
// pitch" rather than an error.
func Resolve(notes *music.Mapping, clef string, line, octaveShift int, acc *accidental.Effective) (music.Pitch, bool) {
	if notes == nil {
		notes = music.Notes()
	}

	raw := line - music.ClefShift(clef)*2 - 1
	octave := 5 - octaveShift
	for raw < 0 {
		raw += 7
		octave--
	}
	for raw >= 7 {
		raw -= 7
		octave++
	}

	letter, ok := notes.Letter(raw)
	if !ok {
		return music.Pitch{}, false
	}

	chosen := ""
	if acc != nil {
		chosen = acc.Accidental(letter, octave)
	}
	offset, ok := music.AccidentalOffset(chosen)
	if !ok {
		chosen, offset = "", 0
	}

	p, ok := notes.Lookup(raw, offset, octave)
	if !ok {
		return music.Pitch{}, false
	}
	if chosen != "" {
		p.Accidental = chosen
	}
	return p, true
}

// LineFor is the inverse of Resolve's line walk: the staff-line offset at
// which a notated key sits on the given clef. The key's own accidental
// never moves it vertically.
func LineFor(key music.Key, clef string, octaveShift int) (int, bool) {
	line, ok := music.LetterLine(key.Letter)
	if !ok {
		return 0, false
	}
	return line + 7*(key.Octave-(5-octaveShift)) + music.ClefShift(clef)*2 + 1, true
}
