package music

import (
	"strconv"
	"strings"
)

// The seven scale letters in staff-line order from c, and the semitone of
// each natural letter within an octave.
var letters = [7]string{"c", "d", "e", "f", "g", "a", "b"}
var semitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Suffix spelling per semitone offset, -2..2.
var accidentalNames = [5]string{"bb", "b", "", "#", "##"}

var accidentalOffsets = map[string]int{
	"bb": -2,
	"b":  -1,
	"":   0,
	"n":  0,
	"#":  1,
	"##": 2,
}

// Pitch is one concrete resolved pitch. Semitone is relative to the natural
// c of the same octave and stays unwrapped (cb/4 is semitone -1, not 11) so
// arithmetic against neighboring octaves comes out right.
type Pitch struct {
	Note       string `json:"note"`
	Letter     string `json:"letter"`
	Accidental string `json:"accidental,omitempty"`
	Octave     int    `json:"octave"`
	Semitone   int    `json:"semitone"`
}

func (p Pitch) String() string {
	return p.Note + "/" + strconv.Itoa(p.Octave)
}

type noteRef struct {
	note     string
	semitone int
}

// Mapping is the immutable note table keyed by staff-line offset from c
// (0..6) and accidental semitone offset (-2..2).
type Mapping struct {
	refs [7][5]noteRef
}

var defaultMapping *Mapping

func init() {
	defaultMapping = buildMapping()
}

// Notes returns the process-wide note mapping, built once at startup.
func Notes() *Mapping {
	return defaultMapping
}

func buildMapping() *Mapping {
	var m Mapping
	for line, letter := range letters {
		for alt := -2; alt <= 2; alt++ {
			m.refs[line][alt+2] = noteRef{
				note:     letter + accidentalNames[alt+2],
				semitone: semitones[line] + alt,
			}
		}
	}
	return &m
}

// Lookup resolves a staff-line offset from c and an accidental semitone
// offset into a concrete pitch in the given octave. ok is false outside the
// table's domain.
func (m *Mapping) Lookup(line, alt, octave int) (Pitch, bool) {
	if line < 0 || line >= 7 || alt < -2 || alt > 2 {
		return Pitch{}, false
	}
	ref := m.refs[line][alt+2]
	return Pitch{
		Note:       ref.note,
		Letter:     letters[line],
		Accidental: accidentalNames[alt+2],
		Octave:     octave,
		Semitone:   ref.semitone,
	}, true
}

// Letter returns the scale letter at a staff-line offset from c.
func (m *Mapping) Letter(line int) (string, bool) {
	if line < 0 || line >= 7 {
		return "", false
	}
	return letters[line], true
}

// LetterLine is the inverse of Letter: c is 0, b is 6.
func LetterLine(letter string) (int, bool) {
	for i, l := range letters {
		if l == letter {
			return i, true
		}
	}
	return 0, false
}

// AccidentalOffset maps an accidental token to its semitone offset. The
// explicit natural "n" and the empty token both map to 0. ok is false for
// tokens the notation layer doesn't use.
func AccidentalOffset(acc string) (int, bool) {
	off, ok := accidentalOffsets[acc]
	return off, ok
}

// Key is a parsed pitch-key token: "c#/5" has letter "c", accidental "#",
// octave 5.
type Key struct {
	Letter     string
	Accidental string
	Octave     int
}

func (k Key) String() string {
	return k.Letter + k.Accidental + "/" + strconv.Itoa(k.Octave)
}

// OverrideKey identifies the letter+octave slot an accidental override
// occupies for the rest of its measure. The spelling's own accidental is
// not part of the identity.
func (k Key) OverrideKey() string {
	return OverrideKey(k.Letter, k.Octave)
}

func OverrideKey(letter string, octave int) string {
	return letter + "/" + strconv.Itoa(octave)
}

// ParseKey parses a pitch-key string from the rendering layer. Malformed
// tokens yield ok=false; callers treat the key as unreadable and move on
// rather than failing the query.
func ParseKey(s string) (Key, bool) {
	base, oct, found := strings.Cut(s, "/")
	if !found || base == "" {
		return Key{}, false
	}
	octave, err := strconv.Atoi(strings.TrimSpace(oct))
	if err != nil {
		return Key{}, false
	}
	letter := strings.ToLower(base[:1])
	if letter < "a" || letter > "g" {
		return Key{}, false
	}
	acc := strings.ToLower(strings.TrimSpace(base[1:]))
	if _, ok := accidentalOffsets[acc]; !ok {
		return Key{}, false
	}
	return Key{Letter: letter, Accidental: acc, Octave: octave}, true
}
