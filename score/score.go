package score

import (
	"math"

	"github.com/jsphweid/scorepoint/geom"
)

// Kind tags a Tickable as a sounding note or a rest.
type Kind string

const (
	KindNote Kind = "note"
	KindRest Kind = "rest"
)

// Modifier categories the resolver reads. Anything else is carried but
// ignored.
const (
	ModClef         = "clef"
	ModKeySignature = "keysignature"
)

// System is one measure-wide band of staves laid out by the rendering
// engine. Geometry is pointer-valued because the engine may not have
// computed it yet; hit testing skips systems with missing geometry rather
// than guessing.
type System struct {
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	W      *float64 `json:"w,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Parts  []Part   `json:"parts"`
}

// Box folds the system's computed extent into a bounding rectangle. ok is
// false when any component is missing.
func (s *System) Box() (geom.Rect, bool) {
	if s.X == nil || s.Y == nil || s.W == nil || s.Bottom == nil {
		return geom.Rect{}, false
	}
	return geom.Rect{X: *s.X, Y: *s.Y, W: *s.W, H: *s.Bottom - *s.Y}, true
}

// Part pairs one stave with the voices that play on it. Part i of every
// system belongs to the same instrument line.
type Part struct {
	Stave  Stave   `json:"stave"`
	Voices []Voice `json:"voices"`
}

// Stave is one staff within a system. CenterY is the y of the middle staff
// line and Spacing the distance between adjacent lines.
type Stave struct {
	CenterY   float64    `json:"y_center"`
	Spacing   float64    `json:"spacing"`
	Lines     int        `json:"lines"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

// Modifier is a stave attachment such as a clef or a key signature. Key
// holds the clef name ("treble") or key-signature name ("Bb") depending on
// the category.
type Modifier struct {
	Category string `json:"category"`
	Key      string `json:"key,omitempty"`
}

// Clef returns the stave's clef name, ok false when it carries none.
func (st *Stave) Clef() (string, bool) {
	return st.modifier(ModClef)
}

// KeySignature returns the stave's key-signature name, ok false when it
// carries none.
func (st *Stave) KeySignature() (string, bool) {
	return st.modifier(ModKeySignature)
}

func (st *Stave) modifier(category string) (string, bool) {
	for _, m := range st.Modifiers {
		if m.Category == category {
			return m.Key, true
		}
	}
	return "", false
}

// LineAtY snaps a y coordinate to the nearest staff-line offset from the
// stave's center line, counted in half line-spaces, positive above. On a
// treble stave offset 0 is the middle line and +1 the space above it.
func (st *Stave) LineAtY(y float64) int {
	if st.Spacing == 0 {
		return 0
	}
	return int(math.Round((st.CenterY - y) / (st.Spacing / 2)))
}

// Voice is one rhythmic line: an ordered run of tickables at a declared
// resolution in ticks per beat.
type Voice struct {
	Resolution int        `json:"resolution"`
	Events     []Tickable `json:"events"`
}

// Tickable is any timed element of a voice. Kind selects the variant: rests
// carry only Ticks and geometry, notes add pitch keys, per-key accidental
// modifiers and clef context. Box is nil when the renderer never placed the
// element.
type Tickable struct {
	Kind        Kind           `json:"kind"`
	Ticks       int            `json:"ticks"`
	Keys        []string       `json:"keys,omitempty"`
	Accidentals map[int]string `json:"accidentals,omitempty"`
	Box         *geom.Rect     `json:"box,omitempty"`
	Clef        string         `json:"clef,omitempty"`
	OctaveShift int            `json:"octave_shift,omitempty"`
}

// IsNote reports whether t sounds. Only notes participate in pitch
// resolution.
func (t *Tickable) IsNote() bool {
	return t.Kind == KindNote
}
