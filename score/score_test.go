package score

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/scorepoint/geom"
)

func fp(v float64) *float64 { return &v }

func TestSystemBox(t *testing.T) {
	assert := assert.New(t)
	sys := System{X: fp(10), Y: fp(40), W: fp(190), Bottom: fp(170)}
	box, ok := sys.Box()
	assert.True(ok)
	assert.Equal(geom.Rect{X: 10, Y: 40, W: 190, H: 130}, box)
}

func TestSystemBoxMissingGeometry(t *testing.T) {
	assert := assert.New(t)
	sys := System{X: fp(10), Y: fp(40), W: fp(190)}
	_, ok := sys.Box()
	assert.False(ok)
	_, ok = (&System{}).Box()
	assert.False(ok)
}

func TestStaveModifiers(t *testing.T) {
	assert := assert.New(t)
	st := Stave{Modifiers: []Modifier{
		{Category: "barline"},
		{Category: ModClef, Key: "bass"},
		{Category: ModKeySignature, Key: "Eb"},
	}}

	clef, ok := st.Clef()
	assert.True(ok)
	assert.Equal("bass", clef)

	sig, ok := st.KeySignature()
	assert.True(ok)
	assert.Equal("Eb", sig)

	_, ok = (&Stave{}).Clef()
	assert.False(ok)
	_, ok = (&Stave{}).KeySignature()
	assert.False(ok)
}

func TestLineAtY(t *testing.T) {
	assert := assert.New(t)
	st := Stave{CenterY: 80, Spacing: 10, Lines: 5}

	assert.Equal(0, st.LineAtY(80))
	assert.Equal(1, st.LineAtY(75))
	assert.Equal(-1, st.LineAtY(85))
	assert.Equal(4, st.LineAtY(60))
	assert.Equal(-4, st.LineAtY(100))
	// ledger territory keeps counting
	assert.Equal(8, st.LineAtY(40))

	// nearest offset wins on off-grid clicks
	assert.Equal(1, st.LineAtY(73))
	assert.Equal(2, st.LineAtY(72))
}

func TestLineAtYZeroSpacing(t *testing.T) {
	assert := assert.New(t)
	st := Stave{CenterY: 80}
	assert.Equal(0, st.LineAtY(55))
}

func TestTickableJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)
	note := Tickable{
		Kind:        KindNote,
		Ticks:       1024,
		Keys:        []string{"c#/5", "e/5"},
		Accidentals: map[int]string{0: "#"},
		Box:         &geom.Rect{X: 25, Y: 60, W: 10, H: 10},
		Clef:        "treble",
	}
	dat, err := json.Marshal(note)
	assert.Nil(err)

	var back Tickable
	assert.Nil(json.Unmarshal(dat, &back))
	assert.Equal(note, back)
	assert.True(back.IsNote())

	rest := Tickable{Kind: KindRest, Ticks: 512}
	assert.False(rest.IsNote())
}
