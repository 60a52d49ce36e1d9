package sample

import (
	"github.com/jsphweid/scorepoint/geom"
	"github.com/jsphweid/scorepoint/score"
)

func fp(v float64) *float64 { return &v }

func box(x, y float64) *geom.Rect {
	return &geom.Rect{X: x, Y: y, W: 2, H: 2}
}

func note(ticks int, clef, key string, accidentals map[int]string, b *geom.Rect) score.Tickable {
	return score.Tickable{
		Kind:        score.KindNote,
		Ticks:       ticks,
		Keys:        []string{key},
		Accidentals: accidentals,
		Box:         b,
		Clef:        clef,
	}
}

// Score returns a small built-in layout: two measures of a treble staff
// over a bass staff, sized in terminal cells so the demo can draw it
// directly. The opening measure sharps its first c/5 and leaves the second
// one plain, which is the interesting case for accidental tracking.
func Score() []*score.System {
	treble0 := score.Voice{Resolution: 1024, Events: []score.Tickable{
		note(1024, "treble", "c#/5", map[int]string{0: "#"}, box(8, 6)),
		note(1024, "treble", "c/5", nil, box(16, 6)),
		note(512, "treble", "b/4", nil, box(24, 7)),
		note(512, "treble", "a/4", nil, box(30, 8)),
	}}
	bass0 := score.Voice{Resolution: 1024, Events: []score.Tickable{
		note(2048, "bass", "d/3", nil, box(8, 17)),
		{Kind: score.KindRest, Ticks: 2048},
	}}
	treble1 := score.Voice{Resolution: 1024, Events: []score.Tickable{
		note(1024, "treble", "b/4", nil, box(46, 7)),
		note(1024, "treble", "b/4", map[int]string{0: "n"}, box(54, 7)),
		note(1024, "treble", "b/4", nil, box(62, 7)),
		note(1024, "treble", "g/4", nil, box(70, 9)),
	}}
	bass1 := score.Voice{Resolution: 1024, Events: []score.Tickable{
		note(4096, "bass", "g/2", nil, box(46, 21)),
	}}

	return []*score.System{
		{
			X: fp(4), Y: fp(2), W: fp(36), Bottom: fp(24),
			Parts: []score.Part{
				{Stave: trebleStave(), Voices: []score.Voice{treble0}},
				{Stave: bassStave(), Voices: []score.Voice{bass0}},
			},
		},
		{
			X: fp(42), Y: fp(2), W: fp(36), Bottom: fp(24),
			Parts: []score.Part{
				{Stave: trebleStave(), Voices: []score.Voice{treble1}},
				{Stave: bassStave(), Voices: []score.Voice{bass1}},
			},
		},
	}
}

// FlatScore is Score with a B-flat major signature on the opening measure
// only, so clicks in the second measure exercise the signature walk-back
// and the explicit naturals there actually cancel something.
func FlatScore() []*score.System {
	systems := Score()
	for pi := range systems[0].Parts {
		st := &systems[0].Parts[pi].Stave
		st.Modifiers = append(st.Modifiers, score.Modifier{
			Category: score.ModKeySignature,
			Key:      "Bb",
		})
	}
	return systems
}

func trebleStave() score.Stave {
	return score.Stave{
		CenterY: 8,
		Spacing: 2,
		Lines:   5,
		Modifiers: []score.Modifier{
			{Category: score.ModClef, Key: "treble"},
		},
	}
}

func bassStave() score.Stave {
	return score.Stave{
		CenterY: 18,
		Spacing: 2,
		Lines:   5,
		Modifiers: []score.Modifier{
			{Category: score.ModClef, Key: "bass"},
		},
	}
}
