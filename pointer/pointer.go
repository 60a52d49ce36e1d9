package pointer

import (
	"math"
	"math/big"

	"github.com/jsphweid/scorepoint/accidental"
	"github.com/jsphweid/scorepoint/geom"
	"github.com/jsphweid/scorepoint/model"
	"github.com/jsphweid/scorepoint/music"
	"github.com/jsphweid/scorepoint/pitch"
	"github.com/jsphweid/scorepoint/score"
	"github.com/jsphweid/scorepoint/search"
	"github.com/jsphweid/scorepoint/timeline"
)

// candidate is a tickable in the running for closest or closest-before,
// with the beat it sounds at.
type candidate struct {
	event *score.Tickable
	beat  *big.Rat
}

// Resolve turns a click over the rendered systems into a ScoreMouseEvent.
// notes may be nil to use the process-wide note mapping. withAccidentals
// additionally derives the accidental context and the closest note's
// effective pitch, which costs a scan over the staff's measure and a walk
// back for the key signature.
//
// Resolution degrades instead of failing: missing geometry, empty staves
// and unreadable keys leave the corresponding fields nil and everything
// already located stays set. The systems themselves are only read, and the
// returned event borrows pointers into them.
func Resolve(systems []*score.System, pt geom.Point, notes *music.Mapping, withAccidentals bool) model.ScoreMouseEvent {
	ev := model.ScoreMouseEvent{Point: pt}
	if notes == nil {
		notes = music.Notes()
	}

	sys, sysIdx, ok := closestSystem(systems, pt)
	if !ok {
		return ev
	}
	ev.System = sys
	ev.SystemIndex = &sysIdx

	stave, staveIdx, ok := closestStave(sys, pt)
	if !ok {
		return ev
	}
	ev.Stave = stave
	ev.StaveIndex = &staveIdx
	line := stave.LineAtY(pt.Y)
	ev.StaffLine = &line

	closest, before := closestTickables(sys.Parts[staveIdx].Voices, pt)
	ev.Closest = closest.event
	ev.ClosestBefore = before.event

	if !withAccidentals || closest.event == nil {
		return ev
	}

	// the context cuts off at the latest event the click is at or past
	cutoff := closest.beat
	if before.event != nil {
		cutoff = before.beat
	}
	eff := accidental.EffectiveAt(systems, staveIdx, sysIdx, cutoff)
	ev.Accidentals = &eff
	ev.Pitch = eventPitch(notes, closest.event, &eff)
	return ev
}

func closestSystem(systems []*score.System, pt geom.Point) (*score.System, int, bool) {
	return search.Closest(systems, func(s *score.System) (float64, bool) {
		if s == nil {
			return 0, false
		}
		box, ok := s.Box()
		if !ok {
			return 0, false
		}
		return box.Distance(pt), true
	})
}

// closestStave compares the click's y against each staff's center line.
// Horizontal position never matters here; the system already decided that.
func closestStave(sys *score.System, pt geom.Point) (*score.Stave, int, bool) {
	_, idx, ok := search.Closest(sys.Parts, func(p score.Part) (float64, bool) {
		return math.Abs(pt.Y - p.Stave.CenterY), true
	})
	if !ok {
		return nil, 0, false
	}
	return &sys.Parts[idx].Stave, idx, true
}

// closestTickables reduces every voice's straddling pair to the overall
// closest tickable and the closest among those at or before the click's x,
// both by box distance.
func closestTickables(voices []score.Voice, pt geom.Point) (closest, before candidate) {
	var all, befores []candidate
	for vi := range voices {
		b, a := straddle(&voices[vi], pt)
		if b.event != nil {
			all = append(all, b)
			befores = append(befores, b)
		}
		if a.event != nil {
			all = append(all, a)
		}
	}
	return reduce(all, pt), reduce(befores, pt)
}

// straddle walks one voice chronologically and keeps the tickables
// bracketing the click's x: the last one starting at or before it and the
// first one past it. Exact horizontal containment ends the walk with the
// containing event as "before". Unplaced events are invisible here.
func straddle(v *score.Voice, pt geom.Point) (before, after candidate) {
	for _, e := range timeline.Build(v) {
		if e.Event.Box == nil {
			continue
		}
		box := *e.Event.Box
		if box.X <= pt.X && pt.X <= box.Right() {
			return candidate{e.Event, e.Beat}, after
		}
		if box.X > pt.X {
			after = candidate{e.Event, e.Beat}
			return before, after
		}
		before = candidate{e.Event, e.Beat}
	}
	return before, after
}

func reduce(cands []candidate, pt geom.Point) candidate {
	best, _, ok := search.Closest(cands, func(c candidate) (float64, bool) {
		return c.event.Box.Distance(pt), true
	})
	if !ok {
		return candidate{}
	}
	return best
}

// eventPitch resolves a note-event's first pitch key through the accidental
// context: the key names the letter and octave, the context decides the
// accidental. Unreadable keys resolve to nothing.
func eventPitch(notes *music.Mapping, t *score.Tickable, eff *accidental.Effective) *music.Pitch {
	if len(t.Keys) == 0 {
		return nil
	}
	key, ok := music.ParseKey(t.Keys[0])
	if !ok {
		return nil
	}
	line, ok := pitch.LineFor(key, t.Clef, t.OctaveShift)
	if !ok {
		return nil
	}
	p, ok := pitch.Resolve(notes, t.Clef, line, t.OctaveShift, eff)
	if !ok {
		return nil
	}
	return &p
}
