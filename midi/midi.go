package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/scorepoint/constants"
	"github.com/jsphweid/scorepoint/model"
	"github.com/jsphweid/scorepoint/music"
)

// Key returns the MIDI key number for a resolved pitch, c/4 = 60. ok is
// false outside 0..127, which a score can reach with enough ledger lines.
func Key(p music.Pitch) (uint8, bool) {
	n := (p.Octave+1)*12 + p.Semitone
	if n < 0 || n > 127 {
		return 0, false
	}
	return uint8(n), true
}

// WriteSession renders a click session as one track of quarter notes, in
// the order the clicks were resolved, and writes a Standard MIDI File.
// Events without a resolved pitch are skipped. Returns how many notes made
// it into the file.
func WriteSession(path string, events []model.ResolvedEvent) (int, error) {
	ticks := smf.MetricTicks(constants.ExportTicks)

	var res smf.SMF
	res.TimeFormat = ticks

	var track smf.Track
	wrote := 0
	for _, re := range events {
		if re.Event.Pitch == nil {
			continue
		}
		key, ok := Key(*re.Event.Pitch)
		if !ok {
			continue
		}
		track.Add(0, gomidi.NoteOn(0, key, 96))
		track.Add(ticks.Ticks4th(), gomidi.NoteOff(0, key))
		wrote++
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)

	if err := res.WriteFile(path); err != nil {
		return 0, fmt.Errorf("writing session midi: %w", err)
	}
	return wrote, nil
}
