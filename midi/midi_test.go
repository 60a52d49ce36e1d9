package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/scorepoint/model"
	"github.com/jsphweid/scorepoint/music"
)

func TestKey(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		pitch music.Pitch
		want  uint8
	}{
		{music.Pitch{Octave: 4, Semitone: 0}, 60},
		{music.Pitch{Octave: 4, Semitone: 1}, 61},
		{music.Pitch{Octave: 5, Semitone: 0}, 72},
		{music.Pitch{Octave: 4, Semitone: -1}, 59},
		{music.Pitch{Octave: 4, Semitone: 12}, 72},
		{music.Pitch{Octave: 3, Semitone: 11}, 59},
		{music.Pitch{Octave: -1, Semitone: 0}, 0},
		{music.Pitch{Octave: 9, Semitone: 7}, 127},
	}
	for _, c := range cases {
		got, ok := Key(c.pitch)
		assert.True(ok)
		assert.Equal(c.want, got)
	}
}

func TestKeyOutOfRange(t *testing.T) {
	assert := assert.New(t)
	_, ok := Key(music.Pitch{Octave: -2, Semitone: 0})
	assert.False(ok)
	_, ok = Key(music.Pitch{Octave: 9, Semitone: 8})
	assert.False(ok)
}

func pitched(note string, octave, semitone int) model.ResolvedEvent {
	return model.ResolvedEvent{Event: model.ScoreMouseEvent{
		Pitch: &music.Pitch{Note: note, Octave: octave, Semitone: semitone},
	}}
}

func TestWriteSession(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "session.mid")

	events := []model.ResolvedEvent{
		pitched("c#", 5, 1),
		{}, // a click that never resolved a pitch
		pitched("d", 3, 2),
	}
	wrote, err := WriteSession(path, events)
	assert.Nil(err)
	assert.Equal(2, wrote)

	dat, err := os.ReadFile(path)
	assert.Nil(err)
	back, err := smf.ReadFrom(bytes.NewReader(dat))
	assert.Nil(err)
	assert.Len(back.Tracks, 1)

	var keys []uint8
	for _, ev := range back.Tracks[0] {
		var ch, key, vel uint8
		if ev.Message.GetNoteStart(&ch, &key, &vel) {
			keys = append(keys, key)
		}
	}
	assert.Equal([]uint8{73, 50}, keys)
}

func TestWriteSessionEmpty(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "empty.mid")
	wrote, err := WriteSession(path, nil)
	assert.Nil(err)
	assert.Equal(0, wrote)
}
