package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/scorepoint/sample"
)

func TestWriteThenReadScore(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "score.json")

	want := sample.FlatScore()
	assert.Nil(WriteScore(path, want))

	got, err := ReadScore(path)
	assert.Nil(err)
	assert.Equal(want, got)
}

func TestReadScoreMissingFile(t *testing.T) {
	assert := assert.New(t)
	_, err := ReadScore(filepath.Join(t.TempDir(), "nope.json"))
	assert.NotNil(err)
}

func TestReadScoreBadJSON(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	assert.Nil(os.WriteFile(path, []byte("{not json"), 0644))

	_, err := ReadScore(path)
	assert.NotNil(err)
	assert.Contains(err.Error(), path)
}

func TestReadScoreToleratesPartialGeometry(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "partial.json")
	assert.Nil(os.WriteFile(path, []byte(`[{"parts":[]},{"x":1,"y":2,"w":3,"bottom":4,"parts":[]}]`), 0644))

	systems, err := ReadScore(path)
	assert.Nil(err)
	assert.Len(systems, 2)

	_, ok := systems[0].Box()
	assert.False(ok)
	box, ok := systems[1].Box()
	assert.True(ok)
	assert.Equal(2.0, box.Y)
}
