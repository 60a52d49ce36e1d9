package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/scorepoint/score"
)

func TestDrawSystemsSkipsUnplacedSystems(t *testing.T) {
	assert := assert.New(t)
	// a null system from a sparse layout dump and one with no geometry are
	// both skipped before the screen is ever touched
	assert.NotPanics(func() {
		drawSystems(nil, []*score.System{nil, {}})
	})
}
