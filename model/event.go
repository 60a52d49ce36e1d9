package model

import (
	"github.com/jsphweid/scorepoint/accidental"
	"github.com/jsphweid/scorepoint/geom"
	"github.com/jsphweid/scorepoint/music"
	"github.com/jsphweid/scorepoint/score"
)

// ScoreMouseEvent is the record one resolved click produces. Every
// resolution field is optional: whatever could not be located stays nil and
// the rest is still filled in, so a click on empty canvas yields just the
// point and a click past the last note still names its measure and staff.
type ScoreMouseEvent struct {
	Point geom.Point `json:"point"`

	SystemIndex *int          `json:"system_index,omitempty"`
	System      *score.System `json:"-"`
	StaveIndex  *int          `json:"stave_index,omitempty"`
	Stave       *score.Stave  `json:"-"`

	// Closest is the nearest placed tickable by box distance; ClosestBefore
	// the nearest among those starting at or before the click's x. A rest
	// here leaves Pitch empty.
	Closest       *score.Tickable `json:"closest,omitempty"`
	ClosestBefore *score.Tickable `json:"closest_before,omitempty"`

	StaffLine   *int                  `json:"staff_line,omitempty"`
	Pitch       *music.Pitch          `json:"pitch,omitempty"`
	Accidentals *accidental.Effective `json:"accidentals,omitempty"`
}
