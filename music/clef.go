package music

import "strings"

// Line shift of each clef's center staff line relative to treble, one staff
// line per step down the clef family. Treble centers on b/4, bass six lines
// lower on d/3.
var clefShifts = map[string]int{
	"french":        -1,
	"treble":        0,
	"soprano":       1,
	"mezzo-soprano": 2,
	"alto":          3,
	"tenor":         4,
	"baritone-c":    5,
	"baritone-f":    5,
	"bass":          6,
	"subbass":       7,
	"percussion":    0,
}

// ClefShift returns the clef's line-shift constant. Unknown and empty clef
// names read as treble so a sloppy layout degrades to the common case
// instead of failing the query.
func ClefShift(name string) int {
	if shift, ok := clefShifts[strings.ToLower(strings.TrimSpace(name))]; ok {
		return shift
	}
	return 0
}
