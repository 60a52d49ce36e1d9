package music

import (
	"strconv"
	"strings"
)

// Key signatures around the circle of fifths: accidental count with the
// major and relative minor name for each. Parsed once at startup.
const keyTable = `
0   C   Am
1#  G   Em
2#  D   Bm
3#  A   F#m
4#  E   C#m
5#  B   G#m
6#  F#  D#m
7#  C#  A#m
1b  F   Dm
2b  Bb  Gm
3b  Eb  Cm
4b  Ab  Fm
5b  Db  Bbm
6b  Gb  Ebm
7b  Cb  Abm
`

// Order in which sharps and flats enter a signature.
var sharpOrder = [7]string{"f", "c", "g", "d", "a", "e", "b"}
var flatOrder = [7]string{"b", "e", "a", "d", "g", "c", "f"}

type keySpec struct {
	acc   string
	count int
}

var keySpecs map[string]keySpec

func init() {
	keySpecs = make(map[string]keySpec)
	for _, line := range strings.Split(keyTable, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		var ks keySpec
		head := fields[0]
		if last := head[len(head)-1]; last == '#' || last == 'b' {
			ks.acc = string(last)
			head = head[:len(head)-1]
		}
		ks.count, _ = strconv.Atoi(head)
		for _, name := range fields[1:] {
			keySpecs[name] = ks
		}
	}
}

// KeyAccidentals expands a key-signature name into the letters it alters,
// letter to accidental. Major ("Bb") and minor ("Gm") names are accepted.
// ok is false for names outside the table; callers treat that as an all
// natural signature.
func KeyAccidentals(name string) (map[string]string, bool) {
	ks, ok := keySpecs[strings.TrimSpace(name)]
	if !ok {
		return nil, false
	}
	order := sharpOrder
	if ks.acc == "b" {
		order = flatOrder
	}
	out := make(map[string]string, ks.count)
	for i := 0; i < ks.count; i++ {
		out[order[i]] = ks.acc
	}
	return out, true
}
