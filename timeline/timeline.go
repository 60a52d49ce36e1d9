package timeline

import (
	"math/big"

	"github.com/jsphweid/scorepoint/score"
)

// Entry is one tickable annotated with the exact beat elapsed strictly
// before it within its voice. Event points into the voice's own slice.
type Entry struct {
	Event *score.Tickable
	Beat  *big.Rat
}

// Build lays a voice's tickables out chronologically. Each event's beat is
// the sum of the tick durations before it divided by the voice's
// resolution, kept as an exact fraction so positions reached through
// different duration sums still compare equal with Cmp. The voice itself is
// not modified, and rebuilding yields the same beats every time.
//
// A resolution of zero or less reads as one tick per beat; the voice is a
// layout defect at that point but the walk still has to terminate.
func Build(v *score.Voice) []Entry {
	res := int64(v.Resolution)
	if res <= 0 {
		res = 1
	}
	entries := make([]Entry, 0, len(v.Events))
	at := new(big.Rat)
	for i := range v.Events {
		entries = append(entries, Entry{
			Event: &v.Events[i],
			Beat:  new(big.Rat).Set(at),
		})
		at.Add(at, big.NewRat(int64(v.Events[i].Ticks), res))
	}
	return entries
}
