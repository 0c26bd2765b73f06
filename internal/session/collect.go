package session

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

// CollectThingsWithMBF21Flag returns every thing carrying flag, in id order.
// Baseline things that carried the flag already and still do are skipped;
// the engine triggers those itself.
func (s *Session) CollectThingsWithMBF21Flag(flag deh.MBF21Flag) []int {
	var ids []int
	for _, id := range s.thingIDs() {
		t, _ := s.Thing(id)
		if !t.MBF21Flags.Has(flag) {
			continue
		}
		if base, ok := baseline.Thing(id); ok && base.MBF21Flags.Has(flag) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
