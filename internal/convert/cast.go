package convert

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

// MaxCastEntries is the size of the finale cast table.
const MaxCastEntries = 20

// DefaultCast is the order monsters appear in the finale.
var DefaultCast = []int{
	deh.ThingPossessed,
	deh.ThingShotguy,
	deh.ThingChainguy,
	deh.ThingTroop,
	deh.ThingSergeant,
	deh.ThingSkull,
	deh.ThingHead,
	deh.ThingKnight,
	deh.ThingBruiser,
	deh.ThingBaby,
	deh.ThingPain,
	deh.ThingUndead,
	deh.ThingFatso,
	deh.ThingVile,
	deh.ThingSpider,
	deh.ThingCyborg,
	deh.ThingPlayer,
}

// CastTable numbers the finale cast from 1.
type CastTable struct {
	order map[int]int
}

// NewCastTable builds a table from things in appearance order.
func NewCastTable(ids []int) (*CastTable, error) {
	if len(ids) > MaxCastEntries {
		return nil, errors.ResourceExhaustedf("cast table holds %d entries, got %d", MaxCastEntries, len(ids))
	}

	t := &CastTable{order: make(map[int]int, len(ids))}
	for i, id := range ids {
		if _, dup := t.order[id]; !dup {
			t.order[id] = i + 1
		}
	}
	return t, nil
}

// Order returns the cast position of a thing.
func (t *CastTable) Order(id int) (int, bool) {
	n, ok := t.order[id]
	return n, ok
}
