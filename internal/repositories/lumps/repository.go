// Package lumps stores the lump sets produced by conversion runs.
package lumps

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=lumpsmock github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps Repository

// Run is the stored result of one conversion.
type Run struct {
	ID        string
	CreatedAt time.Time
	Lumps     []output.Lump
	// Digests holds the xxhash of each lump text by lump name.
	Digests map[string]uint64
}

// NewRun builds a run and digests its lumps.
func NewRun(id string, createdAt time.Time, lumps []output.Lump) *Run {
	digests := make(map[string]uint64, len(lumps))
	for _, l := range lumps {
		digests[l.Name] = Digest(l.Text)
	}
	return &Run{
		ID:        id,
		CreatedAt: createdAt,
		Lumps:     lumps,
		Digests:   digests,
	}
}

// Digest hashes lump text.
func Digest(text string) uint64 {
	return xxhash.Sum64String(text)
}

// Lump returns a lump of the run by kind.
func (r *Run) Lump(kind output.LumpKind) (output.Lump, bool) {
	for _, l := range r.Lumps {
		if l.Kind == kind {
			return l, true
		}
	}
	return output.Lump{}, false
}

// SaveInput contains the run to store
type SaveInput struct {
	Run *Run
}

// SaveOutput tells where the run was stored
type SaveOutput struct {
	// Location is the Redis key or directory of the run.
	Location string
}

// LoadInput selects a stored run
type LoadInput struct {
	ID string
}

// LoadOutput contains the stored run
type LoadOutput struct {
	Run *Run
}

// Repository persists lump sets.
type Repository interface {
	// Save stores a run, replacing any run with the same id.
	// Returns errors.InvalidArgument for a nil run or empty id.
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load reads a run back and checks every lump against its digest.
	// Returns errors.NotFound if no run has the id.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

const (
	errRunNil     = "run cannot be nil"
	errRunIDEmpty = "run ID cannot be empty"
)

func validateRun(run *Run) error {
	if run == nil {
		return errors.InvalidArgument(errRunNil)
	}
	if run.ID == "" {
		return errors.InvalidArgument(errRunIDEmpty)
	}
	return nil
}
