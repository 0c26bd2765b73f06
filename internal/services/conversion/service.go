// Package conversion defines the interface for conversion runs
package conversion

//go:generate mockgen -destination=mock/mock_service.go -package=conversionmock github.com/edge-classic/EDGE-classic-sub008/internal/services/conversion Service

import (
	"context"
	"time"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
)

// Service defines the interface for conversion operations
type Service interface {
	// Convert applies edits over the baseline and emits every lump for the
	// modified entities.
	Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error)

	// ShowThing applies edits and emits one thing, modified or not.
	ShowThing(ctx context.Context, input *ShowThingInput) (*ShowThingOutput, error)

	// GetRun loads a stored run.
	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)
}

// ConvertInput defines the request for a conversion run
type ConvertInput struct {
	Version int
	Edits   []deh.Edit
	// Persist stores the lumps as a run.
	Persist bool
}

// ConvertOutput defines the response for a conversion run
type ConvertOutput struct {
	RunID    string // Empty unless persisted
	Location string
	Lumps    []output.Lump
	Warnings []session.Warning
}

// ShowThingInput defines the request for showing one thing
type ShowThingInput struct {
	Version int
	Edits   []deh.Edit
	ID      int
}

// ShowThingOutput defines the response for showing one thing
type ShowThingOutput struct {
	Lumps    []output.Lump
	Warnings []session.Warning
}

// GetRunInput defines the request for loading a run
type GetRunInput struct {
	ID string
}

// GetRunOutput defines the response for loading a run
type GetRunOutput struct {
	ID        string
	CreatedAt time.Time
	Lumps     []output.Lump
}
