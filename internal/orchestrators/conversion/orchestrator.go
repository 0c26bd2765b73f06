// Package conversion implements the conversion orchestrator
package conversion

import (
	"context"

	"go.uber.org/zap"

	"github.com/edge-classic/EDGE-classic-sub008/internal/convert"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/pkg/clock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/pkg/idgen"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
	"github.com/edge-classic/EDGE-classic-sub008/internal/services/conversion"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
)

// ConverterFactory builds a converter over one session.
type ConverterFactory func(cfg *convert.Config) (convert.Converter, error)

// Config holds the dependencies for the conversion orchestrator
type Config struct {
	Repository lumps.Repository
	IDGen      idgen.Generator
	Clock      clock.Clock
	Logger     *zap.Logger

	// NewConverter defaults to convert.New.
	NewConverter ConverterFactory
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

// Orchestrator implements the conversion.Service interface
type Orchestrator struct {
	repo         lumps.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	log          *zap.Logger
	newConverter ConverterFactory
}

// New creates a new conversion orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	factory := cfg.NewConverter
	if factory == nil {
		factory = convert.New
	}

	return &Orchestrator{
		repo:         cfg.Repository,
		idGen:        cfg.IDGen,
		clock:        cfg.Clock,
		log:          cfg.Logger,
		newConverter: factory,
	}, nil
}

var _ conversion.Service = (*Orchestrator)(nil)

// prepare builds a session with the edits applied and a converter over it.
func (o *Orchestrator) prepare(version int, edits []deh.Edit) (*session.Session, convert.Converter, error) {
	sess, err := session.New(&session.Config{Version: version, Logger: o.log})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create session")
	}
	if err := sess.ApplyAll(edits); err != nil {
		return nil, nil, errors.Wrap(err, "failed to apply edits")
	}

	conv, err := o.newConverter(&convert.Config{Source: sess, Logger: o.log})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create converter")
	}
	return sess, conv, nil
}

// Convert runs one conversion and optionally stores the result
func (o *Orchestrator) Convert(ctx context.Context, input *conversion.ConvertInput) (*conversion.ConvertOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, conv, err := o.prepare(input.Version, input.Edits)
	if err != nil {
		return nil, err
	}

	buf := output.NewBuffer()
	if err := conv.ConvertAll(buf); err != nil {
		return nil, errors.Wrap(err, "failed to convert")
	}
	if err := buf.Err(); err != nil {
		return nil, errors.Wrap(err, "converter wrote outside a lump")
	}

	out := &conversion.ConvertOutput{
		Lumps:    buf.Lumps(),
		Warnings: sess.Warnings(),
	}

	if input.Persist {
		run := lumps.NewRun(o.idGen.Generate(), o.clock.Now(), out.Lumps)
		saved, err := o.repo.Save(ctx, &lumps.SaveInput{Run: run})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save run %s", run.ID)
		}
		out.RunID = run.ID
		out.Location = saved.Location
	}

	o.log.Info("conversion finished",
		zap.Int("version", input.Version),
		zap.Int("edits", len(input.Edits)),
		zap.Int("lumps", len(out.Lumps)),
		zap.Int("warnings", len(out.Warnings)),
		zap.String("run_id", out.RunID),
	)

	return out, nil
}

// ShowThing converts a single thing
func (o *Orchestrator) ShowThing(_ context.Context, input *conversion.ShowThingInput) (*conversion.ShowThingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID < 0 {
		return nil, errors.InvalidArgumentf("thing id must not be negative, got %d", input.ID)
	}

	sess, conv, err := o.prepare(input.Version, input.Edits)
	if err != nil {
		return nil, err
	}

	buf := output.NewBuffer()
	if err := conv.ConvertThing(buf, input.ID); err != nil {
		return nil, errors.Wrapf(err, "failed to convert thing %d", input.ID)
	}
	if err := buf.Err(); err != nil {
		return nil, errors.Wrap(err, "converter wrote outside a lump")
	}

	return &conversion.ShowThingOutput{
		Lumps:    buf.Lumps(),
		Warnings: sess.Warnings(),
	}, nil
}

// GetRun loads a stored run
func (o *Orchestrator) GetRun(ctx context.Context, input *conversion.GetRunInput) (*conversion.GetRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("run id is required")
	}

	loaded, err := o.repo.Load(ctx, &lumps.LoadInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load run %s", input.ID)
	}

	return &conversion.GetRunOutput{
		ID:        loaded.Run.ID,
		CreatedAt: loaded.Run.CreatedAt,
		Lumps:     loaded.Run.Lumps,
	}, nil
}
