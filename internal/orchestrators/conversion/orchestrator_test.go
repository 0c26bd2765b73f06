package conversion_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/edge-classic/EDGE-classic-sub008/internal/convert"
	convertmock "github.com/edge-classic/EDGE-classic-sub008/internal/convert/mock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	orchestrator "github.com/edge-classic/EDGE-classic-sub008/internal/orchestrators/conversion"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/pkg/clock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/pkg/idgen"
	mockclock "github.com/edge-classic/EDGE-classic-sub008/internal/pkg/clock/mock"
	idgenmock "github.com/edge-classic/EDGE-classic-sub008/internal/pkg/idgen/mock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
	lumpsmock "github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps/mock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/services/conversion"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
	"github.com/edge-classic/EDGE-classic-sub008/internal/testutils"
	"github.com/edge-classic/EDGE-classic-sub008/internal/testutils/builders"
	"github.com/edge-classic/EDGE-classic-sub008/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *lumpsmock.MockRepository
	mockIDGen    *idgenmock.MockGenerator
	logs         *observer.ObservedLogs
	logger       *zap.Logger
	orchestrator *orchestrator.Orchestrator
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = lumpsmock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs
	s.logger = zap.New(core)

	s.orchestrator = s.newOrchestrator(nil)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(factory orchestrator.ConverterFactory) *orchestrator.Orchestrator {
	o, err := orchestrator.New(&orchestrator.Config{
		Repository:   s.mockRepo,
		IDGen:        s.mockIDGen,
		Clock:        &clock.Fixed{At: testutils.TestCreatedAt},
		Logger:       s.logger,
		NewConverter: factory,
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) withConverter(conv convert.Converter) *orchestrator.Orchestrator {
	return s.newOrchestrator(func(cfg *convert.Config) (convert.Converter, error) {
		s.Require().NotNil(cfg.Source)
		return conv, nil
	})
}

func impHitPoints(v int) []deh.Edit {
	return builders.NewEditsBuilder().ThingField(deh.ThingTroop, "Hit points", v).Build()
}

func (s *OrchestratorTestSuite) TestNew_MissingDependencies() {
	testCases := []struct {
		name    string
		cfg     *orchestrator.Config
		missing string
	}{
		{
			name:    "missing repository",
			cfg:     &orchestrator.Config{IDGen: s.mockIDGen, Clock: clock.New(), Logger: s.logger},
			missing: "Repository",
		},
		{
			name:    "missing id generator",
			cfg:     &orchestrator.Config{Repository: s.mockRepo, Clock: clock.New(), Logger: s.logger},
			missing: "IDGen",
		},
		{
			name:    "missing clock",
			cfg:     &orchestrator.Config{Repository: s.mockRepo, IDGen: s.mockIDGen, Logger: s.logger},
			missing: "Clock",
		},
		{
			name:    "missing logger",
			cfg:     &orchestrator.Config{Repository: s.mockRepo, IDGen: s.mockIDGen, Clock: clock.New()},
			missing: "Logger",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			o, err := orchestrator.New(tc.cfg)
			s.Error(err)
			s.Nil(o)
			s.Contains(err.Error(), tc.missing)
		})
	}
}

func (s *OrchestratorTestSuite) TestConvert_Persisted() {
	s.mockIDGen.EXPECT().Generate().Return("run_1")
	mocks.ExpectRunSaved(s.ctx, s.mockRepo, "run_1", func(run *lumps.Run) {
		s.Equal(testutils.TestCreatedAt, run.CreatedAt)
		things, ok := run.Lump(output.LumpThings)
		s.Require().True(ok)
		s.Equal(lumps.Digest(things.Text), run.Digests[things.Name])
	})

	out, err := s.orchestrator.Convert(s.ctx, &conversion.ConvertInput{
		Version: testutils.TestVersion,
		Edits:   impHitPoints(100),
		Persist: true,
	})

	s.Require().NoError(err)
	s.Equal("run_1", out.RunID)
	s.Equal("dehconv:run:run_1", out.Location)
	s.Empty(out.Warnings)
	s.Require().Len(out.Lumps, 1)
	s.Equal(output.LumpThings, out.Lumps[0].Kind)
	s.Contains(out.Lumps[0].Text, "[IMP:3001]\n")
	s.Contains(out.Lumps[0].Text, "SPAWNHEALTH = 100;\n")

	finished := s.logs.FilterMessage("conversion finished").All()
	s.Require().Len(finished, 1)
	s.Equal("run_1", finished[0].ContextMap()["run_id"])
	s.Equal(int64(1), finished[0].ContextMap()["lumps"])
}

func (s *OrchestratorTestSuite) TestConvert_StampsRunWithClock() {
	at := testutils.TestCreatedAt.Add(time.Hour)
	mockClock := mockclock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().Return(at)

	o, err := orchestrator.New(&orchestrator.Config{
		Repository: s.mockRepo,
		IDGen:      s.mockIDGen,
		Clock:      mockClock,
		Logger:     s.logger,
	})
	s.Require().NoError(err)

	s.mockIDGen.EXPECT().Generate().Return("run_clock")
	mocks.ExpectRunSaved(s.ctx, s.mockRepo, "run_clock", func(run *lumps.Run) {
		s.Equal(at, run.CreatedAt)
	})

	_, err = o.Convert(s.ctx, &conversion.ConvertInput{
		Version: testutils.TestVersion,
		Edits:   impHitPoints(80),
		Persist: true,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestConvert_SequentialRunIDs() {
	o, err := orchestrator.New(&orchestrator.Config{
		Repository: s.mockRepo,
		IDGen:      idgen.NewSequential("run"),
		Clock:      &clock.Fixed{At: testutils.TestCreatedAt},
		Logger:     s.logger,
	})
	s.Require().NoError(err)

	gomock.InOrder(
		mocks.ExpectRunSaved(s.ctx, s.mockRepo, "run_1", nil),
		mocks.ExpectRunSaved(s.ctx, s.mockRepo, "run_2", nil),
	)

	for _, want := range []string{"run_1", "run_2"} {
		out, err := o.Convert(s.ctx, &conversion.ConvertInput{
			Version: testutils.TestVersion,
			Edits:   impHitPoints(70),
			Persist: true,
		})
		s.Require().NoError(err)
		s.Equal(want, out.RunID)
		s.Equal("dehconv:run:"+want, out.Location)
	}
}

func (s *OrchestratorTestSuite) TestConvert_NotPersisted() {
	out, err := s.orchestrator.Convert(s.ctx, &conversion.ConvertInput{
		Version: testutils.TestVersion,
		Edits:   impHitPoints(100),
	})

	s.Require().NoError(err)
	s.Empty(out.RunID)
	s.Empty(out.Location)
	s.Len(out.Lumps, 1)
}

func (s *OrchestratorTestSuite) TestConvert_NoEdits() {
	out, err := s.orchestrator.Convert(s.ctx, &conversion.ConvertInput{Version: testutils.TestVersion})

	s.Require().NoError(err)
	s.Empty(out.Lumps)
}

func (s *OrchestratorTestSuite) TestConvert_ReturnsWarnings() {
	out, err := s.orchestrator.Convert(s.ctx, &conversion.ConvertInput{
		Version: testutils.TestVersion,
		Edits: []deh.Edit{
			{Kind: deh.EditThingField, ID: deh.ThingTroop, Field: "Colour", Value: 3},
		},
	})

	s.Require().NoError(err)
	s.Require().Len(out.Warnings, 1)
	s.Equal(session.WarnUnknownField, out.Warnings[0].Kind)
	s.Equal("Colour", out.Warnings[0].Field)
	s.Empty(out.Lumps)
	s.Equal(1, s.logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func (s *OrchestratorTestSuite) TestConvert_Errors() {
	s.Run("nil input", func() {
		_, err := s.orchestrator.Convert(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("negative version", func() {
		_, err := s.orchestrator.Convert(s.ctx, &conversion.ConvertInput{Version: -1})
		s.Error(err)
		s.Contains(err.Error(), "failed to create session")
	})

	s.Run("save fails", func() {
		s.mockIDGen.EXPECT().Generate().Return("run_2")
		s.mockRepo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

		_, err := s.orchestrator.Convert(s.ctx, &conversion.ConvertInput{
			Version: testutils.TestVersion,
			Edits:   impHitPoints(5),
			Persist: true,
		})
		s.True(errors.IsInternal(err))
		s.Contains(err.Error(), "run_2")
	})

	s.Run("converter fails", func() {
		conv := convertmock.NewMockConverter(s.ctrl)
		conv.EXPECT().ConvertAll(gomock.Any()).Return(errors.NotFound("no attack"))

		_, err := s.withConverter(conv).Convert(s.ctx, &conversion.ConvertInput{Version: testutils.TestVersion})
		s.True(errors.IsNotFound(err))
	})

	s.Run("write outside a lump", func() {
		conv := convertmock.NewMockConverter(s.ctrl)
		conv.EXPECT().ConvertAll(gomock.Any()).DoAndReturn(func(w output.Writer) error {
			w.Printf("stray\n")
			return nil
		})

		_, err := s.withConverter(conv).Convert(s.ctx, &conversion.ConvertInput{Version: testutils.TestVersion})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("factory fails", func() {
		o := s.newOrchestrator(func(*convert.Config) (convert.Converter, error) {
			return nil, errors.Internal("no converter")
		})
		_, err := o.Convert(s.ctx, &conversion.ConvertInput{Version: testutils.TestVersion})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestShowThing_Unmodified() {
	out, err := s.orchestrator.ShowThing(s.ctx, &conversion.ShowThingInput{
		Version: testutils.TestVersion,
		ID:      deh.ThingTroop,
	})

	s.Require().NoError(err)
	s.Require().Len(out.Lumps, 1)
	s.True(strings.HasPrefix(out.Lumps[0].Text, "<THINGS>\n\n[IMP:3001]\n"))
	s.Contains(out.Lumps[0].Text, "SPAWNHEALTH = 60;\n")
}

func (s *OrchestratorTestSuite) TestShowThing_WithEdits() {
	out, err := s.orchestrator.ShowThing(s.ctx, &conversion.ShowThingInput{
		Version: testutils.TestVersion,
		Edits:   impHitPoints(250),
		ID:      deh.ThingTroop,
	})

	s.Require().NoError(err)
	s.Contains(out.Lumps[0].Text, "SPAWNHEALTH = 250;\n")
}

func (s *OrchestratorTestSuite) TestShowThing_Errors() {
	testCases := []struct {
		name  string
		input *conversion.ShowThingInput
		check func(error) bool
	}{
		{"nil input", nil, errors.IsInvalidArgument},
		{"negative id", &conversion.ShowThingInput{Version: testutils.TestVersion, ID: -1}, errors.IsInvalidArgument},
		{"missing thing", &conversion.ShowThingInput{Version: testutils.TestVersion, ID: 5000}, errors.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.ShowThing(s.ctx, tc.input)
			s.Nil(out)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestGetRun() {
	run := testutils.CreateTestRun(testutils.TestRunID)
	mocks.ExpectRunLoaded(s.ctx, s.mockRepo, run)

	out, err := s.orchestrator.GetRun(s.ctx, &conversion.GetRunInput{ID: testutils.TestRunID})

	s.Require().NoError(err)
	s.Equal(testutils.TestRunID, out.ID)
	s.Equal(testutils.TestCreatedAt, out.CreatedAt)
	s.Equal(run.Lumps, out.Lumps)
}

func (s *OrchestratorTestSuite) TestGetRun_Errors() {
	s.Run("empty id", func() {
		_, err := s.orchestrator.GetRun(s.ctx, &conversion.GetRunInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		s.mockRepo.EXPECT().
			Load(s.ctx, &lumps.LoadInput{ID: "gone"}).
			Return(nil, errors.NotFound("run gone not found"))

		_, err := s.orchestrator.GetRun(s.ctx, &conversion.GetRunInput{ID: "gone"})
		s.True(errors.IsNotFound(err))
	})
}
