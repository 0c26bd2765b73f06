package lumps_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
)

type DirLumpsTestSuite struct {
	suite.Suite
	root string
	repo lumps.Repository
	ctx  context.Context
}

func TestDirLumpsSuite(t *testing.T) {
	suite.Run(t, new(DirLumpsTestSuite))
}

func (s *DirLumpsTestSuite) SetupTest() {
	s.root = s.T().TempDir()
	s.ctx = context.Background()

	repo, err := lumps.NewDir(&lumps.DirConfig{Root: s.root})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *DirLumpsTestSuite) TestNewDirRequiresRoot() {
	_, err := lumps.NewDir(&lumps.DirConfig{Root: " "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *DirLumpsTestSuite) TestSaveWritesLumpFiles() {
	out, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.root, testRunID), out.Location)

	data, err := os.ReadFile(filepath.Join(out.Location, "DDFTHING.txt"))
	s.Require().NoError(err)
	s.Equal("<THINGS>\n\n[IMP:3001]\nSPAWNHEALTH = 90;\n\n", string(data))
	s.FileExists(filepath.Join(out.Location, "DDFLANG.txt"))
	s.FileExists(filepath.Join(out.Location, "run.toml"))
	s.NoFileExists(filepath.Join(out.Location, "DDFWEAP.txt"))
}

func (s *DirLumpsTestSuite) TestSaveAndLoad() {
	_, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, &lumps.LoadInput{ID: testRunID})
	s.Require().NoError(err)
	s.Equal(testRun().Lumps, loaded.Run.Lumps)
	s.Equal(testRun().Digests, loaded.Run.Digests)
	s.True(testCreatedAt.Equal(loaded.Run.CreatedAt))
}

func (s *DirLumpsTestSuite) TestLoadMissing() {
	_, err := s.repo.Load(s.ctx, &lumps.LoadInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *DirLumpsTestSuite) TestLoadDetectsTampering() {
	out, err := s.repo.Save(s.ctx, &lumps.SaveInput{Run: testRun()})
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(filepath.Join(out.Location, "DDFLANG.txt"), []byte("edited"), 0o644))

	_, err = s.repo.Load(s.ctx, &lumps.LoadInput{ID: testRunID})
	s.True(errors.IsInternal(err))
}
