package output_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

type BufferTestSuite struct {
	suite.Suite
	buf *output.Buffer
}

func TestBufferSuite(t *testing.T) {
	suite.Run(t, new(BufferTestSuite))
}

func (s *BufferTestSuite) SetupTest() {
	s.buf = output.NewBuffer()
}

func (s *BufferTestSuite) TestHeaderWrittenOnce() {
	s.buf.BeginLump(output.LumpThings)
	s.buf.Printf("[%s:%d]\n", "IMP", 3001)
	s.buf.EndLump()
	s.buf.BeginLump(output.LumpThings)
	s.buf.Printf("[DEMON:3002]\n")
	s.buf.EndLump()

	s.Assert().Equal("<THINGS>\n\n[IMP:3001]\n[DEMON:3002]\n", s.buf.Text(output.LumpThings))
	s.Assert().NoError(s.buf.Err())
}

func (s *BufferTestSuite) TestLumpsInEmissionOrder() {
	s.buf.BeginLump(output.LumpRScript)
	s.buf.Printf("START_MAP MAP07\n")
	s.buf.EndLump()
	s.buf.BeginLump(output.LumpAttacks)
	s.buf.EndLump()

	lumps := s.buf.Lumps()
	s.Require().Len(lumps, 2)
	s.Assert().Equal("DDFATK", lumps[0].Name)
	s.Assert().Equal("<ATTACKS>\n\n", lumps[0].Text)
	s.Assert().Equal("RSCRIPT", lumps[1].Name)
	s.Assert().Equal("START_MAP MAP07\n", lumps[1].Text)
}

func (s *BufferTestSuite) TestWritesOutsideLump() {
	s.buf.Printf("lost")
	s.Assert().True(errors.IsFailedPrecondition(s.buf.Err()))
	s.Assert().Empty(s.buf.Lumps())
}

func (s *BufferTestSuite) TestKindByName() {
	k, ok := output.KindByName("ddfweap")
	s.Require().True(ok)
	s.Assert().Equal(output.LumpWeapons, k)

	_, ok = output.KindByName("DDFLEVL")
	s.Assert().False(ok)
}
