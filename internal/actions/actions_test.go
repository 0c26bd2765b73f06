package actions_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	actionsmock "github.com/edge-classic/EDGE-classic-sub008/internal/actions/mock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

type baselineFrames struct{}

func (baselineFrames) Frame(id int) (deh.Frame, bool) {
	return baseline.Frame(id)
}

type editedFrames map[int]deh.Frame

func (e editedFrames) Frame(id int) (deh.Frame, bool) {
	if f, ok := e[id]; ok {
		return f, true
	}
	return baseline.Frame(id)
}

type ActionsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockTable *actionsmock.MockSideTable
}

func TestActionsSuite(t *testing.T) {
	suite.Run(t, new(ActionsTestSuite))
}

func (s *ActionsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTable = actionsmock.NewMockSideTable(s.ctrl)
}

func (s *ActionsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ActionsTestSuite) TestLookupNormalizesMnemonic() {
	for _, m := range []string{"A_Look", "a_look", "Look", " LOOK "} {
		info, ok := actions.Lookup(m)
		s.Require().True(ok, m)
		s.Assert().Equal("LOOKOUT", info.DDF)
		s.Assert().True(info.Flags.Has(actions.FlagLook))
	}

	_, ok := actions.Lookup("A_DoesNotExist")
	s.Assert().False(ok)
}

func (s *ActionsTestSuite) TestComboAttackFillsTwoSlots() {
	info, ok := actions.Lookup("A_TroopAttack")
	s.Require().True(ok)
	s.Assert().Equal("IMP_FIREBALL", info.Attacks.Ranged)
	s.Assert().Equal("IMP_CLAW", info.Attacks.Close)
	s.Assert().Empty(info.Attacks.Spare)
	s.Assert().False(info.Attacks.IsZero())
}

func (s *ActionsTestSuite) TestMnemonicsArePrefixed() {
	names := actions.Mnemonics()
	s.Require().NotEmpty(names)
	s.Assert().Equal("A_Light0", names[0])
	s.Assert().Contains(names, "A_MonsterMeleeAttack")
}

func (s *ActionsTestSuite) TestSideTableReadsCurrentFrames() {
	start, _ := baseline.StateIndex("POSS_STND")
	frames := editedFrames{}
	table := actions.NewSideTable(frames)

	s.Assert().True(table.Flags(start).Has(actions.FlagLook))
	s.Assert().True(table.Attacks(start).IsZero())

	f, _ := baseline.Frame(start)
	f.Action = "A_Explode"
	frames[start] = f
	s.Assert().True(table.Flags(start).Has(actions.FlagExplode))
	s.Assert().Equal(actions.Flag(0), table.Flags(deh.StateNull))
}

func (s *ActionsTestSuite) TestChainStopsOnLoop() {
	start, _ := baseline.StateIndex("POSS_STND")
	s.Assert().Equal([]int{start, start + 1}, actions.Chain(baselineFrames{}, start))
	s.Assert().Nil(actions.Chain(baselineFrames{}, deh.StateNull))
}

func (s *ActionsTestSuite) TestChainFlags() {
	start, _ := baseline.StateIndex("POSS_STND")
	s.mockTable.EXPECT().Flags(start).Return(actions.FlagLook)
	s.mockTable.EXPECT().Flags(start + 1).Return(actions.FlagChase)

	flags := actions.ChainFlags(s.mockTable, baselineFrames{}, start)
	s.Assert().Equal(actions.FlagLook|actions.FlagChase, flags)
}
