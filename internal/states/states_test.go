package states_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	outputmock "github.com/edge-classic/EDGE-classic-sub008/internal/output/mock"
	"github.com/edge-classic/EDGE-classic-sub008/internal/states"
)

type baselineSource struct{}

func (baselineSource) Frame(id int) (deh.Frame, bool) { return baseline.Frame(id) }

func (baselineSource) SpriteName(id int) string {
	name, _ := baseline.SpriteName(id)
	return name
}

// mapSource serves a handful of hand-built frames.
type mapSource map[int]deh.Frame

func (m mapSource) Frame(id int) (deh.Frame, bool) {
	f, ok := m[id]
	return f, ok
}

func (m mapSource) SpriteName(int) string { return "TEST" }

type GrouperTestSuite struct {
	suite.Suite
	buf *output.Buffer
}

func TestGrouperSuite(t *testing.T) {
	suite.Run(t, new(GrouperTestSuite))
}

func (s *GrouperTestSuite) SetupTest() {
	s.buf = output.NewBuffer()
	s.buf.BeginLump(output.LumpThings)
}

func (s *GrouperTestSuite) state(label string) int {
	id, ok := baseline.StateIndex(label)
	s.Require().True(ok, label)
	return id
}

func (s *GrouperTestSuite) impGrouper() *states.Grouper {
	imp, ok := baseline.Thing(deh.ThingTroop)
	s.Require().True(ok)

	g := states.NewGrouper(baselineSource{}, nil)
	for _, role := range deh.ThingRoles {
		g.BeginGroup(role, imp.State(role))
	}
	g.SpreadGroups()
	return g
}

func (s *GrouperTestSuite) TestImpGroups() {
	g := s.impGrouper()

	testCases := []struct {
		role   deh.Role
		frames int
		jump   string
	}{
		{deh.RoleSpawn, 2, ""},
		{deh.RoleSee, 8, ""},
		{deh.RoleMelee, 3, "#CHASE"},
		{deh.RoleMissile, 0, "#MELEE"},
		{deh.RolePain, 2, "#CHASE"},
		{deh.RoleDeath, 5, "#REMOVE"},
		{deh.RoleXDeath, 8, "#REMOVE"},
		{deh.RoleRaise, 5, "#CHASE"},
	}

	for _, tc := range testCases {
		s.Run(tc.role.Tag(), func() {
			grp, ok := g.Group(tc.role)
			s.Require().True(ok)
			s.Assert().Equal(tc.frames, grp.Len())
			s.Assert().Equal(tc.jump, grp.Jump)
		})
	}
}

func (s *GrouperTestSuite) TestOwner() {
	g := s.impGrouper()

	role, ok := g.Owner(s.state("TROO_ATK3"))
	s.Require().True(ok)
	s.Assert().Equal(deh.RoleMelee, role)

	_, ok = g.Owner(s.state("POSS_STND"))
	s.Assert().False(ok)
}

func (s *GrouperTestSuite) TestRenderFrame() {
	g := s.impGrouper()

	s.Assert().Equal("TROO:A:10:NORMAL:LOOKOUT", g.RenderFrame(s.state("TROO_STND")))
	s.Assert().Equal("TROO:H:2:NORMAL:NOTHING", g.RenderFrame(s.state("TROO_PAIN")))
	s.Assert().Equal("TROO:G:6:NORMAL:COMBOATTACK", g.RenderFrame(s.state("TROO_ATK3")))
}

func (s *GrouperTestSuite) TestOutputGroup() {
	g := s.impGrouper()

	s.Require().True(g.OutputGroup(s.buf, deh.RoleSpawn))
	s.Require().True(g.OutputGroup(s.buf, deh.RoleMissile))
	s.Require().True(g.OutputGroup(s.buf, deh.RoleDeath))

	expected := "<THINGS>\n\n" +
		"STATES(IDLE) = TROO:A:10:NORMAL:LOOKOUT,\n    TROO:B:10:NORMAL:LOOKOUT;\n" +
		"STATES(MISSILE) = #MELEE;\n" +
		"STATES(DEATH) = TROO:I:8:NORMAL:NOTHING,\n" +
		"    TROO:J:8:NORMAL:MAKEDEATHSOUND,\n" +
		"    TROO:K:6:NORMAL:NOTHING,\n" +
		"    TROO:L:6:NORMAL:MAKEDEAD,\n" +
		"    TROO:M:-1:NORMAL:NOTHING,\n" +
		"    #REMOVE;\n"
	s.Assert().Equal(expected, s.buf.Text(output.LumpThings))
}

func (s *GrouperTestSuite) TestOutputAll() {
	g := s.impGrouper()
	s.Assert().Equal(8, g.OutputAll(s.buf))
}

func (s *GrouperTestSuite) TestNullSeed() {
	g := states.NewGrouper(baselineSource{}, nil)
	s.Assert().Equal(0, g.BeginGroup(deh.RoleSpawn, deh.StateNull))
	s.Assert().Equal(1, g.BeginGroup(deh.RoleSee, s.state("TROO_RUN1")))
	s.Assert().Len(g.Groups(), 1)
}

func (s *GrouperTestSuite) TestMidGroupJump() {
	src := mapSource{
		1: {Tics: 4, Next: 2},
		2: {Tics: 4, Next: 3},
		3: {Tics: 4, Next: 2},
		4: {Tics: 4, Next: 3},
	}
	g := states.NewGrouper(src, nil)
	g.BeginGroup(deh.RoleSpawn, 1)
	g.BeginGroup(deh.RoleSee, 4)
	g.SpreadGroups()

	idle, _ := g.Group(deh.RoleSpawn)
	s.Assert().Equal([]int{1, 2, 3}, idle.Frames)
	s.Assert().Equal("#IDLE:2", idle.Jump)

	chase, _ := g.Group(deh.RoleSee)
	s.Assert().Equal([]int{4}, chase.Frames)
	s.Assert().Equal("#IDLE:3", chase.Jump)
}

func (s *GrouperTestSuite) TestCustomActionAndBright() {
	src := mapSource{7: {Frame: 2 | deh.FrameBright, Tics: 5, Next: 7, Action: "A_Look"}}
	g := states.NewGrouper(src, func(id int, _ deh.Frame) string {
		return "CUSTOM"
	})
	g.BeginGroup(deh.RoleSpawn, 7)
	g.SpreadGroups()

	s.Assert().Equal("TEST:C:5:BRIGHT:CUSTOM", g.RenderFrame(7))
}

func (s *GrouperTestSuite) TestUnseededRoleWritesNothing() {
	ctrl := gomock.NewController(s.T())
	w := outputmock.NewMockWriter(ctrl)

	g := states.NewGrouper(baselineSource{}, nil)
	g.SpreadGroups()

	w.EXPECT().Printf(gomock.Any(), gomock.Any()).Times(0)
	s.Assert().False(g.OutputGroup(w, deh.RoleSpawn))
}
