package classify_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/classify"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

type baselineFrames struct{}

func (baselineFrames) Frame(id int) (deh.Frame, bool) {
	return baseline.Frame(id)
}

type ClassifyTestSuite struct {
	suite.Suite
}

func TestClassifySuite(t *testing.T) {
	suite.Run(t, new(ClassifyTestSuite))
}

// scored builds a thing whose score is the sum of the given parts.
func scored(solid, shootable, pain, attack, death, raise, speed bool) deh.Thing {
	t := deh.NewNeutralThing("TEST")
	t.DoomedNum = 4000
	if solid {
		t.Flags |= deh.FlagSolid
	}
	if shootable {
		t.Flags |= deh.FlagShootable
	}
	if pain {
		t.PainState = 1
	}
	if attack {
		t.MissileState = 1
	}
	if death {
		t.DeathState = 1
	}
	if raise {
		t.RaiseState = 1
	}
	if speed {
		t.Speed = 8
	}
	return t
}

func (s *ClassifyTestSuite) TestThresholds() {
	testCases := []struct {
		name     string
		thing    deh.Thing
		roles    *classify.Roles
		score    int
		expected bool
	}{
		{
			name:     "known roles at threshold",
			thing:    scored(false, true, false, false, true, false, true),
			roles:    &classify.Roles{Chase: true, Fall: true},
			score:    370,
			expected: true,
		},
		{
			name:     "known roles one below",
			thing:    scored(true, true, true, false, true, true, false),
			roles:    &classify.Roles{Chase: true},
			score:    369,
			expected: false,
		},
		{
			name:     "unknown roles at threshold",
			thing:    scored(false, false, true, true, false, true, true),
			score:    300,
			expected: true,
		},
		{
			name:     "unknown roles below",
			thing:    scored(true, false, true, true, false, false, true),
			score:    294,
			expected: false,
		},
		{
			name:     "unknown threshold does not apply once roles are known",
			thing:    scored(false, false, true, true, false, true, true),
			roles:    &classify.Roles{},
			score:    300,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.score, classify.Score(&tc.thing, tc.roles))
			s.Assert().Equal(tc.expected, classify.IsMonster(&tc.thing, tc.roles))
		})
	}
}

func (s *ClassifyTestSuite) TestShortCircuits() {
	monster := scored(true, true, true, true, true, true, true)

	testCases := []struct {
		name     string
		mutate   func(t *deh.Thing)
		expected bool
	}{
		{"full score", func(t *deh.Thing) {}, true},
		{"no doomednum", func(t *deh.Thing) { t.DoomedNum = -1 }, false},
		{"zero doomednum", func(t *deh.Thing) { t.DoomedNum = 0 }, false},
		{"attack name", func(t *deh.Thing) { t.Name = "*FIREBALL" }, false},
		{"player", func(t *deh.Thing) { t.PlayerNum = 1 }, false},
		{"pickup", func(t *deh.Thing) { t.Flags |= deh.FlagSpecial }, false},
		{"counts as item", func(t *deh.Thing) { t.Flags |= deh.FlagCountItem }, false},
		{"counts as kill wins", func(t *deh.Thing) {
			*t = deh.NewNeutralThing("KILLABLE")
			t.DoomedNum = 4001
			t.Flags = deh.FlagCountKill | deh.FlagSpecial
		}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := monster
			tc.mutate(&t)
			s.Assert().Equal(tc.expected, classify.IsMonster(&t, nil))
			s.Assert().Equal(tc.expected, classify.IsMonster(&t, &classify.Roles{}))
		})
	}
}

func (s *ClassifyTestSuite) TestNoVisibleStatesIsNotMonster() {
	t := deh.NewNeutralThing("GHOST")
	t.DoomedNum = 4002

	s.Assert().Equal(0, classify.Score(&t, nil))
	s.Assert().False(classify.IsMonster(&t, nil))
	s.Assert().False(classify.IsMonster(&t, &classify.Roles{}))
}

func (s *ClassifyTestSuite) TestBaselineMonsters() {
	src := baselineFrames{}
	table := actions.NewSideTable(src)

	for _, id := range []int{deh.ThingPossessed, deh.ThingTroop, deh.ThingCyborg, deh.ThingSkull} {
		t, _ := baseline.Thing(id)
		s.Assert().True(classify.IsMonster(&t, classify.InferRoles(&t, table, src)), t.Name)
	}

	barrel, _ := baseline.Thing(deh.ThingBarrel)
	s.Assert().False(classify.IsMonster(&barrel, classify.InferRoles(&barrel, table, src)))

	imp, _ := baseline.Thing(deh.ThingTroop)
	roles := classify.InferRoles(&imp, table, src)
	s.Assert().True(roles.Chase)
	s.Assert().True(roles.Fall)
}
