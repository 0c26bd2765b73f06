package baseline_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

type BaselineTestSuite struct {
	suite.Suite
}

func TestBaselineSuite(t *testing.T) {
	suite.Run(t, new(BaselineTestSuite))
}

func (s *BaselineTestSuite) TestStateIndexesMatchPatchNumbering() {
	testCases := []struct {
		label string
		index int
	}{
		{"NULL", 0},
		{"TFOG", 130},
		{"PLAY", 149},
		{"POSS_STND", 174},
		{"TROO_STND", 442},
		{"SARG_STND", 475},
		{"CYBER_STND", 674},
		{"COMMKEEN", 764},
		{"BRAIN", 778},
		{"SPAWN1", 787},
		{"TECH2LAMP4", 966},
	}

	for _, tc := range testCases {
		s.Run(tc.label, func() {
			idx, ok := baseline.StateIndex(tc.label)
			s.Require().True(ok)
			s.Assert().Equal(tc.index, idx)
		})
	}
}

func (s *BaselineTestSuite) TestFrameResolvesSpriteAndNext() {
	f, ok := baseline.Frame(174)
	s.Require().True(ok)

	s.Assert().Equal("A_Look", f.Action)
	s.Assert().Equal(175, f.Next)
	name, ok := baseline.SpriteName(f.Sprite)
	s.Require().True(ok)
	s.Assert().Equal("POSS", name)

	_, ok = baseline.Frame(baseline.NumStates)
	s.Assert().False(ok)
}

func (s *BaselineTestSuite) TestThings() {
	imp, ok := baseline.Thing(deh.ThingTroop)
	s.Require().True(ok)
	s.Assert().Equal("IMP", imp.Name)
	s.Assert().Equal(3001, imp.DoomedNum)
	s.Assert().Equal(442, imp.SpawnState)
	s.Assert().True(imp.Flags.Has(deh.FlagCountKill))
	s.Assert().Equal(-1, imp.DroppedItem)
	s.Assert().False(imp.InfightGroup.IsSet())

	cube, ok := baseline.Thing(deh.ThingSpawnShot)
	s.Require().True(ok)
	s.Assert().True(cube.IsAttack())
	s.Assert().Equal("BRAIN_CUBE", cube.DDFName())

	knight, _ := baseline.Thing(deh.ThingKnight)
	group, set := knight.ProjectileGroup.Get()
	s.Assert().True(set)
	s.Assert().Equal(1, group)

	cyborg, _ := baseline.Thing(deh.ThingCyborg)
	s.Assert().True(cyborg.MBF21Flags.Has(deh.MBF21Boss | deh.MBF21E2M8Boss | deh.MBF21E4M6Boss))

	_, ok = baseline.Thing(baseline.NumThings)
	s.Assert().False(ok)
}

func (s *BaselineTestSuite) TestThingCopiesAreIndependent() {
	a, _ := baseline.Thing(deh.ThingPossessed)
	a.SpawnHealth = 9999

	b, _ := baseline.Thing(deh.ThingPossessed)
	s.Assert().Equal(20, b.SpawnHealth)
}

func (s *BaselineTestSuite) TestWeaponsAndAmmo() {
	bfg, ok := baseline.Weapon(deh.WeaponBFG)
	s.Require().True(ok)
	s.Assert().Equal(40, bfg.AmmoPerShot)
	s.Assert().Equal(deh.AmmoCells, bfg.Ammo)
	s.Assert().True(bfg.Flags.Has(deh.WeaponNoAutoFire))

	fist, _ := baseline.Weapon(deh.WeaponFist)
	s.Assert().Equal(deh.StateNull, fist.FlashState)

	bullets, ok := baseline.Ammo(deh.AmmoBullets)
	s.Require().True(ok)
	s.Assert().Equal(200, bullets.Max)
	s.Assert().Equal(10, bullets.Per)
}

func (s *BaselineTestSuite) TestLookups() {
	idx, ok := baseline.SoundIndex("PISTOL")
	s.Require().True(ok)
	s.Assert().Equal(1, idx)

	idx, ok = baseline.SpriteIndex("troo")
	s.Require().True(ok)
	s.Assert().Equal(0, idx)

	ref, ok := baseline.TextRef("Picked up a clip.")
	s.Require().True(ok)
	s.Assert().Equal("GotClip", ref)

	ref, ok = baseline.MnemonicRef("gotshotgun2")
	s.Require().True(ok)
	s.Assert().Equal("GotDoubleShotgun", ref)

	s.Assert().Equal(deh.InfightDefault, baseline.Misc().MonstersInfight)
}
