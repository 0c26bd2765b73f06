package fields_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

type FieldsTestSuite struct {
	suite.Suite
	legacy   fields.Limits
	extended fields.Limits
}

func TestFieldsSuite(t *testing.T) {
	suite.Run(t, new(FieldsTestSuite))
}

func (s *FieldsTestSuite) SetupTest() {
	s.legacy = fields.LimitsFor(19)
	s.extended = fields.LimitsFor(2021)
}

func (s *FieldsTestSuite) TestLimitsFor() {
	s.Assert().Equal(baseline.NumStates-1, s.legacy.Frames)
	s.Assert().Equal(baseline.NumSounds-1, s.legacy.Sounds)
	s.Assert().Equal(baseline.NumSprites-1, s.legacy.Sprites)
	s.Assert().False(s.legacy.Extended)

	s.Assert().Equal(fields.ExtendedMax, s.extended.Frames)
	s.Assert().True(s.extended.Extended)
}

func (s *FieldsTestSuite) TestLookupIsCaseInsensitive() {
	for _, name := range []string{"Hit points", "HIT POINTS", "hit Points", "  hit points "} {
		ref, ok := fields.Things.Lookup(name)
		s.Require().True(ok, name)
		s.Assert().Equal("Hit points", ref.Name)
	}

	_, ok := fields.Things.Lookup("Hitpoints")
	s.Assert().False(ok)
}

func (s *FieldsTestSuite) TestApplyUnknownField() {
	imp, _ := baseline.Thing(deh.ThingTroop)
	known, err := fields.Apply(fields.Things, "Armor points", &imp, 10, s.legacy)
	s.Assert().False(known)
	s.Assert().NoError(err)
}

func (s *FieldsTestSuite) TestValidateByKind() {
	testCases := []struct {
		name   string
		field  string
		value  int
		limits fields.Limits
		valid  bool
	}{
		{"unconstrained negative", "Mass", -500, s.legacy, true},
		{"non-negative zero", "Speed", 0, s.legacy, true},
		{"non-negative below", "Speed", -1, s.legacy, false},
		{"positive one", "Hit points", 1, s.legacy, true},
		{"positive zero", "Hit points", 0, s.legacy, false},
		{"frame at max", "Initial frame", baseline.NumStates - 1, s.legacy, true},
		{"frame past max", "Initial frame", baseline.NumStates, s.legacy, false},
		{"frame extended", "Initial frame", 5000, s.extended, true},
		{"frame past extended", "Initial frame", fields.ExtendedMax + 1, s.extended, false},
		{"sound past max", "Alert sound", baseline.NumSounds, s.legacy, false},
		{"bits anything", "Bits", -1, s.legacy, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ref, ok := fields.Things.Lookup(tc.field)
			s.Require().True(ok)
			err := ref.Validate(tc.value, tc.limits)
			if tc.valid {
				s.Assert().NoError(err)
			} else {
				s.Assert().True(errors.IsOutOfRange(err))
			}
		})
	}
}

func (s *FieldsTestSuite) TestRangeRejectionLeavesRecordUnchanged() {
	thingIndexFields := []string{
		"Initial frame", "First moving frame", "Injury frame", "Close attack frame",
		"Far attack frame", "Death frame", "Exploding frame", "Respawn frame",
		"Alert sound", "Attack sound", "Pain sound", "Death sound", "Action sound", "Rip sound",
	}
	for _, name := range thingIndexFields {
		s.Run(name, func() {
			rec, _ := baseline.Thing(deh.ThingPossessed)
			before := rec
			ref, _ := fields.Things.Lookup(name)
			maxValue := s.legacy.Frames
			if ref.Kind == fields.KindSoundIndex {
				maxValue = s.legacy.Sounds
			}

			known, err := fields.Apply(fields.Things, name, &rec, maxValue+1, s.legacy)
			s.Assert().True(known)
			s.Assert().Error(err)
			s.Assert().Equal(before, rec)
		})
	}

	s.Run("sprite number", func() {
		rec, _ := baseline.Frame(174)
		before := rec
		_, err := fields.Apply(fields.Frames, "Sprite number", &rec, s.legacy.Sprites+1, s.legacy)
		s.Assert().Error(err)
		s.Assert().Equal(before, rec)
	})

	s.Run("ammo type", func() {
		rec, _ := baseline.Weapon(deh.WeaponPistol)
		before := rec
		_, err := fields.Apply(fields.Weapons, "Ammo type", &rec, fields.MaxAmmoIndex+1, s.extended)
		s.Assert().Error(err)
		s.Assert().Equal(before, rec)
	})
}

func (s *FieldsTestSuite) TestSubspriteKeepsBrightBit() {
	rec, _ := baseline.Frame(174)

	known, err := fields.Apply(fields.Frames, "Sprite subnumber", &rec, 0x8000|31, s.legacy)
	s.Require().True(known)
	s.Require().NoError(err)
	s.Assert().True(rec.IsBright())
	s.Assert().Equal(31, rec.SubSprite())

	for _, v := range []int{0x8000 | 32, 0x10005, 0x7fff0005, -32763, -1} {
		_, err = fields.Apply(fields.Frames, "Sprite subnumber", &rec, v, s.legacy)
		s.Assert().True(errors.IsOutOfRange(err), "value %#x", v)
		s.Assert().Equal(0x8000|31, rec.Frame)
	}
}

func (s *FieldsTestSuite) TestNumericBitsStripMnemonicOnlyFlags() {
	rec, _ := baseline.Thing(deh.ThingTroop)
	raw := int(uint32(deh.FlagSolid | deh.FlagTouchy | deh.FlagFriend | deh.FlagTranslucent | deh.FlagBounces))

	_, err := fields.Apply(fields.Things, "bits", &rec, raw, s.legacy)
	s.Require().NoError(err)
	s.Assert().Equal(deh.FlagSolid, rec.Flags)
}

func (s *FieldsTestSuite) TestGroupFieldsRoundTripUnset() {
	rec, _ := baseline.Thing(deh.ThingTroop)
	ref, _ := fields.Things.Lookup("Infighting group")
	s.Assert().Equal(deh.UnsetValue, ref.Get(&rec))

	_, err := fields.Apply(fields.Things, "Infighting group", &rec, 0, s.legacy)
	s.Require().NoError(err)
	v, set := rec.InfightGroup.Get()
	s.Assert().True(set)
	s.Assert().Equal(0, v)

	_, err = fields.Apply(fields.Things, "Infighting group", &rec, deh.UnsetValue, s.legacy)
	s.Require().NoError(err)
	s.Assert().False(rec.InfightGroup.IsSet())
}

func (s *FieldsTestSuite) TestMaxAmmoClamped() {
	rec, _ := baseline.Ammo(deh.AmmoBullets)

	_, err := fields.Apply(fields.Ammo, "Max ammo", &rec, 400, s.legacy)
	s.Require().NoError(err)
	s.Assert().Equal(400, rec.Max)

	_, err = fields.Apply(fields.Ammo, "Max ammo", &rec, 65535, s.legacy)
	s.Require().NoError(err)
	s.Assert().Equal(fields.MaxAmmo, rec.Max)
}

func (s *FieldsTestSuite) TestNamesSorted() {
	names := fields.Ammo.Names()
	s.Assert().Equal([]string{"Max ammo", "Per ammo"}, names)
	s.Assert().Len(fields.Frames.Refs(), 15)
}
