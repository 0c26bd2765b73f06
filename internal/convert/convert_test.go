package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/convert"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
)

// hidingSource drops selected things from a session.
type hidingSource struct {
	*session.Session
	hidden map[int]bool
	rename map[int]string
}

func (h *hidingSource) Thing(id int) (deh.Thing, bool) {
	if h.hidden[id] {
		return deh.Thing{}, false
	}
	t, ok := h.Session.Thing(id)
	if name, renamed := h.rename[id]; renamed && ok {
		t.Name = name
	}
	return t, ok
}

type ConvertTestSuite struct {
	suite.Suite
	sess *session.Session
	buf  *output.Buffer
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertTestSuite))
}

func (s *ConvertTestSuite) SetupTest() {
	s.useVersion(19)
}

func (s *ConvertTestSuite) useVersion(version int) {
	sess, err := session.New(&session.Config{Version: version, Logger: zap.NewNop()})
	s.Require().NoError(err)
	s.sess = sess
	s.buf = output.NewBuffer()
}

func (s *ConvertTestSuite) apply(edits ...deh.Edit) {
	s.Require().NoError(s.sess.ApplyAll(edits))
}

func (s *ConvertTestSuite) converter(src convert.Source) convert.Converter {
	conv, err := convert.New(&convert.Config{Source: src, Logger: zap.NewNop()})
	s.Require().NoError(err)
	return conv
}

func (s *ConvertTestSuite) convertAll() {
	s.Require().NoError(s.converter(s.sess).ConvertAll(s.buf))
	s.Require().NoError(s.buf.Err())
}

func (s *ConvertTestSuite) convertThing(id int) string {
	s.Require().NoError(s.converter(s.sess).ConvertThing(s.buf, id))
	s.Require().NoError(s.buf.Err())
	return s.buf.Text(output.LumpThings)
}

func (s *ConvertTestSuite) hasWarning(kind session.WarningKind, id int) bool {
	for _, w := range s.sess.Warnings() {
		if w.Kind == kind && w.ID == id {
			return true
		}
	}
	return false
}

func thingField(id int, field string, v int) deh.Edit {
	return deh.Edit{Kind: deh.EditThingField, ID: id, Field: field, Value: v}
}

func (s *ConvertTestSuite) TestNewRequiresSourceAndLogger() {
	_, err := convert.New(&convert.Config{Logger: zap.NewNop()})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = convert.New(&convert.Config{Source: s.sess})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConvertTestSuite) TestImpBlock() {
	text := s.convertThing(deh.ThingTroop)

	s.Assert().True(strings.HasPrefix(text, "<THINGS>\n\n[IMP:3001]\n"))
	s.Assert().Contains(text, "SPAWNHEALTH = 60;\nRADIUS = 20;\nHEIGHT = 56;\nMASS = 100;\nSPEED = 8;\nREACTION_TIME = 8T;\n")
	s.Assert().Contains(text, `SIGHTING_SOUND = "BGSIT1";`)
	s.Assert().Contains(text, `DEATH_SOUND = "BGDTH1";`)
	s.Assert().Contains(text, "STATES(IDLE) = TROO:A:10:NORMAL:LOOKOUT,\n    TROO:B:10:NORMAL:LOOKOUT;\n")
	s.Assert().Contains(text, "STATES(MISSILE) = #MELEE;\n")
	s.Assert().Contains(text, "SPECIAL = SOLID,SHOOTABLE,COUNT_AS_KILL,MONSTER;\n")
	s.Assert().Contains(text, "CLOSE_ATTACK = IMP_CLAW;\nRANGE_ATTACK = IMP_FIREBALL;\n")
	s.Assert().Contains(text, "CASTORDER = 4;\n")
	s.Assert().NotContains(text, "DROPITEM")
	s.Assert().True(strings.HasSuffix(text, ";\n\n"))
}

func (s *ConvertTestSuite) TestUnmodifiedThingMatchesBaseline() {
	s.apply(thingField(deh.ThingSergeant, "Hit points", 500))
	patched := s.convertThing(deh.ThingTroop)

	s.useVersion(19)
	fresh := s.convertThing(deh.ThingTroop)

	s.Assert().Equal(fresh, patched)
}

func (s *ConvertTestSuite) TestConvertAllEmitsOnlyModified() {
	s.apply(thingField(deh.ThingTroop, "Hit points", 90))
	s.convertAll()

	text := s.buf.Text(output.LumpThings)
	s.Assert().Contains(text, "[IMP:3001]\nSPAWNHEALTH = 90;\n")
	s.Assert().Equal(1, strings.Count(text, "\n["))
	s.Assert().Empty(s.buf.Text(output.LumpWeapons))
	s.Assert().Empty(s.buf.Text(output.LumpRScript))
}

func (s *ConvertTestSuite) TestDisloyalWhenInfightOn() {
	s.apply(
		deh.Edit{Kind: deh.EditMiscField, Field: "Monsters Infight", Value: deh.InfightOn},
		thingField(deh.ThingTroop, "Hit points", 60),
	)
	s.convertAll()

	s.Assert().Contains(s.buf.Text(output.LumpThings), "SPECIAL = SOLID,SHOOTABLE,COUNT_AS_KILL,MONSTER,DISLOYAL;\n")
}

func (s *ConvertTestSuite) TestExtraThingWithoutStates() {
	s.useVersion(2021)
	s.apply(thingField(200, "Hit points", 50))
	s.convertAll()

	text := s.buf.Text(output.LumpThings)
	s.Assert().Contains(text, "[DEHEXTRA_201]\nSPAWNHEALTH = 50;\n")
	s.Assert().Contains(text, "STATES(IDLE) = NULL:A:-1:NORMAL:NOTHING;\n")
	s.Assert().NotContains(text, "MONSTER")
	s.Assert().True(s.hasWarning(session.WarnMissingStates, 200))
}

func (s *ConvertTestSuite) TestBossCubeMergedOnce() {
	s.apply(
		thingField(deh.ThingSpawnShot, "Speed", 12*65536),
		thingField(deh.ThingSpawnFire, "Height", 40*65536),
	)
	s.convertAll()

	attacks := s.buf.Text(output.LumpAttacks)
	s.Assert().Equal(1, strings.Count(attacks, "[BRAIN_CUBE]"))
	s.Assert().Contains(attacks, "ATTACKTYPE = SHOOTTOSPOT;\n")
	s.Assert().Contains(attacks, "SPEED = 12;\n")
	s.Assert().Contains(attacks, "STATES(IDLE) = ")
	s.Assert().Contains(attacks, "STATES(DEATH) = ")
	s.Assert().NotContains(attacks, "[SPAWN_FIRE]")
	s.Assert().NotContains(s.buf.Text(output.LumpThings), "[SPAWN_FIRE]")
}

func (s *ConvertTestSuite) TestBossCubeFromEitherThing() {
	testCases := []struct {
		name string
		id   int
	}{
		{"spawn shot", deh.ThingSpawnShot},
		{"spawn fire", deh.ThingSpawnFire},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.buf = output.NewBuffer()
			s.Require().NoError(s.converter(s.sess).ConvertThing(s.buf, tc.id))
			s.Assert().Contains(s.buf.Text(output.LumpAttacks), "[BRAIN_CUBE]\n")
		})
	}
}

func (s *ConvertTestSuite) TestBossCubeNeedsBothThings() {
	src := &hidingSource{Session: s.sess, hidden: map[int]bool{deh.ThingSpawnFire: true}}

	err := s.converter(src).ConvertThing(s.buf, deh.ThingSpawnShot)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *ConvertTestSuite) TestTeleportManNeedsFog() {
	src := &hidingSource{Session: s.sess, hidden: map[int]bool{deh.ThingTeleportFog: true}}

	err := s.converter(src).ConvertThing(s.buf, deh.ThingTeleportMan)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *ConvertTestSuite) TestUnknownAttackThing() {
	src := &hidingSource{Session: s.sess, rename: map[int]string{deh.ThingTroop: "*BOGUS"}}

	err := s.converter(src).ConvertThing(s.buf, deh.ThingTroop)
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ConvertTestSuite) TestMissingThing() {
	err := s.converter(s.sess).ConvertThing(s.buf, baseline.NumThings)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ConvertTestSuite) TestAttackBlock() {
	s.Require().NoError(s.converter(s.sess).ConvertThing(s.buf, deh.ThingTroopShot))

	attacks := s.buf.Text(output.LumpAttacks)
	s.Assert().Contains(attacks, "[IMP_FIREBALL]\nATTACKTYPE = PROJECTILE;\nATTACK_HEIGHT = 32;\n")
	s.Assert().Contains(attacks, "DAMAGE.VAL = 3;\nDAMAGE.MAX = 24;\nSPEED = 10;\n")
	s.Assert().Contains(attacks, "PROJECTILE_SPECIAL = ")
	s.Assert().Empty(s.buf.Text(output.LumpThings))
}

func (s *ConvertTestSuite) TestTeleportMan() {
	text := s.convertThing(deh.ThingTeleportMan)

	s.Assert().Contains(text, "[TELEPORT_FLASH:14]\n")
	s.Assert().Contains(text, "STATES(IDLE) = TFOG:A:6:BRIGHT:NOTHING,\n")
	s.Assert().Contains(text, "SPECIAL = NOSECTOR,NOBLOCKMAP;\n")
	s.Assert().Contains(text, "TRANSLUCENCY = 50%;\n")
}

func (s *ConvertTestSuite) TestFlagAdjustments() {
	testCases := []struct {
		name     string
		id       int
		edits    []deh.Edit
		contains []string
	}{
		{
			name:     "negative mass hangs from the ceiling",
			id:       deh.ThingTroop,
			edits:    []deh.Edit{thingField(deh.ThingTroop, "Mass", -500)},
			contains: []string{"MASS = 500;\n", "SPECIAL = SOLID,SHOOTABLE,SPAWNCEILING,NOGRAVITY,COUNT_AS_KILL,MONSTER;\n"},
		},
		{
			name:     "bouncing things can be shot",
			id:       deh.ThingBarrel,
			edits:    []deh.Edit{{Kind: deh.EditThingBits, ID: deh.ThingBarrel, Tokens: "BOUNCES"}},
			contains: []string{"SPECIAL = SHOOTABLE,BOUNCE,NEVERTARGETED;\n", "EXPLODE_DAMAGE.VAL = 128;\n"},
		},
		{
			name:     "translucent and translated",
			id:       deh.ThingTroop,
			edits:    []deh.Edit{{Kind: deh.EditThingBits, ID: deh.ThingTroop, Tokens: "SOLID+SHOOTABLE+COUNTKILL+TRANSLUCENT+TRANSLATION1"}},
			contains: []string{"TRANSLUCENCY = 50%;\n", "PALETTE_REMAP = PLAYER_DARK;\n", "SPECIAL = SOLID,SHOOTABLE,COUNT_AS_KILL,MONSTER;\n"},
		},
		{
			name:     "mbf21 flags join the special list",
			id:       deh.ThingTroop,
			edits:    []deh.Edit{{Kind: deh.EditThingMBF21Bits, ID: deh.ThingTroop, Tokens: "BOSS+RIP+MAP07BOSS1"}},
			contains: []string{"SPECIAL = SOLID,SHOOTABLE,COUNT_AS_KILL,MONSTER,BOSSMAN,TUNNEL;\n"},
		},
		{
			name:     "cyberdemon identity flags",
			id:       deh.ThingCyborg,
			contains: []string{"SPECIAL = SOLID,SHOOTABLE,COUNT_AS_KILL,MONSTER,TRIGGER_HAPPY,EXPLODE_IMMUNE,BOSSMAN,HIGHERMPROB,ALWAYS_LOUD;\n"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.useVersion(19)
			s.apply(tc.edits...)
			text := s.convertThing(tc.id)
			for _, want := range tc.contains {
				s.Assert().Contains(text, want)
			}
		})
	}
}

func (s *ConvertTestSuite) TestDroppedItem() {
	testCases := []struct {
		name     string
		edits    []deh.Edit
		expected string
	}{
		{name: "vanilla drop", expected: "DROPITEM = CLIP;\n"},
		{name: "patched drop", edits: []deh.Edit{thingField(deh.ThingPossessed, "Dropped item", deh.ThingShells+1)}, expected: "DROPITEM = SHELLS;\n"},
		{name: "no drop", edits: []deh.Edit{thingField(deh.ThingPossessed, "Dropped item", 0)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.useVersion(19)
			s.apply(tc.edits...)
			text := s.convertThing(deh.ThingPossessed)
			if tc.expected == "" {
				s.Assert().NotContains(text, "DROPITEM")
			} else {
				s.Assert().Contains(text, tc.expected)
			}
		})
	}
}

func (s *ConvertTestSuite) TestPlayerInitialBenefit() {
	s.apply(
		deh.Edit{Kind: deh.EditMiscField, Field: "Initial Bullets", Value: 75},
		deh.Edit{Kind: deh.EditAmmoField, ID: deh.AmmoBullets, Field: "Max ammo", Value: 400},
	)
	text := s.convertThing(deh.ThingPlayer)

	s.Assert().Contains(text, "[OUR_HERO]\n")
	s.Assert().Contains(text, "INITIAL_BENEFIT = BULLETS.LIMIT(400),SHELLS.LIMIT(50),CELLS.LIMIT(300),ROCKETS.LIMIT(50),BULLETS(75),HEALTH(100);\n")
	s.Assert().Contains(text, "CASTORDER = 17;\n")
	s.Assert().NotContains(text, "MONSTER")
}

func (s *ConvertTestSuite) TestPickups() {
	testCases := []struct {
		name     string
		id       int
		edits    []deh.Edit
		contains []string
	}{
		{
			name: "berserk",
			id:   deh.ThingBerserk,
			contains: []string{
				"PICKUP_BENEFIT = POWERUP_BERSERK(60:60),HEALTH(100:100);\n",
				"PICKUP_EFFECT = SWITCH_WEAPON(FIST);\n",
				"PICKUP_MESSAGE = GotBerserk;\n",
			},
		},
		{
			name:     "clip follows the ammo table",
			id:       deh.ThingClip,
			edits:    []deh.Edit{{Kind: deh.EditAmmoField, ID: deh.AmmoBullets, Field: "Per ammo", Value: 20}},
			contains: []string{"PICKUP_BENEFIT = BULLETS(20);\n", `PICKUP_SOUND = "ITEMUP";`, "PICKUP_MESSAGE = GotClip;\n"},
		},
		{
			name:     "backpack",
			id:       deh.ThingBackpack,
			contains: []string{"PICKUP_BENEFIT = BULLETS.LIMIT(400),SHELLS.LIMIT(100),CELLS.LIMIT(600),ROCKETS.LIMIT(100),BULLETS(10),SHELLS(4),CELLS(20),ROCKETS(1);\n"},
		},
		{
			name:     "shotgun",
			id:       deh.ThingShotgunDrop,
			contains: []string{"PICKUP_BENEFIT = SHOTGUN,SHELLS(8);\n", `PICKUP_SOUND = "WPNUP";`},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.useVersion(19)
			s.apply(tc.edits...)
			text := s.convertThing(tc.id)
			for _, want := range tc.contains {
				s.Assert().Contains(text, want)
			}
		})
	}
}

func (s *ConvertTestSuite) TestMonsterMeleePointerMakesScratchAttack() {
	frame, ok := baseline.StateIndex("TROO_ATK3")
	s.Require().True(ok)
	s.apply(deh.Edit{Kind: deh.EditCodePointer, ID: frame, Field: "MonsterMeleeAttack"})

	conv := s.converter(s.sess)
	s.Require().NoError(conv.ConvertThing(s.buf, deh.ThingTroop))

	things := s.buf.Text(output.LumpThings)
	s.Assert().Contains(things, "TROO:G:6:NORMAL:CLOSE_ATTACK(SCRATCH_IMP_454)")
	s.Assert().Contains(things, "CLOSE_ATTACK = SCRATCH_IMP_454;\n")
	s.Assert().NotContains(things, "RANGE_ATTACK = ")
	s.Assert().Contains(s.buf.Text(output.LumpAttacks),
		"[SCRATCH_IMP_454]\nATTACKTYPE = CLOSECOMBAT;\nDAMAGE.VAL = 3;\nDAMAGE.MAX = 24;\nATTACKRANGE = 64;\n\n")

	s.Require().NoError(conv.ConvertThing(s.buf, deh.ThingTroop))
	s.Assert().True(s.hasWarning(session.WarnDuplicateAttack, frame))
	s.Assert().Equal(1, strings.Count(s.buf.Text(output.LumpAttacks), "[SCRATCH_IMP_454]"))
}

func (s *ConvertTestSuite) TestDuplicateAttackWarned() {
	conv := s.converter(s.sess)
	s.Require().NoError(conv.ConvertThing(s.buf, deh.ThingTroopShot))
	s.Require().NoError(conv.ConvertThing(s.buf, deh.ThingTroopShot))

	s.Assert().Equal(1, strings.Count(s.buf.Text(output.LumpAttacks), "[IMP_FIREBALL]"))
	s.Assert().True(s.hasWarning(session.WarnDuplicateAttack, deh.ThingTroopShot))
}
