package convert_test

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

func (s *ConvertTestSuite) convertWeapon(id int) string {
	s.Require().NoError(s.converter(s.sess).ConvertWeapon(s.buf, id))
	s.Require().NoError(s.buf.Err())
	return s.buf.Text(output.LumpWeapons)
}

func (s *ConvertTestSuite) TestPistol() {
	text := s.convertWeapon(deh.WeaponPistol)

	s.Assert().Contains(text, "<WEAPONS>\n\n[PISTOL]\nAMMOTYPE = BULLETS;\nAMMOPERSHOT = 1;\nATTACK = PLAYER_PISTOL;\n")
	s.Assert().Contains(text, "BINDKEY = 2;\nPRIORITY = 4;\nSPECIAL = SWITCH_AWAY;\n")
	s.Assert().Contains(text, "PISG:B:6:NORMAL:SHOOT")
	s.Assert().Contains(text, "PISF:A:7:BRIGHT:LIGHT1")
	s.Assert().NotContains(text, "SEC_")
}

func (s *ConvertTestSuite) TestFistHasNoAmmo() {
	text := s.convertWeapon(deh.WeaponFist)

	s.Assert().Contains(text, "AMMOTYPE = NOAMMO;\nAMMOPERSHOT = 0;\nATTACK = PLAYER_PUNCH;\n")
	s.Assert().Contains(text, "SPECIAL = DANGEROUS,SWITCH_AWAY,NO_SWITCH_TO;\n")
}

func (s *ConvertTestSuite) TestAmmoFourMeansNoAmmo() {
	s.apply(deh.Edit{Kind: deh.EditWeaponField, ID: deh.WeaponPistol, Field: "Ammo type", Value: 4})

	s.Assert().Contains(s.convertWeapon(deh.WeaponPistol), "AMMOTYPE = NOAMMO;\n")
	s.Assert().Empty(s.sess.Warnings())
}

func (s *ConvertTestSuite) TestSecondAttackGetsOwnSlot() {
	flash, ok := baseline.StateIndex("PISTOLFLASH")
	s.Require().True(ok)
	s.apply(deh.Edit{Kind: deh.EditCodePointer, ID: flash, Field: "FireShotgun"})
	s.convertAll()

	text := s.buf.Text(output.LumpWeapons)
	s.Assert().Contains(text, "[PISTOL]\n")
	s.Assert().Contains(text, "ATTACK = PLAYER_PISTOL;\nSEC_AMMOTYPE = BULLETS;\nSEC_AMMOPERSHOT = 1;\nSEC_ATTACK = PLAYER_SHOTGUN;\n")
	s.Assert().Contains(text, "PISF:A:7:BRIGHT:SEC_SHOOT")
}

func (s *ConvertTestSuite) TestMissingWeapon() {
	err := s.converter(s.sess).ConvertWeapon(s.buf, baseline.NumWeapons)
	s.Assert().True(errors.IsNotFound(err))
}
