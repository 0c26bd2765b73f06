package editscript_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/editscript"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

const fullScript = `
version: 2021
edits:
  - thing: 12
    field: Hit points
    value: 100
  - thing: 12
    bits: SOLID+SHOOTABLE
  - thing: 12
    mbf21_bits: BOSS
  - frame: 454
    field: Duration
    value: 4
  - frame: 454
    pointer: A_MonsterMeleeAttack
  - frame: 455
    pointer_from: 454
  - weapon: 1
    field: Ammo per shot
    value: 2
  - weapon: 1
    bits: SILENT
  - ammo: 0
    field: Max ammo
    value: 400
  - sound: 1
    field: Value
    value: 32
  - misc: Initial Bullets
    value: 75
  - text: {from: pistol, to: pew}
  - string: GOTCLIP
    to: Ammo!
`

type EditScriptTestSuite struct {
	suite.Suite
}

func TestEditScriptSuite(t *testing.T) {
	suite.Run(t, new(EditScriptTestSuite))
}

func (s *EditScriptTestSuite) TestDecodeEveryKind() {
	script, err := editscript.DecodeBytes([]byte(fullScript))
	s.Require().NoError(err)

	s.Equal(2021, script.Version)
	s.True(script.HasVersion)
	s.Equal([]deh.Edit{
		{Kind: deh.EditThingField, ID: 11, Field: "Hit points", Value: 100},
		{Kind: deh.EditThingBits, ID: 11, Tokens: "SOLID+SHOOTABLE"},
		{Kind: deh.EditThingMBF21Bits, ID: 11, Tokens: "BOSS"},
		{Kind: deh.EditFrameField, ID: 454, Field: "Duration", Value: 4},
		{Kind: deh.EditCodePointer, ID: 454, Field: "A_MonsterMeleeAttack"},
		{Kind: deh.EditPointerCopy, ID: 455, Value: 454},
		{Kind: deh.EditWeaponField, ID: 1, Field: "Ammo per shot", Value: 2},
		{Kind: deh.EditWeaponBits, ID: 1, Tokens: "SILENT"},
		{Kind: deh.EditAmmoField, ID: 0, Field: "Max ammo", Value: 400},
		{Kind: deh.EditSoundField, ID: 1, Field: "Value", Value: 32},
		{Kind: deh.EditMiscField, Field: "Initial Bullets", Value: 75},
		{Kind: deh.EditText, From: "pistol", To: "pew"},
		{Kind: deh.EditString, Field: "GOTCLIP", To: "Ammo!"},
	}, script.Edits)
}

func (s *EditScriptTestSuite) TestDefaults() {
	script, err := editscript.DecodeBytes(nil)
	s.Require().NoError(err)
	s.Equal(editscript.DefaultVersion, script.Version)
	s.False(script.HasVersion)
	s.Empty(script.Edits)

	script, err = editscript.DecodeBytes([]byte("edits: []\n"))
	s.Require().NoError(err)
	s.Equal(editscript.DefaultVersion, script.Version)
}

func (s *EditScriptTestSuite) TestRejects() {
	testCases := []struct {
		name   string
		script string
	}{
		{"bad yaml", "edits: [\n"},
		{"unknown key", "edits:\n  - thing: 1\n    colour: red\n"},
		{"thing zero", "edits:\n  - thing: 0\n    field: Hit points\n    value: 1\n"},
		{"two targets", "edits:\n  - thing: 1\n    frame: 2\n    field: Speed\n    value: 1\n"},
		{"no target", "edits:\n  - field: Speed\n    value: 1\n"},
		{"missing value", "edits:\n  - thing: 1\n    field: Speed\n"},
		{"missing field", "edits:\n  - ammo: 0\n    value: 1\n"},
		{"negative version", "version: -1\n"},
		{"empty text", "edits:\n  - text: {to: x}\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := editscript.DecodeBytes([]byte(tc.script))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), err.Error())
		})
	}
}

func (s *EditScriptTestSuite) TestErrorNamesEdit() {
	_, err := editscript.DecodeBytes([]byte("edits:\n  - misc: Initial Health\n    value: 1\n  - thing: 0\n    field: Speed\n    value: 1\n"))
	s.Require().Error(err)
	s.Equal(2, errors.GetMeta(err)["edit"])
}

func (s *EditScriptTestSuite) TestDecodeFile() {
	path := filepath.Join(s.T().TempDir(), "patch.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(fullScript), 0o644))

	script, err := editscript.DecodeFile(path)
	s.Require().NoError(err)
	s.Len(script.Edits, 13)

	_, err = editscript.DecodeFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}
