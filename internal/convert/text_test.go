package convert_test

import (
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/convert"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

func (s *ConvertTestSuite) TestRenamedSound() {
	s.apply(deh.Edit{Kind: deh.EditText, From: "pistol", To: "pew"})
	s.convertAll()

	s.Assert().Equal("<SOUNDS>\n\n[PISTOL]\nLUMP_NAME = \"DSPEW\";\nPRIORITY = 64;\n\n", s.buf.Text(output.LumpSounds))
}

func (s *ConvertTestSuite) TestLanguageStrings() {
	s.apply(
		deh.Edit{Kind: deh.EditText, From: "Picked up a clip.", To: "Ammo!"},
		deh.Edit{Kind: deh.EditString, Field: "GOTCLIPBOX", To: `A "box"`},
	)
	s.convertAll()

	text := s.buf.Text(output.LumpLanguage)
	s.Assert().True(strings.HasPrefix(text, "<LANGUAGES>\n\n[ENGLISH]\n"))
	s.Assert().Contains(text, "GotClip = \"Ammo!\";\n")
	s.Assert().Contains(text, "GotClipBox = \"A \\\"box\\\"\";\n")
}

func (s *ConvertTestSuite) TestBossDeathScript() {
	s.apply(deh.Edit{Kind: deh.EditThingMBF21Bits, ID: deh.ThingTroop, Tokens: "MAP07BOSS1"})
	s.convertAll()

	text := s.buf.Text(output.LumpRScript)
	s.Assert().True(strings.HasPrefix(text, "// boss death triggers\n\n"))
	s.Assert().Contains(text, "START_MAP MAP07\n  RADIUSTRIGGER 0 0 -1\n    WAIT_UNTIL_DEAD IMP\n    ACTIVATE_LINETYPE 38 666\n  END_RADIUSTRIGGER\nEND_MAP\n")
	s.Assert().Equal(1, strings.Count(text, "START_MAP"))
	s.Assert().NotContains(s.buf.Text(output.LumpThings), "MAP07")
}

func (s *ConvertTestSuite) TestCastTable() {
	table, err := convert.NewCastTable(convert.DefaultCast)
	s.Require().NoError(err)

	n, ok := table.Order(deh.ThingPossessed)
	s.Assert().True(ok)
	s.Assert().Equal(1, n)

	_, ok = table.Order(deh.ThingBarrel)
	s.Assert().False(ok)

	tooMany := make([]int, convert.MaxCastEntries+1)
	for i := range tooMany {
		tooMany[i] = i
	}
	_, err = convert.NewCastTable(tooMany)
	s.Assert().True(errors.IsResourceExhausted(err))
}
