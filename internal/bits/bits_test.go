package bits_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edge-classic/EDGE-classic-sub008/internal/bits"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

type BitsTestSuite struct {
	suite.Suite
}

func TestBitsSuite(t *testing.T) {
	suite.Run(t, new(BitsTestSuite))
}

func (s *BitsTestSuite) TestParse() {
	testCases := []struct {
		name     string
		table    *bits.Table
		expr     string
		expected uint32
		unknown  []string
	}{
		{
			name:     "plus separated",
			table:    bits.Legacy,
			expr:     "SOLID+SHOOTABLE",
			expected: uint32(deh.FlagSolid | deh.FlagShootable),
		},
		{
			name:     "mixed separators and case",
			table:    bits.Legacy,
			expr:     "solid | Shootable,COUNTKILL\tfloat  nogravity",
			expected: uint32(deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill | deh.FlagFloat | deh.FlagNoGravity),
		},
		{
			name:     "prefixed mnemonics",
			table:    bits.Legacy,
			expr:     "MF_SOLID+mf_missile",
			expected: uint32(deh.FlagSolid | deh.FlagMissile),
		},
		{
			name:     "decimal and hex literals",
			table:    bits.Legacy,
			expr:     "4+0x400",
			expected: uint32(deh.FlagShootable | deh.FlagDropOff),
		},
		{
			name:     "mnemonic only flags by name",
			table:    bits.Legacy,
			expr:     "TOUCHY+TRANSLUCENT",
			expected: uint32(deh.FlagTouchy | deh.FlagTranslucent),
		},
		{
			name:     "unknown mnemonic skipped",
			table:    bits.Legacy,
			expr:     "SOLID+FLYING",
			expected: uint32(deh.FlagSolid),
			unknown:  []string{"FLYING"},
		},
		{
			name:     "mbf21 prefix",
			table:    bits.MBF21Thing,
			expr:     "MBF21_BOSS+E1M8BOSS",
			expected: uint32(deh.MBF21Boss | deh.MBF21E1M8Boss),
		},
		{
			name:     "tables are not merged",
			table:    bits.MBF21Weapon,
			expr:     "SILENT+SOLID",
			expected: uint32(deh.WeaponSilent),
			unknown:  []string{"SOLID"},
		},
		{
			name:     "empty",
			table:    bits.Legacy,
			expr:     "  ",
			expected: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			word, unknown := bits.Parse(tc.table, tc.expr)
			s.Assert().Equal(tc.expected, word)
			s.Assert().Equal(tc.unknown, unknown)
		})
	}
}

func (s *BitsTestSuite) TestNames() {
	names := bits.Legacy.Names(uint32(deh.FlagSolid | deh.FlagTranslation1 | deh.FlagCountKill))
	s.Assert().Equal([]string{"SOLID", "COUNTKILL", "TRANSLATION1"}, names)
	s.Assert().Nil(bits.MBF21Weapon.Names(0))
}
