// Package bits parses flag expressions such as "SOLID+SHOOTABLE|0x400"
// against one mnemonic table at a time.
package bits

import (
	"strconv"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

// Mnemonic is one named bit.
type Mnemonic struct {
	Name string
	Bit  uint32
}

// Table is a mnemonic vocabulary.
type Table struct {
	name    string
	entries []Mnemonic
	byName  map[string]uint32
}

// NewTable builds a table; names are matched upper-cased.
func NewTable(name string, entries ...Mnemonic) *Table {
	t := &Table{
		name:    name,
		entries: entries,
		byName:  make(map[string]uint32, len(entries)),
	}
	for _, e := range entries {
		t.byName[strings.ToUpper(e.Name)] = e.Bit
	}
	return t
}

// Name identifies the table in warnings.
func (t *Table) Name() string {
	return t.name
}

// Lookup resolves a mnemonic, ignoring case and the MF_, MF2_ and MBF21_
// prefixes.
func (t *Table) Lookup(mnemonic string) (uint32, bool) {
	m := strings.ToUpper(mnemonic)
	for _, prefix := range []string{"MBF21_", "MF2_", "MF_"} {
		if strings.HasPrefix(m, prefix) {
			m = m[len(prefix):]
			break
		}
	}
	bit, ok := t.byName[m]
	return bit, ok
}

// Names returns the mnemonics of the bits set in word, in table order.
// Aliases sharing a bit are listed once.
func (t *Table) Names(word uint32) []string {
	var names []string
	var seen uint32
	for _, e := range t.entries {
		if word&e.Bit == e.Bit && e.Bit != 0 && seen&e.Bit != e.Bit {
			names = append(names, e.Name)
			seen |= e.Bit
		}
	}
	return names
}

func isSeparator(r rune) bool {
	switch r {
	case '+', '|', ',', ' ', '\t':
		return true
	}
	return false
}

// Parse ORs together every token of expr. Tokens that are neither numbers
// nor mnemonics of t are returned in unknown and contribute nothing.
func Parse(t *Table, expr string) (word uint32, unknown []string) {
	for _, tok := range strings.FieldsFunc(expr, isSeparator) {
		if v, ok := parseNumber(tok); ok {
			word |= v
			continue
		}
		if bit, ok := t.Lookup(tok); ok {
			word |= bit
			continue
		}
		unknown = append(unknown, tok)
	}
	return word, unknown
}

func parseNumber(tok string) (uint32, bool) {
	if len(tok) > 2 && (tok[:2] == "0x" || tok[:2] == "0X") {
		v, err := strconv.ParseUint(tok[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		return uint32(v), true
	}
	if tok[0] != '-' && (tok[0] < '0' || tok[0] > '9') {
		return 0, false
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func legacy(name string, f deh.LegacyFlag) Mnemonic {
	return Mnemonic{Name: name, Bit: uint32(f)}
}

func mbf21(name string, f deh.MBF21Flag) Mnemonic {
	return Mnemonic{Name: name, Bit: uint32(f)}
}

func weapon(name string, f deh.WeaponFlag) Mnemonic {
	return Mnemonic{Name: name, Bit: uint32(f)}
}

// Legacy is the "Bits" vocabulary.
var Legacy = NewTable("bits",
	legacy("SPECIAL", deh.FlagSpecial),
	legacy("SOLID", deh.FlagSolid),
	legacy("SHOOTABLE", deh.FlagShootable),
	legacy("NOSECTOR", deh.FlagNoSector),
	legacy("NOBLOCKMAP", deh.FlagNoBlockmap),
	legacy("AMBUSH", deh.FlagAmbush),
	legacy("JUSTHIT", deh.FlagJustHit),
	legacy("JUSTATTACKED", deh.FlagJustAttacked),
	legacy("SPAWNCEILING", deh.FlagSpawnCeiling),
	legacy("NOGRAVITY", deh.FlagNoGravity),
	legacy("DROPOFF", deh.FlagDropOff),
	legacy("PICKUP", deh.FlagPickup),
	legacy("NOCLIP", deh.FlagNoClip),
	legacy("SLIDE", deh.FlagSlide),
	legacy("FLOAT", deh.FlagFloat),
	legacy("TELEPORT", deh.FlagTeleport),
	legacy("MISSILE", deh.FlagMissile),
	legacy("DROPPED", deh.FlagDropped),
	legacy("SHADOW", deh.FlagShadow),
	legacy("NOBLOOD", deh.FlagNoBlood),
	legacy("CORPSE", deh.FlagCorpse),
	legacy("INFLOAT", deh.FlagInFloat),
	legacy("COUNTKILL", deh.FlagCountKill),
	legacy("COUNTITEM", deh.FlagCountItem),
	legacy("SKULLFLY", deh.FlagSkullFly),
	legacy("NOTDMATCH", deh.FlagNotDMatch),
	legacy("TRANSLATION1", deh.FlagTranslation1),
	legacy("TRANSLATION", deh.FlagTranslation1),
	legacy("TRANSLATION2", deh.FlagTranslation2),
	legacy("TOUCHY", deh.FlagTouchy),
	legacy("BOUNCES", deh.FlagBounces),
	legacy("FRIEND", deh.FlagFriend),
	legacy("TRANSLUCENT", deh.FlagTranslucent),
)

// MBF21Thing is the "MBF21 Bits" vocabulary of things.
var MBF21Thing = NewTable("mbf21 bits",
	mbf21("LOGRAV", deh.MBF21LowGravity),
	mbf21("SHORTMRANGE", deh.MBF21ShortMRange),
	mbf21("DMGIGNORED", deh.MBF21DmgIgnored),
	mbf21("NORADIUSDMG", deh.MBF21NoRadiusDmg),
	mbf21("FORCERADIUSDMG", deh.MBF21ForceRadiusDmg),
	mbf21("HIGHERMPROB", deh.MBF21HigherMProb),
	mbf21("RANGEHALF", deh.MBF21RangeHalf),
	mbf21("NOTHRESHOLD", deh.MBF21NoThreshold),
	mbf21("LONGMELEE", deh.MBF21LongMelee),
	mbf21("BOSS", deh.MBF21Boss),
	mbf21("MAP07BOSS1", deh.MBF21Map07Boss1),
	mbf21("MAP07BOSS2", deh.MBF21Map07Boss2),
	mbf21("E1M8BOSS", deh.MBF21E1M8Boss),
	mbf21("E2M8BOSS", deh.MBF21E2M8Boss),
	mbf21("E3M8BOSS", deh.MBF21E3M8Boss),
	mbf21("E4M6BOSS", deh.MBF21E4M6Boss),
	mbf21("E4M8BOSS", deh.MBF21E4M8Boss),
	mbf21("RIP", deh.MBF21Rip),
	mbf21("FULLVOLSOUNDS", deh.MBF21FullVolSounds),
)

// MBF21Weapon is the "MBF21 Bits" vocabulary of weapons.
var MBF21Weapon = NewTable("weapon mbf21 bits",
	weapon("NOTHRUST", deh.WeaponNoThrust),
	weapon("SILENT", deh.WeaponSilent),
	weapon("NOAUTOFIRE", deh.WeaponNoAutoFire),
	weapon("FLEEMELEE", deh.WeaponFleeMelee),
	weapon("AUTOSWITCHFROM", deh.WeaponAutoSwitchFrom),
	weapon("NOAUTOSWITCHTO", deh.WeaponNoAutoSwitchTo),
)
