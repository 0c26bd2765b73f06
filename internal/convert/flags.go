package convert

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

type legacyName struct {
	flag deh.LegacyFlag
	name string
}

// legacyTable maps the patch flag word to DDF specials. Bits missing here
// are runtime state or are written as their own clause.
var legacyTable = []legacyName{
	{deh.FlagSpecial, "SPECIAL"},
	{deh.FlagSolid, "SOLID"},
	{deh.FlagShootable, "SHOOTABLE"},
	{deh.FlagNoSector, "NOSECTOR"},
	{deh.FlagNoBlockmap, "NOBLOCKMAP"},
	{deh.FlagAmbush, "AMBUSH"},
	{deh.FlagSpawnCeiling, "SPAWNCEILING"},
	{deh.FlagNoGravity, "NOGRAVITY"},
	{deh.FlagDropOff, "DROPOFF"},
	{deh.FlagPickup, "PICKUP"},
	{deh.FlagNoClip, "NOCLIP"},
	{deh.FlagSlide, "SLIDER"},
	{deh.FlagFloat, "FLOAT"},
	{deh.FlagTeleport, "TELEPORT"},
	{deh.FlagMissile, "MISSILE"},
	{deh.FlagDropped, "DROPPED"},
	{deh.FlagShadow, "FUZZY"},
	{deh.FlagNoBlood, "DAMAGESMOKE"},
	{deh.FlagCorpse, "CORPSE"},
	{deh.FlagCountKill, "COUNT_AS_KILL"},
	{deh.FlagCountItem, "COUNT_AS_ITEM"},
	{deh.FlagNotDMatch, "NODEATHMATCH"},
	{deh.FlagTouchy, "TOUCHY"},
	{deh.FlagBounces, "BOUNCE"},
	{deh.FlagFriend, "ULTRA_LOYAL"},
}

type extraName struct {
	flag deh.ExtraFlag
	name string
}

var extraTable = []extraName{
	{deh.ExtraMonster, "MONSTER"},
	{deh.ExtraDisloyal, "DISLOYAL"},
	{deh.ExtraTriggerHappy, "TRIGGER_HAPPY"},
	{deh.ExtraExplodeImmune, "EXPLODE_IMMUNE"},
	{deh.ExtraBossMan, "BOSSMAN"},
	{deh.ExtraNeverTargeted, "NEVERTARGETED"},
}

// identityFlags are the extra flags vanilla hardcodes by thing type.
var identityFlags = map[int]deh.ExtraFlag{
	deh.ThingUndead:    deh.ExtraTriggerHappy,
	deh.ThingSkull:     deh.ExtraTriggerHappy,
	deh.ThingCyborg:    deh.ExtraTriggerHappy | deh.ExtraExplodeImmune | deh.ExtraBossMan,
	deh.ThingSpider:    deh.ExtraTriggerHappy | deh.ExtraExplodeImmune | deh.ExtraBossMan,
	deh.ThingBarrel:    deh.ExtraNeverTargeted,
	deh.ThingBossBrain: deh.ExtraNeverTargeted,
}

type mbf21Name struct {
	flag deh.MBF21Flag
	name string
}

// Boss map bits are left out; they become scripts.
var mbf21Table = []mbf21Name{
	{deh.MBF21LowGravity, "LOGRAV"},
	{deh.MBF21ShortMRange, "SHORTMRANGE"},
	{deh.MBF21DmgIgnored, "NEVERTARGETED"},
	{deh.MBF21NoRadiusDmg, "EXPLODE_IMMUNE"},
	{deh.MBF21ForceRadiusDmg, "FORCERADIUSDMG"},
	{deh.MBF21HigherMProb, "HIGHERMPROB"},
	{deh.MBF21RangeHalf, "TRIGGER_HAPPY"},
	{deh.MBF21NoThreshold, "NOTHRESHOLD"},
	{deh.MBF21LongMelee, "LONGMELEE"},
	{deh.MBF21Boss, "BOSSMAN"},
	{deh.MBF21Rip, "TUNNEL"},
	{deh.MBF21FullVolSounds, "ALWAYS_LOUD"},
}

func legacyNames(word deh.LegacyFlag) []string {
	var names []string
	for _, e := range legacyTable {
		if word.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	return names
}

func extraNames(word deh.ExtraFlag) []string {
	var names []string
	for _, e := range extraTable {
		if word.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	return names
}

func mbf21Names(word deh.MBF21Flag) []string {
	var names []string
	for _, e := range mbf21Table {
		if word.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	return names
}

// adjustedFlags applies the legacy compatibility rules: negative mass spawns
// on the ceiling without gravity, bouncing things can be shot.
func (c *converter) adjustedFlags(t *deh.Thing) deh.LegacyFlag {
	word := t.Flags
	if t.Mass < 0 {
		word |= deh.FlagSpawnCeiling | deh.FlagNoGravity
	}
	if word.Has(deh.FlagBounces) {
		word |= deh.FlagShootable
	}
	return word
}

func (c *converter) extraFlags(id int, t *deh.Thing) deh.ExtraFlag {
	word := identityFlags[id]
	if c.isMonster(t) {
		word |= deh.ExtraMonster
		if c.src.InfightOn() {
			word |= deh.ExtraDisloyal
		}
	}
	return word
}

// paletteRemaps names the colour translations of the two translation bits.
var paletteRemaps = map[deh.LegacyFlag]string{
	deh.FlagTranslation1: "PLAYER_DARK",
	deh.FlagTranslation2: "PLAYER_BROWN",
	deh.FlagTranslation:  "PLAYER_RED",
}

// writeThingFlags merges the three flag vocabularies into one SPECIAL
// clause, each name once.
func (c *converter) writeThingFlags(w output.Writer, id int, t *deh.Thing) {
	word := c.adjustedFlags(t)

	var names []string
	seen := make(map[string]bool)
	all := append(legacyNames(word), extraNames(c.extraFlags(id, t))...)
	for _, name := range append(all, mbf21Names(t.MBF21Flags)...) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		w.Printf("SPECIAL = %s;\n", joinList(names))
	}

	if word.Has(deh.FlagTranslucent) || id == deh.ThingTeleportMan {
		w.Printf("TRANSLUCENCY = 50%%;\n")
	}
	if remap, ok := paletteRemaps[word&deh.FlagTranslation]; ok {
		w.Printf("PALETTE_REMAP = %s;\n", remap)
	}
}
