package convert

import (
	"fmt"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

// pickup is what touching a special thing gives, chosen by its sprite the
// way vanilla does.
type pickup struct {
	benefit func(c *converter) string
	message string
	sound   string
}

func fixedBenefit(s string) func(*converter) string {
	return func(*converter) string { return s }
}

func ammoBenefit(ammo, mult int) func(*converter) string {
	return func(c *converter) string {
		a, _ := c.src.Ammo(ammo)
		return fmt.Sprintf("%s(%d)", a.Name, a.Per*mult)
	}
}

func weaponBenefit(weapon string, ammo, mult int) func(*converter) string {
	return func(c *converter) string {
		a, _ := c.src.Ammo(ammo)
		return fmt.Sprintf("%s,%s(%d)", weapon, a.Name, a.Per*mult)
	}
}

var pickups = map[string]pickup{
	"ARM1": {benefit: func(c *converter) string {
		return fmt.Sprintf("GREEN_ARMOUR(%d)", c.src.Misc().GreenArmorClass*100)
	}, message: "GotArmour", sound: "ITEMUP"},
	"ARM2": {benefit: func(c *converter) string {
		return fmt.Sprintf("BLUE_ARMOUR(%d)", c.src.Misc().BlueArmorClass*100)
	}, message: "GotMegaArmour", sound: "ITEMUP"},
	"BON1": {benefit: func(c *converter) string {
		return fmt.Sprintf("HEALTH(1:%d)", c.src.Misc().MaxHealth)
	}, message: "GotHealthPotion", sound: "ITEMUP"},
	"BON2": {benefit: func(c *converter) string {
		return fmt.Sprintf("GREEN_ARMOUR(1:%d)", c.src.Misc().MaxArmor)
	}, message: "GotArmourHelmet", sound: "ITEMUP"},
	"SOUL": {benefit: func(c *converter) string {
		m := c.src.Misc()
		return fmt.Sprintf("HEALTH(%d:%d)", m.SoulsphereHealth, m.MaxSoulsphere)
	}, message: "GotSoul", sound: "GETPOW"},
	"MEGA": {benefit: func(c *converter) string {
		m := c.src.Misc()
		return fmt.Sprintf("HEALTH(%d:%d),BLUE_ARMOUR(200:200)", m.MegasphereHealth, m.MegasphereHealth)
	}, message: "GotMega", sound: "GETPOW"},
	"STIM": {benefit: fixedBenefit("HEALTH(10:100)"), message: "GotStim", sound: "ITEMUP"},
	"MEDI": {benefit: fixedBenefit("HEALTH(25:100)"), message: "GotMedi", sound: "ITEMUP"},

	"BKEY": {benefit: fixedBenefit("KEY_BLUECARD"), message: "GotBlueCard", sound: "ITEMUP"},
	"YKEY": {benefit: fixedBenefit("KEY_YELLOWCARD"), message: "GotYellowCard", sound: "ITEMUP"},
	"RKEY": {benefit: fixedBenefit("KEY_REDCARD"), message: "GotRedCard", sound: "ITEMUP"},
	"BSKU": {benefit: fixedBenefit("KEY_BLUESKULL"), message: "GotBlueSkull", sound: "ITEMUP"},
	"YSKU": {benefit: fixedBenefit("KEY_YELLOWSKULL"), message: "GotYellowSkull", sound: "ITEMUP"},
	"RSKU": {benefit: fixedBenefit("KEY_REDSKULL"), message: "GotRedSkull", sound: "ITEMUP"},

	"PINV": {benefit: fixedBenefit("POWERUP_INVULNERABLE(30:30)"), message: "GotInvulner", sound: "GETPOW"},
	"PINS": {benefit: fixedBenefit("POWERUP_PARTINVIS(100:100)"), message: "GotInvis", sound: "GETPOW"},
	"SUIT": {benefit: fixedBenefit("POWERUP_ACIDSUIT(60:60)"), message: "GotSuit", sound: "GETPOW"},
	"PMAP": {benefit: fixedBenefit("POWERUP_AUTOMAP"), message: "GotMap", sound: "GETPOW"},
	"PVIS": {benefit: fixedBenefit("POWERUP_LIGHTGOGGLES(120:120)"), message: "GotVisor", sound: "GETPOW"},

	"CLIP": {benefit: ammoBenefit(deh.AmmoBullets, 1), message: "GotClip", sound: "ITEMUP"},
	"AMMO": {benefit: ammoBenefit(deh.AmmoBullets, 5), message: "GotClipBox", sound: "ITEMUP"},
	"ROCK": {benefit: ammoBenefit(deh.AmmoRockets, 1), message: "GotRocket", sound: "ITEMUP"},
	"BROK": {benefit: ammoBenefit(deh.AmmoRockets, 5), message: "GotRocketBox", sound: "ITEMUP"},
	"CELL": {benefit: ammoBenefit(deh.AmmoCells, 1), message: "GotCell", sound: "ITEMUP"},
	"CELP": {benefit: ammoBenefit(deh.AmmoCells, 5), message: "GotCellPack", sound: "ITEMUP"},
	"SHEL": {benefit: ammoBenefit(deh.AmmoShells, 1), message: "GotShells", sound: "ITEMUP"},
	"SBOX": {benefit: ammoBenefit(deh.AmmoShells, 5), message: "GotShellBox", sound: "ITEMUP"},
	"BPAK": {benefit: backpackBenefit, message: "GotBackpack", sound: "ITEMUP"},

	"BFUG": {benefit: weaponBenefit("BFG_9000", deh.AmmoCells, 2), message: "GotBFG", sound: "WPNUP"},
	"MGUN": {benefit: weaponBenefit("CHAINGUN", deh.AmmoBullets, 2), message: "GotChainGun", sound: "WPNUP"},
	"CSAW": {benefit: fixedBenefit("CHAINSAW"), message: "GotChainSaw", sound: "WPNUP"},
	"LAUN": {benefit: weaponBenefit("ROCKET_LAUNCHER", deh.AmmoRockets, 2), message: "GotLauncher", sound: "WPNUP"},
	"PLAS": {benefit: weaponBenefit("PLASMA_RIFLE", deh.AmmoCells, 2), message: "GotPlasma", sound: "WPNUP"},
	"SHOT": {benefit: weaponBenefit("SHOTGUN", deh.AmmoShells, 2), message: "GotShotgun", sound: "WPNUP"},
	"SGN2": {benefit: weaponBenefit("SUPER_SHOTGUN", deh.AmmoShells, 2), message: "GotDoubleShotgun", sound: "WPNUP"},
}

// backpackBenefit doubles every ammo limit and adds one clip of each type.
func backpackBenefit(c *converter) string {
	var limits, ammo []string
	for id := 0; ; id++ {
		a, ok := c.src.Ammo(id)
		if !ok {
			break
		}
		limits = append(limits, fmt.Sprintf("%s.LIMIT(%d)", a.Name, a.Max*2))
		ammo = append(ammo, fmt.Sprintf("%s(%d)", a.Name, a.Per))
	}
	return joinList(append(limits, ammo...))
}

// spawnSprite returns the vanilla name of the sprite a thing spawns with.
func (c *converter) spawnSprite(t *deh.Thing) (string, bool) {
	f, ok := c.src.Frame(t.SpawnState)
	if !ok {
		return "", false
	}
	return baseline.SpriteName(f.Sprite)
}

func (c *converter) writePickup(w output.Writer, t *deh.Thing) {
	if !t.Flags.Has(deh.FlagSpecial) {
		return
	}
	sprite, ok := c.spawnSprite(t)
	if !ok {
		return
	}
	if sprite == "PSTR" {
		c.writeBerserk(w)
		return
	}
	p, ok := pickups[sprite]
	if !ok {
		return
	}

	w.Printf("PICKUP_BENEFIT = %s;\n", p.benefit(c))
	w.Printf("PICKUP_SOUND = %s;\n", quote(p.sound))
	w.Printf("PICKUP_MESSAGE = %s;\n", p.message)
}

// writeBerserk writes the berserk pack, which heals, powers up and
// switches to the fist.
func (c *converter) writeBerserk(w output.Writer) {
	w.Printf("PICKUP_BENEFIT = POWERUP_BERSERK(60:60),HEALTH(100:100);\n")
	w.Printf("PICKUP_EFFECT = SWITCH_WEAPON(FIST);\n")
	w.Printf("PICKUP_SOUND = %s;\n", quote("GETPOW"))
	w.Printf("PICKUP_MESSAGE = GotBerserk;\n")
}
