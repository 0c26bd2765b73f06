package baseline

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

var weapons = []deh.Weapon{
	{
		Name: "FIST", Ammo: deh.AmmoNone, AmmoPerShot: 0, Slot: 1, Priority: 0,
		UpState: st("PUNCHUP"), DownState: st("PUNCHDOWN"), ReadyState: st("PUNCH"),
		AttackState: st("PUNCH1"), FlashState: deh.StateNull,
		Flags: deh.WeaponFleeMelee | deh.WeaponAutoSwitchFrom | deh.WeaponNoAutoSwitchTo,
	},
	{
		Name: "PISTOL", Ammo: deh.AmmoBullets, AmmoPerShot: 1, Slot: 2, Priority: 4,
		UpState: st("PISTOLUP"), DownState: st("PISTOLDOWN"), ReadyState: st("PISTOL"),
		AttackState: st("PISTOL1"), FlashState: st("PISTOLFLASH"),
		Flags: deh.WeaponAutoSwitchFrom,
	},
	{
		Name: "SHOTGUN", Ammo: deh.AmmoShells, AmmoPerShot: 1, Slot: 3, Priority: 10,
		UpState: st("SGUNUP"), DownState: st("SGUNDOWN"), ReadyState: st("SGUN"),
		AttackState: st("SGUN1"), FlashState: st("SGUNFLASH1"),
	},
	{
		Name: "CHAINGUN", Ammo: deh.AmmoBullets, AmmoPerShot: 1, Slot: 4, Priority: 12,
		UpState: st("CHAINUP"), DownState: st("CHAINDOWN"), ReadyState: st("CHAIN"),
		AttackState: st("CHAIN1"), FlashState: st("CHAINFLASH1"),
	},
	{
		Name: "ROCKET_LAUNCHER", Ammo: deh.AmmoRockets, AmmoPerShot: 1, Slot: 5, Priority: 2,
		UpState: st("MISSILEUP"), DownState: st("MISSILEDOWN"), ReadyState: st("MISSILE"),
		AttackState: st("MISSILE1"), FlashState: st("MISSILEFLASH1"),
		Flags: deh.WeaponNoAutoFire,
	},
	{
		Name: "PLASMA_RIFLE", Ammo: deh.AmmoCells, AmmoPerShot: 1, Slot: 6, Priority: 14,
		UpState: st("PLASMAUP"), DownState: st("PLASMADOWN"), ReadyState: st("PLASMA"),
		AttackState: st("PLASMA1"), FlashState: st("PLASMAFLASH1"),
	},
	{
		Name: "BFG_9000", Ammo: deh.AmmoCells, AmmoPerShot: 40, Slot: 7, Priority: 6,
		UpState: st("BFGUP"), DownState: st("BFGDOWN"), ReadyState: st("BFG"),
		AttackState: st("BFG1"), FlashState: st("BFGFLASH1"),
		Flags: deh.WeaponNoAutoFire,
	},
	{
		Name: "CHAINSAW", Ammo: deh.AmmoNone, AmmoPerShot: 0, Slot: 1, Priority: 8,
		UpState: st("SAWUP"), DownState: st("SAWDOWN"), ReadyState: st("SAW"),
		AttackState: st("SAW1"), FlashState: deh.StateNull,
		Flags: deh.WeaponNoThrust | deh.WeaponFleeMelee | deh.WeaponNoAutoSwitchTo,
	},
	{
		Name: "SUPER_SHOTGUN", Ammo: deh.AmmoShells, AmmoPerShot: 2, Slot: 3, Priority: 16,
		UpState: st("DSGUNUP"), DownState: st("DSGUNDOWN"), ReadyState: st("DSGUN"),
		AttackState: st("DSGUN1"), FlashState: st("DSGUNFLASH1"),
	},
}

var ammo = []deh.Ammo{
	{Name: "BULLETS", Max: 200, Per: 10},
	{Name: "SHELLS", Max: 50, Per: 4},
	{Name: "CELLS", Max: 300, Per: 20},
	{Name: "ROCKETS", Max: 50, Per: 1},
}

var misc = deh.Misc{
	InitialHealth:    100,
	InitialBullets:   50,
	MaxHealth:        200,
	MaxArmor:         200,
	GreenArmorClass:  1,
	BlueArmorClass:   2,
	MaxSoulsphere:    200,
	SoulsphereHealth: 100,
	MegasphereHealth: 200,
	GodModeHealth:    100,
	IDFAArmor:        200,
	IDFAArmorClass:   2,
	IDKFAArmor:       200,
	IDKFAArmorClass:  2,
	BFGCellsPerShot:  40,
	MonstersInfight:  deh.InfightDefault,
}

// st resolves a state label during variable initialisation, before init
// has built the label index.
func st(label string) int {
	for i, d := range stateDefs {
		if d.label == label {
			return i
		}
	}
	panic("baseline: unknown weapon state " + label)
}
