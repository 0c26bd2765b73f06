package deh

// Frame ids.
const (
	StateNull = 0
)

// Thing ids used by conversion rules. Ids are 0-based.
const (
	ThingPlayer       = 0
	ThingPossessed    = 1
	ThingShotguy      = 2
	ThingVile         = 3
	ThingUndead       = 5
	ThingTracer       = 6
	ThingFatso        = 8
	ThingFatShot      = 9
	ThingChainguy     = 10
	ThingTroop        = 11
	ThingSergeant     = 12
	ThingHead         = 14
	ThingBruiser      = 15
	ThingBruiserShot  = 16
	ThingKnight       = 17
	ThingSkull        = 18
	ThingSpider       = 19
	ThingBaby         = 20
	ThingCyborg       = 21
	ThingPain         = 22
	ThingWolfSS       = 23
	ThingKeen         = 24
	ThingBossBrain    = 25
	ThingBossSpit     = 26
	ThingSpawnShot    = 28
	ThingSpawnFire    = 29
	ThingBarrel       = 30
	ThingTroopShot    = 31
	ThingHeadShot     = 32
	ThingRocket       = 33
	ThingPlasma       = 34
	ThingBFG          = 35
	ThingArachPlaz    = 36
	ThingTeleportFog  = 39
	ThingTeleportMan  = 41
	ThingGreenArmor   = 43
	ThingBlueArmor    = 44
	ThingHealthBonus  = 45
	ThingArmorBonus   = 46
	ThingSoulsphere   = 55
	ThingBerserk      = 57
	ThingMegasphere   = 62
	ThingClip         = 63
	ThingBulletBox    = 64
	ThingRocketAmmo   = 65
	ThingRocketBox    = 66
	ThingCell         = 67
	ThingCellPack     = 68
	ThingShells       = 69
	ThingShellBox     = 70
	ThingBackpack     = 71
	ThingShotgunDrop  = 77
	ThingChaingunDrop = 73
)

// Weapon ids.
const (
	WeaponFist         = 0
	WeaponPistol       = 1
	WeaponShotgun      = 2
	WeaponChaingun     = 3
	WeaponMissile      = 4
	WeaponPlasma       = 5
	WeaponBFG          = 6
	WeaponChainsaw     = 7
	WeaponSuperShotgun = 8
)

// Ammo ids. AmmoNone is the patch value for weapons without ammo.
const (
	AmmoBullets = 0
	AmmoShells  = 1
	AmmoCells   = 2
	AmmoRockets = 3
	AmmoNone    = 5
)

// Infight values for the "Monsters Infight" misc field.
const (
	InfightDefault = 202
	InfightOn      = 221
)
