// Package actions catalogs code pointers: the DDF action each mnemonic
// converts to, the behaviours it implies and the attacks it fires.
package actions

import "strings"

// Flag marks a behaviour implied by a code pointer.
type Flag uint32

const (
	FlagExplode Flag = 1 << iota
	FlagDetonate
	FlagLook
	FlagChase
	FlagFall
	FlagRaise
	FlagKeenDie
	FlagBossDeath
	FlagBrainSpit
	FlagMeleeScratch
	FlagMonsterProjectile
	FlagWeaponProjectile
	FlagWeapon
)

// Has reports whether all bits of f are set.
func (a Flag) Has(f Flag) bool {
	return a&f == f
}

// Attacks names the attacks a frame fires, by slot.
type Attacks struct {
	Ranged string
	Close  string
	Spare  string
}

// IsZero reports whether no slot is filled.
func (a Attacks) IsZero() bool {
	return a.Ranged == "" && a.Close == "" && a.Spare == ""
}

// Info describes one code pointer.
type Info struct {
	Mnemonic string
	DDF      string
	Flags    Flag
	Attacks  Attacks
}

// Normalize strips the A_ prefix and upper-cases a mnemonic.
func Normalize(mnemonic string) string {
	m := strings.ToUpper(strings.TrimSpace(mnemonic))
	return strings.TrimPrefix(m, "A_")
}

// Lookup returns the catalog entry of a mnemonic, with or without A_.
func Lookup(mnemonic string) (Info, bool) {
	info, ok := catalog[Normalize(mnemonic)]
	return info, ok
}

// Mnemonics lists every catalogued pointer in catalog order, A_ prefixed.
func Mnemonics() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, "A_"+e.Mnemonic)
	}
	return out
}

var catalog = func() map[string]Info {
	m := make(map[string]Info, len(entries))
	for _, e := range entries {
		m[strings.ToUpper(e.Mnemonic)] = e
	}
	return m
}()

func ranged(name string) Attacks   { return Attacks{Ranged: name} }
func closeAtk(name string) Attacks { return Attacks{Close: name} }
func spare(name string) Attacks    { return Attacks{Spare: name} }

var entries = []Info{
	{Mnemonic: "Light0", DDF: "LIGHT0", Flags: FlagWeapon},
	{Mnemonic: "Light1", DDF: "LIGHT1", Flags: FlagWeapon},
	{Mnemonic: "Light2", DDF: "LIGHT2", Flags: FlagWeapon},
	{Mnemonic: "WeaponReady", DDF: "READY", Flags: FlagWeapon},
	{Mnemonic: "Lower", DDF: "LOWER", Flags: FlagWeapon},
	{Mnemonic: "Raise", DDF: "RAISE", Flags: FlagWeapon},
	{Mnemonic: "ReFire", DDF: "REFIRE", Flags: FlagWeapon},
	{Mnemonic: "GunFlash", DDF: "FLASH", Flags: FlagWeapon},
	{Mnemonic: "CheckReload", DDF: "CHECKRELOAD", Flags: FlagWeapon},
	{Mnemonic: "OpenShotgun2", DDF: "PLAYSOUND(DBOPN)", Flags: FlagWeapon},
	{Mnemonic: "LoadShotgun2", DDF: "PLAYSOUND(DBLOAD)", Flags: FlagWeapon},
	{Mnemonic: "CloseShotgun2", DDF: "PLAYSOUND(DBCLS)", Flags: FlagWeapon},
	{Mnemonic: "BFGsound", DDF: "PLAYSOUND(BFG)", Flags: FlagWeapon},
	{Mnemonic: "Punch", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_PUNCH")},
	{Mnemonic: "Saw", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_SAW")},
	{Mnemonic: "FirePistol", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_PISTOL")},
	{Mnemonic: "FireShotgun", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_SHOTGUN")},
	{Mnemonic: "FireShotgun2", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_SHOTGUN2")},
	{Mnemonic: "FireCGun", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_CHAINGUN")},
	{Mnemonic: "FireMissile", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_MISSILE")},
	{Mnemonic: "FirePlasma", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_PLASMA")},
	{Mnemonic: "FireBFG", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_BFG9000")},
	{Mnemonic: "FireOldBFG", DDF: "SHOOT", Flags: FlagWeapon, Attacks: ranged("PLAYER_PLASMA")},

	{Mnemonic: "Look", DDF: "LOOKOUT", Flags: FlagLook},
	{Mnemonic: "Chase", DDF: "CHASE", Flags: FlagChase},
	{Mnemonic: "FaceTarget", DDF: "FACETARGET"},
	{Mnemonic: "Pain", DDF: "MAKEPAINSOUND"},
	{Mnemonic: "Scream", DDF: "MAKEDEATHSOUND"},
	{Mnemonic: "XScream", DDF: "MAKEOVERKILLSOUND"},
	{Mnemonic: "PlayerScream", DDF: "PLAYER_SCREAM"},
	{Mnemonic: "Fall", DDF: "MAKEDEAD", Flags: FlagFall},
	{Mnemonic: "Explode", DDF: "EXPLOSIONDAMAGE", Flags: FlagExplode},
	{Mnemonic: "BFGSpray", DDF: "SPARE_ATTACK", Attacks: spare("BFG9000_SPRAY")},
	{Mnemonic: "PosAttack", DDF: "RANGE_ATTACK", Attacks: ranged("FORMER_HUMAN_PISTOL")},
	{Mnemonic: "SPosAttack", DDF: "RANGE_ATTACK", Attacks: ranged("FORMER_HUMAN_SHOTGUN")},
	{Mnemonic: "CPosAttack", DDF: "RANGE_ATTACK", Attacks: ranged("FORMER_HUMAN_CHAINGUN")},
	{Mnemonic: "CPosRefire", DDF: "REFIRE_CHECK"},
	{Mnemonic: "SpidRefire", DDF: "REFIRE_CHECK"},
	{Mnemonic: "TroopAttack", DDF: "COMBOATTACK", Flags: FlagMonsterProjectile,
		Attacks: Attacks{Ranged: "IMP_FIREBALL", Close: "IMP_CLAW"}},
	{Mnemonic: "SargAttack", DDF: "CLOSE_ATTACK", Attacks: closeAtk("DEMON_CLAW")},
	{Mnemonic: "HeadAttack", DDF: "COMBOATTACK", Flags: FlagMonsterProjectile,
		Attacks: Attacks{Ranged: "CACO_FIREBALL", Close: "CACO_BITE"}},
	{Mnemonic: "BruisAttack", DDF: "COMBOATTACK", Flags: FlagMonsterProjectile,
		Attacks: Attacks{Ranged: "BARON_FIREBALL", Close: "BARON_CLAW"}},
	{Mnemonic: "SkullAttack", DDF: "RANGE_ATTACK", Attacks: ranged("SKULL_ASSAULT")},
	{Mnemonic: "BspiAttack", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile, Attacks: ranged("ARACHNOTRON_PLASMA")},
	{Mnemonic: "CyberAttack", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile, Attacks: ranged("CYBERDEMON_MISSILE")},
	{Mnemonic: "PainAttack", DDF: "RANGE_ATTACK", Attacks: ranged("ELEMENTAL_SPAWNER")},
	{Mnemonic: "PainDie", DDF: "SPARE_ATTACK", Flags: FlagFall, Attacks: spare("ELEMENTAL_DEATHSPAWN")},
	{Mnemonic: "SkelMissile", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile, Attacks: ranged("REVENANT_MISSILE")},
	{Mnemonic: "SkelWhoosh", DDF: "FACETARGET"},
	{Mnemonic: "SkelFist", DDF: "CLOSE_ATTACK", Attacks: closeAtk("REVENANT_CLOSECOMBAT")},
	{Mnemonic: "Tracer", DDF: "RANDOM_TRACER"},
	{Mnemonic: "FatRaise", DDF: "FACETARGET"},
	{Mnemonic: "FatAttack1", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile, Attacks: ranged("MANCUBUS_FIREBALL")},
	{Mnemonic: "FatAttack2", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile, Attacks: ranged("MANCUBUS_FIREBALL")},
	{Mnemonic: "FatAttack3", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile, Attacks: ranged("MANCUBUS_FIREBALL")},
	{Mnemonic: "VileChase", DDF: "RESCHASE", Flags: FlagChase | FlagRaise},
	{Mnemonic: "VileStart", DDF: "PLAYSOUND(VILATK)"},
	{Mnemonic: "VileTarget", DDF: "RANGE_ATTACK", Attacks: ranged("ARCHVILE_FIRE")},
	{Mnemonic: "VileAttack", DDF: "EFFECTTRACKER"},
	{Mnemonic: "StartFire", DDF: "TRACKERSTART"},
	{Mnemonic: "Fire", DDF: "TRACKERFOLLOW"},
	{Mnemonic: "FireCrackle", DDF: "TRACKERACTIVE"},
	{Mnemonic: "Hoof", DDF: "CHASE", Flags: FlagChase},
	{Mnemonic: "Metal", DDF: "CHASE", Flags: FlagChase},
	{Mnemonic: "BabyMetal", DDF: "CHASE", Flags: FlagChase},
	{Mnemonic: "BossDeath", DDF: "NOTHING", Flags: FlagBossDeath},
	{Mnemonic: "KeenDie", DDF: "KEEN_DIE", Flags: FlagKeenDie | FlagFall},
	{Mnemonic: "BrainPain", DDF: "BRAINPAIN"},
	{Mnemonic: "BrainScream", DDF: "BRAINSCREAM"},
	{Mnemonic: "BrainDie", DDF: "BRAINDIE"},
	{Mnemonic: "BrainAwake", DDF: "NOTHING"},
	{Mnemonic: "BrainSpit", DDF: "BRAINSPIT", Flags: FlagBrainSpit, Attacks: ranged("BRAIN_CUBE")},
	{Mnemonic: "SpawnSound", DDF: "MAKEACTIVESOUND"},
	{Mnemonic: "SpawnFly", DDF: "CUBETRACER"},
	{Mnemonic: "BrainExplode", DDF: "BRAINMISSILEEXPLODE"},

	{Mnemonic: "Detonate", DDF: "EXPLOSIONDAMAGE", Flags: FlagDetonate},
	{Mnemonic: "Mushroom", DDF: "MUSHROOM", Flags: FlagExplode},
	{Mnemonic: "Die", DDF: "DIE"},
	{Mnemonic: "Spawn", DDF: "SPAWN"},
	{Mnemonic: "Turn", DDF: "TURN"},
	{Mnemonic: "Face", DDF: "FACE"},
	{Mnemonic: "Scratch", DDF: "CLOSE_ATTACK", Flags: FlagMeleeScratch},
	{Mnemonic: "PlaySound", DDF: "PLAYSOUND"},
	{Mnemonic: "RandomJump", DDF: "RANDOM_JUMP"},
	{Mnemonic: "LineEffect", DDF: "NOTHING"},
	{Mnemonic: "Stop", DDF: "STOP"},

	{Mnemonic: "SpawnObject", DDF: "SPAWN"},
	{Mnemonic: "MonsterProjectile", DDF: "RANGE_ATTACK", Flags: FlagMonsterProjectile},
	{Mnemonic: "MonsterBulletAttack", DDF: "RANGE_ATTACK"},
	{Mnemonic: "MonsterMeleeAttack", DDF: "CLOSE_ATTACK", Flags: FlagMeleeScratch},
	{Mnemonic: "RadiusDamage", DDF: "EXPLOSIONDAMAGE", Flags: FlagExplode},
	{Mnemonic: "NoiseAlert", DDF: "NOISE_ALERT"},
	{Mnemonic: "HealChase", DDF: "RESCHASE", Flags: FlagChase | FlagRaise},
	{Mnemonic: "SeekTracer", DDF: "HOMING_TRACER"},
	{Mnemonic: "FindTracer", DDF: "NOTHING"},
	{Mnemonic: "ClearTracer", DDF: "NOTHING"},
	{Mnemonic: "JumpIfHealthBelow", DDF: "JUMP_IF_HEALTH_BELOW"},
	{Mnemonic: "JumpIfTargetInSight", DDF: "JUMP_IF_TARGET_IN_SIGHT"},
	{Mnemonic: "JumpIfTargetCloser", DDF: "JUMP_IF_TARGET_CLOSER"},
	{Mnemonic: "JumpIfTracerInSight", DDF: "NOTHING"},
	{Mnemonic: "JumpIfTracerCloser", DDF: "NOTHING"},
	{Mnemonic: "JumpIfFlagsSet", DDF: "NOTHING"},
	{Mnemonic: "AddFlags", DDF: "NOTHING"},
	{Mnemonic: "RemoveFlags", DDF: "NOTHING"},
	{Mnemonic: "WeaponProjectile", DDF: "SHOOT", Flags: FlagWeapon | FlagWeaponProjectile},
	{Mnemonic: "WeaponBulletAttack", DDF: "SHOOT", Flags: FlagWeapon},
	{Mnemonic: "WeaponMeleeAttack", DDF: "SHOOT", Flags: FlagWeapon},
	{Mnemonic: "WeaponSound", DDF: "PLAYSOUND", Flags: FlagWeapon},
	{Mnemonic: "WeaponAlert", DDF: "NOISE_ALERT", Flags: FlagWeapon},
	{Mnemonic: "WeaponJump", DDF: "JUMP", Flags: FlagWeapon},
	{Mnemonic: "ConsumeAmmo", DDF: "NOTHING", Flags: FlagWeapon},
	{Mnemonic: "CheckAmmo", DDF: "NOTHING", Flags: FlagWeapon},
	{Mnemonic: "RefireTo", DDF: "REFIRE_TO", Flags: FlagWeapon},
	{Mnemonic: "GunFlashTo", DDF: "FLASH", Flags: FlagWeapon},
}
