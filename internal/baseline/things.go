package baseline

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

const fracUnit = 1 << 16

// thingDefs is the vanilla map object table in id order.
var thingDefs = []thingDef{
	{
		Name:         "OUR_HERO",
		DoomedNum:    -1,
		Spawn:        "PLAY",
		See:          "PLAY_RUN1",
		Missile:      "PLAY_ATK1",
		Pain:         "PLAY_PAIN",
		Death:        "PLAY_DIE1",
		XDeath:       "PLAY_XDIE1",
		PainSound:    "plpain",
		DeathSound:   "pldeth",
		SpawnHealth:  100,
		ReactionTime: 8,
		PainChance:   255,
		Radius:       16 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagDropOff | deh.FlagPickup | deh.FlagNotDMatch,
		PlayerNum:    1,
	},
	{
		Name:         "FORMER_HUMAN",
		DoomedNum:    3004,
		Spawn:        "POSS_STND",
		See:          "POSS_RUN1",
		Missile:      "POSS_ATK1",
		Pain:         "POSS_PAIN",
		Death:        "POSS_DIE1",
		XDeath:       "POSS_XDIE1",
		Raise:        "POSS_RAISE1",
		SeeSound:     "posit1",
		AttackSound:  "pistol",
		PainSound:    "popain",
		DeathSound:   "podth1",
		ActiveSound:  "posact",
		SpawnHealth:  20,
		ReactionTime: 8,
		PainChance:   200,
		Speed:        8,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "FORMER_HUMAN_SERGEANT",
		DoomedNum:    9,
		Spawn:        "SPOS_STND",
		See:          "SPOS_RUN1",
		Missile:      "SPOS_ATK1",
		Pain:         "SPOS_PAIN",
		Death:        "SPOS_DIE1",
		XDeath:       "SPOS_XDIE1",
		Raise:        "SPOS_RAISE1",
		SeeSound:     "posit2",
		PainSound:    "popain",
		DeathSound:   "podth2",
		ActiveSound:  "posact",
		SpawnHealth:  30,
		ReactionTime: 8,
		PainChance:   170,
		Speed:        8,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "ARCHVILE",
		DoomedNum:    64,
		Spawn:        "VILE_STND",
		See:          "VILE_RUN1",
		Missile:      "VILE_ATK1",
		Pain:         "VILE_PAIN",
		Death:        "VILE_DIE1",
		SeeSound:     "vilsit",
		PainSound:    "vipain",
		DeathSound:   "vildth",
		ActiveSound:  "vilact",
		SpawnHealth:  700,
		ReactionTime: 8,
		PainChance:   10,
		Speed:        15,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         500,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:   deh.MBF21ShortMRange | deh.MBF21DmgIgnored | deh.MBF21NoThreshold,
	},
	{
		Name:         "ARCHVILE_FIRE",
		DoomedNum:    -1,
		Spawn:        "FIRE1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "REVENANT",
		DoomedNum:    66,
		Spawn:        "SKEL_STND",
		See:          "SKEL_RUN1",
		Melee:        "SKEL_FIST1",
		Missile:      "SKEL_MISS1",
		Pain:         "SKEL_PAIN",
		Death:        "SKEL_DIE1",
		Raise:        "SKEL_RAISE1",
		SeeSound:     "skesit",
		PainSound:    "popain",
		DeathSound:   "skedth",
		ActiveSound:  "skeact",
		SpawnHealth:  300,
		ReactionTime: 8,
		PainChance:   100,
		Speed:        10,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         500,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:   deh.MBF21LongMelee | deh.MBF21RangeHalf,
	},
	{
		Name:         "*REVENANT_MISSILE",
		DoomedNum:    -1,
		Spawn:        "TRACER",
		Death:        "TRACEEXP1",
		SeeSound:     "skeatk",
		DeathSound:   "barexp",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        10 * fracUnit,
		Radius:       11 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       10,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "SMOKE",
		DoomedNum:    -1,
		Spawn:        "SMOKE1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "MANCUBUS",
		DoomedNum:    67,
		Spawn:        "FATT_STND",
		See:          "FATT_RUN1",
		Missile:      "FATT_ATK1",
		Pain:         "FATT_PAIN",
		Death:        "FATT_DIE1",
		Raise:        "FATT_RAISE1",
		SeeSound:     "mansit",
		PainSound:    "mnpain",
		DeathSound:   "mandth",
		ActiveSound:  "posact",
		SpawnHealth:  600,
		ReactionTime: 8,
		PainChance:   80,
		Speed:        8,
		Radius:       48 * fracUnit,
		Height:       64 * fracUnit,
		Mass:         1000,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:   deh.MBF21Map07Boss1,
	},
	{
		Name:         "*MANCUBUS_FIREBALL",
		DoomedNum:    -1,
		Spawn:        "FATSHOT1",
		Death:        "FATSHOTX1",
		SeeSound:     "firsht",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        20 * fracUnit,
		Radius:       6 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       8,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "FORMER_HUMAN_COMMANDO",
		DoomedNum:    65,
		Spawn:        "CPOS_STND",
		See:          "CPOS_RUN1",
		Missile:      "CPOS_ATK1",
		Pain:         "CPOS_PAIN",
		Death:        "CPOS_DIE1",
		XDeath:       "CPOS_XDIE1",
		Raise:        "CPOS_RAISE1",
		SeeSound:     "posit2",
		PainSound:    "popain",
		DeathSound:   "podth2",
		ActiveSound:  "posact",
		SpawnHealth:  70,
		ReactionTime: 8,
		PainChance:   170,
		Speed:        8,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "IMP",
		DoomedNum:    3001,
		Spawn:        "TROO_STND",
		See:          "TROO_RUN1",
		Melee:        "TROO_ATK1",
		Missile:      "TROO_ATK1",
		Pain:         "TROO_PAIN",
		Death:        "TROO_DIE1",
		XDeath:       "TROO_XDIE1",
		Raise:        "TROO_RAISE1",
		SeeSound:     "bgsit1",
		PainSound:    "popain",
		DeathSound:   "bgdth1",
		ActiveSound:  "bgact",
		SpawnHealth:  60,
		ReactionTime: 8,
		PainChance:   200,
		Speed:        8,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "DEMON",
		DoomedNum:    3002,
		Spawn:        "SARG_STND",
		See:          "SARG_RUN1",
		Melee:        "SARG_ATK1",
		Pain:         "SARG_PAIN",
		Death:        "SARG_DIE1",
		Raise:        "SARG_RAISE1",
		SeeSound:     "sgtsit",
		AttackSound:  "sgtatk",
		PainSound:    "dmpain",
		DeathSound:   "sgtdth",
		ActiveSound:  "dmact",
		SpawnHealth:  150,
		ReactionTime: 8,
		PainChance:   180,
		Speed:        10,
		Radius:       30 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         400,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "SPECTRE",
		DoomedNum:    58,
		Spawn:        "SARG_STND",
		See:          "SARG_RUN1",
		Melee:        "SARG_ATK1",
		Pain:         "SARG_PAIN",
		Death:        "SARG_DIE1",
		Raise:        "SARG_RAISE1",
		SeeSound:     "sgtsit",
		AttackSound:  "sgtatk",
		PainSound:    "dmpain",
		DeathSound:   "sgtdth",
		ActiveSound:  "dmact",
		SpawnHealth:  150,
		ReactionTime: 8,
		PainChance:   180,
		Speed:        10,
		Radius:       30 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         400,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill | deh.FlagShadow,
	},
	{
		Name:         "CACODEMON",
		DoomedNum:    3005,
		Spawn:        "HEAD_STND",
		See:          "HEAD_RUN1",
		Missile:      "HEAD_ATK1",
		Pain:         "HEAD_PAIN",
		Death:        "HEAD_DIE1",
		Raise:        "HEAD_RAISE1",
		SeeSound:     "cacsit",
		PainSound:    "dmpain",
		DeathSound:   "cacdth",
		ActiveSound:  "dmact",
		SpawnHealth:  400,
		ReactionTime: 8,
		PainChance:   128,
		Speed:        8,
		Radius:       31 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         400,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagFloat | deh.FlagNoGravity | deh.FlagCountKill,
	},
	{
		Name:            "BARON_OF_HELL",
		DoomedNum:       3003,
		Spawn:           "BOSS_STND",
		See:             "BOSS_RUN1",
		Melee:           "BOSS_ATK1",
		Missile:         "BOSS_ATK1",
		Pain:            "BOSS_PAIN",
		Death:           "BOSS_DIE1",
		Raise:           "BOSS_RAISE1",
		SeeSound:        "brssit",
		PainSound:       "dmpain",
		DeathSound:      "brsdth",
		ActiveSound:     "dmact",
		SpawnHealth:     1000,
		ReactionTime:    8,
		PainChance:      50,
		Speed:           8,
		Radius:          24 * fracUnit,
		Height:          64 * fracUnit,
		Mass:            1000,
		Flags:           deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:      deh.MBF21E1M8Boss,
		ProjectileGroup: deh.Opt(1),
	},
	{
		Name:         "*BARON_FIREBALL",
		DoomedNum:    -1,
		Spawn:        "BRBALL1",
		Death:        "BRBALLX1",
		SeeSound:     "firsht",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        15 * fracUnit,
		Radius:       6 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       8,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:            "HELL_KNIGHT",
		DoomedNum:       69,
		Spawn:           "BOS2_STND",
		See:             "BOS2_RUN1",
		Melee:           "BOS2_ATK1",
		Missile:         "BOS2_ATK1",
		Pain:            "BOS2_PAIN",
		Death:           "BOS2_DIE1",
		Raise:           "BOS2_RAISE1",
		SeeSound:        "kntsit",
		PainSound:       "dmpain",
		DeathSound:      "kntdth",
		ActiveSound:     "dmact",
		SpawnHealth:     500,
		ReactionTime:    8,
		PainChance:      50,
		Speed:           8,
		Radius:          24 * fracUnit,
		Height:          64 * fracUnit,
		Mass:            1000,
		Flags:           deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		ProjectileGroup: deh.Opt(1),
	},
	{
		Name:         "LOST_SOUL",
		DoomedNum:    3006,
		Spawn:        "SKULL_STND",
		See:          "SKULL_RUN1",
		Missile:      "SKULL_ATK1",
		Pain:         "SKULL_PAIN",
		Death:        "SKULL_DIE1",
		AttackSound:  "sklatk",
		PainSound:    "dmpain",
		DeathSound:   "firxpl",
		ActiveSound:  "dmact",
		SpawnHealth:  100,
		ReactionTime: 8,
		PainChance:   256,
		Speed:        8,
		Radius:       16 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         50,
		Damage:       3,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagFloat | deh.FlagNoGravity,
		MBF21Flags:   deh.MBF21RangeHalf,
	},
	{
		Name:         "THE_SPIDER_MASTERMIND",
		DoomedNum:    7,
		Spawn:        "SPID_STND",
		See:          "SPID_RUN1",
		Missile:      "SPID_ATK1",
		Pain:         "SPID_PAIN",
		Death:        "SPID_DIE1",
		SeeSound:     "spisit",
		AttackSound:  "shotgn",
		PainSound:    "dmpain",
		DeathSound:   "spidth",
		ActiveSound:  "dmact",
		SpawnHealth:  3000,
		ReactionTime: 8,
		PainChance:   40,
		Speed:        12,
		Radius:       128 * fracUnit,
		Height:       100 * fracUnit,
		Mass:         1000,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:   deh.MBF21NoRadiusDmg | deh.MBF21RangeHalf | deh.MBF21FullVolSounds | deh.MBF21E3M8Boss | deh.MBF21E4M8Boss | deh.MBF21Boss,
	},
	{
		Name:         "ARACHNOTRON",
		DoomedNum:    68,
		Spawn:        "BSPI_STND",
		See:          "BSPI_SIGHT",
		Missile:      "BSPI_ATK1",
		Pain:         "BSPI_PAIN",
		Death:        "BSPI_DIE1",
		Raise:        "BSPI_RAISE1",
		SeeSound:     "bspsit",
		PainSound:    "dmpain",
		DeathSound:   "bspdth",
		ActiveSound:  "bspact",
		SpawnHealth:  500,
		ReactionTime: 8,
		PainChance:   128,
		Speed:        12,
		Radius:       64 * fracUnit,
		Height:       64 * fracUnit,
		Mass:         600,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:   deh.MBF21Map07Boss2,
	},
	{
		Name:         "CYBERDEMON",
		DoomedNum:    16,
		Spawn:        "CYBER_STND",
		See:          "CYBER_RUN1",
		Missile:      "CYBER_ATK1",
		Pain:         "CYBER_PAIN",
		Death:        "CYBER_DIE1",
		SeeSound:     "cybsit",
		PainSound:    "dmpain",
		DeathSound:   "cybdth",
		ActiveSound:  "dmact",
		SpawnHealth:  4000,
		ReactionTime: 8,
		PainChance:   20,
		Speed:        16,
		Radius:       40 * fracUnit,
		Height:       110 * fracUnit,
		Mass:         1000,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
		MBF21Flags:   deh.MBF21NoRadiusDmg | deh.MBF21HigherMProb | deh.MBF21RangeHalf | deh.MBF21FullVolSounds | deh.MBF21E2M8Boss | deh.MBF21E4M6Boss | deh.MBF21Boss,
	},
	{
		Name:         "PAIN_ELEMENTAL",
		DoomedNum:    71,
		Spawn:        "PAIN_STND",
		See:          "PAIN_RUN1",
		Missile:      "PAIN_ATK1",
		Pain:         "PAIN_PAIN",
		Death:        "PAIN_DIE1",
		Raise:        "PAIN_RAISE1",
		SeeSound:     "pesit",
		PainSound:    "pepain",
		DeathSound:   "pedth",
		ActiveSound:  "dmact",
		SpawnHealth:  400,
		ReactionTime: 8,
		PainChance:   128,
		Speed:        8,
		Radius:       31 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         400,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagFloat | deh.FlagNoGravity | deh.FlagCountKill,
	},
	{
		Name:         "WOLFENSTEIN_SS",
		DoomedNum:    84,
		Spawn:        "SSWV_STND",
		See:          "SSWV_RUN1",
		Missile:      "SSWV_ATK1",
		Pain:         "SSWV_PAIN",
		Death:        "SSWV_DIE1",
		XDeath:       "SSWV_XDIE1",
		Raise:        "SSWV_RAISE1",
		SeeSound:     "sssit",
		PainSound:    "popain",
		DeathSound:   "ssdth",
		ActiveSound:  "posact",
		SpawnHealth:  50,
		ReactionTime: 8,
		PainChance:   170,
		Speed:        8,
		Radius:       20 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "COMMANDER_KEEN",
		DoomedNum:    72,
		Spawn:        "KEENSTND",
		Pain:         "KEENPAIN",
		Death:        "COMMKEEN",
		PainSound:    "keenpn",
		DeathSound:   "keendt",
		SpawnHealth:  100,
		ReactionTime: 8,
		PainChance:   256,
		Radius:       16 * fracUnit,
		Height:       72 * fracUnit,
		Mass:         10000000,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity | deh.FlagShootable | deh.FlagCountKill,
	},
	{
		Name:         "BOSS_BRAIN",
		DoomedNum:    88,
		Spawn:        "BRAIN",
		Pain:         "BRAIN_PAIN",
		Death:        "BRAIN_DIE1",
		PainSound:    "bospn",
		DeathSound:   "bosdth",
		SpawnHealth:  250,
		ReactionTime: 8,
		PainChance:   255,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         10000000,
		Flags:        deh.FlagSolid | deh.FlagShootable,
	},
	{
		Name:         "BRAIN_SHOOTER",
		DoomedNum:    89,
		Spawn:        "BRAINEYE",
		See:          "BRAINEYESEE",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       32 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoSector,
	},
	{
		Name:         "BRAIN_SPAWNSPOT",
		DoomedNum:    87,
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       32 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoSector,
	},
	{
		Name:         "*BRAIN_CUBE",
		DoomedNum:    -1,
		Spawn:        "SPAWN1",
		SeeSound:     "bospit",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        10 * fracUnit,
		Radius:       6 * fracUnit,
		Height:       32 * fracUnit,
		Mass:         100,
		Damage:       3,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity | deh.FlagNoClip,
	},
	{
		Name:         "SPAWN_FIRE",
		DoomedNum:    -1,
		Spawn:        "SPAWNFIRE1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "BARREL",
		DoomedNum:    2035,
		Spawn:        "BAR1",
		Death:        "BEXP",
		DeathSound:   "barexp",
		SpawnHealth:  20,
		ReactionTime: 8,
		Radius:       10 * fracUnit,
		Height:       42 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagShootable | deh.FlagNoBlood,
	},
	{
		Name:         "*IMP_FIREBALL",
		DoomedNum:    -1,
		Spawn:        "TBALL1",
		Death:        "TBALLX1",
		SeeSound:     "firsht",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        10 * fracUnit,
		Radius:       6 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       3,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "*CACO_FIREBALL",
		DoomedNum:    -1,
		Spawn:        "RBALL1",
		Death:        "RBALLX1",
		SeeSound:     "firsht",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        10 * fracUnit,
		Radius:       6 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       5,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "*PLAYER_MISSILE",
		DoomedNum:    -1,
		Spawn:        "ROCKET",
		Death:        "EXPLODE1",
		SeeSound:     "rlaunc",
		DeathSound:   "barexp",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        20 * fracUnit,
		Radius:       11 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       20,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "*PLAYER_PLASMA",
		DoomedNum:    -1,
		Spawn:        "PLASBALL",
		Death:        "PLASEXP",
		SeeSound:     "plasma",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        25 * fracUnit,
		Radius:       13 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       5,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "*PLAYER_BFG9000",
		DoomedNum:    -1,
		Spawn:        "BFGSHOT",
		Death:        "BFGLAND",
		DeathSound:   "rxplod",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        25 * fracUnit,
		Radius:       13 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       100,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "*ARACHNOTRON_PLASMA",
		DoomedNum:    -1,
		Spawn:        "ARACH_PLAZ",
		Death:        "ARACH_PLEX",
		SeeSound:     "plasma",
		DeathSound:   "firxpl",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Speed:        25 * fracUnit,
		Radius:       13 * fracUnit,
		Height:       8 * fracUnit,
		Mass:         100,
		Damage:       5,
		Flags:        deh.FlagNoBlockmap | deh.FlagMissile | deh.FlagDropOff | deh.FlagNoGravity,
	},
	{
		Name:         "PUFF",
		DoomedNum:    -1,
		Spawn:        "PUFF1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "BLOOD",
		DoomedNum:    -1,
		Spawn:        "BLOOD1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap,
	},
	{
		Name:         "TELEPORT_FOG",
		DoomedNum:    -1,
		Spawn:        "TFOG",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "RESPAWN_FLASH",
		DoomedNum:    -1,
		Spawn:        "IFOG",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "TELEPORT_FLASH",
		DoomedNum:    14,
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoSector,
	},
	{
		Name:         "EXTRA_BFG",
		DoomedNum:    -1,
		Spawn:        "BFGEXP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap | deh.FlagNoGravity,
	},
	{
		Name:         "GREEN_ARMOUR",
		DoomedNum:    2018,
		Spawn:        "ARM1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "BLUE_ARMOUR",
		DoomedNum:    2019,
		Spawn:        "ARM2",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "HEALTH_POTION",
		DoomedNum:    2014,
		Spawn:        "BON1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "ARMOUR_HELMET",
		DoomedNum:    2015,
		Spawn:        "BON2",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "BLUE_KEYCARD",
		DoomedNum:    5,
		Spawn:        "BKEY",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagNotDMatch,
	},
	{
		Name:         "RED_KEYCARD",
		DoomedNum:    13,
		Spawn:        "RKEY",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagNotDMatch,
	},
	{
		Name:         "YELLOW_KEYCARD",
		DoomedNum:    6,
		Spawn:        "YKEY",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagNotDMatch,
	},
	{
		Name:         "YELLOW_SKULLKEY",
		DoomedNum:    39,
		Spawn:        "YSKULL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagNotDMatch,
	},
	{
		Name:         "RED_SKULLKEY",
		DoomedNum:    38,
		Spawn:        "RSKULL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagNotDMatch,
	},
	{
		Name:         "BLUE_SKULLKEY",
		DoomedNum:    40,
		Spawn:        "BSKULL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagNotDMatch,
	},
	{
		Name:         "STIMPACK",
		DoomedNum:    2011,
		Spawn:        "STIM",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "MEDIKIT",
		DoomedNum:    2012,
		Spawn:        "MEDI",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "SOULSPHERE",
		DoomedNum:    2013,
		Spawn:        "SOUL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "INVULNERABILITY",
		DoomedNum:    2022,
		Spawn:        "PINV",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "BERSERK",
		DoomedNum:    2023,
		Spawn:        "PSTR",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "INVISIBILITY",
		DoomedNum:    2024,
		Spawn:        "PINS",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "RADIATION_SUIT",
		DoomedNum:    2025,
		Spawn:        "SUIT",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "AUTOMAP",
		DoomedNum:    2026,
		Spawn:        "PMAP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "LIGHT_AMP",
		DoomedNum:    2045,
		Spawn:        "PVIS",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "MEGASPHERE",
		DoomedNum:    83,
		Spawn:        "MEGA",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial | deh.FlagCountItem,
	},
	{
		Name:         "CLIP",
		DoomedNum:    2007,
		Spawn:        "CLIP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "BOX_OF_BULLETS",
		DoomedNum:    2048,
		Spawn:        "AMMO",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "ROCKET",
		DoomedNum:    2010,
		Spawn:        "ROCK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "BOX_OF_ROCKETS",
		DoomedNum:    2046,
		Spawn:        "BROK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "CELLS",
		DoomedNum:    2047,
		Spawn:        "CELL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "CELL_PACK",
		DoomedNum:    17,
		Spawn:        "CELP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "SHELLS",
		DoomedNum:    2008,
		Spawn:        "SHEL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "BOX_OF_SHELLS",
		DoomedNum:    2049,
		Spawn:        "SBOX",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "BACKPACK",
		DoomedNum:    8,
		Spawn:        "BPAK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "BFG9000",
		DoomedNum:    2006,
		Spawn:        "BFUG",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "CHAINGUN",
		DoomedNum:    2002,
		Spawn:        "MGUN",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "CHAINSAW",
		DoomedNum:    2005,
		Spawn:        "CSAW",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "ROCKET_LAUNCHER",
		DoomedNum:    2003,
		Spawn:        "LAUN",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "PLASMA_RIFLE",
		DoomedNum:    2004,
		Spawn:        "PLAS",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "SHOTGUN",
		DoomedNum:    2001,
		Spawn:        "SHOT",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "SUPER_SHOTGUN",
		DoomedNum:    82,
		Spawn:        "SHOT2",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpecial,
	},
	{
		Name:         "TECH_LAMP",
		DoomedNum:    85,
		Spawn:        "TECHLAMP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       80 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SMALL_TECH_LAMP",
		DoomedNum:    86,
		Spawn:        "TECH2LAMP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       60 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "LIGHT_COLUMN",
		DoomedNum:    2028,
		Spawn:        "COLU",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       48 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "TALL_GREEN_PILLAR",
		DoomedNum:    30,
		Spawn:        "TALLGRNCOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       52 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SHORT_GREEN_PILLAR",
		DoomedNum:    31,
		Spawn:        "SHRTGRNCOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       40 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "TALL_RED_PILLAR",
		DoomedNum:    32,
		Spawn:        "TALLREDCOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       52 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SHORT_RED_PILLAR",
		DoomedNum:    33,
		Spawn:        "SHRTREDCOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       40 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SKULL_COLUMN",
		DoomedNum:    37,
		Spawn:        "SKULLCOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       40 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "HEART_COLUMN",
		DoomedNum:    36,
		Spawn:        "HEARTCOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       40 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "EVIL_EYE",
		DoomedNum:    41,
		Spawn:        "EVILEYE",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       54 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "FLOATING_SKULLROCK",
		DoomedNum:    42,
		Spawn:        "FLOATSKULL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       26 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "TORCHED_TREE",
		DoomedNum:    43,
		Spawn:        "TORCHTREE",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       56 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "BLUE_TORCH",
		DoomedNum:    44,
		Spawn:        "BLUETORCH",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "GREEN_TORCH",
		DoomedNum:    45,
		Spawn:        "GREENTORCH",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "RED_TORCH",
		DoomedNum:    46,
		Spawn:        "REDTORCH",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SHORT_BLUE_TORCH",
		DoomedNum:    55,
		Spawn:        "BTORCHSHRT",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       37 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SHORT_GREEN_TORCH",
		DoomedNum:    56,
		Spawn:        "GTORCHSHRT",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       37 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SHORT_RED_TORCH",
		DoomedNum:    57,
		Spawn:        "RTORCHSHRT",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       37 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "STALAGMITE",
		DoomedNum:    47,
		Spawn:        "STALAGTITE",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       40 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "TECH_PILLAR",
		DoomedNum:    48,
		Spawn:        "TECHPILLAR",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       128 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "CANDLE",
		DoomedNum:    34,
		Spawn:        "CANDLESTIK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       14 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "CANDELABRA",
		DoomedNum:    35,
		Spawn:        "CANDELABRA",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       60 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "HANGING_TWITCHING_BODY",
		DoomedNum:    49,
		Spawn:        "BLOODYTWITCH",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_BODY_ARMS_OUT",
		DoomedNum:    50,
		Spawn:        "MEAT2",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       84 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_BODY_ONE_LEG",
		DoomedNum:    51,
		Spawn:        "MEAT3",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       84 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_TORSO",
		DoomedNum:    52,
		Spawn:        "MEAT4",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_LEG",
		DoomedNum:    53,
		Spawn:        "MEAT5",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       52 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_BODY_ARMS_OUT_2",
		DoomedNum:    59,
		Spawn:        "MEAT2",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       84 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_TORSO_2",
		DoomedNum:    60,
		Spawn:        "MEAT4",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_BODY_ONE_LEG_2",
		DoomedNum:    61,
		Spawn:        "MEAT3",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       52 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_LEG_2",
		DoomedNum:    62,
		Spawn:        "MEAT5",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       52 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_TWITCHING_BODY_2",
		DoomedNum:    63,
		Spawn:        "BLOODYTWITCH",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       68 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "DEAD_CACODEMON",
		DoomedNum:    22,
		Spawn:        "HEAD_DIE6",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "DEAD_PLAYER",
		DoomedNum:    15,
		Spawn:        "PLAY_DIE7",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "DEAD_FORMER_HUMAN",
		DoomedNum:    18,
		Spawn:        "POSS_DIE5",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "DEAD_DEMON",
		DoomedNum:    21,
		Spawn:        "SARG_DIE6",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "DEAD_LOST_SOUL",
		DoomedNum:    23,
		Spawn:        "SKULL_DIE6",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "DEAD_IMP",
		DoomedNum:    20,
		Spawn:        "TROO_DIE5",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "DEAD_FORMER_SERGEANT",
		DoomedNum:    19,
		Spawn:        "SPOS_DIE5",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "GIBBED_PLAYER",
		DoomedNum:    10,
		Spawn:        "PLAY_XDIE9",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "GIBBED_PLAYER_2",
		DoomedNum:    12,
		Spawn:        "PLAY_XDIE9",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "SKEWERED_HEADS",
		DoomedNum:    28,
		Spawn:        "HEADSONSTICK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "GIBS",
		DoomedNum:    24,
		Spawn:        "GIBS",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
	},
	{
		Name:         "SKULL_ON_POLE",
		DoomedNum:    27,
		Spawn:        "HEADONASTICK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "SKULL_CANDLES",
		DoomedNum:    29,
		Spawn:        "HEADCANDLES",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "IMPALED_BODY",
		DoomedNum:    25,
		Spawn:        "DEADSTICK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "TWITCHING_IMPALED_BODY",
		DoomedNum:    26,
		Spawn:        "LIVESTICK",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "BIG_TREE",
		DoomedNum:    54,
		Spawn:        "BIGTREE",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       32 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "BURNING_BARREL",
		DoomedNum:    70,
		Spawn:        "BBAR1",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid,
	},
	{
		Name:         "HANGING_NO_GUTS",
		DoomedNum:    73,
		Spawn:        "HANGNOGUTS",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       88 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_NO_BRAIN",
		DoomedNum:    74,
		Spawn:        "HANGBNOBRAIN",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       88 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_LOOKING_DOWN",
		DoomedNum:    75,
		Spawn:        "HANGTLOOKDN",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       64 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_OPEN_SKULL",
		DoomedNum:    76,
		Spawn:        "HANGTSKULL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       64 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_LOOKING_UP",
		DoomedNum:    77,
		Spawn:        "HANGTLOOKUP",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       64 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "HANGING_BRAIN_REMOVED",
		DoomedNum:    78,
		Spawn:        "HANGTNOBRAIN",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       16 * fracUnit,
		Height:       64 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagSolid | deh.FlagSpawnCeiling | deh.FlagNoGravity,
	},
	{
		Name:         "POOL_OF_BLOOD",
		DoomedNum:    79,
		Spawn:        "COLONGIBS",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap,
	},
	{
		Name:         "SMALL_POOL_OF_BLOOD",
		DoomedNum:    80,
		Spawn:        "SMALLPOOL",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap,
	},
	{
		Name:         "BRAIN_STEM",
		DoomedNum:    81,
		Spawn:        "BRAINSTEM",
		SpawnHealth:  1000,
		ReactionTime: 8,
		Radius:       20 * fracUnit,
		Height:       16 * fracUnit,
		Mass:         100,
		Flags:        deh.FlagNoBlockmap,
	},
}
