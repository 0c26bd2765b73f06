package deh

// LegacyFlag is the original thing flag word ("Bits").
type LegacyFlag uint32

const (
	FlagSpecial      LegacyFlag = 0x00000001
	FlagSolid        LegacyFlag = 0x00000002
	FlagShootable    LegacyFlag = 0x00000004
	FlagNoSector     LegacyFlag = 0x00000008
	FlagNoBlockmap   LegacyFlag = 0x00000010
	FlagAmbush       LegacyFlag = 0x00000020
	FlagJustHit      LegacyFlag = 0x00000040
	FlagJustAttacked LegacyFlag = 0x00000080
	FlagSpawnCeiling LegacyFlag = 0x00000100
	FlagNoGravity    LegacyFlag = 0x00000200
	FlagDropOff      LegacyFlag = 0x00000400
	FlagPickup       LegacyFlag = 0x00000800
	FlagNoClip       LegacyFlag = 0x00001000
	FlagSlide        LegacyFlag = 0x00002000
	FlagFloat        LegacyFlag = 0x00004000
	FlagTeleport     LegacyFlag = 0x00008000
	FlagMissile      LegacyFlag = 0x00010000
	FlagDropped      LegacyFlag = 0x00020000
	FlagShadow       LegacyFlag = 0x00040000
	FlagNoBlood      LegacyFlag = 0x00080000
	FlagCorpse       LegacyFlag = 0x00100000
	FlagInFloat      LegacyFlag = 0x00200000
	FlagCountKill    LegacyFlag = 0x00400000
	FlagCountItem    LegacyFlag = 0x00800000
	FlagSkullFly     LegacyFlag = 0x01000000
	FlagNotDMatch    LegacyFlag = 0x02000000
	FlagTranslation1 LegacyFlag = 0x04000000
	FlagTranslation2 LegacyFlag = 0x08000000
	FlagTranslation  LegacyFlag = 0x0C000000
	FlagTouchy       LegacyFlag = 0x10000000
	FlagBounces      LegacyFlag = 0x20000000
	FlagFriend       LegacyFlag = 0x40000000
	FlagTranslucent  LegacyFlag = 0x80000000
)

// MnemonicOnlyFlags can only be set by name; numeric Bits writes clear them.
const MnemonicOnlyFlags = FlagTouchy | FlagBounces | FlagFriend | FlagTranslucent

// Has reports whether all bits of f are set.
func (l LegacyFlag) Has(f LegacyFlag) bool {
	return l&f == f
}

// MBF21Flag is the extended thing flag word ("MBF21 Bits").
type MBF21Flag uint32

const (
	MBF21LowGravity     MBF21Flag = 0x00000001
	MBF21ShortMRange    MBF21Flag = 0x00000002
	MBF21DmgIgnored     MBF21Flag = 0x00000004
	MBF21NoRadiusDmg    MBF21Flag = 0x00000008
	MBF21ForceRadiusDmg MBF21Flag = 0x00000010
	MBF21HigherMProb    MBF21Flag = 0x00000020
	MBF21RangeHalf      MBF21Flag = 0x00000040
	MBF21NoThreshold    MBF21Flag = 0x00000080
	MBF21LongMelee      MBF21Flag = 0x00000100
	MBF21Boss           MBF21Flag = 0x00000200
	MBF21Map07Boss1     MBF21Flag = 0x00000400
	MBF21Map07Boss2     MBF21Flag = 0x00000800
	MBF21E1M8Boss       MBF21Flag = 0x00001000
	MBF21E2M8Boss       MBF21Flag = 0x00002000
	MBF21E3M8Boss       MBF21Flag = 0x00004000
	MBF21E4M6Boss       MBF21Flag = 0x00008000
	MBF21E4M8Boss       MBF21Flag = 0x00010000
	MBF21Rip            MBF21Flag = 0x00020000
	MBF21FullVolSounds  MBF21Flag = 0x00040000
)

// MBF21BossMapFlags trigger level events on death and are emitted as scripts.
const MBF21BossMapFlags = MBF21Map07Boss1 | MBF21Map07Boss2 | MBF21E1M8Boss |
	MBF21E2M8Boss | MBF21E3M8Boss | MBF21E4M6Boss | MBF21E4M8Boss

// Has reports whether all bits of f are set.
func (m MBF21Flag) Has(f MBF21Flag) bool {
	return m&f == f
}

// WeaponFlag is the MBF21 weapon flag word.
type WeaponFlag uint32

const (
	WeaponNoThrust       WeaponFlag = 0x01
	WeaponSilent         WeaponFlag = 0x02
	WeaponNoAutoFire     WeaponFlag = 0x04
	WeaponFleeMelee      WeaponFlag = 0x08
	WeaponAutoSwitchFrom WeaponFlag = 0x10
	WeaponNoAutoSwitchTo WeaponFlag = 0x20
)

// Has reports whether all bits of f are set.
func (w WeaponFlag) Has(f WeaponFlag) bool {
	return w&f == f
}

// FrameFlag is the MBF21 frame flag word.
type FrameFlag uint32

const (
	FrameSkill5Fast FrameFlag = 0x01
)

// FrameBright marks a full-bright sub-sprite.
const FrameBright = 0x8000

// ExtraFlag is a flag no patch word carries; it follows from what a thing
// is or how it behaves.
type ExtraFlag uint32

const (
	ExtraMonster ExtraFlag = 1 << iota
	ExtraDisloyal
	ExtraTriggerHappy
	ExtraExplodeImmune
	ExtraBossMan
	ExtraNeverTargeted
)

// Has reports whether all bits of f are set.
func (e ExtraFlag) Has(f ExtraFlag) bool {
	return e&f == f
}
