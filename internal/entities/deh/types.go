package deh

import "strings"

// AttackPrefix marks baseline names of projectile things converted as attacks.
const AttackPrefix = "*"

// Thing is one map object definition.
type Thing struct {
	Name      string
	DoomedNum int

	SpawnState   int
	SeeState     int
	MeleeState   int
	MissileState int
	PainState    int
	DeathState   int
	XDeathState  int
	RaiseState   int

	SeeSound    int
	AttackSound int
	PainSound   int
	DeathSound  int
	ActiveSound int
	RipSound    int

	SpawnHealth  int
	ReactionTime int
	PainChance   int
	Speed        int
	Radius       int
	Height       int
	Mass         int
	Damage       int

	Flags      LegacyFlag
	MBF21Flags MBF21Flag

	InfightGroup    OptInt
	ProjectileGroup OptInt
	SplashGroup     OptInt
	FastSpeed       OptInt
	MeleeRange      OptInt

	PlayerNum   int
	GibHealth   int
	DroppedItem int
	BloodThing  int
}

// NewNeutralThing returns the record used for an id beyond the baseline.
func NewNeutralThing(name string) Thing {
	return Thing{
		Name:        name,
		DoomedNum:   -1,
		DroppedItem: -1,
		BloodThing:  -1,
	}
}

// IsAttack reports whether the thing converts to an attack definition.
func (t *Thing) IsAttack() bool {
	return strings.HasPrefix(t.Name, AttackPrefix)
}

// DDFName returns the name without the attack prefix.
func (t *Thing) DDFName() string {
	return strings.TrimPrefix(t.Name, AttackPrefix)
}

// State returns the frame a role starts at; 0 for roles a thing lacks.
func (t *Thing) State(r Role) int {
	switch r {
	case RoleSpawn:
		return t.SpawnState
	case RoleSee:
		return t.SeeState
	case RoleMelee:
		return t.MeleeState
	case RoleMissile:
		return t.MissileState
	case RolePain:
		return t.PainState
	case RoleDeath:
		return t.DeathState
	case RoleXDeath:
		return t.XDeathState
	case RoleRaise:
		return t.RaiseState
	}
	return StateNull
}

// Frame is one animation state.
type Frame struct {
	Sprite int
	// Frame is the sub-sprite index; FrameBright marks full-bright.
	Frame  int
	Tics   int
	Action string
	Next   int
	Misc1  int
	Misc2  int
	Args   [8]int
	Flags  FrameFlag
}

// IsBright reports whether the frame renders full-bright.
func (f *Frame) IsBright() bool {
	return f.Frame&FrameBright != 0
}

// SubSprite returns the sub-sprite index without the bright bit.
func (f *Frame) SubSprite() int {
	return f.Frame &^ FrameBright
}

// Weapon is one player weapon.
type Weapon struct {
	Name        string
	Ammo        int
	UpState     int
	DownState   int
	ReadyState  int
	AttackState int
	FlashState  int
	AmmoPerShot int
	Flags       WeaponFlag
	// Slot is the number key that selects the weapon.
	Slot     int
	Priority int
}

// State returns the frame a weapon role starts at.
func (w *Weapon) State(r Role) int {
	switch r {
	case RoleUp:
		return w.UpState
	case RoleDown:
		return w.DownState
	case RoleReady:
		return w.ReadyState
	case RoleAttack:
		return w.AttackState
	case RoleFlash:
		return w.FlashState
	}
	return StateNull
}

// Ammo is one ammunition type.
type Ammo struct {
	Name string
	Max  int
	Per  int
}

// Sound is one sound effect.
type Sound struct {
	Name        string
	Priority    int
	Singularity int
}

// Misc holds the global gameplay values patches can change.
type Misc struct {
	InitialHealth    int
	InitialBullets   int
	MaxHealth        int
	MaxArmor         int
	GreenArmorClass  int
	BlueArmorClass   int
	MaxSoulsphere    int
	SoulsphereHealth int
	MegasphereHealth int
	GodModeHealth    int
	IDFAArmor        int
	IDFAArmorClass   int
	IDKFAArmor       int
	IDKFAArmorClass  int
	BFGCellsPerShot  int
	MonstersInfight  int
}

// Text is a replaceable language string.
type Text struct {
	Ref   string
	Value string
}
