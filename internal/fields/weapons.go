package fields

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

// MaxAmmo caps ammo maximum values.
const MaxAmmo = 10000

func weaponInt(name string, kind Kind, p func(*deh.Weapon) *int) Ref[deh.Weapon] {
	return Ref[deh.Weapon]{
		Name: name,
		Kind: kind,
		Get:  func(w *deh.Weapon) int { return *p(w) },
		Set:  func(w *deh.Weapon, v int) { *p(w) = v },
	}
}

// Weapons is the weapon field registry.
var Weapons = NewTable(
	// Ammo type is capped one past the four ammo types: 4 and 5 both mean no ammo.
	weaponInt("Ammo type", KindAmmoIndex, func(w *deh.Weapon) *int { return &w.Ammo }),
	weaponInt("Deselect frame", KindFrameIndex, func(w *deh.Weapon) *int { return &w.UpState }),
	weaponInt("Select frame", KindFrameIndex, func(w *deh.Weapon) *int { return &w.DownState }),
	weaponInt("Bobbing frame", KindFrameIndex, func(w *deh.Weapon) *int { return &w.ReadyState }),
	weaponInt("Shooting frame", KindFrameIndex, func(w *deh.Weapon) *int { return &w.AttackState }),
	weaponInt("Firing frame", KindFrameIndex, func(w *deh.Weapon) *int { return &w.FlashState }),
	weaponInt("Ammo per shot", KindNonNegative, func(w *deh.Weapon) *int { return &w.AmmoPerShot }),
	weaponInt("Slot", KindNonNegative, func(w *deh.Weapon) *int { return &w.Slot }),
	weaponInt("Slot Priority", KindNonNegative, func(w *deh.Weapon) *int { return &w.Priority }),
	Ref[deh.Weapon]{
		Name: "MBF21 Bits",
		Kind: KindBitFlagWord,
		Get:  func(w *deh.Weapon) int { return int(w.Flags) },
		Set:  func(w *deh.Weapon, v int) { w.Flags = deh.WeaponFlag(uint32(v)) },
	},
)

// Ammo is the ammo field registry.
var Ammo = NewTable(
	Ref[deh.Ammo]{
		Name: "Max ammo",
		Kind: KindNonNegative,
		Get:  func(a *deh.Ammo) int { return a.Max },
		Set:  func(a *deh.Ammo, v int) { a.Max = min(v, MaxAmmo) },
	},
	Ref[deh.Ammo]{
		Name: "Per ammo",
		Kind: KindNonNegative,
		Get:  func(a *deh.Ammo) int { return a.Per },
		Set:  func(a *deh.Ammo, v int) { a.Per = v },
	},
)

// Sounds is the sound field registry.
var Sounds = NewTable(
	Ref[deh.Sound]{
		Name: "Value",
		Kind: KindUnconstrained,
		Get:  func(s *deh.Sound) int { return s.Priority },
		Set:  func(s *deh.Sound, v int) { s.Priority = v },
	},
	Ref[deh.Sound]{
		Name: "Zero/One",
		Kind: KindNonNegative,
		Get:  func(s *deh.Sound) int { return s.Singularity },
		Set:  func(s *deh.Sound, v int) { s.Singularity = v },
	},
)
