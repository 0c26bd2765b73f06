package fields

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

func miscInt(name string, kind Kind, p func(*deh.Misc) *int) Ref[deh.Misc] {
	return Ref[deh.Misc]{
		Name: name,
		Kind: kind,
		Get:  func(m *deh.Misc) int { return *p(m) },
		Set:  func(m *deh.Misc, v int) { *p(m) = v },
	}
}

// Misc field names referenced by dependency rules.
const (
	MiscInitialHealth    = "Initial Health"
	MiscInitialBullets   = "Initial Bullets"
	MiscMaxHealth        = "Max Health"
	MiscMaxArmor         = "Max Armor"
	MiscGreenArmorClass  = "Green Armor Class"
	MiscBlueArmorClass   = "Blue Armor Class"
	MiscMaxSoulsphere    = "Max Soulsphere"
	MiscSoulsphereHealth = "Soulsphere Health"
	MiscMegasphereHealth = "Megasphere Health"
	MiscBFGCellsPerShot  = "BFG Cells/Shot"
	MiscMonstersInfight  = "Monsters Infight"
)

// Misc is the misc field registry.
var Misc = NewTable(
	miscInt(MiscInitialHealth, KindPositiveOnly, func(m *deh.Misc) *int { return &m.InitialHealth }),
	miscInt(MiscInitialBullets, KindNonNegative, func(m *deh.Misc) *int { return &m.InitialBullets }),
	miscInt(MiscMaxHealth, KindPositiveOnly, func(m *deh.Misc) *int { return &m.MaxHealth }),
	miscInt(MiscMaxArmor, KindNonNegative, func(m *deh.Misc) *int { return &m.MaxArmor }),
	miscInt(MiscGreenArmorClass, KindNonNegative, func(m *deh.Misc) *int { return &m.GreenArmorClass }),
	miscInt(MiscBlueArmorClass, KindNonNegative, func(m *deh.Misc) *int { return &m.BlueArmorClass }),
	miscInt(MiscMaxSoulsphere, KindPositiveOnly, func(m *deh.Misc) *int { return &m.MaxSoulsphere }),
	miscInt(MiscSoulsphereHealth, KindPositiveOnly, func(m *deh.Misc) *int { return &m.SoulsphereHealth }),
	miscInt(MiscMegasphereHealth, KindPositiveOnly, func(m *deh.Misc) *int { return &m.MegasphereHealth }),
	miscInt("God Mode Health", KindPositiveOnly, func(m *deh.Misc) *int { return &m.GodModeHealth }),
	miscInt("IDFA Armor", KindNonNegative, func(m *deh.Misc) *int { return &m.IDFAArmor }),
	miscInt("IDFA Armor Class", KindNonNegative, func(m *deh.Misc) *int { return &m.IDFAArmorClass }),
	miscInt("IDKFA Armor", KindNonNegative, func(m *deh.Misc) *int { return &m.IDKFAArmor }),
	miscInt("IDKFA Armor Class", KindNonNegative, func(m *deh.Misc) *int { return &m.IDKFAArmorClass }),
	miscInt(MiscBFGCellsPerShot, KindPositiveOnly, func(m *deh.Misc) *int { return &m.BFGCellsPerShot }),
	miscInt(MiscMonstersInfight, KindUnconstrained, func(m *deh.Misc) *int { return &m.MonstersInfight }),
)
