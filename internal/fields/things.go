package fields

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

func thingInt(name string, kind Kind, p func(*deh.Thing) *int) Ref[deh.Thing] {
	return Ref[deh.Thing]{
		Name: name,
		Kind: kind,
		Get:  func(t *deh.Thing) int { return *p(t) },
		Set:  func(t *deh.Thing, v int) { *p(t) = v },
	}
}

func thingOpt(name string, kind Kind, p func(*deh.Thing) *deh.OptInt) Ref[deh.Thing] {
	return Ref[deh.Thing]{
		Name: name,
		Kind: kind,
		Get:  func(t *deh.Thing) int { return p(t).Raw() },
		Set:  func(t *deh.Thing, v int) { *p(t) = deh.FromRaw(v) },
	}
}

// Things is the thing field registry.
var Things = NewTable(
	thingInt("ID #", KindUnconstrained, func(t *deh.Thing) *int { return &t.DoomedNum }),
	thingInt("Initial frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.SpawnState }),
	thingInt("Hit points", KindPositiveOnly, func(t *deh.Thing) *int { return &t.SpawnHealth }),
	thingInt("First moving frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.SeeState }),
	thingInt("Alert sound", KindSoundIndex, func(t *deh.Thing) *int { return &t.SeeSound }),
	thingInt("Reaction time", KindNonNegative, func(t *deh.Thing) *int { return &t.ReactionTime }),
	thingInt("Attack sound", KindSoundIndex, func(t *deh.Thing) *int { return &t.AttackSound }),
	thingInt("Injury frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.PainState }),
	thingInt("Pain chance", KindNonNegative, func(t *deh.Thing) *int { return &t.PainChance }),
	thingInt("Pain sound", KindSoundIndex, func(t *deh.Thing) *int { return &t.PainSound }),
	thingInt("Close attack frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.MeleeState }),
	thingInt("Far attack frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.MissileState }),
	thingInt("Death frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.DeathState }),
	thingInt("Exploding frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.XDeathState }),
	thingInt("Death sound", KindSoundIndex, func(t *deh.Thing) *int { return &t.DeathSound }),
	thingInt("Speed", KindNonNegative, func(t *deh.Thing) *int { return &t.Speed }),
	thingInt("Width", KindNonNegative, func(t *deh.Thing) *int { return &t.Radius }),
	thingInt("Height", KindNonNegative, func(t *deh.Thing) *int { return &t.Height }),
	thingInt("Mass", KindUnconstrained, func(t *deh.Thing) *int { return &t.Mass }),
	thingInt("Missile damage", KindNonNegative, func(t *deh.Thing) *int { return &t.Damage }),
	thingInt("Action sound", KindSoundIndex, func(t *deh.Thing) *int { return &t.ActiveSound }),
	Ref[deh.Thing]{
		Name: "Bits",
		Kind: KindBitFlagWord,
		Mask: uint32(deh.MnemonicOnlyFlags),
		Get:  func(t *deh.Thing) int { return int(t.Flags) },
		Set:  func(t *deh.Thing, v int) { t.Flags = deh.LegacyFlag(uint32(v)) },
	},
	Ref[deh.Thing]{
		Name: "MBF21 Bits",
		Kind: KindBitFlagWord,
		Get:  func(t *deh.Thing) int { return int(t.MBF21Flags) },
		Set:  func(t *deh.Thing, v int) { t.MBF21Flags = deh.MBF21Flag(uint32(v)) },
	},
	thingInt("Respawn frame", KindFrameIndex, func(t *deh.Thing) *int { return &t.RaiseState }),
	thingOpt("Infighting group", KindUnconstrained, func(t *deh.Thing) *deh.OptInt { return &t.InfightGroup }),
	thingOpt("Projectile group", KindUnconstrained, func(t *deh.Thing) *deh.OptInt { return &t.ProjectileGroup }),
	thingOpt("Splash group", KindUnconstrained, func(t *deh.Thing) *deh.OptInt { return &t.SplashGroup }),
	thingOpt("Fast speed", KindUnconstrained, func(t *deh.Thing) *deh.OptInt { return &t.FastSpeed }),
	thingOpt("Melee range", KindUnconstrained, func(t *deh.Thing) *deh.OptInt { return &t.MeleeRange }),
	thingInt("Rip sound", KindSoundIndex, func(t *deh.Thing) *int { return &t.RipSound }),
	thingInt("Dropped item", KindUnconstrained, func(t *deh.Thing) *int { return &t.DroppedItem }),
	thingInt("Blood thing", KindUnconstrained, func(t *deh.Thing) *int { return &t.BloodThing }),
	thingInt("Gib health", KindUnconstrained, func(t *deh.Thing) *int { return &t.GibHealth }),
)
