package convert

import (
	"fmt"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/classify"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
	"github.com/edge-classic/EDGE-classic-sub008/internal/states"
)

// defaultDrops are the items vanilla monsters drop without a patch value.
var defaultDrops = map[int]int{
	deh.ThingPossessed: deh.ThingClip,
	deh.ThingShotguy:   deh.ThingShotgunDrop,
	deh.ThingChainguy:  deh.ThingChaingunDrop,
	deh.ThingWolfSS:    deh.ThingClip,
}

// invisibleStates is written for things without any animation.
const invisibleStates = "STATES(IDLE) = NULL:A:-1:NORMAL:NOTHING;\n"

func (c *converter) thingName(id int) string {
	t, ok := c.src.Thing(id)
	if !ok {
		return session.ExtraThingName(id)
	}
	return t.DDFName()
}

// patchThing resolves a 1-based thing number stored in a field or argument.
func (c *converter) patchThing(num int) (string, bool) {
	if num <= 0 {
		return "", false
	}
	if _, ok := c.src.Thing(num - 1); !ok {
		return "", false
	}
	return c.thingName(num - 1), true
}

func (c *converter) convertThing(w output.Writer, id int, t *deh.Thing) error {
	if id == deh.ThingSpawnFire {
		return c.convertBossCube(w)
	}

	g, err := c.thingGrouper(id, t)
	if err != nil {
		return err
	}

	w.BeginLump(output.LumpThings)
	c.writeThingHeader(w, t)
	c.writeThingStats(w, t)
	if id == deh.ThingPlayer {
		c.writeInitialBenefit(w, t)
	}
	c.writeThingSounds(w, t)

	if g.OutputAll(w) == 0 {
		c.warn(session.WarnMissingStates, "thing", id, fmt.Sprintf("thing %s has no states", t.DDFName()))
		w.Printf(invisibleStates)
	}

	c.writeThingFlags(w, id, t)
	c.writeThingAttacks(w, t)
	c.writeThingDamage(w, t)
	c.writePickup(w, t)
	c.writeDrop(w, id, t)
	if n, ok := c.cast.Order(id); ok {
		w.Printf("CASTORDER = %d;\n", n)
	}
	w.Printf("\n")
	w.EndLump()

	c.flushScratch(w)
	return nil
}

// thingGrouper seeds the role groups of a thing. The teleport destination
// borrows the spawn chain of the teleport fog.
func (c *converter) thingGrouper(id int, t *deh.Thing) (*states.Grouper, error) {
	name := t.DDFName()
	g := states.NewGrouper(c.src, func(frame int, f deh.Frame) string {
		return c.thingAction(name, frame, f)
	})

	for _, role := range deh.ThingRoles {
		start := t.State(role)
		if id == deh.ThingTeleportMan && role == deh.RoleSpawn {
			fog, ok := c.src.Thing(deh.ThingTeleportFog)
			if !ok {
				return nil, errors.FailedPreconditionf("teleport fog thing %d missing", deh.ThingTeleportFog).
					WithEntity("thing", id)
			}
			start = fog.SpawnState
		}
		g.BeginGroup(role, start)
	}
	g.SpreadGroups()
	return g, nil
}

func (c *converter) writeThingHeader(w output.Writer, t *deh.Thing) {
	if t.DoomedNum > 0 {
		w.Printf("[%s:%d]\n", t.DDFName(), t.DoomedNum)
	} else {
		w.Printf("[%s]\n", t.DDFName())
	}
}

func (c *converter) writeThingStats(w output.Writer, t *deh.Thing) {
	w.Printf("SPAWNHEALTH = %d;\n", t.SpawnHealth)
	w.Printf("RADIUS = %s;\n", fixed(t.Radius))
	w.Printf("HEIGHT = %s;\n", fixed(t.Height))
	w.Printf("MASS = %d;\n", abs(t.Mass))

	if t.Speed != 0 {
		w.Printf("SPEED = %s;\n", c.speed(t, t.Speed))
	}
	if v, ok := t.FastSpeed.Get(); ok {
		w.Printf("FAST_SPEED = %s;\n", c.speed(t, v))
	}
	if t.ReactionTime != 0 {
		w.Printf("REACTION_TIME = %dT;\n", t.ReactionTime)
	}
	if t.PainChance != 0 {
		w.Printf("PAINCHANCE = %s;\n", percent(t.PainChance))
	}
	if v, ok := t.MeleeRange.Get(); ok {
		w.Printf("MELEE_RANGE = %s;\n", fixed(v))
	}
	if t.PlayerNum != 0 {
		w.Printf("PLAYER = %d;\n", t.PlayerNum)
	}
	if t.GibHealth != 0 {
		w.Printf("GIB_HEALTH = %d;\n", t.GibHealth)
	}

	groups := []struct {
		clause string
		value  deh.OptInt
	}{
		{"INFIGHT_GROUP", t.InfightGroup},
		{"PROJECTILE_GROUP", t.ProjectileGroup},
		{"SPLASH_GROUP", t.SplashGroup},
	}
	for _, grp := range groups {
		if v, ok := grp.value.Get(); ok {
			w.Printf("%s = %d;\n", grp.clause, v)
		}
	}

	if name, ok := c.patchThing(t.BloodThing); ok {
		w.Printf("BLOOD = %s;\n", name)
	}
}

// speed formats a speed; projectiles move in fixed-point units.
func (c *converter) speed(t *deh.Thing, v int) string {
	if t.Flags.Has(deh.FlagMissile) {
		return fixed(v)
	}
	return fmt.Sprintf("%d", v)
}

func (c *converter) writeThingSounds(w output.Writer, t *deh.Thing) {
	sounds := []struct {
		clause string
		id     int
	}{
		{"SIGHTING_SOUND", t.SeeSound},
		{"STARTCOMBAT_SOUND", t.AttackSound},
		{"PAIN_SOUND", t.PainSound},
		{"DEATH_SOUND", t.DeathSound},
		{"ACTIVE_SOUND", t.ActiveSound},
		{"RIP_SOUND", t.RipSound},
	}
	for _, snd := range sounds {
		if snd.id > 0 {
			w.Printf("%s = %s;\n", snd.clause, quote(soundRef(snd.id)))
		}
	}
}

// writeInitialBenefit gives the player the ammo limits and starting ammo.
func (c *converter) writeInitialBenefit(w output.Writer, t *deh.Thing) {
	var benefits []string
	for id := 0; ; id++ {
		a, ok := c.src.Ammo(id)
		if !ok {
			break
		}
		benefits = append(benefits, fmt.Sprintf("%s.LIMIT(%d)", a.Name, a.Max))
	}
	if bullets, ok := c.src.Ammo(deh.AmmoBullets); ok {
		benefits = append(benefits, fmt.Sprintf("%s(%d)", bullets.Name, c.src.Misc().InitialBullets))
	}
	benefits = append(benefits, fmt.Sprintf("HEALTH(%d)", t.SpawnHealth))
	w.Printf("INITIAL_BENEFIT = %s;\n", joinList(benefits))
}

// writeThingAttacks names the first attack found per slot in the melee and
// missile chains, and the first spare attack in any chain.
func (c *converter) writeThingAttacks(w output.Writer, t *deh.Thing) {
	var found actions.Attacks
	name := t.DDFName()

	scan := func(start int, spareOnly bool) {
		for _, id := range actions.Chain(c.src, start) {
			f, _ := c.src.Frame(id)
			a := c.frameAttacks(name, id, f)
			if spareOnly {
				a = actions.Attacks{Spare: a.Spare}
			}
			if found.Ranged == "" {
				found.Ranged = a.Ranged
			}
			if found.Close == "" {
				found.Close = a.Close
			}
			if found.Spare == "" {
				found.Spare = a.Spare
			}
		}
	}
	scan(t.MeleeState, false)
	scan(t.MissileState, false)
	scan(t.DeathState, true)
	scan(t.XDeathState, true)

	if found.Close != "" {
		w.Printf("CLOSE_ATTACK = %s;\n", found.Close)
	}
	if found.Ranged != "" {
		w.Printf("RANGE_ATTACK = %s;\n", found.Ranged)
	}
	if found.Spare != "" {
		w.Printf("SPARE_ATTACK = %s;\n", found.Spare)
	}
}

// frameAttacks is the side-table entry of a frame, with MBF21 pointers
// resolved from their arguments.
func (c *converter) frameAttacks(owner string, id int, f deh.Frame) actions.Attacks {
	info, ok := actions.Lookup(f.Action)
	if !ok || f.Action == "" {
		return actions.Attacks{}
	}
	switch {
	case info.Flags.Has(actions.FlagMeleeScratch):
		return actions.Attacks{Close: scratchName(owner, id)}
	case info.Mnemonic == "MonsterProjectile":
		if name, ok := c.patchThing(f.Args[0]); ok {
			return actions.Attacks{Ranged: name}
		}
		return actions.Attacks{}
	}
	return c.table.Attacks(id)
}

func (c *converter) writeThingDamage(w output.Writer, t *deh.Thing) {
	var flags actions.Flag
	explode := 0
	for _, role := range deh.ThingRoles {
		for _, id := range actions.Chain(c.src, t.State(role)) {
			fl := c.table.Flags(id)
			if fl.Has(actions.FlagExplode) && explode == 0 {
				explode = 128
				if f, _ := c.src.Frame(id); actions.Normalize(f.Action) == "RADIUSDAMAGE" && f.Args[0] > 0 {
					explode = f.Args[0]
				}
			}
			flags |= fl
		}
	}

	switch {
	case flags.Has(actions.FlagDetonate):
		w.Printf("EXPLODE_DAMAGE.VAL = %d;\n", t.Damage)
	case explode > 0:
		w.Printf("EXPLODE_DAMAGE.VAL = %d;\n", explode)
	}
	if t.Flags.Has(deh.FlagMissile) && t.Damage > 0 {
		w.Printf("PROJECTILE_DAMAGE.VAL = %d;\n", t.Damage)
		w.Printf("PROJECTILE_DAMAGE.MAX = %d;\n", t.Damage*8)
	}
}

// writeDrop handles the dropped item: -1 keeps the vanilla drop, 0 drops
// nothing and N drops thing number N.
func (c *converter) writeDrop(w output.Writer, id int, t *deh.Thing) {
	switch {
	case t.DroppedItem < 0:
		if drop, ok := defaultDrops[id]; ok {
			w.Printf("DROPITEM = %s;\n", c.thingName(drop))
		}
	case t.DroppedItem > 0:
		if name, ok := c.patchThing(t.DroppedItem); ok {
			w.Printf("DROPITEM = %s;\n", name)
		}
	}
}

// isMonster is the late classification, with roles inferred from actions.
func (c *converter) isMonster(t *deh.Thing) bool {
	return classify.IsMonster(t, classify.InferRoles(t, c.table, c.src))
}
