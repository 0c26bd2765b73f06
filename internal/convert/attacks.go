package convert

import (
	"fmt"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
	"github.com/edge-classic/EDGE-classic-sub008/internal/states"
)

// attackDef holds what an attack needs beyond its thing record.
type attackDef struct {
	Type    string
	Height  int
	Special string
}

// extraAttacks lists every thing converted as an attack.
var extraAttacks = map[int]attackDef{
	deh.ThingTracer:      {Type: "PROJECTILE", Height: 48, Special: "SMOKING_TRACER"},
	deh.ThingFatShot:     {Type: "PROJECTILE", Height: 32},
	deh.ThingBruiserShot: {Type: "PROJECTILE", Height: 32},
	deh.ThingSpawnShot:   {Type: "SHOOTTOSPOT"},
	deh.ThingTroopShot:   {Type: "PROJECTILE", Height: 32},
	deh.ThingHeadShot:    {Type: "PROJECTILE", Height: 32},
	deh.ThingRocket:      {Type: "PROJECTILE", Height: 32},
	deh.ThingPlasma:      {Type: "PROJECTILE", Height: 32},
	deh.ThingBFG:         {Type: "PROJECTILE", Height: 32, Special: "SPRAY"},
	deh.ThingArachPlaz:   {Type: "PROJECTILE", Height: 16},
}

// scratchAttack is a close combat attack made up for a melee pointer.
type scratchAttack struct {
	Name   string
	Damage int
	Max    int
	Sound  int
	Range  int
}

func scratchName(owner string, frame int) string {
	return fmt.Sprintf("SCRATCH_%s_%d", owner, frame)
}

// claimAttack reserves an attack name and warns when it was written
// already.
func (c *converter) claimAttack(name string, id int) bool {
	if c.attacks[name] {
		c.warn(session.WarnDuplicateAttack, "attack", id, fmt.Sprintf("attack %s already written", name))
		return false
	}
	c.attacks[name] = true
	return true
}

func (c *converter) addScratch(owner string, id, damage, maxDamage, sound, rng int) string {
	name := scratchName(owner, id)
	if c.claimAttack(name, id) {
		c.scratch = append(c.scratch, scratchAttack{
			Name:   name,
			Damage: damage,
			Max:    maxDamage,
			Sound:  sound,
			Range:  rng,
		})
	}
	return name
}

func (c *converter) flushScratch(w output.Writer) {
	if len(c.scratch) == 0 {
		return
	}
	w.BeginLump(output.LumpAttacks)
	for _, a := range c.scratch {
		w.Printf("[%s]\n", a.Name)
		w.Printf("ATTACKTYPE = CLOSECOMBAT;\n")
		w.Printf("DAMAGE.VAL = %d;\n", a.Damage)
		w.Printf("DAMAGE.MAX = %d;\n", a.Max)
		if a.Range > 0 {
			w.Printf("ATTACKRANGE = %s;\n", fixed(a.Range))
		} else {
			w.Printf("ATTACKRANGE = 64;\n")
		}
		if a.Sound > 0 {
			w.Printf("ENGAGED_SOUND = %s;\n", quote(soundRef(a.Sound)))
		}
		w.Printf("\n")
	}
	w.EndLump()
	c.scratch = nil
}

// convertAttacks writes the modified attack things, then the boss cube when
// either of its sources changed.
func (c *converter) convertAttacks(w output.Writer) (int, error) {
	n := 0
	for _, id := range c.src.DirtyThings() {
		t, _ := c.src.Thing(id)
		if !t.IsAttack() || id == deh.ThingSpawnShot {
			continue
		}
		if err := c.convertAttack(w, id, &t); err != nil {
			return n, err
		}
		n++
	}

	if c.src.IsThingDirty(deh.ThingSpawnShot) || c.src.IsThingDirty(deh.ThingSpawnFire) {
		if err := c.convertBossCube(w); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (c *converter) convertAttack(w output.Writer, id int, t *deh.Thing) error {
	if id == deh.ThingSpawnShot {
		return c.convertBossCube(w)
	}
	def, ok := extraAttacks[id]
	if !ok {
		return errors.NotFoundf("no attack entry for %s", t.Name).WithEntity("thing", id)
	}
	if !c.claimAttack(t.DDFName(), id) {
		return nil
	}

	g := states.NewGrouper(c.src, func(frame int, f deh.Frame) string {
		return c.thingAction(t.DDFName(), frame, f)
	})
	for _, role := range deh.AttackRoles {
		g.BeginGroup(role, t.State(role))
	}
	g.SpreadGroups()

	w.BeginLump(output.LumpAttacks)
	w.Printf("[%s]\n", t.DDFName())
	c.writeAttackBody(w, def, t, t.DeathSound)
	g.OutputAll(w)
	w.Printf("\n")
	w.EndLump()
	c.flushScratch(w)
	return nil
}

func (c *converter) writeAttackBody(w output.Writer, def attackDef, t *deh.Thing, deathSound int) {
	w.Printf("ATTACKTYPE = %s;\n", def.Type)
	if def.Height != 0 {
		w.Printf("ATTACK_HEIGHT = %d;\n", def.Height)
	}
	if def.Special != "" {
		w.Printf("ATTACK_SPECIAL = %s;\n", def.Special)
	}
	if t.Damage > 0 {
		w.Printf("DAMAGE.VAL = %d;\n", t.Damage)
		w.Printf("DAMAGE.MAX = %d;\n", t.Damage*8)
	}
	w.Printf("SPEED = %s;\n", fixed(t.Speed))
	if v, ok := t.FastSpeed.Get(); ok {
		w.Printf("FAST = %s;\n", fixed(v))
	}
	w.Printf("RADIUS = %s;\n", fixed(t.Radius))
	w.Printf("HEIGHT = %s;\n", fixed(t.Height))
	if t.SeeSound > 0 {
		w.Printf("LAUNCH_SOUND = %s;\n", quote(soundRef(t.SeeSound)))
	}
	if deathSound > 0 {
		w.Printf("DEATH_SOUND = %s;\n", quote(soundRef(deathSound)))
	}
	if names := legacyNames(c.adjustedFlags(t)); len(names) > 0 {
		w.Printf("PROJECTILE_SPECIAL = %s;\n", joinList(names))
	}

	for _, id := range actions.Chain(c.src, t.DeathState) {
		if c.table.Flags(id).Has(actions.FlagExplode) {
			w.Printf("EXPLODE_DAMAGE.VAL = 128;\n")
			break
		}
	}
}

// convertBossCube writes the brain cube as one attack: the spawn shot flies
// as IDLE and the spawn fire plays as DEATH.
func (c *converter) convertBossCube(w output.Writer) error {
	shot, ok := c.src.Thing(deh.ThingSpawnShot)
	if !ok {
		return errors.FailedPreconditionf("boss cube needs spawn shot thing %d", deh.ThingSpawnShot).
			WithEntity("thing", deh.ThingSpawnShot)
	}
	fire, ok := c.src.Thing(deh.ThingSpawnFire)
	if !ok {
		return errors.FailedPreconditionf("boss cube needs spawn fire thing %d", deh.ThingSpawnFire).
			WithEntity("thing", deh.ThingSpawnFire)
	}
	if !c.claimAttack(shot.DDFName(), deh.ThingSpawnShot) {
		return nil
	}

	action := func(frame int, f deh.Frame) string {
		return c.thingAction(shot.DDFName(), frame, f)
	}
	g := states.NewGrouper(c.src, action)
	g.BeginGroup(deh.RoleSpawn, shot.SpawnState)
	g.BeginGroup(deh.RoleDeath, fire.SpawnState)
	g.SpreadGroups()

	w.BeginLump(output.LumpAttacks)
	w.Printf("[%s]\n", shot.DDFName())
	c.writeAttackBody(w, extraAttacks[deh.ThingSpawnShot], &shot, fire.SeeSound)
	g.OutputAll(w)
	w.Printf("\n")
	w.EndLump()
	c.flushScratch(w)
	return nil
}
