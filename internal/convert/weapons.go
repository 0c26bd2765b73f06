package convert

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/states"
)

// MaxWeaponAttacks is how many distinct attacks one weapon can fire.
const MaxWeaponAttacks = 4

// attackSlots are the clause prefixes and shoot actions of each attack.
var attackSlots = [MaxWeaponAttacks]struct {
	prefix string
	shoot  string
}{
	{"", "SHOOT"},
	{"SEC_", "SEC_SHOOT"},
	{"3RD_", "3RD_SHOOT"},
	{"4TH_", "4TH_SHOOT"},
}

type weaponFlagName struct {
	flag deh.WeaponFlag
	name string
}

var weaponFlagTable = []weaponFlagName{
	{deh.WeaponNoThrust, "NO_THRUST"},
	{deh.WeaponSilent, "SILENT_TO_MONSTERS"},
	{deh.WeaponNoAutoFire, "NO_AUTO_FIRE"},
	{deh.WeaponFleeMelee, "DANGEROUS"},
	{deh.WeaponAutoSwitchFrom, "SWITCH_AWAY"},
	{deh.WeaponNoAutoSwitchTo, "NO_SWITCH_TO"},
}

// ammoName returns the DDF ammo type; 4 and 5 both mean no ammo.
func (c *converter) ammoName(id int) string {
	if a, ok := c.src.Ammo(id); ok {
		return a.Name
	}
	return "NOAMMO"
}

// frameAttack returns the attack a weapon frame fires, if any.
func (c *converter) frameAttack(id int, f deh.Frame) string {
	info, ok := actions.Lookup(f.Action)
	if !ok || f.Action == "" || !info.Flags.Has(actions.FlagWeapon) {
		return ""
	}
	if info.Flags.Has(actions.FlagWeaponProjectile) {
		name, _ := c.patchThing(f.Args[0])
		return name
	}
	return c.table.Attacks(id).Ranged
}

// weaponAttacks lists the distinct attacks of the attack and flash chains
// in the order they are first fired.
func (c *converter) weaponAttacks(wp *deh.Weapon) []string {
	var out []string
	seen := make(map[string]bool)
	for _, start := range []int{wp.AttackState, wp.FlashState} {
		for _, id := range actions.Chain(c.src, start) {
			f, _ := c.src.Frame(id)
			name := c.frameAttack(id, f)
			if name == "" || seen[name] || len(out) == MaxWeaponAttacks {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func (c *converter) ConvertWeapon(w output.Writer, id int) error {
	wp, ok := c.src.Weapon(id)
	if !ok {
		return errors.NotFoundf("weapon %d does not exist", id).WithEntity("weapon", id)
	}

	attacks := c.weaponAttacks(&wp)
	slot := make(map[string]int, len(attacks))
	for i, name := range attacks {
		slot[name] = i
	}

	g := states.NewGrouper(c.src, func(frame int, f deh.Frame) string {
		if name := c.frameAttack(frame, f); name != "" {
			if i, ok := slot[name]; ok {
				return attackSlots[i].shoot
			}
			return attackSlots[0].shoot
		}
		return c.thingAction(wp.Name, frame, f)
	})
	for _, role := range deh.WeaponRoles {
		g.BeginGroup(role, wp.State(role))
	}
	g.SpreadGroups()

	w.BeginLump(output.LumpWeapons)
	w.Printf("[%s]\n", wp.Name)

	// Later attacks share the clip of the first one.
	ammo := c.ammoName(wp.Ammo)
	if len(attacks) == 0 {
		w.Printf("AMMOTYPE = %s;\n", ammo)
		w.Printf("AMMOPERSHOT = %d;\n", wp.AmmoPerShot)
	}
	for i, name := range attacks {
		p := attackSlots[i].prefix
		w.Printf("%sAMMOTYPE = %s;\n", p, ammo)
		w.Printf("%sAMMOPERSHOT = %d;\n", p, wp.AmmoPerShot)
		w.Printf("%sATTACK = %s;\n", p, name)
	}

	w.Printf("BINDKEY = %d;\n", wp.Slot)
	w.Printf("PRIORITY = %d;\n", wp.Priority)

	var names []string
	for _, e := range weaponFlagTable {
		if wp.Flags.Has(e.flag) {
			names = append(names, e.name)
		}
	}
	if len(names) > 0 {
		w.Printf("SPECIAL = %s;\n", joinList(names))
	}

	if g.OutputAll(w) == 0 {
		w.Printf("STATES(READY) = NULL:A:-1:NORMAL:NOTHING;\n")
	}
	w.Printf("\n")
	w.EndLump()

	c.flushScratch(w)
	return nil
}
