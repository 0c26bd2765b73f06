package convert

import (
	"fmt"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

func joinList(items []string) string {
	return strings.Join(items, ",")
}

// thingAction renders the DDF action of one frame of a thing. Pointers that
// take their target from frame arguments get it spelled out.
func (c *converter) thingAction(owner string, id int, f deh.Frame) string {
	info, ok := actions.Lookup(f.Action)
	if !ok || f.Action == "" {
		return "NOTHING"
	}

	switch info.Mnemonic {
	case "Scratch":
		return fmt.Sprintf("CLOSE_ATTACK(%s)", c.addScratch(owner, id, f.Misc1, f.Misc1, f.Misc2, 0))
	case "MonsterMeleeAttack":
		base, dice := f.Args[0], f.Args[1]
		if base == 0 {
			base = 3
		}
		if dice == 0 {
			dice = 8
		}
		return fmt.Sprintf("CLOSE_ATTACK(%s)", c.addScratch(owner, id, base, base*dice, f.Args[2], f.Args[3]))
	case "MonsterProjectile":
		if name, ok := c.patchThing(f.Args[0]); ok {
			return fmt.Sprintf("RANGE_ATTACK(%s)", name)
		}
	case "Spawn":
		if name, ok := c.patchThing(f.Misc1); ok {
			return fmt.Sprintf("SPAWN(%s)", name)
		}
	case "SpawnObject":
		if name, ok := c.patchThing(f.Args[0]); ok {
			return fmt.Sprintf("SPAWN(%s)", name)
		}
	case "PlaySound":
		if f.Misc1 > 0 {
			return fmt.Sprintf("PLAYSOUND(%s)", soundRef(f.Misc1))
		}
	}
	return info.DDF
}
