package convert

import (
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

// bossTrigger is the level event vanilla fires when every thing with the
// flag on a map is dead.
type bossTrigger struct {
	flag   deh.MBF21Flag
	level  string
	action string
}

var bossTriggers = []bossTrigger{
	{deh.MBF21Map07Boss1, "MAP07", "ACTIVATE_LINETYPE 38 666"},
	{deh.MBF21Map07Boss2, "MAP07", "ACTIVATE_LINETYPE 30 667"},
	{deh.MBF21E1M8Boss, "E1M8", "ACTIVATE_LINETYPE 38 666"},
	{deh.MBF21E2M8Boss, "E2M8", "EXIT_LEVEL 5"},
	{deh.MBF21E3M8Boss, "E3M8", "EXIT_LEVEL 5"},
	{deh.MBF21E4M6Boss, "E4M6", "ACTIVATE_LINETYPE 109 666"},
	{deh.MBF21E4M8Boss, "E4M8", "ACTIVATE_LINETYPE 38 666"},
}

// convertScripts writes a radius trigger per boss map flag that some
// patched thing carries.
func (c *converter) convertScripts(w output.Writer) {
	begun := false
	for _, bt := range bossTriggers {
		ids := c.src.CollectThingsWithMBF21Flag(bt.flag)
		if len(ids) == 0 {
			continue
		}
		if !begun {
			w.BeginLump(output.LumpRScript)
			w.Printf("// boss death triggers\n\n")
			begun = true
		}

		names := make([]string, 0, len(ids))
		for _, id := range ids {
			names = append(names, c.thingName(id))
		}

		w.Printf("START_MAP %s\n", bt.level)
		w.Printf("  RADIUSTRIGGER 0 0 -1\n")
		w.Printf("    WAIT_UNTIL_DEAD %s\n", strings.Join(names, " "))
		w.Printf("    %s\n", bt.action)
		w.Printf("  END_RADIUSTRIGGER\n")
		w.Printf("END_MAP\n\n")
	}
	if begun {
		w.EndLump()
	}
}
