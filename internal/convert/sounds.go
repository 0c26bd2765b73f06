package convert

import (
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
)

// convertSounds writes every modified sound. The entry keeps its vanilla
// name and points at the lump of its current name.
func (c *converter) convertSounds(w output.Writer) {
	ids := c.src.DirtySounds()
	if len(ids) == 0 {
		return
	}

	w.BeginLump(output.LumpSounds)
	defer w.EndLump()

	for _, id := range ids {
		snd, ok := c.src.Sound(id)
		if !ok || id == 0 {
			continue
		}
		w.Printf("[%s]\n", soundRef(id))
		w.Printf("LUMP_NAME = %s;\n", quote("DS"+strings.ToUpper(snd.Name)))
		w.Printf("PRIORITY = %d;\n", snd.Priority)
		if snd.Singularity != 0 {
			w.Printf("SINGULAR = %d;\n", snd.Singularity)
		}
		w.Printf("\n")
	}
}

// convertLanguage writes the replaced strings.
func (c *converter) convertLanguage(w output.Writer) {
	texts := c.src.Texts()
	if len(texts) == 0 {
		return
	}

	w.BeginLump(output.LumpLanguage)
	defer w.EndLump()

	w.Printf("[ENGLISH]\n")
	for _, t := range texts {
		w.Printf("%s = %s;\n", t.Ref, quote(t.Value))
	}
	w.Printf("\n")
}
