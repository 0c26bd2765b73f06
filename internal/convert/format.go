package convert

import (
	"strconv"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
)

const fracUnit = 1 << 16

// fixed formats a 16.16 fixed-point value in map units.
func fixed(v int) string {
	return strconv.FormatFloat(float64(v)/fracUnit, 'f', -1, 64)
}

// percent formats a 0..256 chance as a DDF percentage.
func percent(v int) string {
	return strconv.FormatFloat(float64(v)*100/256, 'f', 2, 64) + "%"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// quote escapes s for a DDF string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// soundRef returns the DDF entry name of a sound. Renames change the lump a
// sound plays, not its entry name.
func soundRef(id int) string {
	if snd, ok := baseline.Sound(id); ok {
		return strings.ToUpper(snd.Name)
	}
	return session.ExtraSoundName(id)
}
