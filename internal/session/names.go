package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
)

// ExtraSpriteName names a sprite declared beyond the baseline table.
func ExtraSpriteName(id int) string {
	n := strings.ToUpper(strconv.FormatInt(int64(id-baseline.NumSprites), 36))
	if len(n) < 3 {
		n = strings.Repeat("0", 3-len(n)) + n
	}
	return "S" + n
}

// ExtraSoundName names a sound declared beyond the baseline table.
func ExtraSoundName(id int) string {
	return fmt.Sprintf("FRE%03d", id-baseline.NumSounds)
}

// SpriteName returns the current name of a sprite.
func (s *Session) SpriteName(id int) string {
	if name, ok := s.sprites[id]; ok {
		return name
	}
	if name, ok := baseline.SpriteName(id); ok {
		return name
	}
	return ExtraSpriteName(id)
}

// SoundName returns the current name of a sound; "" for sound 0.
func (s *Session) SoundName(id int) string {
	if snd, ok := s.Sound(id); ok {
		return snd.Name
	}
	return ExtraSoundName(id)
}

// IsSpriteRenamed reports whether a text edit renamed the sprite.
func (s *Session) IsSpriteRenamed(id int) bool {
	_, ok := s.sprites[id]
	return ok
}
