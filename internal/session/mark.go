package session

import (
	"fmt"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

// ExtraThingName names a thing declared beyond the baseline table. The
// number is the 1-based patch thing number.
func ExtraThingName(id int) string {
	return fmt.Sprintf("DEHEXTRA_%d", id+1)
}

func (s *Session) checkExtended(kind string, id, size int) error {
	if id < 0 {
		return errors.OutOfRangef("%s %d is negative", kind, id)
	}
	if id < size {
		return nil
	}
	if !s.limits.Extended {
		return errors.OutOfRangef("%s %d beyond the %d built-in entries (patch version %d)", kind, id, size, s.version)
	}
	if id > fields.ExtendedMax {
		return errors.OutOfRangef("%s %d beyond %d", kind, id, fields.ExtendedMax)
	}
	return nil
}

// MarkThing returns the overlay of a thing, creating it on first use.
func (s *Session) MarkThing(id int) (*deh.Thing, error) {
	if t, ok := s.things[id]; ok {
		return t, nil
	}
	if err := s.checkExtended("thing", id, baseline.NumThings); err != nil {
		return nil, err
	}

	t, ok := baseline.Thing(id)
	if !ok {
		t = deh.NewNeutralThing(ExtraThingName(id))
	}
	s.things[id] = &t
	return &t, nil
}

// MarkFrame returns the overlay of a frame, creating it on first use.
// Frames beyond the baseline start invisible and loop on themselves.
func (s *Session) MarkFrame(id int) (*deh.Frame, error) {
	if f, ok := s.frames[id]; ok {
		return f, nil
	}
	if err := s.checkExtended("frame", id, baseline.NumStates); err != nil {
		return nil, err
	}

	f, ok := baseline.Frame(id)
	if !ok {
		f = deh.Frame{Tics: -1, Next: id}
	}
	s.frames[id] = &f
	return &f, nil
}

// MarkWeapon returns the overlay of a weapon, creating it on first use.
func (s *Session) MarkWeapon(id int) (*deh.Weapon, error) {
	if w, ok := s.weapons[id]; ok {
		return w, nil
	}
	w, ok := baseline.Weapon(id)
	if !ok {
		return nil, errors.OutOfRangef("weapon %d outside [0, %d]", id, baseline.NumWeapons-1)
	}
	s.weapons[id] = &w
	return &w, nil
}

// MarkAmmo returns the overlay of an ammo type, creating it on first use.
func (s *Session) MarkAmmo(id int) (*deh.Ammo, error) {
	if a, ok := s.ammo[id]; ok {
		return a, nil
	}
	a, ok := baseline.Ammo(id)
	if !ok {
		return nil, errors.OutOfRangef("ammo %d outside [0, %d]", id, baseline.NumAmmo-1)
	}
	s.ammo[id] = &a
	return &a, nil
}

// MarkSound returns the overlay of a sound, creating it on first use.
func (s *Session) MarkSound(id int) (*deh.Sound, error) {
	if snd, ok := s.sounds[id]; ok {
		return snd, nil
	}
	if err := s.checkExtended("sound", id, baseline.NumSounds); err != nil {
		return nil, err
	}

	snd, ok := baseline.Sound(id)
	if !ok {
		snd = deh.Sound{Name: ExtraSoundName(id), Priority: 64}
	}
	s.sounds[id] = &snd
	return &snd, nil
}
