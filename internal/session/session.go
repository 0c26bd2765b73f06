// Package session owns the mutable state of one conversion run: the overlay
// copies of every entity a patch touched, the misc globals, renamed names,
// replaced strings and the warnings raised along the way.
package session

import (
	"sort"

	"go.uber.org/zap"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

// Config holds the settings of a session
type Config struct {
	// Version is the patch format version ("Doom version" header).
	Version int
	Logger  *zap.Logger
}

// Validate ensures all required settings are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Logger == nil {
		vb.RequiredField("Logger")
	}
	if c.Version < 0 {
		vb.Fieldf("Version", "must not be negative, got %d", c.Version)
	}

	return vb.Build()
}

// Session is not safe for concurrent use.
type Session struct {
	version int
	limits  fields.Limits
	log     *zap.Logger

	things  map[int]*deh.Thing
	frames  map[int]*deh.Frame
	weapons map[int]*deh.Weapon
	ammo    map[int]*deh.Ammo
	sounds  map[int]*deh.Sound
	sprites map[int]string
	texts   map[string]string

	misc      deh.Misc
	miscDirty bool

	warnings []Warning
}

// New creates an empty session.
func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Session{log: cfg.Logger}
	s.SetVersion(cfg.Version)
	s.Reset()
	return s, nil
}

// Reset drops every overlay and warning, returning to the baseline.
func (s *Session) Reset() {
	s.things = make(map[int]*deh.Thing)
	s.frames = make(map[int]*deh.Frame)
	s.weapons = make(map[int]*deh.Weapon)
	s.ammo = make(map[int]*deh.Ammo)
	s.sounds = make(map[int]*deh.Sound)
	s.sprites = make(map[int]string)
	s.texts = make(map[string]string)
	s.misc = baseline.Misc()
	s.miscDirty = false
	s.warnings = nil
}

// SetVersion changes the patch format version and with it the index limits.
func (s *Session) SetVersion(version int) {
	s.version = version
	s.limits = fields.LimitsFor(version)
}

// Version returns the patch format version.
func (s *Session) Version() int {
	return s.version
}

// Limits returns the index limits in effect.
func (s *Session) Limits() fields.Limits {
	return s.limits
}

// SideTable resolves frame actions through the session.
func (s *Session) SideTable() actions.SideTable {
	return actions.NewSideTable(s)
}

// Thing returns the current version of a thing.
func (s *Session) Thing(id int) (deh.Thing, bool) {
	if t, ok := s.things[id]; ok {
		return *t, true
	}
	return baseline.Thing(id)
}

// Frame returns the current version of a frame.
func (s *Session) Frame(id int) (deh.Frame, bool) {
	if f, ok := s.frames[id]; ok {
		return *f, true
	}
	return baseline.Frame(id)
}

// Weapon returns the current version of a weapon.
func (s *Session) Weapon(id int) (deh.Weapon, bool) {
	if w, ok := s.weapons[id]; ok {
		return *w, true
	}
	return baseline.Weapon(id)
}

// Ammo returns the current version of an ammo type.
func (s *Session) Ammo(id int) (deh.Ammo, bool) {
	if a, ok := s.ammo[id]; ok {
		return *a, true
	}
	return baseline.Ammo(id)
}

// Sound returns the current version of a sound.
func (s *Session) Sound(id int) (deh.Sound, bool) {
	if snd, ok := s.sounds[id]; ok {
		return *snd, true
	}
	return baseline.Sound(id)
}

// Misc returns the current global values.
func (s *Session) Misc() deh.Misc {
	return s.misc
}

// MiscDirty reports whether any misc field was written.
func (s *Session) MiscDirty() bool {
	return s.miscDirty
}

// InfightOn reports whether monsters of the same kind fight each other.
func (s *Session) InfightOn() bool {
	return s.misc.MonstersInfight == deh.InfightOn
}

// IsThingDirty reports whether a thing has an overlay.
func (s *Session) IsThingDirty(id int) bool {
	_, ok := s.things[id]
	return ok
}

// IsWeaponDirty reports whether a weapon has an overlay.
func (s *Session) IsWeaponDirty(id int) bool {
	_, ok := s.weapons[id]
	return ok
}

// IsFrameDirty reports whether a frame has an overlay.
func (s *Session) IsFrameDirty(id int) bool {
	_, ok := s.frames[id]
	return ok
}

// DirtyThings returns the ids of marked things in ascending order.
func (s *Session) DirtyThings() []int {
	return sortedKeys(s.things)
}

// DirtyWeapons returns the ids of marked weapons in ascending order.
func (s *Session) DirtyWeapons() []int {
	return sortedKeys(s.weapons)
}

// DirtyAmmo returns the ids of edited ammo types in ascending order.
func (s *Session) DirtyAmmo() []int {
	return sortedKeys(s.ammo)
}

// DirtySounds returns the ids of edited sounds in ascending order.
func (s *Session) DirtySounds() []int {
	return sortedKeys(s.sounds)
}

// NumThings returns one past the largest thing id that currently exists.
func (s *Session) NumThings() int {
	n := baseline.NumThings
	for id := range s.things {
		if id >= n {
			n = id + 1
		}
	}
	return n
}

// Texts returns the replaced language strings ordered by reference.
func (s *Session) Texts() []deh.Text {
	out := make([]deh.Text, 0, len(s.texts))
	for ref, value := range s.texts {
		out = append(out, deh.Text{Ref: ref, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ref < out[j].Ref })
	return out
}

func sortedKeys[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
