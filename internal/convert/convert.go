// Package convert turns the current state of a session into DDF and RTS
// text: things, attacks, weapons, sounds, language strings and boss-death
// scripts.
package convert

import (
	"go.uber.org/zap"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/session"
)

// Source is the read side of a session.
type Source interface {
	Thing(id int) (deh.Thing, bool)
	Frame(id int) (deh.Frame, bool)
	Weapon(id int) (deh.Weapon, bool)
	Ammo(id int) (deh.Ammo, bool)
	Sound(id int) (deh.Sound, bool)
	Misc() deh.Misc
	InfightOn() bool
	SpriteName(id int) string
	SoundName(id int) string
	SideTable() actions.SideTable
	IsThingDirty(id int) bool
	DirtyThings() []int
	DirtyWeapons() []int
	DirtySounds() []int
	Texts() []deh.Text
	CollectThingsWithMBF21Flag(flag deh.MBF21Flag) []int
	Warn(w session.Warning)
}

var _ Source = (*session.Session)(nil)

// Converter writes converted definitions.
//
//go:generate mockgen -destination=mock/mock_converter.go -package=convertmock github.com/edge-classic/EDGE-classic-sub008/internal/convert Converter
type Converter interface {
	// ConvertAll writes every lump for the modified entities.
	ConvertAll(w output.Writer) error

	// ConvertThing writes one thing, or one attack for attack things,
	// whether or not it was modified.
	ConvertThing(w output.Writer, id int) error

	// ConvertWeapon writes one weapon.
	ConvertWeapon(w output.Writer, id int) error
}

// Config holds the dependencies of a converter
type Config struct {
	Source Source
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.Logger == nil {
		vb.RequiredField("Logger")
	}

	return vb.Build()
}

// converter holds per-run emission state and must not be reused across
// sessions.
type converter struct {
	src   Source
	log   *zap.Logger
	table actions.SideTable
	cast  *CastTable

	attacks map[string]bool
	scratch []scratchAttack
}

var _ Converter = (*converter)(nil)

// New creates a converter over one session.
func New(cfg *Config) (Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cast, err := NewCastTable(DefaultCast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build cast table")
	}

	return &converter{
		src:     cfg.Source,
		log:     cfg.Logger,
		table:   cfg.Source.SideTable(),
		cast:    cast,
		attacks: make(map[string]bool),
	}, nil
}

func (c *converter) ConvertAll(w output.Writer) error {
	things := 0
	for _, id := range c.src.DirtyThings() {
		t, _ := c.src.Thing(id)
		if t.IsAttack() || id == deh.ThingSpawnFire {
			continue
		}
		if err := c.convertThing(w, id, &t); err != nil {
			return err
		}
		things++
	}

	attacks, err := c.convertAttacks(w)
	if err != nil {
		return err
	}

	weapons := 0
	for _, id := range c.src.DirtyWeapons() {
		if err := c.ConvertWeapon(w, id); err != nil {
			return err
		}
		weapons++
	}

	c.convertSounds(w)
	c.convertLanguage(w)
	c.convertScripts(w)

	c.log.Info("converted entities",
		zap.Int("things", things),
		zap.Int("attacks", attacks),
		zap.Int("weapons", weapons),
	)
	return nil
}

func (c *converter) ConvertThing(w output.Writer, id int) error {
	t, ok := c.src.Thing(id)
	if !ok {
		return errors.NotFoundf("thing %d does not exist", id).WithEntity("thing", id)
	}
	if t.IsAttack() {
		return c.convertAttack(w, id, &t)
	}
	return c.convertThing(w, id, &t)
}

func (c *converter) warn(kind session.WarningKind, entity string, id int, msg string) {
	c.src.Warn(session.Warning{Kind: kind, Entity: entity, ID: id, Message: msg})
}
