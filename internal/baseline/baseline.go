// Package baseline holds the compiled-in Doom v1.9 definitions every patch
// is applied against. The tables are read-only; callers receive copies.
package baseline

import (
	"fmt"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

// Table sizes.
const (
	NumThings  = 137
	NumStates  = 967
	NumSprites = 138
	NumSounds  = 109
	NumWeapons = 9
	NumAmmo    = 4
)

type stateDef struct {
	label  string
	sprite string
	frame  int
	tics   int
	action string
	next   string
}

type thingDef struct {
	Name      string
	DoomedNum int

	Spawn   string
	See     string
	Melee   string
	Missile string
	Pain    string
	Death   string
	XDeath  string
	Raise   string

	SeeSound    string
	AttackSound string
	PainSound   string
	DeathSound  string
	ActiveSound string

	SpawnHealth  int
	ReactionTime int
	PainChance   int
	Speed        int
	Radius       int
	Height       int
	Mass         int
	Damage       int

	Flags           deh.LegacyFlag
	MBF21Flags      deh.MBF21Flag
	ProjectileGroup deh.OptInt
	PlayerNum       int
}

var (
	frames      []deh.Frame
	things      []deh.Thing
	stateLabels map[string]int
	spriteIndex map[string]int
	soundIndex  map[string]int
)

func init() {
	stateLabels = make(map[string]int, len(stateDefs))
	for i, d := range stateDefs {
		if _, dup := stateLabels[d.label]; dup {
			panic(fmt.Sprintf("baseline: duplicate state label %s", d.label))
		}
		stateLabels[d.label] = i
	}

	spriteIndex = make(map[string]int, len(spriteNames))
	for i, name := range spriteNames {
		spriteIndex[name] = i
	}

	soundIndex = make(map[string]int, len(sounds))
	for i, s := range sounds {
		if s.Name != "" {
			soundIndex[s.Name] = i
		}
	}

	frames = make([]deh.Frame, len(stateDefs))
	for i, d := range stateDefs {
		frames[i] = deh.Frame{
			Sprite: mustSprite(d.sprite),
			Frame:  d.frame,
			Tics:   d.tics,
			Action: d.action,
			Next:   mustState(d.next),
		}
	}

	things = make([]deh.Thing, len(thingDefs))
	for i, d := range thingDefs {
		things[i] = deh.Thing{
			Name:            d.Name,
			DoomedNum:       d.DoomedNum,
			SpawnState:      optState(d.Spawn),
			SeeState:        optState(d.See),
			MeleeState:      optState(d.Melee),
			MissileState:    optState(d.Missile),
			PainState:       optState(d.Pain),
			DeathState:      optState(d.Death),
			XDeathState:     optState(d.XDeath),
			RaiseState:      optState(d.Raise),
			SeeSound:        optSound(d.SeeSound),
			AttackSound:     optSound(d.AttackSound),
			PainSound:       optSound(d.PainSound),
			DeathSound:      optSound(d.DeathSound),
			ActiveSound:     optSound(d.ActiveSound),
			SpawnHealth:     d.SpawnHealth,
			ReactionTime:    d.ReactionTime,
			PainChance:      d.PainChance,
			Speed:           d.Speed,
			Radius:          d.Radius,
			Height:          d.Height,
			Mass:            d.Mass,
			Damage:          d.Damage,
			Flags:           d.Flags,
			MBF21Flags:      d.MBF21Flags,
			ProjectileGroup: d.ProjectileGroup,
			PlayerNum:       d.PlayerNum,
			DroppedItem:     -1,
			BloodThing:      -1,
		}
	}

	if len(frames) != NumStates || len(things) != NumThings ||
		len(spriteNames) != NumSprites || len(sounds) != NumSounds {
		panic("baseline: table size mismatch")
	}
}

func mustState(label string) int {
	i, ok := stateLabels[label]
	if !ok {
		panic(fmt.Sprintf("baseline: unknown state label %s", label))
	}
	return i
}

func optState(label string) int {
	if label == "" {
		return deh.StateNull
	}
	return mustState(label)
}

func mustSprite(name string) int {
	i, ok := spriteIndex[name]
	if !ok {
		panic(fmt.Sprintf("baseline: unknown sprite %s", name))
	}
	return i
}

func optSound(name string) int {
	if name == "" {
		return 0
	}
	i, ok := soundIndex[name]
	if !ok {
		panic(fmt.Sprintf("baseline: unknown sound %s", name))
	}
	return i
}

// Thing returns a copy of the baseline thing with the given 0-based id.
func Thing(id int) (deh.Thing, bool) {
	if id < 0 || id >= len(things) {
		return deh.Thing{}, false
	}
	return things[id], true
}

// Frame returns a copy of the baseline frame.
func Frame(id int) (deh.Frame, bool) {
	if id < 0 || id >= len(frames) {
		return deh.Frame{}, false
	}
	return frames[id], true
}

// Weapon returns a copy of the baseline weapon.
func Weapon(id int) (deh.Weapon, bool) {
	if id < 0 || id >= len(weapons) {
		return deh.Weapon{}, false
	}
	return weapons[id], true
}

// Ammo returns a copy of the baseline ammo type.
func Ammo(id int) (deh.Ammo, bool) {
	if id < 0 || id >= len(ammo) {
		return deh.Ammo{}, false
	}
	return ammo[id], true
}

// Sound returns a copy of the baseline sound.
func Sound(id int) (deh.Sound, bool) {
	if id < 0 || id >= len(sounds) {
		return deh.Sound{}, false
	}
	return sounds[id], true
}

// SpriteName returns the four letter name of a baseline sprite.
func SpriteName(id int) (string, bool) {
	if id < 0 || id >= len(spriteNames) {
		return "", false
	}
	return spriteNames[id], true
}

// SpriteIndex looks a sprite up by name.
func SpriteIndex(name string) (int, bool) {
	i, ok := spriteIndex[strings.ToUpper(name)]
	return i, ok
}

// SoundIndex looks a sound up by name.
func SoundIndex(name string) (int, bool) {
	i, ok := soundIndex[strings.ToLower(name)]
	return i, ok
}

// StateIndex looks a frame up by its table label, for example "POSS_STND".
func StateIndex(label string) (int, bool) {
	i, ok := stateLabels[strings.ToUpper(label)]
	return i, ok
}

// StateLabel returns the table label of a baseline frame.
func StateLabel(id int) (string, bool) {
	if id < 0 || id >= len(stateDefs) {
		return "", false
	}
	return stateDefs[id].label, true
}

// Misc returns the baseline global values.
func Misc() deh.Misc {
	return misc
}
