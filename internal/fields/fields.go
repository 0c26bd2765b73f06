// Package fields maps patch field names to typed accessors on the entity
// records and validates raw values by their kind before they are stored.
package fields

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

// Kind drives range validation of a field.
type Kind int

const (
	KindUnconstrained Kind = iota
	KindNonNegative
	KindPositiveOnly
	KindFrameIndex
	KindSoundIndex
	KindSpriteIndex
	KindSubspriteIndex
	KindAmmoIndex
	KindBitFlagWord
)

// String returns the kind name used in warnings and listings.
func (k Kind) String() string {
	switch k {
	case KindUnconstrained:
		return "any"
	case KindNonNegative:
		return "non-negative"
	case KindPositiveOnly:
		return "positive"
	case KindFrameIndex:
		return "frame"
	case KindSoundIndex:
		return "sound"
	case KindSpriteIndex:
		return "sprite"
	case KindSubspriteIndex:
		return "subsprite"
	case KindAmmoIndex:
		return "ammo"
	case KindBitFlagWord:
		return "bits"
	default:
		return "unknown"
	}
}

const (
	// ExtendedVersion is the first patch version with raised index limits.
	ExtendedVersion = 2021
	// ExtendedMax is the largest frame, sprite, sound or thing id in
	// extended mode.
	ExtendedMax = 32767
	// MaxAmmoIndex is the "no ammo" value; 4 is accepted as well.
	MaxAmmoIndex = 5
	maxSubsprite = 31
)

// Limits holds the largest valid index per table.
type Limits struct {
	Frames   int
	Sounds   int
	Sprites  int
	Extended bool
}

// LimitsFor returns the index limits for a patch format version.
func LimitsFor(version int) Limits {
	if version >= ExtendedVersion {
		return Limits{
			Frames:   ExtendedMax,
			Sounds:   ExtendedMax,
			Sprites:  ExtendedMax,
			Extended: true,
		}
	}
	return Limits{
		Frames:  baseline.NumStates - 1,
		Sounds:  baseline.NumSounds - 1,
		Sprites: baseline.NumSprites - 1,
	}
}

// Ref is one named field of a record type.
type Ref[T any] struct {
	Name string
	Kind Kind
	// Mask is cleared from BitFlagWord values written as raw numbers.
	Mask uint32
	Get  func(*T) int
	Set  func(*T, int)
}

// Validate checks v against the field kind.
func (r Ref[T]) Validate(v int, lim Limits) error {
	switch r.Kind {
	case KindNonNegative:
		if v < 0 {
			return errors.OutOfRangef("%s must not be negative, got %d", r.Name, v)
		}
	case KindPositiveOnly:
		if v < 1 {
			return errors.OutOfRangef("%s must be positive, got %d", r.Name, v)
		}
	case KindFrameIndex:
		return checkIndex(r.Name, v, lim.Frames)
	case KindSoundIndex:
		return checkIndex(r.Name, v, lim.Sounds)
	case KindSpriteIndex:
		return checkIndex(r.Name, v, lim.Sprites)
	case KindAmmoIndex:
		return checkIndex(r.Name, v, MaxAmmoIndex)
	case KindSubspriteIndex:
		return checkIndex(r.Name, v&^deh.FrameBright, maxSubsprite)
	}
	return nil
}

// Store writes v into rec without validating it.
func (r Ref[T]) Store(rec *T, v int) {
	if r.Kind == KindBitFlagWord && r.Mask != 0 {
		v = int(uint32(v) &^ r.Mask)
	}
	r.Set(rec, v)
}

func checkIndex(name string, v, maxValue int) error {
	if v < 0 || v > maxValue {
		return errors.OutOfRangef("%s %d outside [0, %d]", name, v, maxValue)
	}
	return nil
}

// Table is the field registry of one record type.
type Table[T any] struct {
	refs   []Ref[T]
	byName map[string]int
}

// NewTable indexes refs by their folded names.
func NewTable[T any](refs ...Ref[T]) *Table[T] {
	t := &Table[T]{
		refs:   refs,
		byName: make(map[string]int, len(refs)),
	}
	for i, r := range refs {
		t.byName[fold(r.Name)] = i
	}
	return t
}

// Lookup finds a field by name, ignoring case and surrounding space.
func (t *Table[T]) Lookup(name string) (Ref[T], bool) {
	i, ok := t.byName[fold(name)]
	if !ok {
		return Ref[T]{}, false
	}
	return t.refs[i], true
}

// Names returns the registered field names sorted.
func (t *Table[T]) Names() []string {
	names := make([]string, 0, len(t.refs))
	for _, r := range t.refs {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// Refs returns the fields in registration order.
func (t *Table[T]) Refs() []Ref[T] {
	out := make([]Ref[T], len(t.refs))
	copy(out, t.refs)
	return out
}

// Apply looks up name, validates v and writes it into rec. known is false
// when the field does not exist. A validation failure leaves rec unchanged.
func Apply[T any](t *Table[T], name string, rec *T, v int, lim Limits) (known bool, err error) {
	ref, ok := t.Lookup(name)
	if !ok {
		return false, nil
	}
	if err := ref.Validate(v, lim); err != nil {
		return true, err
	}
	ref.Store(rec, v)
	return true, nil
}

func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
