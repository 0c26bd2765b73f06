// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

// EditsBuilder provides a fluent interface for building edit lists
type EditsBuilder struct {
	edits []deh.Edit
}

// NewEditsBuilder creates an empty builder
func NewEditsBuilder() *EditsBuilder {
	return &EditsBuilder{}
}

// ThingField sets a thing field
func (b *EditsBuilder) ThingField(id int, field string, value int) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditThingField, ID: id, Field: field, Value: value})
}

// ThingBits replaces the thing flags with a mnemonic expression
func (b *EditsBuilder) ThingBits(id int, tokens string) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditThingBits, ID: id, Tokens: tokens})
}

// MBF21Bits replaces the extended thing flags
func (b *EditsBuilder) MBF21Bits(id int, tokens string) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditThingMBF21Bits, ID: id, Tokens: tokens})
}

// FrameField sets a frame field
func (b *EditsBuilder) FrameField(id int, field string, value int) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditFrameField, ID: id, Field: field, Value: value})
}

// CodePointer sets the action of a frame by mnemonic
func (b *EditsBuilder) CodePointer(frame int, mnemonic string) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditCodePointer, ID: frame, Field: mnemonic})
}

// WeaponField sets a weapon field
func (b *EditsBuilder) WeaponField(id int, field string, value int) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditWeaponField, ID: id, Field: field, Value: value})
}

// Misc sets a misc field
func (b *EditsBuilder) Misc(field string, value int) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditMiscField, Field: field, Value: value})
}

// Text replaces a sprite, sound or language text
func (b *EditsBuilder) Text(from, to string) *EditsBuilder {
	return b.add(deh.Edit{Kind: deh.EditText, From: from, To: to})
}

// Build returns the edits in the order they were added
func (b *EditsBuilder) Build() []deh.Edit {
	out := make([]deh.Edit, len(b.edits))
	copy(out, b.edits)
	return out
}

func (b *EditsBuilder) add(e deh.Edit) *EditsBuilder {
	b.edits = append(b.edits, e)
	return b
}
