// Package editscript decodes YAML edit scripts into patch edits.
//
// A script names the patch format version and lists edits in order:
//
//	version: 2021
//	edits:
//	  - thing: 12
//	    field: Hit points
//	    value: 100
//	  - thing: 12
//	    bits: SOLID+SHOOTABLE+COUNTKILL
//	  - frame: 454
//	    pointer: A_MonsterMeleeAttack
//	  - text: {from: pistol, to: pew}
//	  - string: GOTCLIP
//	    to: Ammo!
//
// Thing numbers are 1-based as in patches. Frames, weapons, ammo and
// sounds are 0-based.
package editscript

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

// DefaultVersion is used when a script does not name one.
const DefaultVersion = 21

// Script is a decoded edit script.
type Script struct {
	Version int
	// HasVersion is false when Version is the default.
	HasVersion bool
	Edits      []deh.Edit
}

type document struct {
	Version *int    `yaml:"version"`
	Edits   []entry `yaml:"edits"`
}

type textEntry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// entry is one edit; exactly one target key is set.
type entry struct {
	Thing  *int       `yaml:"thing"`
	Frame  *int       `yaml:"frame"`
	Weapon *int       `yaml:"weapon"`
	Ammo   *int       `yaml:"ammo"`
	Sound  *int       `yaml:"sound"`
	Misc   *string    `yaml:"misc"`
	Text   *textEntry `yaml:"text"`
	String *string    `yaml:"string"`

	Field       string  `yaml:"field"`
	Value       *int    `yaml:"value"`
	Bits        *string `yaml:"bits"`
	MBF21Bits   *string `yaml:"mbf21_bits"`
	Pointer     *string `yaml:"pointer"`
	PointerFrom *int    `yaml:"pointer_from"`
	To          string  `yaml:"to"`
}

// Decode reads a script. Unknown keys and malformed edits are rejected
// with InvalidArgument.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &Script{Version: DefaultVersion}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse edit script")
	}

	script := &Script{Version: DefaultVersion}
	if doc.Version != nil {
		if *doc.Version < 0 {
			return nil, errors.InvalidArgumentf("version must not be negative, got %d", *doc.Version)
		}
		script.Version = *doc.Version
		script.HasVersion = true
	}

	script.Edits = make([]deh.Edit, 0, len(doc.Edits))
	for i := range doc.Edits {
		e, err := doc.Edits[i].edit()
		if err != nil {
			return nil, errors.Wrapf(err, "edit %d", i+1).WithMeta("edit", i+1)
		}
		script.Edits = append(script.Edits, e)
	}
	return script, nil
}

// DecodeBytes decodes a script held in memory.
func DecodeBytes(data []byte) (*Script, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the script at path.
func DecodeFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open edit script %s", path)
	}
	defer f.Close()
	return Decode(f)
}

func (e *entry) targets() int {
	n := 0
	for _, set := range []bool{
		e.Thing != nil, e.Frame != nil, e.Weapon != nil, e.Ammo != nil,
		e.Sound != nil, e.Misc != nil, e.Text != nil, e.String != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (e *entry) edit() (deh.Edit, error) {
	if n := e.targets(); n != 1 {
		return deh.Edit{}, errors.InvalidArgumentf("edit must name exactly one target, got %d", n)
	}

	switch {
	case e.Thing != nil:
		if *e.Thing < 1 {
			return deh.Edit{}, errors.InvalidArgumentf("thing numbers start at 1, got %d", *e.Thing)
		}
		id := *e.Thing - 1
		switch {
		case e.Bits != nil:
			return deh.Edit{Kind: deh.EditThingBits, ID: id, Tokens: *e.Bits}, nil
		case e.MBF21Bits != nil:
			return deh.Edit{Kind: deh.EditThingMBF21Bits, ID: id, Tokens: *e.MBF21Bits}, nil
		}
		return e.fieldEdit(deh.EditThingField, id)

	case e.Frame != nil:
		switch {
		case e.Pointer != nil:
			return deh.Edit{Kind: deh.EditCodePointer, ID: *e.Frame, Field: *e.Pointer}, nil
		case e.PointerFrom != nil:
			return deh.Edit{Kind: deh.EditPointerCopy, ID: *e.Frame, Value: *e.PointerFrom}, nil
		}
		return e.fieldEdit(deh.EditFrameField, *e.Frame)

	case e.Weapon != nil:
		if e.Bits != nil {
			return deh.Edit{Kind: deh.EditWeaponBits, ID: *e.Weapon, Tokens: *e.Bits}, nil
		}
		return e.fieldEdit(deh.EditWeaponField, *e.Weapon)

	case e.Ammo != nil:
		return e.fieldEdit(deh.EditAmmoField, *e.Ammo)

	case e.Sound != nil:
		return e.fieldEdit(deh.EditSoundField, *e.Sound)

	case e.Misc != nil:
		e.Field = *e.Misc
		return e.fieldEdit(deh.EditMiscField, 0)

	case e.Text != nil:
		if e.Text.From == "" {
			return deh.Edit{}, errors.InvalidArgument("text edit needs from")
		}
		return deh.Edit{Kind: deh.EditText, From: e.Text.From, To: e.Text.To}, nil
	}

	if *e.String == "" {
		return deh.Edit{}, errors.InvalidArgument("string edit needs a mnemonic")
	}
	return deh.Edit{Kind: deh.EditString, Field: *e.String, To: e.To}, nil
}

func (e *entry) fieldEdit(kind deh.EditKind, id int) (deh.Edit, error) {
	if e.Field == "" {
		return deh.Edit{}, errors.InvalidArgumentf("%s edit needs a field", kind)
	}
	if e.Value == nil {
		return deh.Edit{}, errors.InvalidArgumentf("%s field %q needs a value", kind, e.Field)
	}
	return deh.Edit{Kind: kind, ID: id, Field: e.Field, Value: *e.Value}, nil
}
