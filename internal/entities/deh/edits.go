package deh

// EditKind selects what an Edit writes.
type EditKind int

const (
	EditThingField EditKind = iota + 1
	EditThingBits
	EditThingMBF21Bits
	EditFrameField
	EditCodePointer
	EditPointerCopy
	EditWeaponField
	EditWeaponBits
	EditAmmoField
	EditMiscField
	EditSoundField
	EditText
	EditString
)

// String returns the entity kind the edit targets.
func (k EditKind) String() string {
	switch k {
	case EditThingField, EditThingBits, EditThingMBF21Bits:
		return "thing"
	case EditFrameField, EditCodePointer, EditPointerCopy:
		return "frame"
	case EditWeaponField, EditWeaponBits:
		return "weapon"
	case EditAmmoField:
		return "ammo"
	case EditMiscField:
		return "misc"
	case EditSoundField:
		return "sound"
	case EditText, EditString:
		return "text"
	default:
		return "unknown"
	}
}

// Edit is one value taken from a patch. ID is 0-based.
//
// Field carries the field name for field edits, the code pointer mnemonic for
// EditCodePointer and the string mnemonic for EditString. Tokens carries a
// flag expression for bit edits. Value is the numeric value, or the source
// frame for EditPointerCopy. From and To carry text replacements.
type Edit struct {
	Kind   EditKind
	ID     int
	Field  string
	Value  int
	Tokens string
	From   string
	To     string
}
