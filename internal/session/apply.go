package session

import (
	"fmt"
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/bits"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

// ApplyAll applies edits in order, stopping at the first fatal error.
func (s *Session) ApplyAll(edits []deh.Edit) error {
	for i := range edits {
		if err := s.Apply(&edits[i]); err != nil {
			return err
		}
	}
	return nil
}

// Apply performs one edit. Problems with the edit itself are recorded as
// warnings and leave the session unchanged; only a malformed request
// returns an error.
func (s *Session) Apply(e *deh.Edit) error {
	switch e.Kind {
	case deh.EditThingField:
		s.applyThingField(e)
	case deh.EditThingBits:
		s.applyThingBits(e, bits.Legacy)
	case deh.EditThingMBF21Bits:
		s.applyThingBits(e, bits.MBF21Thing)
	case deh.EditFrameField:
		s.applyFrameField(e)
	case deh.EditCodePointer:
		s.applyCodePointer(e)
	case deh.EditPointerCopy:
		s.applyPointerCopy(e)
	case deh.EditWeaponField:
		s.applyWeaponField(e)
	case deh.EditWeaponBits:
		s.applyWeaponBits(e)
	case deh.EditAmmoField:
		s.applyAmmoField(e)
	case deh.EditMiscField:
		s.applyMiscField(e)
	case deh.EditSoundField:
		s.applySoundField(e)
	case deh.EditText:
		s.applyText(e)
	case deh.EditString:
		s.applyString(e)
	default:
		return errors.InvalidArgumentf("unknown edit kind %d", int(e.Kind))
	}
	return nil
}

func (s *Session) unknownField(e *deh.Edit) {
	s.Warn(Warning{
		Kind:    WarnUnknownField,
		Entity:  e.Kind.String(),
		ID:      e.ID,
		Field:   e.Field,
		Message: fmt.Sprintf("unknown %s field %q", e.Kind, e.Field),
	})
}

// lookup resolves and validates a field without touching any overlay.
func lookup[T any](s *Session, t *fields.Table[T], e *deh.Edit) (fields.Ref[T], bool) {
	ref, ok := t.Lookup(e.Field)
	if !ok {
		s.unknownField(e)
		return ref, false
	}
	if err := ref.Validate(e.Value, s.limits); err != nil {
		s.warnErr(e.Kind.String(), e.ID, ref.Name, err)
		return ref, false
	}
	return ref, true
}

func (s *Session) applyThingField(e *deh.Edit) {
	ref, ok := lookup(s, fields.Things, e)
	if !ok {
		return
	}
	t, err := s.MarkThing(e.ID)
	if err != nil {
		s.warnErr("thing", e.ID, ref.Name, err)
		return
	}
	ref.Store(t, e.Value)
}

func (s *Session) parseBits(e *deh.Edit, table *bits.Table) (uint32, bool) {
	word, unknown := bits.Parse(table, e.Tokens)
	for _, tok := range unknown {
		s.Warn(Warning{
			Kind:    WarnUnknownMnemonic,
			Entity:  e.Kind.String(),
			ID:      e.ID,
			Field:   table.Name(),
			Message: fmt.Sprintf("unknown %s mnemonic %q", table.Name(), tok),
		})
	}
	return word, word != 0 || len(unknown) == 0
}

func (s *Session) applyThingBits(e *deh.Edit, table *bits.Table) {
	word, ok := s.parseBits(e, table)
	if !ok {
		return
	}
	t, err := s.MarkThing(e.ID)
	if err != nil {
		s.warnErr("thing", e.ID, table.Name(), err)
		return
	}
	if table == bits.MBF21Thing {
		t.MBF21Flags = deh.MBF21Flag(word)
	} else {
		t.Flags = deh.LegacyFlag(word)
	}
}

func (s *Session) applyFrameField(e *deh.Edit) {
	ref, ok := lookup(s, fields.Frames, e)
	if !ok {
		return
	}
	f, err := s.MarkFrame(e.ID)
	if err != nil {
		s.warnErr("frame", e.ID, ref.Name, err)
		return
	}
	ref.Store(f, e.Value)
	s.markFrameUsers(e.ID)
}

func (s *Session) applyCodePointer(e *deh.Edit) {
	mnemonic := e.Field
	if mnemonic != "" && !strings.EqualFold(mnemonic, "NULL") {
		info, ok := actions.Lookup(mnemonic)
		if !ok {
			s.warnErr("frame", e.ID, "Codep", errors.Unimplementedf("unknown code pointer %q", mnemonic))
			return
		}
		mnemonic = "A_" + info.Mnemonic
	} else {
		mnemonic = ""
	}
	s.setAction(e.ID, mnemonic)
}

func (s *Session) applyPointerCopy(e *deh.Edit) {
	src, ok := s.Frame(e.Value)
	if !ok {
		s.warnErr("frame", e.ID, "Codep Frame", errors.OutOfRangef("source frame %d does not exist", e.Value))
		return
	}
	s.setAction(e.ID, src.Action)
}

func (s *Session) setAction(id int, mnemonic string) {
	f, err := s.MarkFrame(id)
	if err != nil {
		s.warnErr("frame", id, "Codep", err)
		return
	}
	f.Action = mnemonic
	s.markFrameUsers(id)
}

func (s *Session) applyWeaponField(e *deh.Edit) {
	ref, ok := lookup(s, fields.Weapons, e)
	if !ok {
		return
	}
	w, err := s.MarkWeapon(e.ID)
	if err != nil {
		s.warnErr("weapon", e.ID, ref.Name, err)
		return
	}
	ref.Store(w, e.Value)
}

func (s *Session) applyWeaponBits(e *deh.Edit) {
	word, ok := s.parseBits(e, bits.MBF21Weapon)
	if !ok {
		return
	}
	w, err := s.MarkWeapon(e.ID)
	if err != nil {
		s.warnErr("weapon", e.ID, bits.MBF21Weapon.Name(), err)
		return
	}
	w.Flags = deh.WeaponFlag(word)
}

func (s *Session) applyAmmoField(e *deh.Edit) {
	ref, ok := lookup(s, fields.Ammo, e)
	if !ok {
		return
	}
	a, err := s.MarkAmmo(e.ID)
	if err != nil {
		s.warnErr("ammo", e.ID, ref.Name, err)
		return
	}
	ref.Store(a, e.Value)
	s.markAmmoUsers(e.ID)
}

func (s *Session) applyMiscField(e *deh.Edit) {
	ref, ok := lookup(s, fields.Misc, e)
	if !ok {
		return
	}
	ref.Store(&s.misc, e.Value)
	s.miscDirty = true
	s.markMiscUsers(ref.Name, e.Value)
}

func (s *Session) applySoundField(e *deh.Edit) {
	ref, ok := lookup(s, fields.Sounds, e)
	if !ok {
		return
	}
	snd, err := s.MarkSound(e.ID)
	if err != nil {
		s.warnErr("sound", e.ID, ref.Name, err)
		return
	}
	ref.Store(snd, e.Value)
}

// applyText handles a Text block: a sprite rename when both sides are four
// characters and the original is a sprite, a sound rename when the original
// is a sound, otherwise a language string replacement.
func (s *Session) applyText(e *deh.Edit) {
	if len(e.From) == 4 && len(e.To) == 4 {
		if id, ok := baseline.SpriteIndex(e.From); ok {
			s.sprites[id] = strings.ToUpper(e.To)
			s.markSpriteUsers(id)
			return
		}
	}
	if len(e.To) <= 6 {
		if id, ok := baseline.SoundIndex(e.From); ok {
			snd, err := s.MarkSound(id)
			if err != nil {
				s.warnErr("sound", id, "name", err)
				return
			}
			snd.Name = strings.ToLower(e.To)
			return
		}
	}
	if ref, ok := baseline.TextRef(e.From); ok {
		s.texts[ref] = e.To
		return
	}
	s.Warn(Warning{
		Kind:    WarnUnknownText,
		Entity:  "text",
		Message: fmt.Sprintf("no sprite, sound or string matches %q", e.From),
	})
}

func (s *Session) applyString(e *deh.Edit) {
	ref, ok := baseline.MnemonicRef(e.Field)
	if !ok {
		s.Warn(Warning{
			Kind:    WarnUnknownText,
			Entity:  "text",
			Field:   e.Field,
			Message: fmt.Sprintf("unknown string mnemonic %q", e.Field),
		})
		return
	}
	s.texts[ref] = e.To
}
