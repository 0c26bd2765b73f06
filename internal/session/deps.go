package session

import (
	"slices"

	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/baseline"
	"github.com/edge-classic/EDGE-classic-sub008/internal/classify"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
	"github.com/edge-classic/EDGE-classic-sub008/internal/fields"
)

// ammoPickups lists the small and boxed pickup of each ammo type.
var ammoPickups = map[int][]int{
	deh.AmmoBullets: {deh.ThingClip, deh.ThingBulletBox},
	deh.AmmoShells:  {deh.ThingShells, deh.ThingShellBox},
	deh.AmmoRockets: {deh.ThingRocketAmmo, deh.ThingRocketBox},
	deh.AmmoCells:   {deh.ThingCell, deh.ThingCellPack},
}

// miscThings lists the things each misc field configures.
var miscThings = map[string][]int{
	fields.MiscInitialHealth:    {deh.ThingPlayer},
	fields.MiscInitialBullets:   {deh.ThingPlayer},
	fields.MiscMaxHealth:        {deh.ThingHealthBonus},
	fields.MiscMaxArmor:         {deh.ThingArmorBonus},
	fields.MiscGreenArmorClass:  {deh.ThingGreenArmor},
	fields.MiscBlueArmorClass:   {deh.ThingBlueArmor},
	fields.MiscMaxSoulsphere:    {deh.ThingSoulsphere},
	fields.MiscSoulsphereHealth: {deh.ThingSoulsphere},
	fields.MiscMegasphereHealth: {deh.ThingMegasphere},
}

// Dependency marks go straight to the Mark* functions and so never trigger
// another rule. The ids below always exist, so mark errors cannot occur.

func (s *Session) touchThing(id int) *deh.Thing {
	t, _ := s.MarkThing(id)
	return t
}

func (s *Session) touchWeapon(id int) *deh.Weapon {
	w, _ := s.MarkWeapon(id)
	return w
}

func (s *Session) markAmmoUsers(ammo int) {
	s.touchThing(deh.ThingPlayer)
	s.touchThing(deh.ThingBackpack)
	for _, id := range ammoPickups[ammo] {
		s.touchThing(id)
	}
}

func (s *Session) markMiscUsers(field string, v int) {
	for _, id := range miscThings[field] {
		s.touchThing(id)
	}

	switch field {
	case fields.MiscInitialHealth:
		s.touchThing(deh.ThingPlayer).SpawnHealth = v
	case fields.MiscBFGCellsPerShot:
		s.touchWeapon(deh.WeaponBFG).AmmoPerShot = v
	case fields.MiscMonstersInfight:
		if v == deh.InfightOn {
			for _, id := range s.thingIDs() {
				t, _ := s.Thing(id)
				if classify.IsMonster(&t, nil) {
					s.touchThing(id)
				}
			}
		}
	}
}

func (s *Session) thingIDs() []int {
	n := s.NumThings()
	ids := make([]int, 0, n)
	for id := 0; id < n; id++ {
		if _, ok := s.Thing(id); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ThingChains returns the frames of every role chain of a thing.
func (s *Session) ThingChains(t *deh.Thing) []int {
	var out []int
	for _, r := range deh.ThingRoles {
		out = append(out, actions.Chain(s, t.State(r))...)
	}
	return out
}

// WeaponChains returns the frames of every role chain of a weapon.
func (s *Session) WeaponChains(w *deh.Weapon) []int {
	var out []int
	for _, r := range deh.WeaponRoles {
		out = append(out, actions.Chain(s, w.State(r))...)
	}
	return out
}

func (s *Session) markChainUsers(uses func(frames []int) bool) {
	for _, id := range s.thingIDs() {
		t, _ := s.Thing(id)
		if uses(s.ThingChains(&t)) {
			s.touchThing(id)
		}
	}
	for id := 0; id < baseline.NumWeapons; id++ {
		w, ok := s.Weapon(id)
		if ok && uses(s.WeaponChains(&w)) {
			s.touchWeapon(id)
		}
	}
}

func (s *Session) markFrameUsers(frame int) {
	s.markChainUsers(func(frames []int) bool {
		return slices.Contains(frames, frame)
	})
}

func (s *Session) markSpriteUsers(sprite int) {
	s.markChainUsers(func(frames []int) bool {
		for _, id := range frames {
			if f, _ := s.Frame(id); f.Sprite == sprite {
				return true
			}
		}
		return false
	})
}
