// Package classify decides whether a thing counts as a monster.
package classify

import (
	"github.com/edge-classic/EDGE-classic-sub008/internal/actions"
	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

// Score weights.
const (
	WeightSolid     = 25
	WeightShootable = 72
	WeightPain      = 91
	WeightAttack    = 91
	WeightDeath     = 72
	WeightRaise     = 31
	WeightSpeed     = 87
	WeightChase     = 78
	WeightFall      = 61
)

// Thresholds, with and without animation roles.
const (
	ThresholdKnown   = 370
	ThresholdUnknown = 300
)

// Roles is what the frame actions of a thing revealed.
type Roles struct {
	Chase bool
	Fall  bool
}

// InferRoles walks the chase and death chains of t looking for chase and
// fall behaviour.
func InferRoles(t *deh.Thing, table actions.SideTable, src actions.FrameSource) *Roles {
	fall := actions.ChainFlags(table, src, t.DeathState) | actions.ChainFlags(table, src, t.XDeathState)
	return &Roles{
		Chase: actions.ChainFlags(table, src, t.SeeState).Has(actions.FlagChase),
		Fall:  fall.Has(actions.FlagFall),
	}
}

// Score returns the weighted monster score. Chase and fall only count when
// roles is non-nil.
func Score(t *deh.Thing, roles *Roles) int {
	score := 0
	if t.Flags.Has(deh.FlagSolid) {
		score += WeightSolid
	}
	if t.Flags.Has(deh.FlagShootable) {
		score += WeightShootable
	}
	if t.PainState != deh.StateNull {
		score += WeightPain
	}
	if t.MeleeState != deh.StateNull || t.MissileState != deh.StateNull {
		score += WeightAttack
	}
	if t.DeathState != deh.StateNull {
		score += WeightDeath
	}
	if t.RaiseState != deh.StateNull {
		score += WeightRaise
	}
	if t.Speed != 0 {
		score += WeightSpeed
	}
	if roles != nil {
		if roles.Chase {
			score += WeightChase
		}
		if roles.Fall {
			score += WeightFall
		}
	}
	return score
}

// IsMonster classifies t. A nil roles means animation roles are not known
// yet and the lower threshold applies.
func IsMonster(t *deh.Thing, roles *Roles) bool {
	if t.DoomedNum <= 0 || t.IsAttack() || t.PlayerNum != 0 {
		return false
	}
	if t.Flags.Has(deh.FlagCountKill) {
		return true
	}
	if t.Flags.Has(deh.FlagSpecial) || t.Flags.Has(deh.FlagCountItem) {
		return false
	}
	if roles == nil {
		return Score(t, nil) >= ThresholdUnknown
	}
	return Score(t, roles) >= ThresholdKnown
}
