package session

import (
	"go.uber.org/zap"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
)

// WarningKind classifies a non-fatal problem.
type WarningKind string

const (
	WarnUnknownField    WarningKind = "unknown_field"
	WarnOutOfRange      WarningKind = "out_of_range"
	WarnUnknownMnemonic WarningKind = "unknown_mnemonic"
	WarnUnknownPointer  WarningKind = "unknown_pointer"
	WarnUnknownText     WarningKind = "unknown_text"
	WarnMissingStates   WarningKind = "missing_states"
	WarnDuplicateAttack WarningKind = "duplicate_attack"
)

// Warning is one skipped write or emission.
type Warning struct {
	Kind    WarningKind
	Entity  string
	ID      int
	Field   string
	Message string
}

// Warn records a warning and logs it.
func (s *Session) Warn(w Warning) {
	s.warnings = append(s.warnings, w)
	s.log.Warn(w.Message,
		zap.String("kind", string(w.Kind)),
		zap.String("entity", w.Entity),
		zap.Int("id", w.ID),
		zap.String("field", w.Field),
	)
}

// Warnings returns the recorded warnings in order.
func (s *Session) Warnings() []Warning {
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

func (s *Session) warnErr(entity string, id int, field string, err error) {
	kind := WarnOutOfRange
	if errors.IsUnimplemented(err) {
		kind = WarnUnknownPointer
	}
	s.Warn(Warning{
		Kind:    kind,
		Entity:  entity,
		ID:      id,
		Field:   field,
		Message: errors.GetMessage(err),
	})
}
