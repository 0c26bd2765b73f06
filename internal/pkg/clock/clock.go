// Package clock abstracts the wall clock so stored timestamps can be
// pinned in tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/edge-classic/EDGE-classic-sub008/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC.
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the pinned time
func (c *Fixed) Now() time.Time {
	return c.At
}
