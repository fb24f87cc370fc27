// Package clock supplies the current wall-clock time. Everything that needs
// "now" asks a Clock so tests can substitute a fixed or advancing one.
package clock

import (
	"sync"
	"time"
)

// Clock is the only time source the reminder engine consults.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in a fixed location.
type Real struct {
	loc *time.Location
}

// New returns a system clock reporting times in loc. A nil loc means time.Local.
func New(loc *time.Location) Real {
	if loc == nil {
		loc = time.Local
	}
	return Real{loc: loc}
}

func (r Real) Now() time.Time {
	loc := r.loc
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Fake is a manually driven clock for tests and simulations.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set moves the clock to t.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (f *Fake) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
	return f.now
}
