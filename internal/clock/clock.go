// Package clock supplies the ambient time settlement rules are evaluated
// against. Time is read once per operation, in unix seconds.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() int64
}

type systemClock struct{}

func System() Clock {
	return systemClock{}
}

func (systemClock) Now() int64 {
	return time.Now().Unix()
}

// Manual is a settable clock for tests and local simulations.
type Manual struct {
	mu  sync.Mutex
	now int64
}

func NewManual(now int64) *Manual {
	return &Manual{now: now}
}

func (m *Manual) Now() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Set(now int64) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

func (m *Manual) Advance(seconds int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += seconds
	return m.now
}
