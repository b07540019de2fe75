package usecase

import (
	"maps"
	"sync"

	"dashboard-srv/internal/company"
)

// tracker counts in-flight calls per operation kind and orders their results.
// Every call gets a sequence number when issued. A result is applied only if no
// later-issued call of the same kind has been applied first.
type tracker struct {
	mu       sync.Mutex
	inFlight map[company.Op]int
	issued   map[company.Op]uint64
	applied  map[company.Op]uint64
}

func newTracker() *tracker {
	return &tracker{
		inFlight: make(map[company.Op]int),
		issued:   make(map[company.Op]uint64),
		applied:  make(map[company.Op]uint64),
	}
}

func (t *tracker) begin(op company.Op) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight[op]++
	t.issued[op]++
	return t.issued[op]
}

func (t *tracker) end(op company.Op) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inFlight[op] <= 1 {
		delete(t.inFlight, op)
		return
	}
	t.inFlight[op]--
}

// apply runs fn unless a newer result of op has already been applied.
// The check and fn run under one lock so two results of one kind cannot interleave.
func (t *tracker) apply(op company.Op, seq uint64, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq < t.applied[op] {
		return false
	}
	t.applied[op] = seq
	fn()
	return true
}

func (t *tracker) snapshot() map[company.Op]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.inFlight)
}

func (t *tracker) busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inFlight) > 0
}

func (t *tracker) busyFor(op company.Op) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight[op] > 0
}
