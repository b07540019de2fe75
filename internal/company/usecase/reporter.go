package usecase

import (
	"context"
	"slices"
	"sync"

	"dashboard-srv/internal/company"
)

// journal keeps the most recent events for Status.
type journal struct {
	mu     sync.Mutex
	size   int
	events []company.Event
}

func newJournal(size int) *journal {
	return &journal{size: size}
}

func (j *journal) Report(_ context.Context, e company.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
	if over := len(j.events) - j.size; over > 0 {
		j.events = slices.Delete(j.events, 0, over)
	}
}

// recent returns events newest first.
func (j *journal) recent() []company.Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := slices.Clone(j.events)
	slices.Reverse(out)
	return out
}

type multiReporter []company.Reporter

func (m multiReporter) Report(ctx context.Context, e company.Event) {
	for _, r := range m {
		r.Report(ctx, e)
	}
}

func fanOut(reporters ...company.Reporter) company.Reporter {
	var out multiReporter
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
