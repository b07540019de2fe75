package usecase

import (
	"context"

	"dashboard-srv/internal/company"
)

func (uc *implUseCase) Status(_ context.Context) company.SyncStatus {
	inFlight := uc.tracker.snapshot()
	return company.SyncStatus{
		Busy:     len(inFlight) > 0,
		InFlight: inFlight,
		Recent:   uc.journal.recent(),
	}
}

// Busy reports whether any operation is awaiting a response.
func (uc *implUseCase) Busy() bool {
	return uc.tracker.busy()
}

func (uc *implUseCase) BusyFor(op company.Op) bool {
	return uc.tracker.busyFor(op)
}
