package alert

import "context"

// UseCase reads and acknowledges reputation alerts.
//
//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// MarkRead acknowledges one alert and flips it in the last listed snapshot.
	MarkRead(ctx context.Context, id int64) error
	// Snapshot returns the last listed alerts without contacting the API.
	Snapshot(ctx context.Context) ListOutput
}
