package company

import (
	"context"

	"dashboard-srv/internal/model"
)

// UseCase keeps the local company cache in step with the remote API.
// Mutations are write-through: the cache changes only after the server confirms.
// Failures are returned unchanged and leave the cache untouched.
//
//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Get(ctx context.Context, id int64) (model.Company, error)
	Create(ctx context.Context, draft model.CompanyDraft) (model.Company, error)
	Update(ctx context.Context, id int64, patch model.CompanyPatch) (model.Company, error)
	Delete(ctx context.Context, id int64) error
	Trends(ctx context.Context, id int64, days int) (model.CompanyTrends, error)
	Refresh(ctx context.Context, id int64, daysBack int) (RefreshOutput, error)

	View(ctx context.Context) View
	Facets(ctx context.Context) Facets
	AverageReputation(ctx context.Context) float64
	Stats(ctx context.Context) Stats
	Focused(ctx context.Context) (model.Company, error)
	SetFilters(ctx context.Context, f Filters)
	ClearFilters(ctx context.Context)

	Status(ctx context.Context) SyncStatus
	Busy() bool
	BusyFor(op Op) bool
}

// Reporter receives one Event per finished operation.
// Report must not block for long; it runs on the caller's goroutine.
type Reporter interface {
	Report(ctx context.Context, e Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, e Event)

func (f ReporterFunc) Report(ctx context.Context, e Event) { f(ctx, e) }
