package dashboard

import "context"

// UseCase assembles the landing page of the dashboard.
type UseCase interface {
	// Overview reloads the first company page and the unread alerts concurrently.
	Overview(ctx context.Context) (Overview, error)
}
