package usecase

import (
	"context"

	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/dashboard"

	"golang.org/x/sync/errgroup"
)

// Overview fails as a whole when either fetch fails; the first error wins.
func (uc *implUseCase) Overview(ctx context.Context) (dashboard.Overview, error) {
	var alerts alert.ListOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		_, err = uc.companies.List(gctx, company.ListInput{Page: 1})
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = uc.alerts.List(gctx, alert.ListInput{UnreadOnly: true})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.Overview: fetch failed: %v", err)
		return dashboard.Overview{}, err
	}

	// read back from the cache: a stale page was not applied, and the view
	// and total must describe the same one
	view := uc.companies.View(ctx)
	return dashboard.Overview{
		Companies:    view.Companies,
		Total:        view.Total,
		Stats:        uc.companies.Stats(ctx),
		Facets:       uc.companies.Facets(ctx),
		UnreadAlerts: alerts.Unread,
		BySeverity:   alerts.BySeverity,
	}, nil
}
