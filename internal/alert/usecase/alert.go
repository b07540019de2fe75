package usecase

import (
	"context"
	"slices"
	"time"

	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"
)

func (uc *implUseCase) List(ctx context.Context, input alert.ListInput) (alert.ListOutput, error) {
	if input.CompanyID < 0 {
		return alert.ListOutput{}, alert.ErrInvalidCompanyID
	}

	done := uc.track(opList)
	alerts, err := uc.gateway.ListAlerts(ctx, gateway.ListAlertsParams{
		CompanyID:  input.CompanyID,
		UnreadOnly: input.UnreadOnly,
	})
	done(ctx, err)
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.List: gateway failed: %v", err)
		return alert.ListOutput{}, err
	}

	uc.mu.Lock()
	uc.alerts = slices.Clone(alerts)
	uc.mu.Unlock()

	return summarize(alerts), nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return alert.ErrInvalidID
	}

	done := uc.track(opMarkRead)
	err := uc.gateway.MarkAlertRead(ctx, id)
	done(ctx, err)
	if err != nil {
		uc.l.Errorf(ctx, "alert.usecase.MarkRead: gateway failed: %v", err)
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if i := slices.IndexFunc(uc.alerts, func(a model.Alert) bool { return a.ID == id }); i >= 0 {
		uc.alerts[i].IsRead = true
	}
	return nil
}

func (uc *implUseCase) Snapshot(_ context.Context) alert.ListOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return summarize(slices.Clone(uc.alerts))
}

// track marks op in flight and returns the func that records its outcome.
func (uc *implUseCase) track(op string) func(ctx context.Context, err error) {
	uc.metrics.Started(op)
	started := time.Now()
	return func(ctx context.Context, err error) {
		uc.metrics.Finished(op)
		outcome := "success"
		if err != nil {
			outcome = "failure"
			if kind := gateway.KindOf(err); kind != "" {
				outcome = string(kind)
			}
		}
		uc.metrics.Observe(ctx, op, outcome, time.Since(started))
	}
}

func summarize(alerts []model.Alert) alert.ListOutput {
	out := alert.ListOutput{
		Alerts:     alerts,
		BySeverity: make(map[string]int),
	}
	if out.Alerts == nil {
		out.Alerts = []model.Alert{}
	}
	for _, a := range alerts {
		if !a.IsRead {
			out.Unread++
		}
		out.BySeverity[a.Severity]++
	}
	return out
}
