package usecase

import (
	"context"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"
)

// Trends relays the upstream trend analysis. days 0 means the default window.
func (uc *implUseCase) Trends(ctx context.Context, id int64, days int) (model.CompanyTrends, error) {
	if id <= 0 {
		return model.CompanyTrends{}, company.ErrInvalidID
	}
	if days == 0 {
		days = gateway.DefaultTrendDays
	}
	if days < gateway.MinTrendDays || days > gateway.MaxTrendDays {
		return model.CompanyTrends{}, company.ErrInvalidTrendDays
	}

	c := uc.begin(company.OpTrends, id)
	defer uc.release(c)

	trends, err := uc.gateway.GetCompanyTrends(ctx, id, days)
	if err != nil {
		uc.fail(ctx, c, err)
		return model.CompanyTrends{}, err
	}

	uc.succeed(ctx, c, true)
	return trends, nil
}

// Refresh asks upstream to re-collect mentions, then re-fetches the company and
// overwrites the cached copy in place. Focus and list order are left alone, and a
// company that is not cached is not added. A failed re-fetch does not fail the refresh.
func (uc *implUseCase) Refresh(ctx context.Context, id int64, daysBack int) (company.RefreshOutput, error) {
	if id <= 0 {
		return company.RefreshOutput{}, company.ErrInvalidID
	}
	if daysBack == 0 {
		daysBack = gateway.DefaultRefreshDays
	}
	if daysBack < gateway.MinRefreshDays || daysBack > gateway.MaxRefreshDays {
		return company.RefreshOutput{}, company.ErrInvalidRefreshDays
	}

	summary, err := uc.refresh(ctx, id, daysBack)
	if err != nil {
		return company.RefreshOutput{}, err
	}

	out := company.RefreshOutput{Summary: summary}
	rec, err := uc.gateway.GetCompany(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "company.usecase.Refresh: reload of company %d failed: %v", id, err)
		return out, nil
	}
	out.Company = rec
	out.Reloaded = uc.repo.Overwrite(rec)
	return out, nil
}

func (uc *implUseCase) refresh(ctx context.Context, id int64, daysBack int) (model.RefreshSummary, error) {
	c := uc.begin(company.OpRefresh, id)
	defer uc.release(c)

	summary, err := uc.gateway.RefreshCompany(ctx, id, daysBack)
	if err != nil {
		uc.fail(ctx, c, err)
		return model.RefreshSummary{}, err
	}

	uc.succeed(ctx, c, true)
	return summary, nil
}
