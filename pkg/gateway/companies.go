package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"dashboard-srv/internal/model"
	pkghttp "dashboard-srv/pkg/http"
	"dashboard-srv/pkg/paginator"
)

// ListCompanies fetches one page. The total comes from the x-total-count header
// and is 0 when the header is missing or malformed.
func (g *gatewayImpl) ListCompanies(ctx context.Context, params ListCompaniesParams) (CompanyPage, error) {
	const op = "ListCompanies"

	pq := paginator.PaginateQuery{Page: params.Page, Limit: params.Limit}
	pq.Adjust()

	q := url.Values{}
	q.Set("skip", strconv.FormatInt(pq.Offset(), 10))
	q.Set("limit", strconv.FormatInt(pq.Limit, 10))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Industry != "" {
		q.Set("industry", params.Industry)
	}
	u := g.url(PathCompanies) + "?" + q.Encode()

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Get(ctx, u, h)
	})
	if err != nil {
		return CompanyPage{}, err
	}

	companies, err := decode[[]model.Company](op, resp)
	if err != nil {
		return CompanyPage{}, err
	}

	total, perr := strconv.ParseInt(resp.Header.Get(HeaderTotalCount), 10, 64)
	if perr != nil || total < 0 {
		total = 0
	}

	return CompanyPage{Companies: companies, Total: total}, nil
}

func (g *gatewayImpl) GetCompany(ctx context.Context, id int64) (model.Company, error) {
	const op = "GetCompany"
	u := g.companyURL(id, "")

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Get(ctx, u, h)
	})
	if err != nil {
		return model.Company{}, err
	}
	return decode[model.Company](op, resp)
}

func (g *gatewayImpl) CreateCompany(ctx context.Context, draft model.CompanyDraft) (model.Company, error) {
	const op = "CreateCompany"
	u := g.url(PathCompanies)

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Post(ctx, u, draft, h)
	})
	if err != nil {
		return model.Company{}, err
	}
	return decode[model.Company](op, resp)
}

func (g *gatewayImpl) UpdateCompany(ctx context.Context, id int64, patch model.CompanyPatch) (model.Company, error) {
	const op = "UpdateCompany"
	u := g.companyURL(id, "")

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Put(ctx, u, patch, h)
	})
	if err != nil {
		return model.Company{}, err
	}
	return decode[model.Company](op, resp)
}

// DeleteCompany ignores the response body.
func (g *gatewayImpl) DeleteCompany(ctx context.Context, id int64) error {
	u := g.companyURL(id, "")
	_, err := g.call(ctx, "DeleteCompany", func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Delete(ctx, u, h)
	})
	return err
}

// GetCompanyTrends uses DefaultTrendDays when days is 0.
func (g *gatewayImpl) GetCompanyTrends(ctx context.Context, id int64, days int) (model.CompanyTrends, error) {
	const op = "GetCompanyTrends"
	if days == 0 {
		days = DefaultTrendDays
	}
	u := g.companyURL(id, "/trends") + "?days=" + strconv.Itoa(days)

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Get(ctx, u, h)
	})
	if err != nil {
		return model.CompanyTrends{}, err
	}
	return decode[model.CompanyTrends](op, resp)
}

// RefreshCompany uses DefaultRefreshDays when daysBack is 0.
func (g *gatewayImpl) RefreshCompany(ctx context.Context, id int64, daysBack int) (model.RefreshSummary, error) {
	const op = "RefreshCompany"
	if daysBack == 0 {
		daysBack = DefaultRefreshDays
	}
	u := g.companyURL(id, "/refresh") + "?days_back=" + strconv.Itoa(daysBack)

	resp, err := g.call(ctx, op, func(h map[string]string) (*pkghttp.Response, error) {
		return g.httpClient.Post(ctx, u, nil, h)
	})
	if err != nil {
		return model.RefreshSummary{}, err
	}
	return decode[model.RefreshSummary](op, resp)
}

func (g *gatewayImpl) companyURL(id int64, suffix string) string {
	return fmt.Sprintf("%s%s/%d%s", g.baseURL, PathCompanies, id, suffix)
}
