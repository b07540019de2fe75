package usecase

import (
	"context"
	"strings"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/paginator"
)

// List fetches one page and replaces the cached collection with it.
// A page that resolves after a later-issued List has been applied is returned but not cached.
func (uc *implUseCase) List(ctx context.Context, input company.ListInput) (company.ListOutput, error) {
	if input.Page < 0 {
		return company.ListOutput{}, company.ErrInvalidPage
	}
	pq := paginator.PaginateQuery{Page: input.Page, Limit: input.Limit}
	if pq.Limit <= 0 {
		pq.Limit = uc.cfg.DefaultLimit
	}
	pq.Adjust()

	c := uc.begin(company.OpList, 0)
	defer uc.release(c)

	page, err := uc.gateway.ListCompanies(ctx, gateway.ListCompaniesParams{
		Page:     pq.Page,
		Limit:    pq.Limit,
		Search:   input.Search,
		Industry: input.Industry,
	})
	if err != nil {
		uc.fail(ctx, c, err)
		return company.ListOutput{}, err
	}

	applied := uc.tracker.apply(c.op, c.seq, func() {
		uc.repo.ReplaceAll(page.Companies, page.Total)
	})
	uc.succeed(ctx, c, applied)

	return company.ListOutput{
		Companies: page.Companies,
		Total:     page.Total,
		Page:      pq.Page,
		Limit:     pq.Limit,
		Applied:   applied,
	}, nil
}

// Get fetches one company and focuses it.
func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Company, error) {
	if id <= 0 {
		return model.Company{}, company.ErrInvalidID
	}

	c := uc.begin(company.OpGet, id)
	defer uc.release(c)

	rec, err := uc.gateway.GetCompany(ctx, id)
	if err != nil {
		uc.fail(ctx, c, err)
		return model.Company{}, err
	}

	applied := uc.tracker.apply(c.op, c.seq, func() {
		uc.repo.SetFocused(&rec)
	})
	uc.succeed(ctx, c, applied)
	return rec, nil
}

// Create adds the server's record at the head of the list and bumps the total.
func (uc *implUseCase) Create(ctx context.Context, draft model.CompanyDraft) (model.Company, error) {
	if err := validateDraft(&draft); err != nil {
		return model.Company{}, err
	}

	c := uc.begin(company.OpCreate, 0)
	defer uc.release(c)

	rec, err := uc.gateway.CreateCompany(ctx, draft)
	if err != nil {
		uc.fail(ctx, c, err)
		return model.Company{}, err
	}

	c.companyID = rec.ID
	uc.repo.Prepend(rec)
	uc.repo.AddTotal(1)
	uc.succeed(ctx, c, true)
	return rec, nil
}

// Update stores the server's merged record. The focused record shares the
// entry, so it follows without extra work.
func (uc *implUseCase) Update(ctx context.Context, id int64, patch model.CompanyPatch) (model.Company, error) {
	if id <= 0 {
		return model.Company{}, company.ErrInvalidID
	}
	if patch.IsEmpty() {
		return model.Company{}, company.ErrEmptyPatch
	}

	c := uc.begin(company.OpUpdate, id)
	defer uc.release(c)

	rec, err := uc.gateway.UpdateCompany(ctx, id, patch)
	if err != nil {
		uc.fail(ctx, c, err)
		return model.Company{}, err
	}

	uc.repo.Upsert(rec)
	uc.succeed(ctx, c, true)
	return rec, nil
}

// Delete removes the record, decrements the total and clears focus if needed.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return company.ErrInvalidID
	}

	c := uc.begin(company.OpDelete, id)
	defer uc.release(c)

	if err := uc.gateway.DeleteCompany(ctx, id); err != nil {
		uc.fail(ctx, c, err)
		return err
	}

	uc.repo.Remove(id)
	uc.repo.AddTotal(-1)
	uc.succeed(ctx, c, true)
	return nil
}

func validateDraft(d *model.CompanyDraft) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Industry = strings.TrimSpace(d.Industry)
	d.Country = strings.TrimSpace(d.Country)

	switch {
	case d.Name == "":
		return company.ErrNameRequired
	case d.Industry == "":
		return company.ErrIndustryRequired
	case d.Country == "":
		return company.ErrCountryRequired
	}
	return nil
}
