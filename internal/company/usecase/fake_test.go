package usecase

import (
	"context"
	"sync"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/company/repository"
	"dashboard-srv/internal/company/repository/memory"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/log"
)

// fakeGateway answers each call through an optional hook; unset hooks return zero values.
type fakeGateway struct {
	list    func(ctx context.Context, p gateway.ListCompaniesParams) (gateway.CompanyPage, error)
	get     func(ctx context.Context, id int64) (model.Company, error)
	create  func(ctx context.Context, d model.CompanyDraft) (model.Company, error)
	update  func(ctx context.Context, id int64, p model.CompanyPatch) (model.Company, error)
	del     func(ctx context.Context, id int64) error
	trends  func(ctx context.Context, id int64, days int) (model.CompanyTrends, error)
	refresh func(ctx context.Context, id int64, daysBack int) (model.RefreshSummary, error)
}

func (f *fakeGateway) ListCompanies(ctx context.Context, p gateway.ListCompaniesParams) (gateway.CompanyPage, error) {
	if f.list == nil {
		return gateway.CompanyPage{}, nil
	}
	return f.list(ctx, p)
}

func (f *fakeGateway) GetCompany(ctx context.Context, id int64) (model.Company, error) {
	if f.get == nil {
		return model.Company{ID: id}, nil
	}
	return f.get(ctx, id)
}

func (f *fakeGateway) CreateCompany(ctx context.Context, d model.CompanyDraft) (model.Company, error) {
	return f.create(ctx, d)
}

func (f *fakeGateway) UpdateCompany(ctx context.Context, id int64, p model.CompanyPatch) (model.Company, error) {
	return f.update(ctx, id, p)
}

func (f *fakeGateway) DeleteCompany(ctx context.Context, id int64) error {
	if f.del == nil {
		return nil
	}
	return f.del(ctx, id)
}

func (f *fakeGateway) GetCompanyTrends(ctx context.Context, id int64, days int) (model.CompanyTrends, error) {
	return f.trends(ctx, id, days)
}

func (f *fakeGateway) RefreshCompany(ctx context.Context, id int64, daysBack int) (model.RefreshSummary, error) {
	return f.refresh(ctx, id, daysBack)
}

func (f *fakeGateway) ListAlerts(context.Context, gateway.ListAlertsParams) ([]model.Alert, error) {
	return nil, nil
}

func (f *fakeGateway) MarkAlertRead(context.Context, int64) error { return nil }

func (f *fakeGateway) Health(context.Context) (gateway.HealthStatus, error) {
	return gateway.HealthStatus{Status: "healthy"}, nil
}

// eventLog collects reported events.
type eventLog struct {
	mu     sync.Mutex
	events []company.Event
}

func (e *eventLog) Report(_ context.Context, ev company.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *eventLog) all() []company.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]company.Event(nil), e.events...)
}

type fixture struct {
	gw     *fakeGateway
	repo   repository.CacheRepository
	events *eventLog
	uc     company.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		gw:     &fakeGateway{},
		repo:   memory.New(),
		events: &eventLog{},
	}
	f.uc = New(log.NewNop(), f.gw, f.repo, f.events, nil, DefaultConfig())
	return f
}

func validationErr(msg string) error {
	return &gateway.Error{Kind: gateway.KindValidation, Op: "test", StatusCode: 400, Message: msg}
}
