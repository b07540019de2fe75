package usecase

import (
	"context"
	"testing"
	"time"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(f *fixture, total int64, records ...model.Company) {
	f.repo.ReplaceAll(records, total)
}

func TestList(t *testing.T) {
	f := newFixture()
	var got gateway.ListCompaniesParams
	f.gw.list = func(_ context.Context, p gateway.ListCompaniesParams) (gateway.CompanyPage, error) {
		got = p
		return gateway.CompanyPage{
			Companies: []model.Company{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}},
			Total:     57,
		}, nil
	}

	out, err := f.uc.List(context.Background(), company.ListInput{Page: 2, Search: "ac"})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Page)
	assert.Equal(t, int64(20), got.Limit, "default page size")
	assert.Equal(t, "ac", got.Search)
	assert.True(t, out.Applied)
	assert.Len(t, f.repo.List(), 2)
	assert.Equal(t, int64(57), f.repo.Total())

	events := f.events.all()
	require.Len(t, events, 1)
	assert.Equal(t, company.OpList, events[0].Op)
	assert.Equal(t, company.OutcomeSuccess, events[0].Outcome)
	assert.NotEmpty(t, events[0].ID)
}

func TestList_DiscardsStaleResult(t *testing.T) {
	f := newFixture()
	release := make(chan struct{})
	calls := make(chan struct{}, 2)

	f.gw.list = func(_ context.Context, p gateway.ListCompaniesParams) (gateway.CompanyPage, error) {
		calls <- struct{}{}
		if p.Page == 1 {
			<-release // the first request is slow
			return gateway.CompanyPage{Companies: []model.Company{{ID: 1, Name: "old"}}, Total: 1}, nil
		}
		return gateway.CompanyPage{Companies: []model.Company{{ID: 2, Name: "new"}}, Total: 1}, nil
	}

	slow := make(chan company.ListOutput, 1)
	go func() {
		out, _ := f.uc.List(context.Background(), company.ListInput{Page: 1})
		slow <- out
	}()
	<-calls

	out, err := f.uc.List(context.Background(), company.ListInput{Page: 2})
	require.NoError(t, err)
	assert.True(t, out.Applied)

	close(release)
	stale := <-slow
	assert.False(t, stale.Applied)
	assert.Equal(t, "old", stale.Companies[0].Name, "caller still receives its payload")

	listed := f.repo.List()
	require.Len(t, listed, 1)
	assert.Equal(t, "new", listed[0].Name, "latest issued request wins")

	var outcomes []company.Outcome
	for _, e := range f.events.all() {
		outcomes = append(outcomes, e.Outcome)
	}
	assert.ElementsMatch(t, []company.Outcome{company.OutcomeSuccess, company.OutcomeStale}, outcomes)
}

func TestBusyIsTrackedPerOperation(t *testing.T) {
	f := newFixture()
	entered := make(chan struct{})
	release := make(chan struct{})
	f.gw.list = func(context.Context, gateway.ListCompaniesParams) (gateway.CompanyPage, error) {
		entered <- struct{}{}
		<-release
		return gateway.CompanyPage{}, nil
	}

	done := make(chan struct{})
	go func() {
		_, _ = f.uc.List(context.Background(), company.ListInput{Page: 1})
		close(done)
	}()
	<-entered

	assert.True(t, f.uc.Busy())
	assert.True(t, f.uc.BusyFor(company.OpList))
	assert.False(t, f.uc.BusyFor(company.OpDelete))

	// a delete finishing meanwhile must not clear the list's busy state
	require.NoError(t, f.uc.Delete(context.Background(), 9))
	assert.True(t, f.uc.BusyFor(company.OpList))
	assert.Equal(t, 1, f.uc.Status(context.Background()).InFlight[company.OpList])

	close(release)
	<-done
	assert.False(t, f.uc.Busy())
}

func TestGet_Focuses(t *testing.T) {
	f := newFixture()
	f.gw.get = func(_ context.Context, id int64) (model.Company, error) {
		return model.Company{ID: id, Name: "Acme"}, nil
	}

	rec, err := f.uc.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Name)

	focused, err := f.uc.Focused(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), focused.ID)

	_, err = f.uc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, company.ErrInvalidID)
}

func TestGet_DiscardsStaleResult(t *testing.T) {
	f := newFixture()
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	f.gw.get = func(_ context.Context, id int64) (model.Company, error) {
		if id == 1 {
			entered <- struct{}{}
			<-release
			return model.Company{ID: 1, Name: "slow"}, nil
		}
		return model.Company{ID: id, Name: "fast"}, nil
	}

	slow := make(chan model.Company, 1)
	go func() {
		rec, _ := f.uc.Get(context.Background(), 1)
		slow <- rec
	}()
	<-entered

	_, err := f.uc.Get(context.Background(), 2)
	require.NoError(t, err)

	close(release)
	got := <-slow
	assert.Equal(t, "slow", got.Name, "caller still receives its payload")

	focused, err := f.uc.Focused(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), focused.ID, "latest issued request wins")
	_, cached := f.repo.Get(1)
	assert.False(t, cached)

	var stale []company.Event
	for _, e := range f.events.all() {
		if e.Outcome == company.OutcomeStale {
			stale = append(stale, e)
		}
	}
	require.Len(t, stale, 1)
	assert.Equal(t, company.OpGet, stale[0].Op)
	assert.Equal(t, int64(1), stale[0].CompanyID)
}

func TestCreate(t *testing.T) {
	t.Run("prepends and bumps total", func(t *testing.T) {
		f := newFixture()
		seed(f, 10, model.Company{ID: 1}, model.Company{ID: 2})
		f.gw.create = func(_ context.Context, d model.CompanyDraft) (model.Company, error) {
			return model.Company{ID: 3, Name: d.Name, Industry: d.Industry, Country: d.Country}, nil
		}

		rec, err := f.uc.Create(context.Background(), model.CompanyDraft{Name: " Initech ", Industry: "Tech", Country: "USA"})
		require.NoError(t, err)
		assert.Equal(t, "Initech", rec.Name, "draft is trimmed before sending")

		listed := f.repo.List()
		require.Len(t, listed, 3)
		assert.Equal(t, int64(3), listed[0].ID)
		assert.Equal(t, int64(11), f.repo.Total())
	})

	t.Run("failure leaves cache untouched and busy cleared", func(t *testing.T) {
		f := newFixture()
		seed(f, 2, model.Company{ID: 1}, model.Company{ID: 2})
		upstream := validationErr("Company already exists")
		f.gw.create = func(context.Context, model.CompanyDraft) (model.Company, error) {
			return model.Company{}, upstream
		}

		_, err := f.uc.Create(context.Background(), model.CompanyDraft{Name: "Dup", Industry: "Tech", Country: "USA"})
		require.Error(t, err)
		assert.Same(t, upstream, err, "failure is returned unchanged")
		assert.ErrorIs(t, err, gateway.ErrValidation)

		assert.Len(t, f.repo.List(), 2)
		assert.Equal(t, int64(2), f.repo.Total())
		assert.False(t, f.uc.Busy())

		events := f.events.all()
		require.Len(t, events, 1)
		assert.Equal(t, company.OutcomeFailure, events[0].Outcome)
		assert.Equal(t, string(gateway.KindValidation), events[0].ErrorKind)
	})

	t.Run("rejects incomplete drafts locally", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(context.Background(), model.CompanyDraft{Name: "x", Industry: "y"})
		assert.ErrorIs(t, err, company.ErrCountryRequired)
		assert.Empty(t, f.events.all())
	})
}

func TestUpdate(t *testing.T) {
	name := "Renamed"

	t.Run("replaces listed entry with server value and follows focus", func(t *testing.T) {
		f := newFixture()
		seed(f, 2, model.Company{ID: 1, Name: "a"}, model.Company{ID: 2, Name: "b"})
		focused := model.Company{ID: 2, Name: "b"}
		f.repo.SetFocused(&focused)

		f.gw.update = func(_ context.Context, id int64, _ model.CompanyPatch) (model.Company, error) {
			return model.Company{ID: id, Name: "Renamed", Industry: "merged-by-server"}, nil
		}

		_, err := f.uc.Update(context.Background(), 2, model.CompanyPatch{Name: &name})
		require.NoError(t, err)

		listed := f.repo.List()
		assert.Equal(t, "Renamed", listed[1].Name)
		assert.Equal(t, "merged-by-server", listed[1].Industry)

		got, err := f.uc.Focused(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})

	t.Run("focus on another id is untouched", func(t *testing.T) {
		f := newFixture()
		seed(f, 2, model.Company{ID: 1, Name: "a"}, model.Company{ID: 2, Name: "b"})
		focused := model.Company{ID: 1, Name: "a"}
		f.repo.SetFocused(&focused)
		f.gw.update = func(_ context.Context, id int64, _ model.CompanyPatch) (model.Company, error) {
			return model.Company{ID: id, Name: "Renamed"}, nil
		}

		_, err := f.uc.Update(context.Background(), 2, model.CompanyPatch{Name: &name})
		require.NoError(t, err)

		got, _ := f.uc.Focused(context.Background())
		assert.Equal(t, "a", got.Name)
	})

	t.Run("empty patch", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Update(context.Background(), 1, model.CompanyPatch{})
		assert.ErrorIs(t, err, company.ErrEmptyPatch)
	})
}

func TestDelete(t *testing.T) {
	f := newFixture()
	seed(f, 5, model.Company{ID: 1}, model.Company{ID: 2})
	focused := model.Company{ID: 2}
	f.repo.SetFocused(&focused)

	require.NoError(t, f.uc.Delete(context.Background(), 2))

	_, ok := f.repo.Get(2)
	assert.False(t, ok)
	assert.Equal(t, int64(4), f.repo.Total())
	_, err := f.uc.Focused(context.Background())
	assert.ErrorIs(t, err, company.ErrNoFocused)

	t.Run("server failure keeps the record", func(t *testing.T) {
		f.gw.del = func(context.Context, int64) error {
			return &gateway.Error{Kind: gateway.KindServer, StatusCode: 500}
		}
		err := f.uc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, gateway.ErrServer)
		_, ok := f.repo.Get(1)
		assert.True(t, ok)
		assert.Equal(t, int64(4), f.repo.Total())
	})
}

func TestTrends(t *testing.T) {
	f := newFixture()
	var gotDays int
	f.gw.trends = func(_ context.Context, id int64, days int) (model.CompanyTrends, error) {
		gotDays = days
		return model.CompanyTrends{CompanyID: id, AnalysisPeriodDays: days}, nil
	}

	_, err := f.uc.Trends(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 90, gotDays)

	_, err = f.uc.Trends(context.Background(), 1, 3)
	assert.ErrorIs(t, err, company.ErrInvalidTrendDays)
	_, err = f.uc.Trends(context.Background(), 1, 400)
	assert.ErrorIs(t, err, company.ErrInvalidTrendDays)
}

func TestRefresh(t *testing.T) {
	f := newFixture()
	seed(f, 1, model.Company{ID: 1, TotalMentions: 0})
	f.gw.refresh = func(_ context.Context, _ int64, daysBack int) (model.RefreshSummary, error) {
		assert.Equal(t, 30, daysBack)
		return model.RefreshSummary{Message: "Refreshed data for Acme", NewArticles: 12, TotalMentions: 12}, nil
	}
	f.gw.get = func(_ context.Context, id int64) (model.Company, error) {
		return model.Company{ID: id, TotalMentions: 12}, nil
	}

	out, err := f.uc.Refresh(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.True(t, out.Reloaded)
	assert.Equal(t, int64(12), out.Summary.NewArticles)

	listed := f.repo.List()
	assert.Equal(t, int64(12), listed[0].TotalMentions, "reloaded record replaces the cached one")

	t.Run("reload failure does not fail the refresh", func(t *testing.T) {
		f.gw.get = func(context.Context, int64) (model.Company, error) {
			return model.Company{}, &gateway.Error{Kind: gateway.KindTransport, Err: context.DeadlineExceeded}
		}
		out, err := f.uc.Refresh(context.Background(), 1, 0)
		require.NoError(t, err)
		assert.False(t, out.Reloaded)
	})

	_, err = f.uc.Refresh(context.Background(), 1, 366)
	assert.ErrorIs(t, err, company.ErrInvalidRefreshDays)
}

func TestRefresh_LeavesFocusAndOrderAlone(t *testing.T) {
	f := newFixture()
	seed(f, 2, model.Company{ID: 1, Name: "Acme"}, model.Company{ID: 2, Name: "Globex"})
	f.repo.SetFocused(&model.Company{ID: 2, Name: "Globex"})
	f.gw.refresh = func(context.Context, int64, int) (model.RefreshSummary, error) {
		return model.RefreshSummary{NewArticles: 3}, nil
	}
	f.gw.get = func(_ context.Context, id int64) (model.Company, error) {
		return model.Company{ID: id, Name: "Acme", TotalMentions: 3}, nil
	}

	out, err := f.uc.Refresh(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.True(t, out.Reloaded)

	focused, err := f.uc.Focused(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), focused.ID)

	listed := f.repo.List()
	require.Len(t, listed, 2)
	assert.Equal(t, int64(1), listed[0].ID)
	assert.Equal(t, int64(3), listed[0].TotalMentions)

	for _, e := range f.events.all() {
		assert.NotEqual(t, company.OpGet, e.Op, "reload is not a focusing fetch")
	}

	t.Run("uncached company is returned but not added", func(t *testing.T) {
		out, err := f.uc.Refresh(context.Background(), 7, 0)
		require.NoError(t, err)
		assert.False(t, out.Reloaded)
		assert.Equal(t, int64(7), out.Company.ID)

		_, cached := f.repo.Get(7)
		assert.False(t, cached)
		assert.Len(t, f.repo.List(), 2)
	})
}

func TestStatus_RecentEventsNewestFirst(t *testing.T) {
	f := newFixture()
	start := time.Now()
	require.NoError(t, f.uc.Delete(context.Background(), 1))
	require.NoError(t, f.uc.Delete(context.Background(), 2))

	recent := f.uc.Status(context.Background()).Recent
	require.Len(t, recent, 2)
	assert.Equal(t, int64(2), recent[0].CompanyID)
	assert.False(t, recent[0].At.Before(start))
}
