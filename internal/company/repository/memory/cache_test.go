package memory

import (
	"sync"
	"testing"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id int64, name string) model.Company {
	return model.Company{ID: id, Name: name}
}

func ids(records []model.Company) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestReplaceAll(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{rec(1, "a"), rec(2, "b")}, 40)

	assert.Equal(t, []int64{1, 2}, ids(r.List()))
	assert.Equal(t, int64(40), r.Total())

	t.Run("duplicates collapse to one entry", func(t *testing.T) {
		r.ReplaceAll([]model.Company{rec(3, "c"), rec(3, "c2")}, 1)
		assert.Equal(t, []int64{3}, ids(r.List()))
		got, _ := r.Get(3)
		assert.Equal(t, "c2", got.Name)
	})

	t.Run("drops records not in the new page", func(t *testing.T) {
		_, ok := r.Get(1)
		assert.False(t, ok)
	})
}

func TestReplaceAll_KeepsUnlistedFocus(t *testing.T) {
	r := New()
	focused := rec(9, "focused")
	r.SetFocused(&focused)
	r.ReplaceAll([]model.Company{rec(1, "a")}, 1)

	got, ok := r.Focused()
	require.True(t, ok)
	assert.Equal(t, "focused", got.Name)
	assert.Equal(t, []int64{1}, ids(r.List()), "focused-only record is not listed")
}

func TestUpsert(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{rec(1, "a"), rec(2, "b"), rec(3, "c")}, 3)

	r.Upsert(rec(2, "b2"))
	assert.Equal(t, []int64{1, 2, 3}, ids(r.List()), "position preserved")
	got, _ := r.Get(2)
	assert.Equal(t, "b2", got.Name)

	r.Upsert(rec(4, "d"))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(r.List()))
}

func TestOverwrite(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{rec(1, "a"), rec(2, "b")}, 2)
	focus := rec(9, "focused")
	r.SetFocused(&focus)

	assert.True(t, r.Overwrite(rec(1, "a2")))
	assert.True(t, r.Overwrite(rec(9, "focused2")))
	assert.False(t, r.Overwrite(rec(5, "unknown")))

	assert.Equal(t, []int64{1, 2}, ids(r.List()), "order untouched, focused-only record not listed")
	got, _ := r.Get(1)
	assert.Equal(t, "a2", got.Name)
	focused, ok := r.Focused()
	require.True(t, ok)
	assert.Equal(t, "focused2", focused.Name)
	_, ok = r.Get(5)
	assert.False(t, ok)
}

func TestPrepend(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{rec(1, "a"), rec(2, "b")}, 2)

	r.Prepend(rec(5, "new"))
	assert.Equal(t, []int64{5, 1, 2}, ids(r.List()))

	r.Prepend(rec(2, "b2"))
	assert.Equal(t, []int64{5, 1, 2}, ids(r.List()), "existing id keeps its slot")
}

func TestRemove(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{rec(1, "a"), rec(2, "b")}, 2)
	focused := rec(2, "b")
	r.SetFocused(&focused)

	assert.True(t, r.Remove(2))
	assert.Equal(t, []int64{1}, ids(r.List()))
	_, ok := r.Focused()
	assert.False(t, ok, "focus cleared when its record is removed")

	assert.False(t, r.Remove(42))
}

func TestFocusIsSingleCopy(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{rec(1, "a"), rec(2, "b")}, 2)

	fresh := rec(2, "b-refetched")
	r.SetFocused(&fresh)

	listed := r.List()
	assert.Equal(t, "b-refetched", listed[1].Name, "focusing refreshes the listed entry")

	r.Upsert(rec(2, "b-updated"))
	got, ok := r.Focused()
	require.True(t, ok)
	assert.Equal(t, "b-updated", got.Name, "updating the listed entry refreshes focus")
}

func TestSetFocused_DropsOrphans(t *testing.T) {
	r := New()
	a := rec(7, "unlisted")
	r.SetFocused(&a)
	b := rec(8, "other")
	r.SetFocused(&b)

	_, ok := r.Get(7)
	assert.False(t, ok)

	r.SetFocused(nil)
	_, ok = r.Get(8)
	assert.False(t, ok)
}

func TestAddTotal_ClampsAtZero(t *testing.T) {
	r := New()
	r.AddTotal(1)
	r.AddTotal(-5)
	assert.Equal(t, int64(0), r.Total())

	r.SetTotal(12)
	assert.Equal(t, int64(12), r.Total())
	r.SetTotal(-1)
	assert.Equal(t, int64(0), r.Total())
}

func TestFilters(t *testing.T) {
	r := New()
	f := company.Filters{Search: "tech", Industry: "Technology"}
	r.SetFilters(f)
	assert.Equal(t, f, r.Filters())
	assert.Equal(t, f, r.Snapshot().Filters)

	r.ClearFilters()
	assert.Equal(t, company.Filters{}, r.Filters())
}

func TestReturnedRecordsAreDetached(t *testing.T) {
	r := New()
	r.ReplaceAll([]model.Company{{ID: 1, RiskFactors: []string{"litigation"}}}, 1)

	got := r.List()
	got[0].RiskFactors[0] = "mutated"

	again, _ := r.Get(1)
	assert.Equal(t, "litigation", again.RiskFactors[0])
}

func TestConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			r.Upsert(rec(id, "x"))
			r.AddTotal(1)
		}(i)
		go func() {
			defer wg.Done()
			_ = r.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, r.List(), 50)
	assert.Equal(t, int64(50), r.Total())
}
