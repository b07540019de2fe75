package memory

import (
	"maps"
	"slices"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/company/repository"
	"dashboard-srv/internal/model"
)

func (r *implRepository) ReplaceAll(records []model.Company, total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[int64]model.Company, len(records)+1)
	order := make([]int64, 0, len(records))
	for _, rec := range records {
		if _, dup := next[rec.ID]; !dup {
			order = append(order, rec.ID)
		}
		next[rec.ID] = rec
	}

	// focused record survives a page change even when it is not listed
	if r.focusedID != 0 {
		if _, listed := next[r.focusedID]; !listed {
			if rec, ok := r.records[r.focusedID]; ok {
				next[r.focusedID] = rec
			}
		}
	}

	r.records = next
	r.order = order
	r.total = max(total, 0)
}

func (r *implRepository) Upsert(rec model.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.listed(rec.ID) {
		r.order = append(r.order, rec.ID)
	}
	r.records[rec.ID] = rec
}

func (r *implRepository) Overwrite(rec model.Company) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; !ok {
		return false
	}
	r.records[rec.ID] = rec
	return true
}

func (r *implRepository) Prepend(rec model.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.listed(rec.ID) {
		r.order = slices.Insert(r.order, 0, rec.ID)
	}
	r.records[rec.ID] = rec
}

func (r *implRepository) Remove(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.records[id]
	delete(r.records, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	if r.focusedID == id {
		r.focusedID = 0
	}
	return existed
}

func (r *implRepository) SetFocused(rec *model.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.focusedID
	if rec == nil {
		r.focusedID = 0
	} else {
		r.records[rec.ID] = *rec
		r.focusedID = rec.ID
	}
	r.dropIfOrphan(prev)
}

func (r *implRepository) SetTotal(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = max(n, 0)
}

func (r *implRepository) AddTotal(delta int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = max(r.total+delta, 0)
}

func (r *implRepository) SetFilters(f company.Filters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = f
}

func (r *implRepository) ClearFilters() {
	r.SetFilters(company.Filters{})
}

func (r *implRepository) Get(id int64) (model.Company, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	return clone(rec), ok
}

func (r *implRepository) List() []model.Company {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *implRepository) Focused() (model.Company, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.focusedID == 0 {
		return model.Company{}, false
	}
	rec, ok := r.records[r.focusedID]
	return clone(rec), ok
}

func (r *implRepository) Total() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total
}

func (r *implRepository) Filters() company.Filters {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filters
}

func (r *implRepository) Snapshot() repository.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := repository.Snapshot{
		Records: r.listLocked(),
		Total:   r.total,
		Filters: r.filters,
	}
	if r.focusedID != 0 {
		if rec, ok := r.records[r.focusedID]; ok {
			rec = clone(rec)
			snap.Focused = &rec
		}
	}
	return snap
}

func (r *implRepository) listLocked() []model.Company {
	out := make([]model.Company, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.records[id]))
	}
	return out
}

func (r *implRepository) listed(id int64) bool {
	return slices.Contains(r.order, id)
}

// dropIfOrphan removes an index entry that is neither listed nor focused.
func (r *implRepository) dropIfOrphan(id int64) {
	if id == 0 || id == r.focusedID || r.listed(id) {
		return
	}
	delete(r.records, id)
}

// clone detaches the slice and map fields so callers cannot write through to the cache.
func clone(rec model.Company) model.Company {
	rec.RiskFactors = slices.Clone(rec.RiskFactors)
	rec.SourcesConfig = maps.Clone(rec.SourcesConfig)
	return rec
}
