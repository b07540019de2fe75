package repository

import (
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
)

// Snapshot is a consistent copy of the cache taken under one lock.
type Snapshot struct {
	Records []model.Company // list order
	Focused *model.Company
	Total   int64
	Filters company.Filters
}

// CacheRepository is the local copy of the company collection.
// Each record is stored once, keyed by id. The focused record is a reference
// to that entry, so list and focus can never disagree.
// All operations are synchronous and total. Implementations are safe for concurrent use.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// ReplaceAll swaps the listed records and the reported total.
	ReplaceAll(records []model.Company, total int64)
	// Upsert overwrites in place when the id is listed, else appends.
	Upsert(rec model.Company)
	// Overwrite replaces rec in place when its id is cached, listed or focused.
	// It never changes list order or focus. Reports whether it wrote.
	Overwrite(rec model.Company) bool
	// Prepend overwrites in place when the id is listed, else inserts at the head.
	Prepend(rec model.Company)
	// Remove drops the record and clears focus if it pointed at it.
	Remove(id int64) bool
	// SetFocused focuses rec, storing it in the index. nil clears focus.
	SetFocused(rec *model.Company)
	// SetTotal overwrites the reported total, never below zero.
	SetTotal(n int64)
	// AddTotal shifts the reported total, never below zero.
	AddTotal(delta int64)
	SetFilters(f company.Filters)
	ClearFilters()

	Get(id int64) (model.Company, bool)
	List() []model.Company
	Focused() (model.Company, bool)
	Total() int64
	Filters() company.Filters
	Snapshot() Snapshot
}
