package memory

import (
	"sync"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/company/repository"
	"dashboard-srv/internal/model"
)

type implRepository struct {
	mu        sync.RWMutex
	records   map[int64]model.Company
	order     []int64
	focusedID int64 // 0 = none; server ids start at 1
	total     int64
	filters   company.Filters
}

// New creates an empty in-process cache.
func New() repository.CacheRepository {
	return &implRepository{
		records: make(map[int64]model.Company),
	}
}
