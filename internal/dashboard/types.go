package dashboard

import (
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
)

type Overview struct {
	Companies    []model.Company
	Total        int64
	Stats        company.Stats
	Facets       company.Facets
	UnreadAlerts int
	BySeverity   map[string]int
}
