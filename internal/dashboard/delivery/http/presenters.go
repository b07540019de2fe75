package http

import (
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
)

type overviewResp struct {
	Companies    []model.Company `json:"companies"`
	Total        int64           `json:"total"`
	Stats        company.Stats   `json:"stats"`
	Facets       company.Facets  `json:"facets"`
	UnreadAlerts int             `json:"unread_alerts"`
	BySeverity   map[string]int  `json:"alerts_by_severity"`
}

func (h *handler) newOverviewResp(o dashboard.Overview) overviewResp {
	companies := o.Companies
	if companies == nil {
		companies = []model.Company{}
	}
	return overviewResp{
		Companies:    companies,
		Total:        o.Total,
		Stats:        o.Stats,
		Facets:       o.Facets,
		UnreadAlerts: o.UnreadAlerts,
		BySeverity:   o.BySeverity,
	}
}
