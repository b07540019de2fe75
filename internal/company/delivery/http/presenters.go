package http

import (
	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/gateway"
	"dashboard-srv/pkg/paginator"
)

type listReq struct {
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
	Search   string `form:"search"`
	Industry string `form:"industry"`
}

func (r listReq) toInput() company.ListInput {
	return company.ListInput{
		Page:     r.Page,
		Limit:    r.Limit,
		Search:   r.Search,
		Industry: r.Industry,
	}
}

type createReq struct {
	Name          string         `json:"name" binding:"required"`
	LegalName     string         `json:"legal_name"`
	Industry      string         `json:"industry" binding:"required"`
	Website       string         `json:"website"`
	Country       string         `json:"country" binding:"required"`
	Description   string         `json:"description"`
	SourcesConfig map[string]any `json:"sources_config"`
}

func (r createReq) toDraft() model.CompanyDraft {
	return model.CompanyDraft{
		Name:          r.Name,
		LegalName:     r.LegalName,
		Industry:      r.Industry,
		Website:       r.Website,
		Country:       r.Country,
		Description:   r.Description,
		SourcesConfig: r.SourcesConfig,
	}
}

type updateReq struct {
	Name          *string        `json:"name"`
	LegalName     *string        `json:"legal_name"`
	Industry      *string        `json:"industry"`
	Website       *string        `json:"website"`
	Country       *string        `json:"country"`
	Description   *string        `json:"description"`
	SourcesConfig map[string]any `json:"sources_config"`
}

func (r updateReq) toPatch() model.CompanyPatch {
	return model.CompanyPatch{
		Name:          r.Name,
		LegalName:     r.LegalName,
		Industry:      r.Industry,
		Website:       r.Website,
		Country:       r.Country,
		Description:   r.Description,
		SourcesConfig: r.SourcesConfig,
	}
}

type trendsReq struct {
	Days int `form:"days"`
}

type refreshReq struct {
	DaysBack int `form:"days_back"`
}

type filtersReq struct {
	Search   string `json:"search"`
	Industry string `json:"industry"`
	Country  string `json:"country"`
}

func (r filtersReq) toFilters() company.Filters {
	return company.Filters{
		Search:   r.Search,
		Industry: r.Industry,
		Country:  r.Country,
	}
}

type listResp struct {
	Companies []model.Company             `json:"companies"`
	Filters   company.Filters             `json:"filters"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
	Stale     bool                        `json:"stale,omitempty"`
}

type viewResp struct {
	Companies []model.Company `json:"companies"`
	Filters   company.Filters `json:"filters"`
	Total     int64           `json:"total"`
	Cached    int             `json:"cached"`
}

type refreshResp struct {
	Message       string         `json:"message"`
	NewArticles   int64          `json:"new_articles"`
	TotalMentions int64          `json:"total_mentions"`
	Company       *model.Company `json:"company,omitempty"`
	Cached        bool           `json:"cached"`
}

type syncStatusResp struct {
	Busy     bool            `json:"busy"`
	InFlight map[string]int  `json:"in_flight"`
	Recent   []company.Event `json:"recent"`
}

type fieldErrorResp struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// newListResp shows the fetched page through the active filters.
// A stale page is shown as fetched, since the cache did not take it.
func (h *handler) newListResp(o company.ListOutput, v company.View) listResp {
	shown := v.Companies
	if !o.Applied {
		shown = o.Companies
	}
	p := paginator.Paginator{
		Total:       o.Total,
		Count:       int64(len(o.Companies)),
		PerPage:     o.Limit,
		CurrentPage: o.Page,
	}
	return listResp{
		Companies: nonNil(shown),
		Filters:   v.Filters,
		Paginator: p.ToResponse(),
		Stale:     !o.Applied,
	}
}

func (h *handler) newViewResp(v company.View) viewResp {
	return viewResp{
		Companies: nonNil(v.Companies),
		Filters:   v.Filters,
		Total:     v.Total,
		Cached:    v.Cached,
	}
}

func (h *handler) newRefreshResp(o company.RefreshOutput) refreshResp {
	resp := refreshResp{
		Message:       o.Summary.Message,
		NewArticles:   o.Summary.NewArticles,
		TotalMentions: o.Summary.TotalMentions,
		Cached:        o.Reloaded,
	}
	if o.Company.ID != 0 {
		resp.Company = &o.Company
	}
	return resp
}

func (h *handler) newSyncStatusResp(s company.SyncStatus) syncStatusResp {
	inFlight := make(map[string]int, len(company.Ops))
	for _, op := range company.Ops {
		inFlight[string(op)] = s.InFlight[op]
	}
	recent := s.Recent
	if recent == nil {
		recent = []company.Event{}
	}
	return syncStatusResp{
		Busy:     s.Busy,
		InFlight: inFlight,
		Recent:   recent,
	}
}

func newFieldErrors(fields []gateway.FieldError) []fieldErrorResp {
	out := make([]fieldErrorResp, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldErrorResp{Field: f.Field(), Message: f.Msg, Type: f.Type})
	}
	return out
}

func nonNil(records []model.Company) []model.Company {
	if records == nil {
		return []model.Company{}
	}
	return records
}
