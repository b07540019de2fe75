package http

import (
	"dashboard-srv/internal/alert"
	"dashboard-srv/internal/model"
)

type listReq struct {
	CompanyID int64 `form:"company_id"`
	Unread    bool  `form:"unread"`
}

func (r listReq) toInput() alert.ListInput {
	return alert.ListInput{
		CompanyID:  r.CompanyID,
		UnreadOnly: r.Unread,
	}
}

type listResp struct {
	Alerts     []model.Alert  `json:"alerts"`
	Unread     int            `json:"unread"`
	BySeverity map[string]int `json:"by_severity"`
}

func (h *handler) newListResp(o alert.ListOutput) listResp {
	return listResp{
		Alerts:     o.Alerts,
		Unread:     o.Unread,
		BySeverity: o.BySeverity,
	}
}
