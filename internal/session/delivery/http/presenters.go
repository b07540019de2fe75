package http

import (
	"dashboard-srv/internal/session"
	"dashboard-srv/pkg/response"
)

type loginReq struct {
	Token string `json:"token" binding:"required"`
}

type statusResp struct {
	Authenticated bool               `json:"authenticated"`
	Expired       bool               `json:"expired,omitempty"`
	Email         string             `json:"email,omitempty"`
	Role          string             `json:"role,omitempty"`
	ExpiresAt     *response.DateTime `json:"expires_at,omitempty"`
}

func (h *handler) newStatusResp(s session.Status) statusResp {
	resp := statusResp{
		Authenticated: s.Authenticated,
		Expired:       s.Expired,
		Email:         s.Email,
		Role:          s.Role,
	}
	if s.ExpiresAt != nil {
		exp := response.DateTime(*s.ExpiresAt)
		resp.ExpiresAt = &exp
	}
	return resp
}
