package alert

import "dashboard-srv/internal/model"

// ListInput filters the alert list. Zero values match everything.
type ListInput struct {
	CompanyID  int64
	UnreadOnly bool
}

type ListOutput struct {
	Alerts     []model.Alert
	Unread     int
	BySeverity map[string]int
}
