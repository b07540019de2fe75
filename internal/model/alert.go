package model

// Alert severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert is a reputation alert raised for a company.
type Alert struct {
	ID         int64   `json:"id"`
	CompanyID  int64   `json:"company_id"`
	AlertType  string  `json:"alert_type"`
	Severity   string  `json:"severity"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	IsRead     bool    `json:"is_read"`
	IsResolved bool    `json:"is_resolved"`
	CreatedAt  string  `json:"created_at"`
	ResolvedAt *string `json:"resolved_at,omitempty"`
}
