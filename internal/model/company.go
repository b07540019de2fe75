package model

// Company is a monitored company as returned by the upstream API.
// Timestamps are kept as the server renders them and are never computed on.
type Company struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	LegalName        string         `json:"legal_name,omitempty"`
	Industry         string         `json:"industry"`
	Website          string         `json:"website,omitempty"`
	Country          string         `json:"country"`
	Description      string         `json:"description,omitempty"`
	ReputationScore  float64        `json:"reputation_score"`
	ReputationTrend  float64        `json:"reputation_trend"`
	TotalMentions    int64          `json:"total_mentions"`
	PositiveMentions int64          `json:"positive_mentions"`
	NeutralMentions  int64          `json:"neutral_mentions"`
	NegativeMentions int64          `json:"negative_mentions"`
	RiskScore        float64        `json:"risk_score"`
	RiskFactors      []string       `json:"risk_factors"`
	SourcesConfig    map[string]any `json:"sources_config"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
	LastAnalyzed     *string        `json:"last_analyzed,omitempty"`
}

// CompanyDraft is the payload for creating a company.
type CompanyDraft struct {
	Name          string         `json:"name"`
	LegalName     string         `json:"legal_name,omitempty"`
	Industry      string         `json:"industry"`
	Website       string         `json:"website,omitempty"`
	Country       string         `json:"country"`
	Description   string         `json:"description,omitempty"`
	SourcesConfig map[string]any `json:"sources_config,omitempty"`
}

// CompanyPatch is a partial update. Nil fields are not sent.
type CompanyPatch struct {
	Name          *string        `json:"name,omitempty"`
	LegalName     *string        `json:"legal_name,omitempty"`
	Industry      *string        `json:"industry,omitempty"`
	Website       *string        `json:"website,omitempty"`
	Country       *string        `json:"country,omitempty"`
	Description   *string        `json:"description,omitempty"`
	SourcesConfig map[string]any `json:"sources_config,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.LegalName == nil && p.Industry == nil &&
		p.Website == nil && p.Country == nil && p.Description == nil &&
		p.SourcesConfig == nil
}

// RefreshSummary is the result of a manual data refresh.
type RefreshSummary struct {
	Message       string `json:"message"`
	NewArticles   int64  `json:"new_articles"`
	TotalMentions int64  `json:"total_mentions"`
}
