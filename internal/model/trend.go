package model

// Trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

type TrendPrediction struct {
	Date           string  `json:"date"`
	PredictedScore float64 `json:"predicted_score"`
	Confidence     float64 `json:"confidence"`
}

type SeasonalPattern struct {
	Type         string  `json:"type"`   // weekly | monthly
	Period       string  `json:"period"` // e.g. "Monday", "March"
	Score        float64 `json:"score"`
	Significance string  `json:"significance"`
}

// TrendAnalysis is computed upstream; this service only relays it.
type TrendAnalysis struct {
	Trend            string            `json:"trend"`
	Momentum         float64           `json:"momentum"`
	Predictions      []TrendPrediction `json:"predictions"`
	SeasonalPatterns []SeasonalPattern `json:"seasonal_patterns"`
	Volatility       float64           `json:"volatility"`
	Summary          string            `json:"summary"`
	TimeLabels       []string          `json:"time_labels,omitempty"`
	Scores           []float64         `json:"scores,omitempty"`
}

// CompanyTrends wraps a TrendAnalysis with the company it belongs to.
type CompanyTrends struct {
	CompanyID          int64         `json:"company_id"`
	CompanyName        string        `json:"company_name"`
	AnalysisPeriodDays int           `json:"analysis_period_days"`
	Trends             TrendAnalysis `json:"trends"`
	Summary            string        `json:"summary"`
}
