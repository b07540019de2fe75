package company

import (
	"time"

	"dashboard-srv/internal/model"
)

// Op names a kind of synchronization operation.
type Op string

const (
	OpList    Op = "list"
	OpGet     Op = "get"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpTrends  Op = "trends"
	OpRefresh Op = "refresh"
)

// Ops lists every operation kind in a stable order.
var Ops = []Op{OpList, OpGet, OpCreate, OpUpdate, OpDelete, OpTrends, OpRefresh}

// Outcome of a finished operation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	// OutcomeStale marks a successful response that arrived after a newer one
	// of the same kind had already been applied.
	OutcomeStale Outcome = "stale"
)

// Event is reported once per finished operation.
type Event struct {
	ID        string    `json:"id"`
	Op        Op        `json:"op"`
	Outcome   Outcome   `json:"outcome"`
	CompanyID int64     `json:"company_id,omitempty"`
	Seq       uint64    `json:"seq,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Duration  int64     `json:"duration_ms"`
	At        time.Time `json:"at"`
}

// Filters are the active view criteria. Empty fields match everything.
type Filters struct {
	Search   string `json:"search"`
	Industry string `json:"industry"`
	Country  string `json:"country"`
}

// ListInput selects the page to fetch.
type ListInput struct {
	Page     int
	Limit    int64
	Search   string
	Industry string
}

// ListOutput is the fetched page.
type ListOutput struct {
	Companies []model.Company
	Total     int64
	Page      int
	Limit     int64
	// Applied is false when a newer list had already been applied to the cache.
	Applied bool
}

// RefreshOutput is the refresh summary plus the re-fetched company.
type RefreshOutput struct {
	Summary model.RefreshSummary
	Company model.Company
	// Company is the re-fetched record, zero when that fetch failed.
	// Reloaded reports whether it overwrote a cached copy.
	Reloaded bool
}

// Facets are the distinct categorical values across the cache.
type Facets struct {
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
}

// MentionBreakdown aggregates mention counts by sentiment.
type MentionBreakdown struct {
	Total           int64   `json:"total"`
	Positive        int64   `json:"positive"`
	Neutral         int64   `json:"neutral"`
	Negative        int64   `json:"negative"`
	PositivePercent float64 `json:"positive_percent"`
	NeutralPercent  float64 `json:"neutral_percent"`
	NegativePercent float64 `json:"negative_percent"`
}

// Stats aggregates the whole unfiltered cache.
type Stats struct {
	Count             int              `json:"count"`
	Total             int64            `json:"total"`
	AverageReputation float64          `json:"average_reputation"`
	AverageRisk       float64          `json:"average_risk"`
	Mentions          MentionBreakdown `json:"mentions"`
	ByIndustry        []BucketCount    `json:"by_industry"`
}

// BucketCount is a facet value with the number of cached records carrying it.
type BucketCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// View is the filtered view together with the criteria that produced it.
type View struct {
	Companies []model.Company
	Filters   Filters
	Total     int64
	Cached    int
}

// SyncStatus reports in-flight work and recent outcomes.
type SyncStatus struct {
	Busy     bool
	InFlight map[Op]int
	Recent   []Event
}
