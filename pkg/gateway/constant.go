package gateway

import "time"

const (
	// DefaultBaseURL is the upstream API root.
	DefaultBaseURL = "http://localhost:8000/api/v1"
	// DefaultTimeout bounds every request. Expiry surfaces as a transport failure.
	DefaultTimeout = 30 * time.Second
	// DefaultLoginPath is where the UI is sent to re-authenticate.
	DefaultLoginPath = "/login"

	DefaultTrendDays   = 90
	MinTrendDays       = 7
	MaxTrendDays       = 365
	DefaultRefreshDays = 30
	MinRefreshDays     = 1
	MaxRefreshDays     = 365

	// HeaderTotalCount carries the total of the unfiltered list query.
	HeaderTotalCount = "x-total-count"
)

const (
	PathCompanies = "/companies"
	PathAlerts    = "/alerts"
	PathHealth    = "/health"
)
