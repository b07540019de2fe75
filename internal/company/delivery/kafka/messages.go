package kafka

import "time"

// SyncEventMessage is the record body published for each sync event.
type SyncEventMessage struct {
	EventID    string    `json:"event_id"`
	Op         string    `json:"op"`
	Outcome    string    `json:"outcome"`
	CompanyID  int64     `json:"company_id,omitempty"`
	Seq        uint64    `json:"seq,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}
