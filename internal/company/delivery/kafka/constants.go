package kafka

const (
	// HeaderEventType routes records without decoding them.
	HeaderEventType = "event_type"
	HeaderOutcome   = "outcome"

	EventTypePrefix = "company.sync."
)

// EventType returns the event_type header value for op.
func EventType(op string) string {
	return EventTypePrefix + op
}
