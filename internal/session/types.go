package session

import "time"

// Status describes the stored token. Claims are read without verifying the signature.
type Status struct {
	Authenticated bool
	Expired       bool
	Email         string
	Role          string
	ExpiresAt     *time.Time
}
