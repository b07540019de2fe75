package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a gateway failure.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrTransport    = errors.New("gateway: transport failure")
	ErrUnauthorized = errors.New("gateway: unauthorized")
	ErrValidation   = errors.New("gateway: rejected by server")
	ErrServer       = errors.New("gateway: server failure")
)

// FieldError is one entry of a field-level rejection.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// Field returns the last path element of Loc, which names the offending field.
func (f FieldError) Field() string {
	if len(f.Loc) == 0 {
		return ""
	}
	return fmt.Sprint(f.Loc[len(f.Loc)-1])
}

// Error is the failure returned by every gateway operation.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int // 0 for transport failures
	// Message is the server's detail for validation failures, verbatim.
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("gateway.%s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (%d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrServer:
		return e.Kind == KindServer
	}
	return false
}

// KindOf returns the kind of a gateway failure, or "" when err is not one.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return ""
}

func transportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

// statusError classifies a non-2xx response.
func statusError(op string, status int, body []byte) *Error {
	e := &Error{Op: op, StatusCode: status}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case status >= 400 && status < 500:
		e.Kind = KindValidation
		e.Message, e.Fields = parseDetail(body)
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
	default:
		e.Kind = KindServer
	}
	return e
}

// parseDetail reads a {"detail": ...} body. detail is either a message or a
// list of field errors.
func parseDetail(body []byte) (string, []FieldError) {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(body)), nil
	}

	var msg string
	if err := json.Unmarshal(envelope.Detail, &msg); err == nil {
		return msg, nil
	}

	var fields []FieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			if name := f.Field(); name != "" {
				msgs = append(msgs, name+": "+f.Msg)
			} else {
				msgs = append(msgs, f.Msg)
			}
		}
		return strings.Join(msgs, "; "), fields
	}

	return string(envelope.Detail), nil
}
