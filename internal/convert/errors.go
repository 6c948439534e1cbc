package convert

import (
	"errors"
	"fmt"
)

// Kind classifies conversion failures.
type Kind int

const (
	KindUnreachable Kind = iota
	KindBadStatus
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindBadStatus:
		return "bad_status"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unreachable"
	}
}

const (
	msgMalformed   = "Invalid response from server"
	msgUnreachable = "Could not retrieve data. Please check your internet connection or try again later."
)

// Error carries the full detail of a failed conversion. Error() is meant for
// logs; UserMessage() is what the form shows.
type Error struct {
	Kind   Kind
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("convert %s: %s (status %d): %v", e.URL, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("convert %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns the fixed, display-safe text for the failure.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindBadStatus:
		return fmt.Sprintf("Server responded with status %d", e.Status)
	case KindMalformedResponse:
		return msgMalformed
	default:
		return msgUnreachable
	}
}

// UserMessage maps any error returned by a Client to display text. Errors
// that are not *Error are treated as transport failures.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.UserMessage()
	}
	return msgUnreachable
}
