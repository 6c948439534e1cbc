// Package validate checks raw form input before anything is sent to the
// conversion service.
package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Bounds of the numbers the conversion service accepts.
const (
	MinValue = 1
	MaxValue = 3999
)

// Kind tags the variant held by a Result.
type Kind int

const (
	KindEmpty Kind = iota
	KindValid
	KindInvalid
)

// Reason explains why input was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotANumber
	ReasonDecimalNotAllowed
	ReasonNonPositive
	ReasonOutOfRange
)

var reasonMessages = map[Reason]string{
	ReasonNotANumber:        "Please enter a valid number.",
	ReasonDecimalNotAllowed: "Number cannot be a decimal.",
	ReasonNonPositive:       "Roman numerals do not support negative numbers or zero.",
	ReasonOutOfRange:        "Value must not exceed 3999.",
}

// Message returns the display text for r, or "" for ReasonNone.
func (r Reason) Message() string {
	return reasonMessages[r]
}

func (r Reason) String() string {
	switch r {
	case ReasonNotANumber:
		return "NotANumber"
	case ReasonDecimalNotAllowed:
		return "DecimalNotAllowed"
	case ReasonNonPositive:
		return "NonPositive"
	case ReasonOutOfRange:
		return "OutOfRange"
	default:
		return "None"
	}
}

// Result is the outcome of validating one raw input string. Value is only
// meaningful for KindValid and Reason only for KindInvalid.
type Result struct {
	Kind   Kind
	Value  int
	Reason Reason
}

// Valid reports whether r holds a number ready for submission.
func (r Result) Valid() bool {
	return r.Kind == KindValid
}

// Invalid reports whether r carries a rejection reason.
func (r Result) Invalid() bool {
	return r.Kind == KindInvalid
}

// Message is the inline error text for an invalid result.
func (r Result) Message() string {
	if r.Kind != KindInvalid {
		return ""
	}
	return r.Reason.Message()
}

// Err returns the rejection as an error, or nil when r is not invalid.
func (r Result) Err() error {
	if r.Kind != KindInvalid {
		return nil
	}
	return errors.New(r.Reason.Message())
}

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*)?$`)

// Validate maps raw text to a Result. The rules apply in order and the first
// match wins.
func Validate(raw string) Result {
	if raw == "" {
		return Result{Kind: KindEmpty}
	}
	if !decimalPattern.MatchString(raw) {
		return invalid(ReasonNotANumber)
	}
	if strings.Contains(raw, ".") {
		return invalid(ReasonDecimalNotAllowed)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Only ErrRange is possible past the pattern check.
		if strings.HasPrefix(raw, "-") {
			return invalid(ReasonNonPositive)
		}
		return invalid(ReasonOutOfRange)
	}
	if n < MinValue {
		return invalid(ReasonNonPositive)
	}
	if n > MaxValue {
		return invalid(ReasonOutOfRange)
	}
	return Result{Kind: KindValid, Value: int(n)}
}

func invalid(reason Reason) Result {
	return Result{Kind: KindInvalid, Reason: reason}
}
