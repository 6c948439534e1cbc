package tui

import (
	"github.com/csheth/numeral/internal/convert"
	"github.com/csheth/numeral/internal/theme"
	"github.com/csheth/numeral/internal/validate"
)

// Status is the lifecycle of the conversion request.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Conversion holds the current conversion outcome. Text is set for
// StatusSuccess and Message for StatusFailure.
type Conversion struct {
	Status  Status
	Text    string
	Message string
}

// State is everything the form displays.
type State struct {
	Input      string
	Validation validate.Result
	Conversion Conversion
	Theme      theme.Theme
	// Generation identifies the latest request. Settlements carrying any
	// other value are dropped.
	Generation uint64
}

// NewState returns the initial state for the given theme.
func NewState(t theme.Theme) State {
	return State{Validation: validate.Validate(""), Theme: t}
}

// ShowInlineError reports whether the validation message should be rendered
// next to the input.
func (s State) ShowInlineError() bool {
	return s.Validation.Invalid() && s.Input != ""
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// InputChanged carries the new raw text of the field.
type InputChanged struct {
	Text string
}

// SubmitRequested is the convert button or Enter in the field.
type SubmitRequested struct{}

// ConversionSettled reports the outcome of the request tagged Generation.
type ConversionSettled struct {
	Generation uint64
	Output     string
	Err        error
}

// ThemeToggled flips the color scheme.
type ThemeToggled struct{}

func (InputChanged) event()      {}
func (SubmitRequested) event()   {}
func (ConversionSettled) event() {}
func (ThemeToggled) event()      {}

// Request asks the caller to run one conversion and report back with a
// ConversionSettled of the same Generation.
type Request struct {
	Generation uint64
	N          int
}

// Reduce applies ev to s. It never performs I/O; a non-nil Request is the
// only side effect it asks for.
func Reduce(s State, ev Event) (State, *Request) {
	switch ev := ev.(type) {
	case InputChanged:
		s.Input = ev.Text
		s.Validation = validate.Validate(ev.Text)
		s.Conversion = Conversion{Status: StatusIdle}
		s.Generation++
		return s, nil
	case SubmitRequested:
		if !s.Validation.Valid() {
			return s, nil
		}
		s.Generation++
		s.Conversion = Conversion{Status: StatusPending}
		return s, &Request{Generation: s.Generation, N: s.Validation.Value}
	case ConversionSettled:
		if ev.Generation != s.Generation || s.Conversion.Status != StatusPending {
			return s, nil
		}
		if ev.Err != nil {
			s.Conversion = Conversion{Status: StatusFailure, Message: convert.UserMessage(ev.Err)}
		} else {
			s.Conversion = Conversion{Status: StatusSuccess, Text: ev.Output}
		}
		return s, nil
	case ThemeToggled:
		s.Theme = s.Theme.Toggle()
		return s, nil
	default:
		return s, nil
	}
}
