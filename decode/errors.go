package decode

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rvue/rvue/events"
)

// Kind identifies the required interpretation of an attribute value.
type Kind int

const (
	// KindInt is an integer attribute
	KindInt Kind = iota
	// KindFloat is a floating point attribute
	KindFloat
	// KindBool is a boolean attribute
	KindBool
	// KindDate is a M/D/YYYY date attribute
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MissingAttributeError reports a required attribute absent from an
// element.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing required attribute %q", e.Name)
}

// ParseError reports an attribute present but not parseable as its
// required type.
type ParseError struct {
	Kind      Kind
	Attribute string
	Raw       string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("attribute %q: %q is not a valid %s: %v",
		e.Attribute, e.Raw, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnexpectedEventError reports an event occurring where the decode
// protocol did not expect one, carrying the offending event.
type UnexpectedEventError struct {
	Event events.Event
}

func (e *UnexpectedEventError) Error() string {
	return fmt.Sprintf("unexpected event %s", e.Event)
}

// ErrUnexpectedEnd is returned when the event sequence ends before a
// required closing tag was seen.
var ErrUnexpectedEnd = errors.New("unexpected end of event stream")
