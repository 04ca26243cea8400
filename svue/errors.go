package svue

import (
	"fmt"

	"github.com/pkg/errors"
)

// RemoteError is a service-level error the portal reported in place of
// the expected payload, carrying the portal's own message and stack
// trace.
type RemoteError struct {
	Message string
	Trace   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("portal error: %s", e.Message)
}

// ExpectedPayloadNotFoundError is returned when the expected top-level
// payload tag never appeared in the response and no portal error record
// was found either.
type ExpectedPayloadNotFoundError struct {
	Tag string
}

func (e *ExpectedPayloadNotFoundError) Error() string {
	return fmt.Sprintf("expected payload element <%s> not found in response", e.Tag)
}

// ErrResponseBodyNotFound is returned when the response envelope holds
// no result element at all.
var ErrResponseBodyNotFound = errors.New("result element not found in response envelope")
