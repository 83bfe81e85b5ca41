package gateway

import "fmt"

// genericErrorMessage is surfaced when an error response carries no message
// body, matching what the upstream promises for its error contract.
const genericErrorMessage = "An error occurred"

// TransportError means the request never produced a usable answer: the
// connection failed, the body could not be decoded, or the upstream fell
// over with a 5xx. Nothing about the payload itself can be concluded.
type TransportError struct {
	Op      string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError means the upstream re-validated an otherwise well-formed
// payload and refused it.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

// NotFoundError means the target record no longer exists upstream.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
