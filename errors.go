package countryatlas

import (
	"errors"
	"fmt"
)

var (
	ErrEnvelopeShape        = errors.New("response envelope is not [metadata, rows]")
	ErrDirectoryUnavailable = errors.New("country directory unavailable")
)

type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error from %s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("transport error from %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(endpoint string, statusCode int, err error) *TransportError {
	return &TransportError{Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

type DecodeError struct {
	Endpoint string
	Message  string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode error from %s: %s: %v", e.Endpoint, e.Message, e.Err)
	}
	return fmt.Sprintf("decode error from %s: %s", e.Endpoint, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecodeError(endpoint, message string, err error) *DecodeError {
	return &DecodeError{Endpoint: endpoint, Message: message, Err: err}
}

// AggregationError is the only error that escapes an aggregation run. It
// wraps the directory fetch failure that aborted the run; indicator failures
// never surface here.
type AggregationError struct {
	Stage string
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation aborted at %s: %v", e.Stage, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

func (e *AggregationError) Is(target error) bool {
	return target == ErrDirectoryUnavailable && e.Stage == "directory"
}

func NewAggregationError(stage string, err error) *AggregationError {
	return &AggregationError{Stage: stage, Err: err}
}

func errorKind(err error) string {
	var transport *TransportError
	var decode *DecodeError
	switch {
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &decode):
		return "decode"
	default:
		return "other"
	}
}
