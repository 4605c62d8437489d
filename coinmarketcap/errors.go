package coinmarketcap

import (
	"errors"
	"fmt"
)

// ErrMissingStatus is returned when a response has no status.error_code
var ErrMissingStatus = errors.New("unable to retrieve 'status' key in response")

const unknownErrorMessage = "Unknown error"

// TransportError reports a request that did not get a response from the configured URL
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v. Check the configured URL", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a non-zero status.error_code
type APIError struct {
	Batch   string
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unable to fetch data for '%s': %s (error code %d)", e.Batch, e.Message, e.Code)
}
