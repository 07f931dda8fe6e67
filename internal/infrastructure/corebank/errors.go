package corebank

import (
	"errors"
	"fmt"
)

// GenericFailureMessage is shown when the API rejects a request without
// supplying remarks of its own.
const GenericFailureMessage = "The operation could not be completed. Please try again."

// AuthError is a 401/403 from the core-banking API. It forces the session
// back to anonymous; see the session guard.
type AuthError struct {
	StatusCode int
	Remarks    string
}

func (e *AuthError) Error() string {
	if e.Remarks != "" {
		return fmt.Sprintf("authentication rejected (status %d): %s", e.StatusCode, e.Remarks)
	}
	return fmt.Sprintf("authentication rejected (status %d)", e.StatusCode)
}

// APIError is a business-level rejection (e.g. insufficient funds). The
// server has confirmed the mutation did NOT happen.
type APIError struct {
	StatusCode int
	Remarks    string
}

func (e *APIError) Error() string {
	if e.Remarks != "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Remarks)
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// NetworkError is a transport failure or timeout. For mutating calls the
// true server state is unknown: the request may or may not have been
// applied before the connection broke.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Remarks extracts the user-visible failure text from an API client
// error. The API's literal remarks are surfaced verbatim when present,
// otherwise the generic fallback. Failures are never silently dropped.
func Remarks(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Remarks != "" {
		return apiErr.Remarks
	}
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Remarks != "" {
		return authErr.Remarks
	}
	return GenericFailureMessage
}

// IsAuth reports whether err is an authorization failure from the API.
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsNetwork reports whether err is a transport failure with an
// ambiguous outcome.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
