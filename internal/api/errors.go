package api

import "fmt"

// AuthError means no usable token was available. The request was never
// sent; signing in again is the only remedy.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("api: not authenticated: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from the API.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// ServerError is a transport or decode failure on an otherwise well-formed
// request: connection refused, timeout, malformed response body.
type ServerError struct {
	Method string
	Path   string
	Err    error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("api: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *ServerError) Unwrap() error { return e.Err }
