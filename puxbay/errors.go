package puxbay

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidAPIKey is returned by New when the key lacks the pb_ prefix.
	ErrInvalidAPIKey = errors.New("invalid API key format: must start with 'pb_'")

	// ErrInvalidConfig is returned by New when an option is out of range.
	ErrInvalidConfig = errors.New("invalid client configuration")

	// ErrUnauthorized matches 401 responses.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrRateLimited matches 429 responses that outlived the retry budget.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrValidation matches 400 responses.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrServer matches 5xx responses that outlived the retry budget.
	ErrServer = errors.New("server error")

	// ErrTransport matches network-level failures.
	ErrTransport = errors.New("transport failure")

	// ErrDecode matches successful responses whose body could not be decoded.
	ErrDecode = errors.New("malformed response")

	// ErrMissingID is returned before any I/O when a resource ID is empty.
	ErrMissingID = errors.New("resource ID is required")

	// ErrEmptyBody is wrapped by DecodeError when a result was expected but
	// the response carried no body.
	ErrEmptyBody = errors.New("empty response body")
)

const unknownErrorMessage = "unknown error"

// ErrorKind classifies every error the SDK returns.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidAPIKey
	KindAuthentication
	KindRateLimit
	KindValidation
	KindNotFound
	KindServer
	KindAPI
	KindTransport
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidAPIKey:
		return "invalid_api_key"
	case KindAuthentication:
		return "authentication"
	case KindRateLimit:
		return "rate_limit"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// KindOf reports the kind of err. Errors that did not come from the SDK are
// KindUnknown.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	var transportErr *TransportError
	var decodeErr *DecodeError

	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidAPIKey):
		return KindInvalidAPIKey
	case errors.As(err, &apiErr):
		return apiErr.Kind
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &decodeErr):
		return KindDecode
	default:
		return KindUnknown
	}
}

// APIError is a non-2xx response from the Puxbay API.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
	RequestID  string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("puxbay %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// Is implements errors.Is for sentinel matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindAuthentication:
		return target == ErrUnauthorized
	case KindRateLimit:
		return target == ErrRateLimited
	case KindValidation:
		return target == ErrValidation
	case KindNotFound:
		return target == ErrNotFound
	case KindServer:
		return target == ErrServer
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsRetryable reports whether the status is one the dispatcher retries.
func (e *APIError) IsRetryable() bool {
	return isRetryableStatus(e.StatusCode)
}

// TransportError is a failure to get any response from the server.
type TransportError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError is a 2xx response whose body did not fit the expected type.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// errorEnvelope is the error body shape the API returns.
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// errorMessage extracts detail, then message, then the fixed fallback.
func errorMessage(body []byte) string {
	var env errorEnvelope
	if len(body) == 0 || json.Unmarshal(body, &env) != nil {
		return unknownErrorMessage
	}
	if env.Detail != "" {
		return env.Detail
	}
	if env.Message != "" {
		return env.Message
	}
	return unknownErrorMessage
}

// statusKind maps a non-2xx status to its error kind.
func statusKind(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusTooManyRequests:
		return KindRateLimit
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	}
	if statusCode >= 500 && statusCode <= 599 {
		return KindServer
	}
	return KindAPI
}

// newAPIError classifies a terminal non-2xx response.
func newAPIError(statusCode int, body []byte, requestID string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Kind:       statusKind(statusCode),
		Message:    errorMessage(body),
		RequestID:  requestID,
		Body:       body,
	}
}
