package honeycomb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrorKind is the semantic classification of a failed API call.
type ErrorKind string

// Error kinds surfaced to callers.
const (
	ErrorKindAuth       ErrorKind = "auth"
	ErrorKindForbidden  ErrorKind = "forbidden"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindRateLimit  ErrorKind = "rate_limit"
	ErrorKindServer     ErrorKind = "server"
	ErrorKindTimeout    ErrorKind = "timeout"
	ErrorKindConnection ErrorKind = "connection"
)

// Sentinel errors per kind, for errors.Is checks.
var (
	ErrAuth       = errors.New("honeycomb: authentication failed")
	ErrForbidden  = errors.New("honeycomb: forbidden")
	ErrNotFound   = errors.New("honeycomb: not found")
	ErrValidation = errors.New("honeycomb: validation failed")
	ErrRateLimit  = errors.New("honeycomb: rate limited")
	ErrServer     = errors.New("honeycomb: server error")
	ErrTimeout    = errors.New("honeycomb: request timed out")
	ErrConnection = errors.New("honeycomb: connection failed")
)

// ValidationDetail describes a single field-level validation failure.
type ValidationDetail struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// APIError is the classified, terminal failure of a logical API operation.
// It is constructed once by the classifier and never mutated.
type APIError struct {
	Kind       ErrorKind
	StatusCode int    // 0 for transport-level failures
	Message    string
	RequestID  string
	RetryAfter time.Duration // 0 when the server provided no hint
	Details    []ValidationDetail
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder

	b.WriteString("honeycomb: ")
	b.WriteString(e.Message)

	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status: %d)", e.StatusCode)
	}

	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request-id: %s)", e.RequestID)
	}

	for _, d := range e.Details {
		fmt.Fprintf(&b, "\n  %s: %s", d.Field, d.Description)
	}

	return b.String()
}

// Unwrap maps the error to its kind sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case ErrorKindAuth:
		return ErrAuth
	case ErrorKindForbidden:
		return ErrForbidden
	case ErrorKindNotFound:
		return ErrNotFound
	case ErrorKindValidation:
		return ErrValidation
	case ErrorKindRateLimit:
		return ErrRateLimit
	case ErrorKindServer:
		return ErrServer
	case ErrorKindTimeout:
		return ErrTimeout
	case ErrorKindConnection:
		return ErrConnection
	default:
		return ErrServer
	}
}

// IsNotFound reports whether err is a classified not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuth reports whether err is a classified authentication error.
func IsAuth(err error) bool { return errors.Is(err, ErrAuth) }

// IsForbidden reports whether err is a classified authorization error.
func IsForbidden(err error) bool { return errors.Is(err, ErrForbidden) }

// IsValidation reports whether err is a classified validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsRateLimit reports whether err is a classified rate-limit error.
func IsRateLimit(err error) bool { return errors.Is(err, ErrRateLimit) }

// requestIDHeaders are the header names known to carry a request-correlation
// identifier, in lookup order.
var requestIDHeaders = []string{
	"X-Request-Id",
	"X-Honeycomb-Request-Id",
	"X-Amzn-Trace-Id",
}

// errorBody covers the error response shapes the API is known to produce:
// a bare {"error": "..."} object, an RFC 7807 problem object, and a
// JSON:API-style errors array. Honeycomb's validation responses additionally
// carry a type_detail array with field-level descriptions.
type errorBody struct {
	Error      string             `json:"error"`
	Title      string             `json:"title"`
	Detail     string             `json:"detail"`
	Status     int                `json:"status"`
	TypeDetail []ValidationDetail `json:"type_detail"`
	Errors     []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Source struct {
			Pointer string `json:"pointer"`
		} `json:"source"`
	} `json:"errors"`
}

// Classify maps a terminal HTTP response to an APIError. It tolerates any
// body content: if the body is not recognizable JSON the message falls back
// to the status text. Classify never fails.
func Classify(statusCode int, header http.Header, body []byte) *APIError {
	apiErr := &APIError{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    messageForStatus(statusCode),
		RequestID:  requestIDFromHeader(header),
	}

	if apiErr.Kind == ErrorKindRateLimit {
		apiErr.RetryAfter = ParseRetryAfter(header.Get("Retry-After"), time.Now())
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	switch {
	case parsed.Error != "":
		apiErr.Message = parsed.Error
	case parsed.Detail != "":
		apiErr.Message = parsed.Detail
	case parsed.Title != "":
		apiErr.Message = parsed.Title
	case len(parsed.Errors) > 0:
		apiErr.Message = firstNonEmpty(parsed.Errors[0].Detail, parsed.Errors[0].Title)
	}

	if apiErr.Kind == ErrorKindValidation {
		apiErr.Details = validationDetails(&parsed)
	}

	return apiErr
}

// ClassifyTransport maps a transport-level failure (no HTTP response) to an
// APIError of kind Timeout or Connection.
func ClassifyTransport(err error) *APIError {
	kind := ErrorKindConnection

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		kind = ErrorKindTimeout
	} else if errors.Is(err, os.ErrDeadlineExceeded) {
		kind = ErrorKindTimeout
	} else if strings.Contains(err.Error(), "context deadline exceeded") {
		kind = ErrorKindTimeout
	}

	// Unwrap url.Error for a cleaner message.
	var urlErr *url.Error
	msg := err.Error()

	if errors.As(err, &urlErr) {
		msg = urlErr.Err.Error()
	}

	return &APIError{
		Kind:    kind,
		Message: msg,
	}
}

// ParseRetryAfter interprets a Retry-After header value, either a number of
// seconds or an HTTP date. Returns 0 when the value is absent or malformed;
// past dates clamp to 0.
func ParseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}

	if secs, err := strconv.ParseFloat(value, 64); err == nil {
		if secs < 0 {
			return 0
		}

		return time.Duration(secs * float64(time.Second))
	}

	if when, err := http.ParseTime(value); err == nil {
		delay := when.Sub(now)
		if delay < 0 {
			return 0
		}

		return delay
	}

	return 0
}

func kindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrorKindAuth
	case http.StatusForbidden:
		return ErrorKindForbidden
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrorKindValidation
	case http.StatusTooManyRequests:
		return ErrorKindRateLimit
	default:
		return ErrorKindServer
	}
}

func messageForStatus(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		text = "unexpected response"
	}

	return fmt.Sprintf("%s (HTTP %d)", text, statusCode)
}

func requestIDFromHeader(header http.Header) string {
	for _, name := range requestIDHeaders {
		if v := header.Get(name); v != "" {
			return v
		}
	}

	return ""
}

func validationDetails(parsed *errorBody) []ValidationDetail {
	if len(parsed.TypeDetail) > 0 {
		details := make([]ValidationDetail, len(parsed.TypeDetail))
		copy(details, parsed.TypeDetail)

		return details
	}

	if len(parsed.Errors) == 0 {
		return nil
	}

	details := make([]ValidationDetail, 0, len(parsed.Errors))

	for _, e := range parsed.Errors {
		details = append(details, ValidationDetail{
			Field:       strings.TrimPrefix(e.Source.Pointer, "/data/attributes/"),
			Description: firstNonEmpty(e.Detail, e.Title),
		})
	}

	return details
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
