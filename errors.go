package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// APIError captures a classified Web API failure: a stable human-readable
// category for the status code plus whatever structured detail the server
// attached to the response body.
type APIError struct {
	Status   int
	Category string
	Detail   json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("sdk: request failed with status %d", e.Status)
	}
	return e.Category
}

// errorCategories maps well-known status codes to their fixed category text.
var errorCategories = map[int]string{
	http.StatusBadRequest:            "Bad Request: The request could not be understood or was missing required parameters.",
	http.StatusUnauthorized:          "Unauthorized: Missing or invalid authentication credentials.",
	http.StatusForbidden:             "Forbidden: You do not have permission to perform this action.",
	http.StatusNotFound:              "Not Found: The requested resource could not be found.",
	http.StatusRequestEntityTooLarge: "Payload Too Large: The request entity is larger than the server is able to process.",
	http.StatusInternalServerError:   "Internal Server Error: An unexpected error occurred on the server.",
	http.StatusServiceUnavailable:    "Service Unavailable: The server is currently unable to handle the request.",
}

// classifyResponse turns a non-2xx response into an *APIError. It always
// succeeds: the body decode is best-effort and degrades to absent detail.
func classifyResponse(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	if category, ok := errorCategories[resp.StatusCode]; ok {
		apiErr.Category = category
	} else {
		apiErr.Category = fmt.Sprintf("Unexpected error occurred: %d - %s", resp.StatusCode, statusText(resp))
	}
	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 && json.Valid(data) {
		apiErr.Detail = json.RawMessage(data)
	}
	return apiErr
}

// statusText extracts the reason phrase from resp.Status ("404 Not Found"),
// falling back to the stdlib text when the server sent none.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsPayloadTooLarge reports whether err is an APIError with status 413.
func IsPayloadTooLarge(err error) bool { return hasStatus(err, http.StatusRequestEntityTooLarge) }

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// ConfigError reports invalid client configuration.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "sdk: invalid config: " + e.Reason }

// UploadError aggregates chunk failures from a chunked file upload. Every
// chunk is attempted before the error is produced.
type UploadError struct {
	Failed int
	Total  int
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("sdk: file upload failed: %d of %d chunks failed", e.Failed, e.Total)
}
