package fivestar

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const deserializeErrorMessage = "Failed to deserialize response"

// APIError is the single error type for failed FiveStar API calls.
// StatusCode is zero when the failure was local to the client, such as a
// 200 response whose body could not be deserialized.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fivestar: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("fivestar: %s", e.Message)
}

// newDeserializeError reports a 200 response whose body did not match the
// expected shape.
func newDeserializeError() *APIError {
	return &APIError{Message: deserializeErrorMessage}
}

// newStatusError reports a non-200 response with no usable error body.
func newStatusError(status int) *APIError {
	return &APIError{Message: fmt.Sprintf("HTTP %d", status), StatusCode: status}
}

// apiErrorFromBody builds the error for a non-200 response. The body is
// decoded best-effort: the message comes from the payload's "error" field,
// then "message", then the generic HTTP status line. A body that is not valid
// JSON degrades silently to the generic message.
func apiErrorFromBody(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &APIError{Message: payload.Error, StatusCode: status}
		}
		if payload.Message != "" {
			return &APIError{Message: payload.Message, StatusCode: status}
		}
	}
	return newStatusError(status)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
