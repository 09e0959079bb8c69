package fivestar

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorError(t *testing.T) {
	withStatus := &APIError{Message: "Invalid type", StatusCode: 400}
	assert.Equal(t, "fivestar: Invalid type (HTTP 400)", withStatus.Error())

	withoutStatus := &APIError{Message: "Failed to deserialize response"}
	assert.Equal(t, "fivestar: Failed to deserialize response", withoutStatus.Error())
}

func TestAPIErrorFromBody(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "error field",
			status:      400,
			body:        `{"error":"Invalid type"}`,
			wantMessage: "Invalid type",
		},
		{
			name:        "message field fallback",
			status:      403,
			body:        `{"message":"Customer not verified"}`,
			wantMessage: "Customer not verified",
		},
		{
			name:        "error wins over message",
			status:      400,
			body:        `{"error":"a","message":"b"}`,
			wantMessage: "a",
		},
		{
			name:        "empty fields fall back to status",
			status:      500,
			body:        `{"error":"","message":""}`,
			wantMessage: "HTTP 500",
		},
		{
			name:        "invalid json falls back to status",
			status:      502,
			body:        `<html>bad gateway</html>`,
			wantMessage: "HTTP 502",
		},
		{
			name:        "empty body falls back to status",
			status:      504,
			body:        ``,
			wantMessage: "HTTP 504",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := apiErrorFromBody(tt.status, []byte(tt.body))

			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Message: "HTTP 404", StatusCode: http.StatusNotFound}))
	assert.False(t, IsNotFound(&APIError{Message: "HTTP 500", StatusCode: http.StatusInternalServerError}))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
	assert.False(t, IsNotFound(nil))
}
