package ucmdb

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseError_Error(t *testing.T) {
	withMessage := &ResponseError{StatusCode: 404, Message: "View not found"}
	assert.Equal(t, "server returned status 404: View not found", withMessage.Error())

	bare := &ResponseError{StatusCode: 500}
	assert.Equal(t, "server returned status 500", bare.Error())
}

func TestVersionError_Error(t *testing.T) {
	err := &VersionError{
		Operation: "ListPackages",
		Required:  "2023.05",
		Actual:    "23.1",
		ServerID:  "cmdb.example.com",
	}

	assert.Contains(t, err.Error(), "ListPackages")
	assert.Contains(t, err.Error(), "2023.05")
	assert.Contains(t, err.Error(), "23.1")
}

func TestParseResponseError(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        []byte
		wantMessage string
	}{
		{
			name:        "json body",
			statusCode:  404,
			body:        []byte(`{"error": "View not found", "details": "no view named Oracle"}`),
			wantMessage: "View not found",
		},
		{
			name:        "non-json body kept verbatim",
			statusCode:  502,
			body:        []byte("Bad Gateway"),
			wantMessage: "Bad Gateway",
		},
		{
			name:        "empty body",
			statusCode:  500,
			body:        nil,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			respErr := ParseResponseError(tt.statusCode, tt.body)
			assert.Equal(t, tt.statusCode, respErr.StatusCode)
			assert.Equal(t, tt.wantMessage, respErr.Message)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := fmt.Errorf("getting ci: %w", &ResponseError{StatusCode: http.StatusNotFound})
	unauthorized := fmt.Errorf("listing probes: %w", &ResponseError{StatusCode: http.StatusUnauthorized})
	forbidden := fmt.Errorf("deleting package: %w", &ResponseError{StatusCode: http.StatusForbidden})
	versionErr := fmt.Errorf("gate: %w", &VersionError{Operation: "ListPackages"})
	plain := errors.New("connection refused")

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.False(t, IsNotFound(plain))

	assert.True(t, IsUnauthorized(unauthorized))
	assert.False(t, IsUnauthorized(notFound))

	assert.True(t, IsForbidden(forbidden))
	assert.False(t, IsForbidden(notFound))

	assert.True(t, IsVersionError(versionErr))
	assert.False(t, IsVersionError(notFound))
}
