package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/templatehub/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURLOrPath(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"/uploads/a.png", true},
		{"https://cdn.example.com/a.png", true},
		{"http://example.com", true},
		{"", false},
		{"   ", false},
		{"ftp://example.com/a.png", false},
		{"images/a.png", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURLOrPath(tt.value))
		})
	}
}

type sampleRequest struct {
	Name  string   `json:"name" validate:"required,min=3"`
	Media []string `json:"media" validate:"dive,urlorpath"`
}

func TestParseAndValidate(t *testing.T) {
	validate := NewValidator()

	t.Run("Valid body", func(t *testing.T) {
		// Arrange
		body := `{"name":"demo","media":["/uploads/x.png"]}`
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		var dest sampleRequest

		// Act
		ok := ParseAndValidate(req, rr, &dest, validate)

		// Assert
		assert.True(t, ok)
		assert.Equal(t, "demo", dest.Name)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":`))
		rr := httptest.NewRecorder()
		var dest sampleRequest

		ok := ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		rr := httptest.NewRecorder()
		var dest sampleRequest

		ok := ParseAndValidate(req, rr, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Validation errors use JSON field names", func(t *testing.T) {
		body := `{"name":"ab","media":["relative.png"]}`
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		var dest sampleRequest

		ok := ParseAndValidate(req, rr, &dest, validate)

		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		assert.Len(t, resp.Error.Details, 2)
		assert.Contains(t, resp.Error.Details[0], "name")
		assert.Contains(t, resp.Error.Details[1], "media[0]")
	})
}
