package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzform/shared/constant"
	"tzform/shared/failure"
	"tzform/transport/http/response"
)

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"zone": "Europe/Berlin"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, "nosniff", rec.Header().Get(constant.ResponseHeaderContentTypeOptions))
	assert.Equal(t, map[string]any{"zone": "Europe/Berlin"}, body(t, rec)["data"])
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{
			name:     "failure message is shown",
			err:      fmt.Errorf("submit: %w", failure.UnprocessableEntity(errors.New(`unknown zone "Mars/Olympus"`))),
			wantCode: http.StatusUnprocessableEntity,
			wantText: `unknown zone "Mars/Olympus"`,
		},
		{
			name:     "plain error is hidden",
			err:      errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantText: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get(constant.ResponseHeaderCacheControl))
			assert.Equal(t, tt.wantText, body(t, rec)["error"])
		})
	}
}

func TestRetryResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec, 60)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get(constant.ResponseHeaderRetryAfter))
	assert.Equal(t, constant.ResponseErrorRequestLimitExceeded, body(t, rec)["message"])

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec, 5)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "5", rec.Header().Get(constant.ResponseHeaderRetryAfter))

	rec = httptest.NewRecorder()
	response.WithUnhealthy(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.ResponseHeaderRetryAfter))
	assert.Equal(t, constant.ResponseErrorUnhealthy, body(t, rec)["message"])
}
