package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"tzform/shared/failure"
)

var errUnknownZone = errors.New(`unknown zone "Mars/Olympus"`)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("seconds must be 00")), code: http.StatusBadRequest, message: "seconds must be 00"},
		{name: "bad request from string", err: failure.BadRequestFromString("name is required"), code: http.StatusBadRequest, message: "name is required"},
		{name: "unprocessable", err: failure.UnprocessableEntity(errUnknownZone), code: http.StatusUnprocessableEntity, message: errUnknownZone.Error()},
		{name: "internal", err: failure.InternalError(errors.New("database connection failed")), code: http.StatusInternalServerError, message: "database connection failed"},
		{name: "unauthorized", err: failure.Unauthorized("Missing API key"), code: http.StatusUnauthorized, message: "Missing API key"},
		{name: "forbidden", err: failure.Forbidden("Access denied"), code: http.StatusForbidden, message: "Access denied"},
		{name: "forbidden sentinel", err: failure.ForbiddenError, code: http.StatusForbidden, message: "You don't have the required permissions"},
		{name: "not found", err: failure.NotFound("Preference not found"), code: http.StatusNotFound, message: "Preference not found"},
		{name: "unavailable", err: failure.ServiceUnavailable("detection unavailable"), code: http.StatusServiceUnavailable, message: "detection unavailable"},
		{name: "custom", err: failure.New(http.StatusTooManyRequests, "slow down"), code: http.StatusTooManyRequests, message: "slow down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.message)
			assert.Equal(t, tt.message, failure.Message(tt.err))
		})
	}
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, failure.Wrap(http.StatusBadRequest, nil))
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.UnprocessableEntity(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestFailure_Unwrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "wrapped cause", err: failure.UnprocessableEntity(errUnknownZone), want: true},
		{name: "nested cause", err: failure.InternalError(fmt.Errorf("resolve: %w", errUnknownZone)), want: true},
		{name: "string failures carry no cause", err: failure.BadRequestFromString(errUnknownZone.Error()), want: false},
		{name: "failure wrapped again", err: fmt.Errorf("outer: %w", failure.BadRequest(errUnknownZone)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, errUnknownZone))
		})
	}
}

func TestGetCodeAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "wrapped failure",
			err:     fmt.Errorf("failed to create preference: %w", failure.BadRequestFromString("dateTime is required")),
			code:    http.StatusBadRequest,
			message: "dateTime is required",
		},
		{
			name:    "plain error hides its text",
			err:     errors.New("pq: password authentication failed"),
			code:    http.StatusInternalServerError,
			message: "Internal Server Error",
		},
		{
			name:    "nil",
			code:    http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, failure.Message(tt.err))
		})
	}
}
