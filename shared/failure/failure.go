package failure

import (
	"errors"
	"net/http"
)

// Failure pairs an HTTP status with the message shown to the client.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the cause so errors.Is keeps working across the HTTP boundary.
func (e *Failure) Unwrap() error {
	return e.cause
}

// New returns a Failure without an underlying cause.
func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// Wrap returns a Failure carrying err's text and err as its cause. A nil err stays nil.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return Wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// UnprocessableEntity is for well-formed input the service cannot act on,
// such as a zone the catalog does not know.
func UnprocessableEntity(err error) error {
	return Wrap(http.StatusUnprocessableEntity, err)
}

func InternalError(err error) error {
	return Wrap(http.StatusInternalServerError, err)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func ServiceUnavailable(msg string) error {
	return New(http.StatusServiceUnavailable, msg)
}

// GetCode returns the status of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Message returns the text safe to show a client: the Failure message when
// there is one, the status text otherwise.
func Message(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return http.StatusText(http.StatusInternalServerError)
}
