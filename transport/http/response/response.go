package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tzform/shared/constant"
	"tzform/shared/failure"
	"tzform/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps jsonPayload in a data envelope.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError maps err to its status. Errors that carry no failure.Failure are
// reported as 500 without their text.
func WithError(writer http.ResponseWriter, err error) {
	msg := failure.Message(err)

	writer.Header().Set(constant.ResponseHeaderCacheControl, "no-store")
	write(writer, failure.GetCode(err), Error{Error: &msg})
}

// WithRequestLimitExceeded tells the client to retry once the window resets.
func WithRequestLimitExceeded(writer http.ResponseWriter, retryAfterSeconds int) {
	writer.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(retryAfterSeconds))
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown asks load balancers to move traffic elsewhere.
func WithPreparingShutdown(writer http.ResponseWriter, retryAfterSeconds int64) {
	writer.Header().Set(constant.ResponseHeaderRetryAfter, strconv.FormatInt(retryAfterSeconds, 10))
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.Header().Set(constant.ResponseHeaderContentTypeOptions, "nosniff")
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
