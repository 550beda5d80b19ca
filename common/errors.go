package common

import (
	"encoding/json"
	"net/http"

	"github.com/jeffschoe/chirpy/logger"
	"github.com/sirupsen/logrus"
)

// AppError is the error type carried from the service layer up to the
// response boundary. Code is the HTTP status the error maps to, Message
// is safe to show to the client, and Err holds the internal cause which
// is logged but never leaked in the response body.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest marks malformed or missing required input.
func BadRequest(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// Unauthenticated marks a credential that is missing, invalid, expired
// or unverifiable. Callers must use the same message for "user not
// found" and "wrong password" so responses cannot be used to enumerate
// accounts.
func Unauthenticated(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

// Forbidden marks an authenticated but disallowed action.
func Forbidden(message string, err error) *AppError {
	return NewAppError(http.StatusForbidden, message, err)
}

// NotFound marks an absent resource.
func NotFound(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// Internal marks an unclassified failure. The client only ever sees the
// generic message.
func Internal(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
