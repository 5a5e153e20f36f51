package server

import (
	"errors"
	"fmt"
	"net/http"

	"content_variation_generator/generator"
)

const (
	CodeInvalidParam  = "invalid_param"
	CodeNotFound      = "not_found"
	CodeNotReady      = "not_ready"
	CodeBusy          = "busy"
	CodeInternalError = "internal_error"
)

// AppError is the JSON error body returned by the API.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: codeToHTTPStatus(code)}
}

func codeToHTTPStatus(code string) int {
	switch code {
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotReady:
		return http.StatusUnprocessableEntity
	case CodeBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// asAppError maps domain errors onto API errors.
func asAppError(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, errSessionNotFound):
		return newAppError(CodeNotFound, err.Error())
	case errors.Is(err, generator.ErrNotReady):
		return newAppError(CodeNotReady, err.Error())
	case errors.Is(err, generator.ErrBusy):
		return newAppError(CodeBusy, err.Error())
	case errors.Is(err, generator.ErrUnknownField):
		return newAppError(CodeInvalidParam, err.Error())
	default:
		e := newAppError(CodeInternalError, "internal server error")
		e.Err = err
		return e
	}
}
