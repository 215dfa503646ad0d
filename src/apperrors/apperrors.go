package apperrors

import (
	"errors"
	"fmt"
)

const (
	CodeValidation = "VALIDATION"
	CodeNotFound   = "NOT_FOUND"
	CodeStore      = "STORE"
)

// ErrorResponse is the JSON error body returned by every API endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("code: %s, message: %s", e.Code, e.Message)
}

func Validation(format string, args ...any) ErrorResponse {
	return ErrorResponse{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) ErrorResponse {
	return ErrorResponse{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func Store(format string, args ...any) ErrorResponse {
	return ErrorResponse{Code: CodeStore, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries the VALIDATION code.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

func hasCode(err error, code string) bool {
	var resp ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == code
	}
	return false
}
