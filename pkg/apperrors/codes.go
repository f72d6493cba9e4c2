package apperrors

import "net/http"

// ErrorCode - машиночитаемый код ошибки в ответе API.
type ErrorCode string

const (
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	CodeTimeout            ErrorCode = "TIMEOUT"

	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"

	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
)

var statusByCode = map[ErrorCode]int{
	CodeInternalError:      http.StatusInternalServerError,
	CodeStorageUnavailable: http.StatusServiceUnavailable,
	CodeTimeout:            http.StatusGatewayTimeout,
	CodeNotFound:           http.StatusNotFound,
	CodeAlreadyExists:      http.StatusConflict,
	CodeValidationFailed:   http.StatusBadRequest,
	CodeInvalidStatus:      http.StatusBadRequest,
	CodeLimitExceeded:      http.StatusTooManyRequests,
	CodeUnauthorized:       http.StatusUnauthorized,
	CodeForbidden:          http.StatusForbidden,
}

// HTTPStatus - HTTP статус для кода. Неизвестные коды дают 500.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := statusByCode[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
