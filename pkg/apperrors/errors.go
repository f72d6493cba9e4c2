package apperrors

import (
	"errors"
	"fmt"
)

// AppError - ошибка, которую хендлеры отдают клиенту.
// Err остается внутри сервера: в JSON попадают только код, домен, сообщение и детали.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Domain   string    `json:"domain"`
	Message  string    `json:"message"`
	Details  any       `json:"details,omitempty"`
	Err      error     `json:"-"`
	HTTPCode int       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s/%s: %s: %v", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s/%s: %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// New создает ошибку; HTTP статус выводится из кода.
func New(code ErrorCode, domain, message string) *AppError {
	return &AppError{Code: code, Domain: domain, Message: message, HTTPCode: code.HTTPStatus()}
}

// Wrap - то же, что New, но сохраняет причину для логов и errors.Is.
func Wrap(err error, code ErrorCode, domain, message string) *AppError {
	e := New(code, domain, message)
	e.Err = err
	return e
}

// WithDetails returns a copy so that shared sentinel errors are never mutated.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// AsAppError достает *AppError из цепочки ошибок.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// InternalError оборачивает неизвестную системную ошибку
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error")
}

// ValidationError - ошибка валидации запроса; details - поле -> сообщение.
func ValidationError(details any) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed").WithDetails(details)
}

// TransientStorage marks a read/write failure at the data layer that may succeed on retry.
func TransientStorage(err error) *AppError {
	return Wrap(err, CodeStorageUnavailable, "storage", "Storage temporarily unavailable")
}

// IsTransient reports whether err carries a TransientStorage error.
func IsTransient(err error) bool {
	return hasCode(err, CodeStorageUnavailable)
}

// IsNotFound reports whether err is one of the NotFound sentinels (or wraps one).
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message)
}

func NewRateLimitError() *AppError {
	return New(CodeLimitExceeded, "request", "Too many requests")
}

// NewTimeoutError - запрос не уложился в server.request_timeout_seconds.
func NewTimeoutError() *AppError {
	return New(CodeTimeout, "request", "Request timed out")
}
