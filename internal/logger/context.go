package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// requestFields - поля запроса, которые попадают в каждую запись лога.
type requestFields struct {
	requestID string
	userID    string
}

func fieldsFrom(ctx context.Context) requestFields {
	if ctx == nil {
		return requestFields{}
	}
	f, _ := ctx.Value(ctxKey{}).(requestFields)
	return f
}

// WithRequestID добавляет request ID в context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	f := fieldsFrom(ctx)
	f.requestID = requestID
	return context.WithValue(ctx, ctxKey{}, f)
}

// WithUserID добавляет ID пользователя из токена в context
func WithUserID(ctx context.Context, userID string) context.Context {
	f := fieldsFrom(ctx)
	f.userID = userID
	return context.WithValue(ctx, ctxKey{}, f)
}

func GetRequestID(ctx context.Context) string { return fieldsFrom(ctx).requestID }

func GetUserID(ctx context.Context) string { return fieldsFrom(ctx).userID }

// FromContext возвращает глобальный логгер с request_id и user_id запроса.
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()
	f := fieldsFrom(ctx)

	var attrs []any
	if f.requestID != "" {
		attrs = append(attrs, "request_id", f.requestID)
	}
	if f.userID != "" {
		attrs = append(attrs, "user_id", f.userID)
	}
	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

func CtxDebug(ctx context.Context, msg string, args ...any) { FromContext(ctx).Debug(msg, args...) }

func CtxInfo(ctx context.Context, msg string, args ...any) { FromContext(ctx).Info(msg, args...) }

func CtxWarn(ctx context.Context, msg string, args ...any) { FromContext(ctx).Warn(msg, args...) }

func CtxError(ctx context.Context, msg string, args ...any) { FromContext(ctx).Error(msg, args...) }

// CtxWithError логирует ошибку операции вместе с полями запроса.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"error", err.Error()}, args...)
	}
	FromContext(ctx).Error(msg, args...)
}
