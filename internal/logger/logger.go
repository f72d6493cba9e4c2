package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "freelancehub"

var log *slog.Logger

// Init настраивает глобальный логгер.
// env "development" дает текстовый вывод, остальные окружения - JSON.
// level ("debug", "info", "warn", "error") переопределяет уровень окружения.
func Init(env, level string) {
	SetOutput(env, level, os.Stdout)
}

// SetOutput is Init with an explicit sink; tests pass io.Discard or a buffer.
func SetOutput(env, level string, w io.Writer) {
	opts := &slog.HandlerOptions{Level: parseLevel(env, level)}

	var handler slog.Handler
	if env == "development" {
		opts.AddSource = true
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	log = slog.New(handler).With("service", serviceName)
	slog.SetDefault(log)
}

func parseLevel(env, level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development", "")
	}
	return log
}

func Debug(msg string, args ...any) { GetLogger().Debug(msg, args...) }

func Info(msg string, args ...any) { GetLogger().Info(msg, args...) }

func Warn(msg string, args ...any) { GetLogger().Warn(msg, args...) }

func Error(msg string, args ...any) { GetLogger().Error(msg, args...) }

// Fatal логирует ошибку старта и завершает процесс.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// Component возвращает логгер с полем component (cache, worker, http...).
func Component(name string) *slog.Logger {
	return GetLogger().With("component", name)
}

// WorkerLog пишет итог одного прогона фоновой задачи.
func WorkerLog(worker, operation string, err error, args ...any) {
	l := Component("worker").With("worker", worker, "operation", operation)
	if err != nil {
		l.Error("worker operation failed", append(args, "error", err.Error())...)
		return
	}
	l.Info("worker operation completed", args...)
}
