package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultFile - файл лога по умолчанию (рядом с бинарником).
const DefaultFile = "precisecalc.log"

// logWriter открывает файл path и возвращает writer в файл + stderr (и в файл, и в консоль).
// Пустой path или ошибка открытия - только stderr.
func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку из конфига в уровень (debug, info, warn, error). Неизвестное - Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом в DefaultFile и stderr, уровень Info.
func New() *slog.Logger {
	return NewWithLevel("info", DefaultFile)
}

// NewWithLevel возвращает логгер с заданным уровнем, пишущий в path и stderr.
func NewWithLevel(level, path string) *slog.Logger {
	return NewWithWriter(level, logWriter(path))
}

// NewWithWriter - логгер с заданным уровнем поверх произвольного writer (CLI, тесты).
func NewWithWriter(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
