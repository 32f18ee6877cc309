package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler writes bare messages, without timestamps or level prefixes
type consoleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *atomic.Bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if h.quiet.Load() {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// fanoutHandler sends each record to every enabled handler
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: next}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: next}
}

// newRotatingWriter creates a lumberjack logger tuned by REVIEW_WIZARD_LOG_MAX_* variables
func newRotatingWriter(logFilePath string) *lumberjack.Logger {
	rotating := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}

	if n, ok := envInt("REVIEW_WIZARD_LOG_MAX_SIZE", 1); ok {
		rotating.MaxSize = n
	}
	if n, ok := envInt("REVIEW_WIZARD_LOG_MAX_BACKUPS", 0); ok {
		rotating.MaxBackups = n
	}
	if n, ok := envInt("REVIEW_WIZARD_LOG_MAX_AGE", 1); ok {
		rotating.MaxAge = n
	}

	return rotating
}

func envInt(name string, minimum int) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < minimum {
		return 0, false
	}
	return n, true
}

// Splog writes user-facing messages to the console and, when configured,
// a full debug log to a rotating file.
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	quiet     *atomic.Bool
}

// SplogOptions configures NewSplogWithOptions
type SplogOptions struct {
	// Writer receives console output; defaults to os.Stdout
	Writer io.Writer
	// LogFilePath enables the rotating file log when non-empty
	LogFilePath string
	// Debug enables debug messages on the console
	Debug bool
}

// NewSplog creates a console-only splog.
// Debug messages are enabled when the DEBUG environment variable is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithOptions(SplogOptions{Debug: os.Getenv("DEBUG") != ""})
	return splog
}

// NewSplogWithOptions creates a splog with optional file logging
func NewSplogWithOptions(opts SplogOptions) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	splog := &Splog{
		writer: writer,
		quiet:  &atomic.Bool{},
	}

	handlers := []slog.Handler{&consoleHandler{
		writer:    writer,
		debugMode: opts.Debug,
		quiet:     splog.quiet,
	}}

	if opts.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		rotating := newRotatingWriter(opts.LogFilePath)
		splog.logWriter = rotating

		handlers = append(handlers, slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(&fanoutHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet suppresses console output while a full-screen program owns the terminal.
// The file log keeps receiving everything.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet.Store(quiet)
}

// IsQuiet returns whether console output is suppressed
func (s *Splog) IsQuiet() bool {
	return s.quiet.Load()
}

func (s *Splog) log(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "", format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  ", format, args)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ ", format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, "", format, args)
}

// Newline writes an empty console line
func (s *Splog) Newline() {
	if s.quiet.Load() {
		return
	}
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
