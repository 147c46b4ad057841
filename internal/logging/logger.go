package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"

	OutputStderr = "stderr"
	OutputFile   = "file"

	// DefaultLevel keeps conversions quiet unless something goes wrong.
	DefaultLevel = "warn"
)

// Standard field names shared by every component.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldTraceID   = "trace_id"
	FieldDuration  = "duration_ms"
)

// Config describes where and how log events are written.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath. When the configured log
// file cannot be opened the logger falls back to stderr and FallbackUsed is set.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a logger from cfg and reports which destination is
// in use.
func NewLoggerWithPath(cfg Config) LogPathResult {
	result := LogPathResult{}
	var out io.Writer = os.Stderr

	if cfg.Output == OutputFile && cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			result.file = f
			result.FilePath = cfg.File
			result.UsingFile = true
			out = f
		}
	}

	result.Logger = NewLoggerWithWriter(cfg, out)
	return result
}

// NewLoggerWithWriter builds a logger that writes to w.
func NewLoggerWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Format == FormatConsole || cfg.Format == FormatText {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    w != os.Stderr,
		}
	}

	zctx := zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		Hook(TracingHook{}).
		With().
		Timestamp()
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return zctx.Logger()
}

// ParseLevel parses level, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}
	return lvl
}

// ComponentLogger returns a child logger tagged with component.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str(FieldComponent, component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return zerolog.Ctx(ctx)
}

// PrintFallbackWarning tells the user that file logging is unavailable.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr: %s\n", reason)
}
