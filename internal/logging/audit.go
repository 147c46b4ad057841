package logging

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// AuditEntry records one user-visible command invocation.
type AuditEntry struct {
	Timestamp  time.Time
	TraceID    string
	Command    string
	Parameters map[string]string
	Success    bool
	Error      string
	Result     string
	Count      int
	Duration   time.Duration
}

// NewAuditEntry starts an entry for command.
func NewAuditEntry(command, traceID string) *AuditEntry {
	return &AuditEntry{
		Timestamp: time.Now(),
		TraceID:   traceID,
		Command:   command,
	}
}

// WithParameters attaches the command's inputs.
func (e *AuditEntry) WithParameters(params map[string]string) *AuditEntry {
	e.Parameters = params
	return e
}

// WithSuccess marks the entry successful.
func (e *AuditEntry) WithSuccess(count int, result string) *AuditEntry {
	e.Success = true
	e.Count = count
	e.Result = result
	return e
}

// WithError marks the entry failed.
func (e *AuditEntry) WithError(msg string) *AuditEntry {
	e.Success = false
	e.Error = msg
	return e
}

// WithDuration records the time elapsed since start.
func (e *AuditEntry) WithDuration(start time.Time) *AuditEntry {
	e.Duration = time.Since(start)
	return e
}

// AuditLogger persists audit entries.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditEntry)
	Close() error
}

// AuditLoggerConfig selects the audit destination.
type AuditLoggerConfig struct {
	Enabled bool
	File    string
}

// NewAuditLogger returns a JSON-lines audit logger, or a no-op logger when
// auditing is disabled or the file cannot be opened.
func NewAuditLogger(cfg AuditLoggerConfig) AuditLogger {
	if !cfg.Enabled || cfg.File == "" {
		return nopAuditLogger{}
	}
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nopAuditLogger{}
	}
	return &fileAuditLogger{
		file:   f,
		logger: zerolog.New(f),
	}
}

type fileAuditLogger struct {
	mu     sync.Mutex
	file   *os.File
	logger zerolog.Logger
}

func (l *fileAuditLogger) Log(_ context.Context, entry AuditEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}

	ev := l.logger.Log().
		Time("timestamp", entry.Timestamp).
		Str(FieldTraceID, entry.TraceID).
		Str("command", entry.Command).
		Bool("success", entry.Success).
		Int64(FieldDuration, entry.Duration.Milliseconds())
	if len(entry.Parameters) > 0 {
		params := zerolog.Dict()
		for k, v := range entry.Parameters {
			params.Str(k, v)
		}
		ev = ev.Dict("parameters", params)
	}
	if entry.Error != "" {
		ev = ev.Str("error", entry.Error)
	}
	if entry.Result != "" {
		ev = ev.Str("result", entry.Result)
	}
	if entry.Count > 0 {
		ev = ev.Int("count", entry.Count)
	}
	ev.Msg("audit")
}

func (l *fileAuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

type nopAuditLogger struct{}

func (nopAuditLogger) Log(context.Context, AuditEntry) {}
func (nopAuditLogger) Close() error                    { return nil }

type auditKey struct{}

// ContextWithAuditLogger stores l in ctx.
func ContextWithAuditLogger(ctx context.Context, l AuditLogger) context.Context {
	return context.WithValue(ctx, auditKey{}, l)
}

// AuditLoggerFromContext returns the audit logger in ctx, or a no-op logger.
func AuditLoggerFromContext(ctx context.Context) AuditLogger {
	if ctx != nil {
		if l, ok := ctx.Value(auditKey{}).(AuditLogger); ok && l != nil {
			return l
		}
	}
	return nopAuditLogger{}
}
