package cli

import (
	"context"
	"time"

	"github.com/rshade/uconv/internal/engine"
	"github.com/rshade/uconv/internal/logging"
)

// auditContext holds common context for audit logging within a command.
type auditContext struct {
	logger  logging.AuditLogger
	traceID string
	params  map[string]string
	start   time.Time
	command string
}

// newAuditContext creates a new audit context.
func newAuditContext(ctx context.Context, command string, params map[string]string) *auditContext {
	return &auditContext{
		logger:  logging.AuditLoggerFromContext(ctx),
		traceID: logging.TraceIDFromContext(ctx),
		params:  params,
		start:   time.Now(),
		command: command,
	}
}

// logFailure logs an audit entry for a failed operation.
func (a *auditContext) logFailure(ctx context.Context, err error) {
	entry := logging.NewAuditEntry(a.command, a.traceID).
		WithParameters(a.params).
		WithError(err.Error()).
		WithDuration(a.start)
	a.logger.Log(ctx, *entry)
}

// logSuccess logs an audit entry for a successful operation.
func (a *auditContext) logSuccess(ctx context.Context, count int, result string) {
	entry := logging.NewAuditEntry(a.command, a.traceID).
		WithParameters(a.params).
		WithSuccess(count, result).
		WithDuration(a.start)
	a.logger.Log(ctx, *entry)
}

// requestParams flattens a request into audit parameters.
func requestParams(req engine.Request) map[string]string {
	return map[string]string{
		"value": formatInput(req.Value),
		"from":  req.From,
		"to":    req.To,
	}
}
