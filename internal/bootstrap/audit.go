package bootstrap

import (
	"context"

	"hris-console/internal/leave"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// LeaveAuditor forwards confirmed leave decisions to an AuditLogger.
type LeaveAuditor struct {
	Logger AuditLogger
}

func (a LeaveAuditor) Log(ctx context.Context, entry leave.AuditEntry) {
	a.Logger.Log(ctx, AuditLog{
		Action:  entry.Action,
		Message: entry.Message,
		Meta:    entry.Meta,
	})
}
