package bootstrap

import (
	"context"
	"testing"
	"time"

	"hris-console/internal/config"
	"hris-console/internal/leave"
	"hris-console/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	entries []AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestLeaveAuditor_Forwards(t *testing.T) {
	rec := &recordingAudit{}
	var auditor leave.AuditLogger = LeaveAuditor{Logger: rec}

	auditor.Log(context.Background(), leave.AuditEntry{
		Action:  "LEAVE_APPROVED",
		Message: "approved",
		Meta:    map[string]any{"leave_id": "l-1"},
	})

	assert.Len(t, rec.entries, 1)
	assert.Equal(t, "LEAVE_APPROVED", rec.entries[0].Action)
	assert.Equal(t, "l-1", rec.entries[0].Meta["leave_id"])
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "42")
	l.Log(ctx, AuditLog{Action: "LEAVE_REJECTED", Message: "rejected"})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "audit", entries[0].LoggerName)
		assert.Equal(t, "2025-05-01T09:00:00Z", fields["timestamp"])
		assert.Equal(t, "LEAVE_REJECTED", fields["action"])
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "42", fields["user_id"])
	}
}

func TestServerConfigFrom(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = "8088"
	cfg.Server.ReadTimeout = 2 * time.Second

	sc := ServerConfigFrom(cfg)
	assert.Equal(t, "8088", sc.Port)
	assert.Equal(t, 2*time.Second, sc.ReadTimeout)
}

func TestStartHTTPServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recordingAudit{}
	err := StartHTTPServer(ctx, gin.New(), ServerConfig{Port: "0"}, rec)

	assert.NoError(t, err)
	if assert.Len(t, rec.entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", rec.entries[0].Action)
	}
}
