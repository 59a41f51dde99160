package leave

import (
	"context"
	"io"
)

// Gateway is the HR store collaborator. Every call is single-shot: it either
// returns its payload or an error, and is never retried by this package.
//
//go:generate mockgen -source=leave_gateway.go -destination=mock/leave_gateway_mock.go -package=mock
type Gateway interface {
	FetchLeaves(ctx context.Context, leaveType LeaveType) ([]LeaveRequest, error)
	CreateLeave(ctx context.Context, leaveType LeaveType, payload CreatePayload) (LeaveRequest, error)
	ApproveLeave(ctx context.Context, leaveType LeaveType, id string, substitute *Substitute) (LeaveRequest, error)
	RejectLeave(ctx context.Context, leaveType LeaveType, id string) (LeaveRequest, error)
	UploadAttachment(ctx context.Context, filename string, content io.Reader) (Attachment, error)
	DeleteAttachment(ctx context.Context, url string) error
	SearchEmployeesByName(ctx context.Context, term string) ([]Employee, error)
}

// PhotoCache remembers the last known photo of each employee so rows can
// still show a face when a record arrives without one.
type PhotoCache interface {
	Lookup(ctx context.Context, employeeIDs []string) (map[string]string, error)
	Remember(ctx context.Context, photos map[string]string) error
}

// AuditLogger records confirmed approval decisions.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditEntry)
}

type AuditEntry struct {
	Action  string
	Message string
	Meta    map[string]any
}

type nopPhotoCache struct{}

func (nopPhotoCache) Lookup(context.Context, []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (nopPhotoCache) Remember(context.Context, map[string]string) error { return nil }

type nopAuditLogger struct{}

func (nopAuditLogger) Log(context.Context, AuditEntry) {}
