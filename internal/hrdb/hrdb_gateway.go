// Package hrdb is the gateway that reads and writes the HR store's own
// PostgreSQL tables directly, for deployments without the REST API.
package hrdb

import (
	"context"
	"io"
	"strings"
	"time"

	"hris-console/internal/leave"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const searchLimit = 20

type Gateway struct {
	db     *gorm.DB
	now    func() time.Time
	logger *zap.Logger
}

var _ leave.Gateway = (*Gateway)(nil)

func NewGateway(db *gorm.DB, logger ...*zap.Logger) *Gateway {
	l := zap.L().Named("hrdb.gateway")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrdb.gateway")
	}
	return &Gateway{db: db, now: time.Now, logger: l}
}

func (g *Gateway) FetchLeaves(ctx context.Context, leaveType leave.LeaveType) ([]leave.LeaveRequest, error) {
	var rows []leaveRecord
	err := g.db.WithContext(ctx).
		Scopes(ofType(leaveType)).
		Order("start_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	ids := make([]string, 0, len(rows))
	seen := map[string]bool{}
	for _, r := range rows {
		if !seen[r.EmployeeID] {
			seen[r.EmployeeID] = true
			ids = append(ids, r.EmployeeID)
		}
	}
	employees, err := g.employeesByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]leave.LeaveRequest, len(rows))
	for i, r := range rows {
		out[i] = r.toRecord(employees[r.EmployeeID])
	}
	return out, nil
}

func (g *Gateway) employeesByID(ctx context.Context, ids []string) (map[string]*employeeRecord, error) {
	out := make(map[string]*employeeRecord, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var emps []employeeRecord
	if err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&emps).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	for i := range emps {
		out[emps[i].ID] = &emps[i]
	}
	return out, nil
}

func (g *Gateway) CreateLeave(ctx context.Context, leaveType leave.LeaveType, payload leave.CreatePayload) (leave.LeaveRequest, error) {
	if len(payload.AttachmentURLs) > 0 {
		return leave.LeaveRequest{}, ErrAttachmentsUnsupported
	}

	start, err := leave.ParseDate(payload.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	now := g.now().UTC()
	rec := leaveRecord{
		ID:         uuid.New().String(),
		EmployeeID: payload.EmployeeID,
		LeaveType:  string(leaveType),
		Status:     string(leave.StatusPending),
		StartDate:  start,
		Reason:     payload.Reason,
		Location:   payload.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if leaveType.UsesEndDate() {
		end, err := leave.ParseDate(payload.EndDate)
		if err != nil {
			return leave.LeaveRequest{}, err
		}
		rec.EndDate = &end
	} else {
		d := payload.Duration
		rec.Duration = &d
		rec.DurationUnit = string(payload.DurationUnit)
	}

	if err := g.db.WithContext(ctx).Create(&rec).Error; err != nil {
		g.logger.Error("insert leave failed", zap.String("employee_id", rec.EmployeeID), zap.Error(err))
		return leave.LeaveRequest{}, mapRepositoryError(err)
	}

	employees, err := g.employeesByID(ctx, []string{rec.EmployeeID})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return rec.toRecord(employees[rec.EmployeeID]), nil
}

func (g *Gateway) ApproveLeave(ctx context.Context, leaveType leave.LeaveType, id string, substitute *leave.Substitute) (leave.LeaveRequest, error) {
	updates := map[string]any{"status": string(leave.StatusApproved)}
	if substitute != nil && substitute.EmployeeID != "" {
		updates["substitute_id"] = substitute.EmployeeID
	}
	return g.decide(ctx, leaveType, id, updates)
}

func (g *Gateway) RejectLeave(ctx context.Context, leaveType leave.LeaveType, id string) (leave.LeaveRequest, error) {
	return g.decide(ctx, leaveType, id, map[string]any{"status": string(leave.StatusRejected)})
}

// decide moves a pending request to a terminal status. The update is
// conditional on the row still being pending, so of two concurrent decisions
// only the first is applied.
func (g *Gateway) decide(ctx context.Context, leaveType leave.LeaveType, id string, updates map[string]any) (leave.LeaveRequest, error) {
	updates["updated_at"] = g.now().UTC()

	res := g.db.WithContext(ctx).
		Model(&leaveRecord{}).
		Where("id = ? AND leave_type = ? AND status = ?", id, string(leaveType), string(leave.StatusPending)).
		Updates(updates)
	if res.Error != nil {
		return leave.LeaveRequest{}, mapRepositoryError(res.Error)
	}

	var rec leaveRecord
	err := g.db.WithContext(ctx).
		Where("id = ? AND leave_type = ?", id, string(leaveType)).
		First(&rec).Error
	if err != nil {
		return leave.LeaveRequest{}, mapRepositoryError(err)
	}
	if res.RowsAffected == 0 {
		g.logger.Warn("leave decision lost", zap.String("leave_id", id), zap.String("status", rec.Status))
		return leave.LeaveRequest{}, ErrAlreadyDecided
	}

	employees, err := g.employeesByID(ctx, []string{rec.EmployeeID})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return rec.toRecord(employees[rec.EmployeeID]), nil
}

func (g *Gateway) SearchEmployeesByName(ctx context.Context, term string) ([]leave.Employee, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"

	var emps []employeeRecord
	err := g.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR (first_name || ' ' || last_name) ILIKE ?", pattern, pattern, pattern).
		Order("first_name, last_name").
		Limit(searchLimit).
		Find(&emps).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	out := make([]leave.Employee, len(emps))
	for i, e := range emps {
		out[i] = e.toEmployee()
	}
	return out, nil
}

func (g *Gateway) UploadAttachment(context.Context, string, io.Reader) (leave.Attachment, error) {
	return leave.Attachment{}, ErrAttachmentsUnsupported
}

func (g *Gateway) DeleteAttachment(context.Context, string) error {
	return ErrAttachmentsUnsupported
}

// ofType limits a leave_requests query to one leave type.
func ofType(leaveType leave.LeaveType) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("leave_type = ?", string(leaveType))
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
