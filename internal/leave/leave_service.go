package leave

import (
	"context"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	leaveerrors "hris-console/internal/leave/errors"
	"hris-console/internal/shared/contextutil"
	"hris-console/internal/visibility"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// MinSearchLength is the shortest substitute search term sent to the store.
const MinSearchLength = 3

// Actor is the person operating the console.
type Actor struct {
	EmployeeID string
	Role       visibility.Role
}

// Service exposes the leave verbs to handlers and the terminal console.
//
// Consistency contract: the service holds no authoritative state. Every
// mutation is followed by a full reload of the list for its leave type, so
// callers are eventually consistent after reload.
//
//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, actor Actor, leaveType LeaveType) ([]DisplayRow, error)
	Detail(ctx context.Context, actor Actor, leaveType LeaveType, id string) (DetailViewModel, error)
	SubmitCreate(ctx context.Context, actor Actor, payload CreatePayload) (MutationOutcome, error)
	SubmitApproval(ctx context.Context, actor Actor, leaveType LeaveType, id string, substitute *Substitute, confirmer Confirmer) (MutationOutcome, error)
	SubmitRejection(ctx context.Context, actor Actor, leaveType LeaveType, id string, confirmer Confirmer) (MutationOutcome, error)
	SearchSubstitutes(ctx context.Context, term string) ([]Employee, error)
	UploadAttachment(ctx context.Context, filename string, content io.Reader) (Attachment, error)
	DeleteAttachment(ctx context.Context, url string) error
}

type service struct {
	gateway     Gateway
	transformer Transformer
	photos      PhotoCache
	audit       AuditLogger
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(gateway Gateway, transformer Transformer, photos PhotoCache, audit AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if photos == nil {
		photos = nopPhotoCache{}
	}
	if audit == nil {
		audit = nopAuditLogger{}
	}
	return &service{
		gateway:     gateway,
		transformer: transformer,
		photos:      photos,
		audit:       audit,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) List(ctx context.Context, actor Actor, leaveType LeaveType) ([]DisplayRow, error) {
	records, photos, err := s.load(ctx, actor, leaveType)
	if err != nil {
		return nil, err
	}
	return s.transformer.ToTableRows(records, photos), nil
}

func (s *service) Detail(ctx context.Context, actor Actor, leaveType LeaveType, id string) (DetailViewModel, error) {
	records, photos, err := s.load(ctx, actor, leaveType)
	if err != nil {
		return DetailViewModel{}, err
	}

	for _, r := range records {
		if r.ID != id {
			continue
		}
		owner := r.OwnerID()
		mine := make([]NormalizedLeave, 0, len(records))
		for _, o := range records {
			if o.OwnerID() == owner {
				mine = append(mine, o)
			}
		}
		return s.transformer.ToDetailView(r, mine, photos[owner]), nil
	}
	return DetailViewModel{}, leaveerrors.ErrLeaveNotFound
}

func (s *service) SubmitCreate(ctx context.Context, actor Actor, payload CreatePayload) (MutationOutcome, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := ValidateCreate(payload); err != nil {
		s.logger.Warn("create leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return MutationOutcome{}, err
	}
	leaveType, _ := ParseLeaveType(string(payload.LeaveType))
	payload.LeaveType = leaveType
	payload = normalizePayload(payload)

	// Administrators may file absence and sick leave on an employee's behalf.
	// Everything else is filed for the actor.
	onBehalf := visibility.IsAdministrative(actor.Role) && !leaveType.UsesEndDate()
	if !onBehalf || payload.EmployeeID == "" {
		payload.EmployeeID = actor.EmployeeID
	}

	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("leave_type", string(leaveType)),
		zap.String("employee_id", payload.EmployeeID),
		zap.String("start_date", payload.StartDate),
	)

	created, err := s.gateway.CreateLeave(ctx, leaveType, payload)
	if err != nil {
		s.logger.Error("create leave failed", zap.String("request_id", rid), zap.Error(err))
		return MutationOutcome{}, leaveerrors.ErrCreateFailed.WithErr(err)
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", created.ID),
		zap.String("employee_id", created.OwnerID()),
	)

	row := s.transformer.ToTableRow(Ingest(created), "")
	return s.reloadAfter(ctx, actor, leaveType, &row)
}

func (s *service) SubmitApproval(ctx context.Context, actor Actor, leaveType LeaveType, id string, substitute *Substitute, confirmer Confirmer) (MutationOutcome, error) {
	return s.decide(ctx, actor, leaveType, id, DecisionApprove, substitute, confirmer)
}

func (s *service) SubmitRejection(ctx context.Context, actor Actor, leaveType LeaveType, id string, confirmer Confirmer) (MutationOutcome, error) {
	return s.decide(ctx, actor, leaveType, id, DecisionReject, nil, confirmer)
}

func (s *service) decide(ctx context.Context, actor Actor, leaveType LeaveType, id string, d Decision, sub *Substitute, confirmer Confirmer) (MutationOutcome, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("leave decision requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("leave_type", string(leaveType)),
		zap.String("decision", string(d)),
		zap.String("actor_id", actor.EmployeeID),
	)

	if err := checkSubstitute(leaveType, d, sub); err != nil {
		s.logger.Warn("leave decision blocked", zap.String("leave_id", id), zap.Error(err))
		return MutationOutcome{}, err
	}

	ok := false
	if confirmer != nil {
		var err error
		ok, err = confirmer.Confirm(ctx, decisionPrompt(leaveType, d, id, sub))
		if err != nil {
			return MutationOutcome{}, err
		}
	}
	if !ok {
		s.logger.Info("leave decision declined", zap.String("leave_id", id), zap.String("decision", string(d)))
		return MutationOutcome{Applied: false}, nil
	}

	var (
		updated LeaveRequest
		err     error
	)
	if d == DecisionApprove {
		updated, err = s.gateway.ApproveLeave(ctx, leaveType, id, sub)
	} else {
		updated, err = s.gateway.RejectLeave(ctx, leaveType, id)
	}
	if err != nil {
		s.logger.Error("leave decision failed",
			zap.String("request_id", rid),
			zap.String("leave_id", id),
			zap.String("decision", string(d)),
			zap.Error(err),
		)
		if d == DecisionApprove {
			return MutationOutcome{}, leaveerrors.ErrApproveFailed.WithErr(err)
		}
		return MutationOutcome{}, leaveerrors.ErrRejectFailed.WithErr(err)
	}

	meta := map[string]any{
		"leave_id":   id,
		"leave_type": string(leaveType),
		"actor_id":   actor.EmployeeID,
		"actor_role": actor.Role.String(),
		"request_id": rid,
	}
	if sub != nil {
		meta["substitute_id"] = sub.EmployeeID
	}
	s.audit.Log(ctx, AuditEntry{
		Action:  "LEAVE_" + strings.ToUpper(string(d)),
		Message: "leave request moved to " + string(d.Target()),
		Meta:    meta,
	})
	s.logger.Info("leave decision success", zap.String("leave_id", id), zap.String("status", string(d.Target())))

	row := s.transformer.ToTableRow(Ingest(updated), "")
	return s.reloadAfter(ctx, actor, leaveType, &row)
}

// reloadAfter refetches the whole list after a successful mutation. When the
// reload itself fails the outcome still reports Applied, with the error.
func (s *service) reloadAfter(ctx context.Context, actor Actor, leaveType LeaveType, record *DisplayRow) (MutationOutcome, error) {
	out := MutationOutcome{Applied: true, Record: record}
	rows, err := s.List(ctx, actor, leaveType)
	if err != nil {
		return out, err
	}
	out.Rows = rows
	return out, nil
}

func (s *service) SearchSubstitutes(ctx context.Context, term string) ([]Employee, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinSearchLength {
		return []Employee{}, nil
	}

	// The shared call outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(strings.ToLower(term), func() (interface{}, error) {
		return s.gateway.SearchEmployeesByName(shared, term)
	})
	if err != nil {
		s.logger.Error("search substitutes failed", zap.String("term", term), zap.Error(err))
		return nil, leaveerrors.ErrSearchFailed.WithErr(err)
	}

	found := v.([]Employee)
	out := make([]Employee, len(found))
	for i, e := range found {
		e.PhotoURL = s.transformer.Images.Resolve(e.PhotoURL, "")
		out[i] = e
	}
	return out, nil
}

func (s *service) UploadAttachment(ctx context.Context, filename string, content io.Reader) (Attachment, error) {
	if strings.TrimSpace(filename) == "" || content == nil {
		return Attachment{}, leaveerrors.ErrAttachmentRequired
	}
	att, err := s.gateway.UploadAttachment(ctx, filename, content)
	if err != nil {
		s.logger.Error("upload attachment failed", zap.String("filename", filename), zap.Error(err))
		return Attachment{}, leaveerrors.ErrUploadFailed.WithErr(err)
	}
	return att, nil
}

func (s *service) DeleteAttachment(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return leaveerrors.ErrAttachmentURLRequired
	}
	if err := s.gateway.DeleteAttachment(ctx, url); err != nil {
		s.logger.Error("delete attachment failed", zap.String("url", url), zap.Error(err))
		return leaveerrors.ErrDeleteAttachmentFailed.WithErr(err)
	}
	return nil
}

// load fetches, filters for the actor and normalizes the records of one
// type, and gathers fallback photos for employees that arrived without one.
func (s *service) load(ctx context.Context, actor Actor, leaveType LeaveType) ([]NormalizedLeave, map[string]string, error) {
	raw, err := s.gateway.FetchLeaves(ctx, leaveType)
	if err != nil {
		s.logger.Error("fetch leaves failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("leave_type", string(leaveType)),
			zap.Error(err),
		)
		return nil, nil, leaveerrors.ErrFetchFailed.WithErr(err)
	}

	visible := visibility.FilterForActor(raw, actor.Role, actor.EmployeeID)
	return IngestAll(visible), s.fallbackPhotos(ctx, visible), nil
}

func (s *service) fallbackPhotos(ctx context.Context, records []LeaveRequest) map[string]string {
	known := map[string]string{}
	missingSet := map[string]bool{}
	for _, r := range records {
		owner := r.OwnerID()
		if owner == "" {
			continue
		}
		if r.Employee != nil && strings.TrimSpace(r.Employee.PhotoURL) != "" {
			known[owner] = r.Employee.PhotoURL
			continue
		}
		missingSet[owner] = true
	}

	if len(known) > 0 {
		if err := s.photos.Remember(ctx, known); err != nil {
			s.logger.Warn("remember photos failed", zap.Error(err))
		}
	}

	missing := make([]string, 0, len(missingSet))
	for id := range missingSet {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return map[string]string{}
	}
	sort.Strings(missing)

	cached, err := s.photos.Lookup(ctx, missing)
	if err != nil {
		s.logger.Warn("lookup photos failed", zap.Error(err))
		return map[string]string{}
	}
	return cached
}
