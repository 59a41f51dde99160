package leave

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"hris-console/internal/shared/apperror"
	"hris-console/internal/shared/response"
	"hris-console/internal/visibility"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
	now     func() time.Time
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l, now: time.Now}
}

// NewHandlerWithRedis enables idempotent replay of create responses.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func getActor(c *gin.Context) Actor {
	return Actor{
		EmployeeID: c.GetString("employee_id"),
		Role:       visibility.ParseRole(c.GetString("role")),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) leaveType(c *gin.Context) (LeaveType, bool) {
	t, err := ParseLeaveType(c.Param("type"))
	if err != nil {
		h.writeServiceError(c, err)
		return "", false
	}
	return t, true
}

func filterByStatus(rows []DisplayRow, status string) []DisplayRow {
	if status == "" {
		return rows
	}
	out := make([]DisplayRow, 0, len(rows))
	for _, r := range rows {
		if strings.EqualFold(r.Status, status) {
			out = append(out, r)
		}
	}
	return out
}

func (h *Handler) GetAll(c *gin.Context) {
	leaveType, ok := h.leaveType(c)
	if !ok {
		return
	}

	var filterReq ListLeavesFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rows, err := h.service.List(c.Request.Context(), getActor(c), leaveType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	items, meta := response.Page(filterByStatus(rows, filterReq.Status), filterReq.Page, filterReq.PageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Export(c *gin.Context) {
	leaveType, ok := h.leaveType(c)
	if !ok {
		return
	}

	var filterReq ListLeavesFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	rows, err := h.service.List(c.Request.Context(), getActor(c), leaveType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	buf, name, err := ExportRows(filterByStatus(rows, filterReq.Status), leaveType, h.now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) GetByID(c *gin.Context) {
	leaveType, ok := h.leaveType(c)
	if !ok {
		return
	}

	resp, err := h.service.Detail(c.Request.Context(), getActor(c), leaveType, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	leaveType, ok := h.leaveType(c)
	if !ok {
		return
	}
	actor := getActor(c)
	h.logger.Debug("http create leave", zap.String("actor_id", actor.EmployeeID), zap.String("leave_type", string(leaveType)))

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitCreate(c.Request.Context(), actor, req.Payload(leaveType))
	if err != nil && !resp.Applied {
		h.writeServiceError(c, err)
		return
	}
	if err != nil {
		h.logger.Warn("reload after create failed", zap.Error(err))
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	leaveType, ok := h.leaveType(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req ApproveLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http approve leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitApproval(c.Request.Context(), getActor(c), leaveType, id, req.Substitute, Confirmed(req.Confirm))
	h.writeOutcome(c, resp, err)
}

func (h *Handler) Reject(c *gin.Context) {
	leaveType, ok := h.leaveType(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http reject leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitRejection(c.Request.Context(), getActor(c), leaveType, id, Confirmed(req.Confirm))
	h.writeOutcome(c, resp, err)
}

// writeOutcome reports an applied decision as success even when the reload
// that followed failed; the client reloads on its next list call.
func (h *Handler) writeOutcome(c *gin.Context, resp MutationOutcome, err error) {
	if err != nil && !resp.Applied {
		h.writeServiceError(c, err)
		return
	}
	if err != nil {
		h.logger.Warn("reload after decision failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SearchEmployees(c *gin.Context) {
	var req SearchEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SearchSubstitutes(c.Request.Context(), req.Name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UploadAttachment(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, apperror.RequiredField("File"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("File"))
		return
	}
	defer f.Close()

	resp, err := h.service.UploadAttachment(c.Request.Context(), fh.Filename, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeleteAttachment(c *gin.Context) {
	if err := h.service.DeleteAttachment(c.Request.Context(), c.Query("url")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
