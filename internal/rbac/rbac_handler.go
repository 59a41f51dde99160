package rbac

import (
	"net/http"
	"strings"

	"hris-console/internal/shared/apperror"
	"hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce answers whether a role may perform an action. The role defaults to
// the caller's own.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	req.Role = strings.TrimSpace(req.Role)
	if req.Role == "" {
		req.Role = c.GetString("role")
	}

	allowed, err := h.service.Enforce(req.Role, strings.TrimSpace(req.Resource), strings.TrimSpace(req.Action))
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInternal.WithErr(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{
		Allowed: allowed,
	}, nil)
}
