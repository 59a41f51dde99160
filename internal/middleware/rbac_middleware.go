package middleware

import (
	"hris-console/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service.
type RBACService interface {
	Enforce(role, resource, action string) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("employee_id"); !ok {
			abort(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(c.GetString("role"), resource, action)
		if err != nil {
			abort(c, apperror.ErrInternal)
			return
		}

		if !allowed {
			abort(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
