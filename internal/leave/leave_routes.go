package leave

import (
	"hris-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb *redis.Client,
	mw ...gin.HandlerFunc,
) {
	auth := append([]gin.HandlerFunc{middleware.AuthMiddleware(jwtSecret)}, mw...)

	create := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "leave", "create")}
	if rdb != nil {
		create = append(create, middleware.Idempotency(rdb))
	}
	create = append(create, handler.Create)

	leaves := r.Group("/leaves")
	leaves.Use(auth...)
	{
		leaves.GET("/:type", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/:type/export", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.Export)
		leaves.GET("/:type/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByID)
		leaves.POST("/:type", create...)
		leaves.POST("/:type/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Approve)
		leaves.POST("/:type/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Reject)
	}

	employees := r.Group("/employees")
	employees.Use(auth...)
	{
		employees.GET("/search", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.SearchEmployees)
	}

	attachments := r.Group("/attachments")
	attachments.Use(auth...)
	{
		attachments.POST("", middleware.RBACAuthorize(rbacService, "attachment", "write"), handler.UploadAttachment)
		attachments.DELETE("", middleware.RBACAuthorize(rbacService, "attachment", "write"), handler.DeleteAttachment)
	}
}
