package annualleave

import (
	"go-care/internal/middleware"
	"go-care/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	entries := r.Group("/annual-leave")
	entries.Use(middleware.AuthMiddleware())
	{
		entries.GET("", middleware.RBACAuthorize(rbacService, "annual_leave", "read"), handler.GetAll)
		entries.GET("/export", middleware.RBACAuthorize(rbacService, "annual_leave", "read"), handler.Export)
		entries.GET("/:id", middleware.RBACAuthorize(rbacService, "annual_leave", "read"), handler.GetByID)
		entries.POST("",
			middleware.RBACAuthorize(rbacService, "annual_leave", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		entries.PUT("/:id", middleware.RBACAuthorize(rbacService, "annual_leave", "update"), handler.Update)
		entries.DELETE("/:id", middleware.RBACAuthorize(rbacService, "annual_leave", "delete"), handler.Delete)
		entries.POST("/bulk-delete", middleware.RBACAuthorize(rbacService, "annual_leave", "delete"), handler.BulkDelete)

		entries.PUT("/series/:seriesId", middleware.RBACAuthorize(rbacService, "annual_leave", "update"), handler.UpdateSeries)
		entries.DELETE("/series/:seriesId", middleware.RBACAuthorize(rbacService, "annual_leave", "delete"), handler.DeleteSeries)
	}
}
