package calendar

import (
	"go-care/internal/middleware"
	"go-care/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	cal := r.Group("/calendar")
	cal.Use(middleware.AuthMiddleware())
	{
		cal.GET("/organization", middleware.RBACAuthorize(rbacService, "calendar", "read"), handler.Organization)
		cal.GET("/stats", middleware.RBACAuthorize(rbacService, "calendar", "read"), handler.Stats)
	}
}
