package leavestatus

import (
	"go-care/internal/middleware"
	"go-care/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	status := r.Group("/leave-status")
	status.Use(middleware.AuthMiddleware())
	{
		status.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.Query)
	}
}
