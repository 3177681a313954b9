package app

import (
	"database/sql"

	"go-care/internal/annualleave"
	"go-care/internal/calendar"
	"go-care/internal/config"
	"go-care/internal/events"
	"go-care/internal/leave"
	"go-care/internal/leavestatus"
	"go-care/internal/messaging/kafka"
	"go-care/internal/middleware"
	"go-care/internal/notification"
	"go-care/internal/rbac"
	"go-care/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	annualLeaveRepo := annualleave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Side channels ---
	bus := events.NewBus()
	dispatcher := notification.NewOutboxDispatcher(outboxRepo)

	// --- Services ---
	leaveService := leave.NewServiceWithNotifier(db, leaveRepo, dispatcher, bus)
	annualLeaveService := annualleave.NewService(db, annualLeaveRepo, bus)
	leaveStatusService := leavestatus.NewService(leaveRepo, annualLeaveRepo)
	calendarService := calendar.NewService(leaveRepo, annualLeaveRepo, rdb)

	bus.SubscribeLeaveMutated("calendar.cache", calendar.NewCacheInvalidator(rdb, calendarService).Handle)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService)
	annualLeaveHandler := annualleave.NewHandler(annualLeaveService)
	leaveStatusHandler := leavestatus.NewHandler(leaveStatusService)
	calendarHandler := calendar.NewHandler(calendarService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		annualleave.RegisterRoutes(api, annualLeaveHandler, rbacService, rdb)
		leavestatus.RegisterRoutes(api, leaveStatusHandler, rbacService)
		calendar.RegisterRoutes(api, calendarHandler, rbacService)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	rbac.RegisterRoutes(authed, rbacHandler, rbacService)

	return nil
}
