package routes

import (
	"log"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/themut001/timecard-web-v3/config"
	"github.com/themut001/timecard-web-v3/handlers"
	"github.com/themut001/timecard-web-v3/middlewares"
	"github.com/themut001/timecard-web-v3/reporting"
	"github.com/themut001/timecard-web-v3/services/notion"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	reports := reporting.NewStore(db)

	// missing Notion credentials disable the sync endpoints, nothing else
	var syncer *notion.Syncer
	if svc, err := notion.NewService(cfg.NotionAPIKey, cfg.NotionDatabaseID); err != nil {
		log.Printf("notion sync disabled: %v", err)
	} else {
		syncer = notion.NewSyncer(db, svc)
	}

	auth := handlers.NewAuthHandler(db, cfg.JWTSecret, cfg.JWTRefreshSecret)
	att := handlers.NewAttendanceHandler(db)
	rep := handlers.NewReportHandler(db, reports)
	tags := handlers.NewTagHandler(db, syncer)
	admin := handlers.NewAdminHandler(db, reports)
	reqs := handlers.NewRequestHandler(db)

	e.GET("/health", handlers.Health)

	api := e.Group("/api")
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	adminMW := middlewares.RequireRole("admin")

	// ===== Auth =====
	a := api.Group("/auth")
	a.POST("/login", auth.Login)
	a.POST("/refresh", auth.Refresh)
	a.POST("/forgot-password", auth.ForgotPassword)
	a.POST("/logout", auth.Logout, authMW)
	a.GET("/me", auth.Me, authMW)

	// ===== Attendance =====
	at := api.Group("/attendance", authMW)
	at.GET("/today", att.Today)
	at.POST("/clock-in", att.ClockIn)
	at.POST("/clock-out", att.ClockOut)
	at.GET("/history", att.History)
	at.GET("/summary", att.Summary)

	// ===== Daily reports + personal effort analytics =====
	r := api.Group("/reports", authMW)
	r.GET("/daily", rep.Get)
	r.POST("/daily", rep.Create)
	r.PUT("/daily/:id", rep.Update)
	r.GET("/daily/list", rep.List)
	api.GET("/efforts/summary", rep.EffortSummary, authMW)

	// ===== Tags =====
	t := api.Group("/tags", authMW)
	t.GET("", tags.List)
	t.GET("/active", tags.Active)
	t.GET("/search", tags.Search)
	t.POST("/sync", tags.Sync, adminMW)

	// ===== Leave/overtime requests =====
	rq := api.Group("/requests", authMW)
	rq.POST("", reqs.Create)
	rq.GET("/mine", reqs.Mine)

	// ===== Admin =====
	ad := api.Group("/admin", authMW, adminMW)
	ad.GET("/employees", admin.Employees)
	ad.GET("/attendance/all", admin.AttendanceAll)
	ad.PUT("/attendance/:id", admin.UpdateAttendance)
	ad.GET("/reports/monthly", admin.MonthlyReports)
	ad.GET("/tags/efforts", admin.TagEfforts)
	ad.GET("/tags/sync-status", admin.SyncStatus)
	ad.POST("/tags/sync", tags.Sync)
	ad.GET("/requests", reqs.List)
	ad.GET("/requests/pending-count", reqs.PendingCount)
	ad.POST("/requests/:id/approve", reqs.Approve)
	ad.POST("/requests/:id/reject", reqs.Reject)
}
