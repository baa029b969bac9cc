package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/willowbrook-labs/sitter-scheduler/internal/audit"
	"github.com/willowbrook-labs/sitter-scheduler/internal/config"
	"github.com/willowbrook-labs/sitter-scheduler/internal/handlers"
	infraRepo "github.com/willowbrook-labs/sitter-scheduler/internal/infra/repository"
	"github.com/willowbrook-labs/sitter-scheduler/internal/notify"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifyDispatcher *notify.Dispatcher,
	links *notify.LinkSigner,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	requestHandler := handlers.NewRequestHandler(
		repo,
		auditDispatcher,
		notifyDispatcher,
		cfg.ConsumeSlotOnConfirm,
		cfg.Timezone,
	)

	parentHandler := handlers.NewParentHandler(db)
	sitterHandler := handlers.NewSitterHandler(db, repo)
	availabilityHandler := handlers.NewAvailabilityHandler(db, repo, auditDispatcher)
	bookingHandler := handlers.NewBookingHandler(repo, links)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PARENTS
		// ------------------------------
		api.GET("/parents", parentHandler.List)
		api.POST("/parents", parentHandler.Create)
		api.GET("/parents/:id", parentHandler.Get)

		// ------------------------------
		// SITTERS + AVAILABILITY
		// ------------------------------
		api.GET("/sitters", sitterHandler.List)
		api.POST("/sitters", sitterHandler.Create)
		api.GET("/sitters/available", sitterHandler.Available)
		api.GET("/sitters/:id", sitterHandler.Get)

		api.GET("/sitters/:id/availability", availabilityHandler.List)
		api.POST("/sitters/:id/availability", availabilityHandler.Create)
		api.DELETE("/availability/:id", availabilityHandler.Delete)

		// ------------------------------
		// BOOKING REQUESTS
		// ------------------------------
		api.POST("/requests", requestHandler.Create)
		api.GET("/requests", requestHandler.List)
		api.GET("/requests/:id", requestHandler.Get)
		api.PATCH("/requests/:id/confirm", requestHandler.Confirm)
		api.PATCH("/requests/:id/cancel", requestHandler.Cancel)
		api.PATCH("/requests/:id/complete", requestHandler.Complete)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.GET("/bookings", bookingHandler.List)
		api.GET("/bookings/:id", bookingHandler.View)

		// ------------------------------
		// DASHBOARD + AUDIT
		// ------------------------------
		api.GET("/dashboard/summary", dashboardHandler.Summary)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
