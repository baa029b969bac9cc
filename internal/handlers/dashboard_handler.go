package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httpresp"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
	"github.com/willowbrook-labs/sitter-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	db *gorm.DB
	tz string
}

func NewDashboardHandler(db *gorm.DB, tz string) *DashboardHandler {
	return &DashboardHandler{db: db, tz: tz}
}

// ======================================================
// SUMMARY
// ======================================================

// Summary returns request counts per status plus today's and upcoming
// confirmed bookings.
func (h *DashboardHandler) Summary(c *gin.Context) {
	statuses := []string{"pending", "confirmed", "cancelled", "completed"}
	counts := make(map[string]int64, len(statuses))

	for _, s := range statuses {
		var n int64
		if err := h.db.
			Model(&models.BookingRequest{}).
			Where("status = ?", s).
			Count(&n).Error; err != nil {

			httperr.Internal(c, "dashboard_failed", "Could not build summary.")
			return
		}
		counts[s] = n
	}

	today := timezone.NowIn(h.tz).Format("2006-01-02")

	var todays []models.Booking
	if err := h.db.
		Preload("Parent").
		Preload("Sitter").
		Where("date = ? AND status = ?", today, "confirmed").
		Order("start_time ASC").
		Find(&todays).Error; err != nil {

		httperr.Internal(c, "dashboard_failed", "Could not build summary.")
		return
	}

	var upcoming int64
	if err := h.db.
		Model(&models.Booking{}).
		Where("date > ? AND status = ?", today, "confirmed").
		Count(&upcoming).Error; err != nil {

		httperr.Internal(c, "dashboard_failed", "Could not build summary.")
		return
	}

	httpresp.OK(c, gin.H{
		"requests":       counts,
		"today":          todays,
		"upcoming_count": upcoming,
		"reference_date": today,
	})
}
