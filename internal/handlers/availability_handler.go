package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/willowbrook-labs/sitter-scheduler/internal/audit"
	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httpresp"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAvailabilityHandler(
	db *gorm.DB,
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:    db,
		repo:  repo,
		audit: auditDisp,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublishSlotBody struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm
	Recurring bool   `json:"recurring"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	sitterID, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_sitter_id", "Invalid sitter id.")
		return
	}

	if _, err := h.repo.GetSitterByID(c.Request.Context(), sitterID); err != nil {
		httperr.NotFound(c, "sitter_not_found", "Sitter not found.")
		return
	}

	var slots []models.AvailabilitySlot
	if err := h.db.
		Where("sitter_id = ?", sitterID).
		Order("date ASC, start_time ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_slots", "Could not list availability.")
		return
	}

	httpresp.List(c, slots)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	sitterID, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_sitter_id", "Invalid sitter id.")
		return
	}

	if _, err := h.repo.GetSitterByID(c.Request.Context(), sitterID); err != nil {
		httperr.NotFound(c, "sitter_not_found", "Sitter not found.")
		return
	}

	var body PublishSlotBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	w, err := domain.ParseWindow(body.Date, body.StartTime, body.EndTime)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	slot := models.AvailabilitySlot{
		SitterID:  sitterID,
		Date:      w.Date,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Recurring: body.Recurring,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_publish_slot", "Could not publish availability.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorKind: "sitter",
		ActorID:   &sitterID,
		Action:    "slot_published",
		Entity:    "availability_slot",
		EntityID:  &slot.ID,
	})

	httpresp.Created(c, slot)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	if err := h.repo.DeleteSlot(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "slot_not_found", "Availability slot not found.")
			return
		}

		httperr.Internal(c, "failed_to_delete_slot", "Could not remove availability.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorKind: "sitter",
		Action:    "slot_removed",
		Entity:    "availability_slot",
		EntityID:  &id,
	})

	c.Status(204)
}
