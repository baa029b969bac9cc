package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httpresp"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
	booking "github.com/willowbrook-labs/sitter-scheduler/internal/usecase/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type SitterHandler struct {
	db        *gorm.DB
	available *booking.FindAvailableSitters
}

func NewSitterHandler(db *gorm.DB, repo domain.Repository) *SitterHandler {
	return &SitterHandler{
		db:        db,
		available: booking.NewFindAvailableSitters(repo),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSitterBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *SitterHandler) List(c *gin.Context) {
	var sitters []models.Sitter
	if err := h.db.Order("id ASC").Find(&sitters).Error; err != nil {
		httperr.Internal(c, "failed_to_list_sitters", "Could not list sitters.")
		return
	}

	httpresp.List(c, sitters)
}

func (h *SitterHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_sitter_id", "Invalid sitter id.")
		return
	}

	var sitter models.Sitter
	if err := h.db.First(&sitter, id).Error; err != nil {
		httperr.NotFound(c, "sitter_not_found", "Sitter not found.")
		return
	}

	httpresp.OK(c, sitter)
}

func (h *SitterHandler) Create(c *gin.Context) {
	var body CreateSitterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	sitter := models.Sitter{
		Name:  strings.TrimSpace(body.Name),
		Email: email,
		Phone: strings.TrimSpace(body.Phone),
		Bio:   strings.TrimSpace(body.Bio),
	}

	if err := h.db.Create(&sitter).Error; err != nil {
		httperr.Conflict(c, "email_in_use", "A sitter with this email already exists.")
		return
	}

	httpresp.Created(c, sitter)
}

// Available answers "who can cover this window?" for parents shopping for a
// sitter before submitting a request.
func (h *SitterHandler) Available(c *gin.Context) {
	date := c.Query("date")
	start := c.Query("start_time")
	end := c.Query("end_time")

	if date == "" || start == "" || end == "" {
		httperr.BadRequest(c, "missing_params", "date, start_time and end_time are required.")
		return
	}

	sitters, err := h.available.Execute(c.Request.Context(), date, start, end)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	httpresp.List(c, sitters)
}
