package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httpresp"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
	"github.com/willowbrook-labs/sitter-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ParentHandler struct {
	db *gorm.DB
}

func NewParentHandler(db *gorm.DB) *ParentHandler {
	return &ParentHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateParentBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

// ======================================================
// ROUTES
// ======================================================

func (h *ParentHandler) List(c *gin.Context) {
	var parents []models.Parent
	if err := h.db.Order("id ASC").Find(&parents).Error; err != nil {
		httperr.Internal(c, "failed_to_list_parents", "Could not list parents.")
		return
	}

	httpresp.List(c, parents)
}

func (h *ParentHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_parent_id", "Invalid parent id.")
		return
	}

	var parent models.Parent
	if err := h.db.First(&parent, id).Error; err != nil {
		httperr.NotFound(c, "parent_not_found", "Parent not found.")
		return
	}

	httpresp.OK(c, parent)
}

func (h *ParentHandler) Create(c *gin.Context) {
	var body CreateParentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	parent := models.Parent{
		Name:  strings.TrimSpace(body.Name),
		Email: email,
		Phone: strings.TrimSpace(body.Phone),
	}

	if err := h.db.Create(&parent).Error; err != nil {
		httperr.Conflict(c, "email_in_use", "A parent with this email already exists.")
		return
	}

	httpresp.Created(c, parent)
}
