package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httpresp"
	"github.com/willowbrook-labs/sitter-scheduler/internal/notify"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo  domain.Repository
	links *notify.LinkSigner
}

func NewBookingHandler(repo domain.Repository, links *notify.LinkSigner) *BookingHandler {
	return &BookingHandler{repo: repo, links: links}
}

// ======================================================
// ROUTES
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	parentID, ok := parseUintQuery(c, "parent_id")
	if !ok {
		httperr.BadRequest(c, "invalid_parent_id", "Invalid parent id.")
		return
	}

	sitterID, ok := parseUintQuery(c, "sitter_id")
	if !ok {
		httperr.BadRequest(c, "invalid_sitter_id", "Invalid sitter id.")
		return
	}

	bookings, err := h.repo.ListBookings(c.Request.Context(), parentID, sitterID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// View serves the booking behind a confirmation notice link. The signed
// token in the query string is the only credential.
func (h *BookingHandler) View(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	tokenID, err := h.links.VerifyBookingToken(c.Query("token"))
	if err != nil || tokenID != id {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	b, err := h.repo.GetBookingByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}
