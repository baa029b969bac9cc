package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/willowbrook-labs/sitter-scheduler/internal/audit"
	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httpresp"
	"github.com/willowbrook-labs/sitter-scheduler/internal/notify"
	booking "github.com/willowbrook-labs/sitter-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	repo domain.Repository

	submit   *booking.SubmitRequest
	list     *booking.ListRequests
	confirm  *booking.ConfirmRequest
	cancel   *booking.CancelRequest
	complete *booking.CompleteRequest
}

func NewRequestHandler(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
	consumeSlot bool,
	tz string,
) *RequestHandler {
	return &RequestHandler{
		repo:     repo,
		submit:   booking.NewSubmitRequest(repo, auditDisp, tz),
		list:     booking.NewListRequests(repo),
		confirm:  booking.NewConfirmRequest(repo, auditDisp, notifyDisp, consumeSlot, tz),
		cancel:   booking.NewCancelRequest(repo, auditDisp, tz),
		complete: booking.NewCompleteRequest(repo, auditDisp, tz),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequestBody struct {
	ParentID  uint   `json:"parent_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm
	Notes     string `json:"notes"`
}

type ConfirmRequestBody struct {
	SitterID uint `json:"sitter_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RequestHandler) Create(c *gin.Context) {
	var body CreateBookingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	req, err := h.submit.Execute(c.Request.Context(), booking.SubmitRequestInput{
		ParentID:  body.ParentID,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Notes:     body.Notes,
	})
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	httpresp.Created(c, req)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *RequestHandler) List(c *gin.Context) {
	parentID, ok := parseUintQuery(c, "parent_id")
	if !ok {
		httperr.BadRequest(c, "invalid_parent_id", "Invalid parent id.")
		return
	}

	out, err := h.list.Execute(c.Request.Context(), c.Query("status"), parentID)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_request_id", "Invalid request id.")
		return
	}

	req, err := h.repo.GetRequestByID(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "request_not_found", "Booking request not found.")
		return
	}

	resp := gin.H{"request": req}

	// A derived booking only exists after confirmation.
	if b, err := h.repo.GetBookingByRequestID(c.Request.Context(), id); err == nil {
		resp["booking"] = b
	}

	httpresp.OK(c, resp)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *RequestHandler) Confirm(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_request_id", "Invalid request id.")
		return
	}

	var body ConfirmRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), id, body.SitterID)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_request_id", "Invalid request id.")
		return
	}

	req, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	httpresp.OK(c, req)
}

func (h *RequestHandler) Complete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_request_id", "Invalid request id.")
		return
	}

	req, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		mapLifecycleError(c, err)
		return
	}

	httpresp.OK(c, req)
}
