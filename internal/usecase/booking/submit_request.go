package booking

import (
	"context"
	"time"

	"github.com/willowbrook-labs/sitter-scheduler/internal/audit"
	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
	"github.com/willowbrook-labs/sitter-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SubmitRequestInput struct {
	ParentID uint

	Date      string
	StartTime string
	EndTime   string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string

	now func() time.Time
}

func NewSubmitRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *SubmitRequest {
	return &SubmitRequest{
		repo:  repo,
		audit: audit,
		tz:    tz,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitRequest) Execute(
	ctx context.Context,
	in SubmitRequestInput,
) (*models.BookingRequest, error) {

	w, err := domain.ParseWindow(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	// Requests for days already gone are rejected; today is still fine.
	today := uc.now().In(timezone.Location(uc.tz)).Format("2006-01-02")
	if w.Date < today {
		return nil, httperr.ErrBusiness("date_in_the_past")
	}

	if _, err := uc.repo.GetParentByID(ctx, in.ParentID); err != nil {
		return nil, httperr.ErrBusiness("unknown_parent")
	}

	req := &models.BookingRequest{
		ParentID:  in.ParentID,
		Date:      w.Date,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "parent",
		ActorID:   &in.ParentID,
		Action:    "request_submitted",
		Entity:    "booking_request",
		EntityID:  &req.ID,
	})

	return req, nil
}
