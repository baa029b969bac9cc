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
// USE CASE
// ======================================================

type CompleteRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
	now   func() time.Time
}

func NewCompleteRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CompleteRequest {
	return &CompleteRequest{
		repo:  repo,
		audit: audit,
		tz:    tz,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CompleteRequest) Execute(
	ctx context.Context,
	requestID uint,
) (*models.BookingRequest, error) {

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	loc := timezone.Location(uc.tz)
	now := uc.now().In(loc)

	w := domain.Window{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := domain.Complete(req, now, w.EndInstant(loc)); err != nil {
		return nil, err
	}

	ok, err := uc.repo.CompleteRequest(ctx, req.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "sitter",
		Action:    "request_completed",
		Entity:    "booking_request",
		EntityID:  &req.ID,
	})

	return req, nil
}
