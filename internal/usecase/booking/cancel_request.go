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

type CancelRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
	now   func() time.Time
}

func NewCancelRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CancelRequest {
	return &CancelRequest{
		repo:  repo,
		audit: audit,
		tz:    tz,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CancelRequest) Execute(
	ctx context.Context,
	requestID uint,
) (*models.BookingRequest, error) {

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	now := uc.now().In(timezone.Location(uc.tz))

	if err := domain.Cancel(req, now); err != nil {
		return nil, err
	}

	ok, err := uc.repo.CancelRequest(ctx, req.ID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "parent",
		ActorID:   &req.ParentID,
		Action:    "request_cancelled",
		Entity:    "booking_request",
		EntityID:  &req.ID,
	})

	return req, nil
}
