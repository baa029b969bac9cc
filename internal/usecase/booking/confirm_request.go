package booking

import (
	"context"
	"time"

	"github.com/willowbrook-labs/sitter-scheduler/internal/audit"
	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
	"github.com/willowbrook-labs/sitter-scheduler/internal/notify"
	"github.com/willowbrook-labs/sitter-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type ConfirmRequest struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher

	// When set, the availability slot that matched the request is deleted in
	// the same transaction as the confirmation.
	consumeSlot bool

	tz  string
	now func() time.Time
}

func NewConfirmRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
	consumeSlot bool,
	tz string,
) *ConfirmRequest {
	return &ConfirmRequest{
		repo:        repo,
		audit:       audit,
		notify:      notify,
		consumeSlot: consumeSlot,
		tz:          tz,
		now:         time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmRequest) Execute(
	ctx context.Context,
	requestID uint,
	sitterID uint,
) (*models.Booking, error) {

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, httperr.ErrBusiness("request_not_found")
	}

	now := uc.now().In(timezone.Location(uc.tz))

	if err := domain.Confirm(req, now); err != nil {
		return nil, err
	}

	w := domain.Window{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	slot, err := uc.repo.FindCoveringSlot(ctx, sitterID, w)
	if err != nil {
		return nil, httperr.ErrBusiness("no_matching_availability")
	}

	sitter, err := uc.repo.GetSitterByID(ctx, sitterID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		RequestID: req.ID,
		ParentID:  req.ParentID,
		SitterID:  sitterID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
		Status:    string(domain.StatusConfirmed),
	}

	var consumeSlotID uint
	if uc.consumeSlot {
		consumeSlotID = slot.ID
	}

	ok, err := uc.repo.ConfirmRequest(ctx, req.ID, b, now, consumeSlotID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The request changed state under us; the conditional write lost.
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	uc.audit.Dispatch(audit.Event{
		ActorKind: "sitter",
		ActorID:   &sitterID,
		Action:    "request_confirmed",
		Entity:    "booking_request",
		EntityID:  &req.ID,
	})

	uc.notify.Dispatch(notify.ConfirmationEvent{
		Booking: *b,
		Parent:  req.Parent,
		Sitter:  *sitter,
	})

	return b, nil
}
