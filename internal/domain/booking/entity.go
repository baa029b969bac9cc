package booking

import (
	"time"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(req *models.BookingRequest, now time.Time) error {
	if err := CanConfirm(Status(req.Status)); err != nil {
		return err
	}

	req.Status = string(StatusConfirmed)
	req.ConfirmedAt = &now
	return nil
}

func Cancel(req *models.BookingRequest, now time.Time) error {
	if err := CanCancel(Status(req.Status)); err != nil {
		return err
	}

	req.Status = string(StatusCancelled)
	req.CancelledAt = &now
	return nil
}

// Complete marks a confirmed request as completed. The window end must have
// passed; the boundary is inclusive, so now == windowEnd is eligible.
func Complete(req *models.BookingRequest, now, windowEnd time.Time) error {
	if err := CanComplete(Status(req.Status)); err != nil {
		return err
	}

	if now.Before(windowEnd) {
		return httperr.ErrBusiness("invalid_transition")
	}

	req.Status = string(StatusCompleted)
	req.CompletedAt = &now
	return nil
}
