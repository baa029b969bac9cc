package booking

import (
	"context"
	"time"

	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
)

type Repository interface {
	// -------- Parent / Sitter --------
	GetParentByID(
		ctx context.Context,
		id uint,
	) (*models.Parent, error)

	GetSitterByID(
		ctx context.Context,
		id uint,
	) (*models.Sitter, error)

	// -------- Request (create / read) --------
	CreateRequest(
		ctx context.Context,
		req *models.BookingRequest,
	) error

	GetRequestByID(
		ctx context.Context,
		id uint,
	) (*models.BookingRequest, error)

	ListRequests(
		ctx context.Context,
		status string,
		parentID uint,
	) ([]models.BookingRequest, error)

	// -------- Availability --------
	FindCoveringSlot(
		ctx context.Context,
		sitterID uint,
		w Window,
	) (*models.AvailabilitySlot, error)

	ListAvailableSitters(
		ctx context.Context,
		w Window,
	) ([]models.Sitter, error)

	DeleteSlot(
		ctx context.Context,
		id uint,
	) error

	// -------- Lifecycle (atomic state changes) --------
	//
	// Each mutating transition is a single transaction whose status write is
	// conditioned on the expected prior status. A false return means the
	// conditional update matched zero rows: the request was not in the
	// expected state when the write happened.

	// ConfirmRequest flips the request pending -> confirmed and inserts b in
	// the same transaction. It fails with a time_conflict business error when
	// the sitter already holds a confirmed booking overlapping b's window.
	// When consumeSlotID is non-zero the slot is deleted alongside.
	ConfirmRequest(
		ctx context.Context,
		requestID uint,
		b *models.Booking,
		now time.Time,
		consumeSlotID uint,
	) (bool, error)

	// CancelRequest flips pending|confirmed -> cancelled and cascades the
	// cancellation to any booking derived from the request.
	CancelRequest(
		ctx context.Context,
		requestID uint,
		now time.Time,
	) (bool, error)

	// CompleteRequest flips confirmed -> completed and mirrors the status on
	// the derived booking.
	CompleteRequest(
		ctx context.Context,
		requestID uint,
		now time.Time,
	) (bool, error)

	// -------- Booking (read) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingByRequestID(
		ctx context.Context,
		requestID uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		parentID uint,
		sitterID uint,
	) ([]models.Booking, error)
}
