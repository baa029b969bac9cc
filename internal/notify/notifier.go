package notify

import (
	"context"

	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
)

// ConfirmationEvent carries everything a notifier needs to tell both parties
// about a freshly confirmed booking.
type ConfirmationEvent struct {
	Booking models.Booking
	Parent  models.Parent
	Sitter  models.Sitter
}

// Notifier is the delivery side of confirmation notices. A failed delivery
// must never roll back the confirmation that triggered it.
type Notifier interface {
	BookingConfirmed(ctx context.Context, ev ConfirmationEvent) error
}
