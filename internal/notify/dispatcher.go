package notify

import (
	"context"

	"go.uber.org/zap"
)

// Dispatcher decouples notification delivery from the confirm path: events
// are queued and delivered by a background worker, fire-and-forget.
type Dispatcher struct {
	notifier Notifier
	queue    chan ConfirmationEvent
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan ConfirmationEvent, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.notifier.BookingConfirmed(context.Background(), ev); err != nil {
			zap.L().Warn("booking confirmation notice failed",
				zap.Uint("booking_id", ev.Booking.ID),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev ConfirmationEvent) {
	select {
	case d.queue <- ev:
	default:
		zap.L().Warn("notification queue full, dropping event",
			zap.Uint("booking_id", ev.Booking.ID),
		)
	}
}
