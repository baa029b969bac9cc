package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// LogNotifier renders confirmation notices and emits them on the process
// log. It stands in for a mail provider; swapping in real delivery means
// implementing Notifier against the same rendered content.
type LogNotifier struct {
	logger *zap.Logger
	links  *LinkSigner
}

func NewLogNotifier(logger *zap.Logger, links *LinkSigner) *LogNotifier {
	return &LogNotifier{logger: logger, links: links}
}

func (n *LogNotifier) BookingConfirmed(ctx context.Context, ev ConfirmationEvent) error {
	link, err := n.links.BookingLink(ev.Booking.ID)
	if err != nil {
		return fmt.Errorf("sign booking link: %w", err)
	}

	body := renderConfirmation(ev, link)

	// One notice per party, like the mail version would send.
	n.logger.Info("booking confirmation notice",
		zap.String("to", ev.Parent.Email),
		zap.String("subject", "Your babysitting booking is confirmed"),
		zap.String("body", body),
	)
	n.logger.Info("booking confirmation notice",
		zap.String("to", ev.Sitter.Email),
		zap.String("subject", "New babysitting booking confirmed"),
		zap.String("body", body),
	)

	return nil
}

func renderConfirmation(ev ConfirmationEvent, link string) string {
	date := ev.Booking.Date
	if d, err := time.Parse("2006-01-02", ev.Booking.Date); err == nil {
		date = d.Format("January 02, 2006")
	}

	start := formatClock(ev.Booking.StartTime)
	end := formatClock(ev.Booking.EndTime)

	body := fmt.Sprintf(
		"Hello %s, your babysitting appointment with %s is confirmed for %s, %s - %s.",
		ev.Parent.Name, ev.Sitter.Name, date, start, end,
	)

	if ev.Booking.Notes != "" {
		body += fmt.Sprintf(" Notes: %s.", ev.Booking.Notes)
	}

	return body + " View it here: " + link
}

func formatClock(hm string) string {
	if t, err := time.Parse("15:04", hm); err == nil {
		return t.Format("3:04 PM")
	}
	return hm
}

var _ Notifier = (*LogNotifier)(nil)
