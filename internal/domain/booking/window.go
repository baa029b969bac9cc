package booking

import (
	"time"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Window is a request's date/time window. Date is YYYY-MM-DD and times are
// HH:MM wall-clock values; with zero-padded digits HH:MM orders correctly as
// plain text, so containment checks are string comparisons.
type Window struct {
	Date      string
	StartTime string
	EndTime   string
}

// ParseWindow validates and normalizes raw date/time input. Seconds are
// accepted ("HH:MM:SS") and truncated.
func ParseWindow(date, startTime, endTime string) (Window, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Window{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := normalizeTime(startTime)
	if err != nil {
		return Window{}, err
	}

	end, err := normalizeTime(endTime)
	if err != nil {
		return Window{}, err
	}

	if start >= end {
		return Window{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	return Window{Date: date, StartTime: start, EndTime: end}, nil
}

func normalizeTime(v string) (string, error) {
	if len(v) == 8 {
		v = v[:5]
	}
	if _, err := time.Parse(timeLayout, v); err != nil {
		return "", httperr.ErrBusiness("invalid_date_or_time")
	}
	return v, nil
}

// Covers reports whether the slot window fully contains the request window.
// Partial overlap is not enough.
func Covers(slotStart, slotEnd string, w Window) bool {
	return slotStart <= w.StartTime && slotEnd >= w.EndTime
}

// StartInstant resolves the window start to an instant in loc.
func (w Window) StartInstant(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(dateLayout+" "+timeLayout, w.Date+" "+w.StartTime, loc)
	return t
}

// EndInstant resolves the window end to an instant in loc.
func (w Window) EndInstant(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(dateLayout+" "+timeLayout, w.Date+" "+w.EndTime, loc)
	return t
}
