package booking

import (
	"testing"
	"time"

	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
)

func TestParseWindowValid(t *testing.T) {
	w, err := ParseWindow("2026-09-12", "17:00", "20:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Date != "2026-09-12" || w.StartTime != "17:00" || w.EndTime != "20:00" {
		t.Fatalf("unexpected window: %+v", w)
	}
}

func TestParseWindowTruncatesSeconds(t *testing.T) {
	w, err := ParseWindow("2026-09-12", "17:00:00", "20:30:59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.StartTime != "17:00" || w.EndTime != "20:30" {
		t.Fatalf("seconds not truncated: %+v", w)
	}
}

func TestParseWindowRejectsBadInput(t *testing.T) {
	cases := []struct {
		date, start, end string
	}{
		{"12/09/2026", "17:00", "20:00"},
		{"2026-13-01", "17:00", "20:00"},
		{"2026-09-12", "25:00", "26:00"},
		{"2026-09-12", "5pm", "8pm"},
		{"2026-09-12", "20:00", "17:00"}, // end before start
		{"2026-09-12", "17:00", "17:00"}, // zero-length
		{"", "17:00", "20:00"},
	}

	for _, tc := range cases {
		_, err := ParseWindow(tc.date, tc.start, tc.end)
		if !httperr.IsBusiness(err, "invalid_date_or_time") {
			t.Errorf("ParseWindow(%q, %q, %q): expected invalid_date_or_time, got %v",
				tc.date, tc.start, tc.end, err)
		}
	}
}

func TestCovers(t *testing.T) {
	w := Window{Date: "2026-09-12", StartTime: "17:00", EndTime: "20:00"}

	cases := []struct {
		slotStart, slotEnd string
		want               bool
	}{
		{"13:00", "22:00", true},  // wide slot
		{"17:00", "20:00", true},  // exact match
		{"17:00", "22:00", true},  // shared start
		{"18:00", "20:00", false}, // starts too late
		{"13:00", "19:00", false}, // ends too early
		{"18:00", "19:00", false}, // inside the window
		{"20:00", "23:00", false}, // after
		{"09:00", "12:00", false}, // before
	}

	for _, tc := range cases {
		if got := Covers(tc.slotStart, tc.slotEnd, w); got != tc.want {
			t.Errorf("Covers(%s-%s): got %v, want %v", tc.slotStart, tc.slotEnd, got, tc.want)
		}
	}
}

func TestEndInstant(t *testing.T) {
	w := Window{Date: "2026-09-12", StartTime: "17:00", EndTime: "20:00"}

	end := w.EndInstant(time.UTC)
	want := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("EndInstant: got %v, want %v", end, want)
	}

	if !w.StartInstant(time.UTC).Before(end) {
		t.Fatal("start must precede end")
	}
}
