package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
)

func newCompleteUC(repo *fakeRepo, now time.Time) *CompleteRequest {
	uc := NewCompleteRequest(repo, newTestAudit(), "UTC")
	uc.now = func() time.Time { return now }
	return uc
}

// confirms the request for sitter Maya with a wide slot and returns it.
func seedConfirmed(t *testing.T, repo *fakeRepo) (requestID uint, bookingID uint) {
	t.Helper()

	parent := repo.addParent("Dana", "dana@example.com")
	sitter := repo.addSitter("Maya", "maya@example.com")
	repo.addSlot(sitter.ID, "2026-09-12", "13:00", "22:00")

	req := seedPendingRequest(repo, parent.ID, "2026-09-12", "17:00", "20:00")

	confirm := newConfirmUC(repo, newChannelNotifier(), false)
	b, err := confirm.Execute(context.Background(), req.ID, sitter.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	return req.ID, b.ID
}

func TestCompleteAfterWindowEnd(t *testing.T) {
	repo := newFakeRepo()
	reqID, bookingID := seedConfirmed(t, repo)

	after := time.Date(2026, 9, 12, 21, 0, 0, 0, time.UTC)
	uc := newCompleteUC(repo, after)

	out, err := uc.Execute(context.Background(), reqID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != string(domain.StatusCompleted) || out.CompletedAt == nil {
		t.Fatalf("complete did not stick: %+v", out)
	}

	b, _ := repo.GetBookingByID(context.Background(), bookingID)
	if b.Status != string(domain.StatusCompleted) {
		t.Fatalf("completion did not mirror onto the booking: %+v", b)
	}
}

func TestCompleteAtExactWindowEnd(t *testing.T) {
	repo := newFakeRepo()
	reqID, _ := seedConfirmed(t, repo)

	boundary := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	uc := newCompleteUC(repo, boundary)

	if _, err := uc.Execute(context.Background(), reqID); err != nil {
		t.Fatalf("boundary completion should be eligible: %v", err)
	}
}

func TestCompleteTooEarly(t *testing.T) {
	repo := newFakeRepo()
	reqID, _ := seedConfirmed(t, repo)

	during := time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)
	uc := newCompleteUC(repo, during)

	_, err := uc.Execute(context.Background(), reqID)
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}

	stored, _ := repo.GetRequestByID(context.Background(), reqID)
	if stored.Status != string(domain.StatusConfirmed) {
		t.Fatalf("early complete must not change status, got %s", stored.Status)
	}
}

func TestCompletePendingRequest(t *testing.T) {
	repo := newFakeRepo()
	parent := repo.addParent("Dana", "dana@example.com")
	req := seedPendingRequest(repo, parent.ID, "2026-09-12", "17:00", "20:00")

	after := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	uc := newCompleteUC(repo, after)

	_, err := uc.Execute(context.Background(), req.ID)
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}
