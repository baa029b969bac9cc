package notify

import (
	"strings"
	"testing"
)

func TestBookingLinkRoundTrip(t *testing.T) {
	signer := NewLinkSigner("test-secret", "http://localhost:3000")

	link, err := signer.BookingLink(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "http://localhost:3000/bookings/42?token=") {
		t.Fatalf("unexpected link shape: %s", link)
	}

	token := strings.SplitN(link, "token=", 2)[1]

	id, err := signer.VerifyBookingToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Fatalf("got id %d, want 42", id)
	}
}

func TestVerifyBookingTokenWrongSecret(t *testing.T) {
	signer := NewLinkSigner("test-secret", "http://localhost:3000")
	other := NewLinkSigner("other-secret", "http://localhost:3000")

	link, err := signer.BookingLink(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token := strings.SplitN(link, "token=", 2)[1]

	if _, err := other.VerifyBookingToken(token); err == nil {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestVerifyBookingTokenGarbage(t *testing.T) {
	signer := NewLinkSigner("test-secret", "http://localhost:3000")

	if _, err := signer.VerifyBookingToken("not-a-token"); err == nil {
		t.Fatal("garbage must not verify")
	}
	if _, err := signer.VerifyBookingToken(""); err == nil {
		t.Fatal("empty token must not verify")
	}
}
