package booking

import "github.com/willowbrook-labs/sitter-scheduler/internal/httperr"

// ===============================
// Request Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// requestTransitions is the single source of truth for the request
// lifecycle. Cancelled and completed are terminal.
var requestTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

func (s Status) IsValid() bool {
	_, ok := requestTransitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	allowed, ok := requestTransitions[s]
	return !ok || len(allowed) == 0
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range requestTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanConfirm reports whether a request may be confirmed
func CanConfirm(current Status) error {
	if !current.CanTransitionTo(StatusConfirmed) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanCancel reports whether a request may be cancelled
func CanCancel(current Status) error {
	if !current.CanTransitionTo(StatusCancelled) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanComplete reports whether a request may be completed
func CanComplete(current Status) error {
	if !current.CanTransitionTo(StatusCompleted) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// InitialStatus is the status every new request starts in
func InitialStatus() Status {
	return StatusPending
}
