package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/willowbrook-labs/sitter-scheduler/internal/audit"
	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
	"github.com/willowbrook-labs/sitter-scheduler/internal/notify"
)

// fakeRepo is an in-memory Repository with the same conditional-update
// semantics as the gorm implementation: lifecycle writes happen under one
// lock and fail with (false, nil) when the stored status is stale.
type fakeRepo struct {
	mu sync.Mutex

	parents  map[uint]models.Parent
	sitters  map[uint]models.Sitter
	slots    map[uint]models.AvailabilitySlot
	requests map[uint]models.BookingRequest
	bookings map[uint]models.Booking

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		parents:  make(map[uint]models.Parent),
		sitters:  make(map[uint]models.Sitter),
		slots:    make(map[uint]models.AvailabilitySlot),
		requests: make(map[uint]models.BookingRequest),
		bookings: make(map[uint]models.Booking),
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

// -------- seeding helpers --------

func (f *fakeRepo) addParent(name, email string) models.Parent {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := models.Parent{ID: f.id(), Name: name, Email: email}
	f.parents[p.ID] = p
	return p
}

func (f *fakeRepo) addSitter(name, email string) models.Sitter {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := models.Sitter{ID: f.id(), Name: name, Email: email}
	f.sitters[s.ID] = s
	return s
}

func (f *fakeRepo) addSlot(sitterID uint, date, start, end string) models.AvailabilitySlot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := models.AvailabilitySlot{
		ID:       f.id(),
		SitterID: sitterID,
		Date:     date, StartTime: start, EndTime: end,
	}
	f.slots[s.ID] = s
	return s
}

// -------- Parent / Sitter --------

func (f *fakeRepo) GetParentByID(ctx context.Context, id uint) (*models.Parent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.parents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeRepo) GetSitterByID(ctx context.Context, id uint) (*models.Sitter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sitters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

// -------- Request (create / read) --------

func (f *fakeRepo) CreateRequest(ctx context.Context, req *models.BookingRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	req.ID = f.id()
	req.CreatedAt = time.Now()
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeRepo) GetRequestByID(ctx context.Context, id uint) (*models.BookingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	req.Parent = f.parents[req.ParentID]
	return &req, nil
}

func (f *fakeRepo) ListRequests(ctx context.Context, status string, parentID uint) ([]models.BookingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.BookingRequest
	for _, req := range f.requests {
		if status != "" && req.Status != status {
			continue
		}
		if parentID != 0 && req.ParentID != parentID {
			continue
		}
		req.Parent = f.parents[req.ParentID]
		out = append(out, req)
	}
	return out, nil
}

// -------- Availability --------

func (f *fakeRepo) FindCoveringSlot(ctx context.Context, sitterID uint, w domain.Window) (*models.AvailabilitySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.slots {
		if s.SitterID == sitterID && s.Date == w.Date && domain.Covers(s.StartTime, s.EndTime, w) {
			slot := s
			return &slot, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListAvailableSitters(ctx context.Context, w domain.Window) ([]models.Sitter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[uint]bool)
	var out []models.Sitter
	for _, s := range f.slots {
		if s.Date != w.Date || !domain.Covers(s.StartTime, s.EndTime, w) || seen[s.SitterID] {
			continue
		}
		seen[s.SitterID] = true
		out = append(out, f.sitters[s.SitterID])
	}
	return out, nil
}

func (f *fakeRepo) DeleteSlot(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.slots[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.slots, id)
	return nil
}

// -------- Lifecycle --------

func (f *fakeRepo) ConfirmRequest(
	ctx context.Context,
	requestID uint,
	b *models.Booking,
	now time.Time,
	consumeSlotID uint,
) (bool, error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, other := range f.bookings {
		if other.SitterID == b.SitterID &&
			other.Status == string(domain.StatusConfirmed) &&
			other.Date == b.Date &&
			other.StartTime < b.EndTime &&
			other.EndTime > b.StartTime {
			return false, httperr.ErrBusiness("time_conflict")
		}
	}

	req, ok := f.requests[requestID]
	if !ok || req.Status != string(domain.StatusPending) {
		return false, nil
	}

	req.Status = string(domain.StatusConfirmed)
	req.ConfirmedAt = &now
	f.requests[requestID] = req

	b.ID = f.id()
	f.bookings[b.ID] = *b

	if consumeSlotID != 0 {
		delete(f.slots, consumeSlotID)
	}

	return true, nil
}

func (f *fakeRepo) CancelRequest(ctx context.Context, requestID uint, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[requestID]
	if !ok {
		return false, nil
	}
	if req.Status != string(domain.StatusPending) && req.Status != string(domain.StatusConfirmed) {
		return false, nil
	}

	req.Status = string(domain.StatusCancelled)
	req.CancelledAt = &now
	f.requests[requestID] = req

	for id, b := range f.bookings {
		if b.RequestID == requestID && b.Status == string(domain.StatusConfirmed) {
			b.Status = string(domain.StatusCancelled)
			b.CancelledAt = &now
			f.bookings[id] = b
		}
	}
	return true, nil
}

func (f *fakeRepo) CompleteRequest(ctx context.Context, requestID uint, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[requestID]
	if !ok || req.Status != string(domain.StatusConfirmed) {
		return false, nil
	}

	req.Status = string(domain.StatusCompleted)
	req.CompletedAt = &now
	f.requests[requestID] = req

	for id, b := range f.bookings {
		if b.RequestID == requestID && b.Status == string(domain.StatusConfirmed) {
			b.Status = string(domain.StatusCompleted)
			b.CompletedAt = &now
			f.bookings[id] = b
		}
	}
	return true, nil
}

// -------- Booking (read) --------

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeRepo) GetBookingByRequestID(ctx context.Context, requestID uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if b.RequestID == requestID {
			booking := b
			return &booking, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookings(ctx context.Context, parentID, sitterID uint) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if parentID != 0 && b.ParentID != parentID {
			continue
		}
		if sitterID != 0 && b.SitterID != sitterID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// -------- test doubles for the dispatchers --------

type noopSink struct{}

func (noopSink) Log(actorKind string, actorID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func newTestAudit() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{})
}

// channelNotifier surfaces delivered events on a channel so tests can wait
// for the async dispatcher without sleeping.
type channelNotifier struct {
	events chan notify.ConfirmationEvent
}

func newChannelNotifier() *channelNotifier {
	return &channelNotifier{events: make(chan notify.ConfirmationEvent, 10)}
}

func (n *channelNotifier) BookingConfirmed(ctx context.Context, ev notify.ConfirmationEvent) error {
	n.events <- ev
	return nil
}
