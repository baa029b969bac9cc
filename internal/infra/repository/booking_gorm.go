package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/willowbrook-labs/sitter-scheduler/internal/domain/booking"
	"github.com/willowbrook-labs/sitter-scheduler/internal/httperr"
	"github.com/willowbrook-labs/sitter-scheduler/internal/models"
)

// errStaleStatus aborts a lifecycle transaction whose conditional status
// update matched zero rows. Translated to (false, nil) at the boundary.
var errStaleStatus = errors.New("stale request status")

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Parent / Sitter
// --------------------------------------------------

func (r *BookingGormRepository) GetParentByID(
	ctx context.Context,
	id uint,
) (*models.Parent, error) {

	var parent models.Parent
	if err := r.db.WithContext(ctx).First(&parent, id).Error; err != nil {
		return nil, err
	}
	return &parent, nil
}

func (r *BookingGormRepository) GetSitterByID(
	ctx context.Context,
	id uint,
) (*models.Sitter, error) {

	var sitter models.Sitter
	if err := r.db.WithContext(ctx).First(&sitter, id).Error; err != nil {
		return nil, err
	}
	return &sitter, nil
}

// --------------------------------------------------
// Request (create / read)
// --------------------------------------------------

func (r *BookingGormRepository) CreateRequest(
	ctx context.Context,
	req *models.BookingRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *BookingGormRepository) GetRequestByID(
	ctx context.Context,
	id uint,
) (*models.BookingRequest, error) {

	var req models.BookingRequest
	if err := r.db.WithContext(ctx).
		Preload("Parent").
		First(&req, id).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *BookingGormRepository) ListRequests(
	ctx context.Context,
	status string,
	parentID uint,
) ([]models.BookingRequest, error) {

	q := r.db.WithContext(ctx).Preload("Parent")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if parentID != 0 {
		q = q.Where("parent_id = ?", parentID)
	}

	var reqs []models.BookingRequest
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}

	return reqs, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) FindCoveringSlot(
	ctx context.Context,
	sitterID uint,
	w domain.Window,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where(
			"sitter_id = ? AND date = ? AND start_time <= ? AND end_time >= ?",
			sitterID, w.Date, w.StartTime, w.EndTime,
		).
		First(&slot).Error; err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *BookingGormRepository) ListAvailableSitters(
	ctx context.Context,
	w domain.Window,
) ([]models.Sitter, error) {

	var sitters []models.Sitter
	if err := r.db.WithContext(ctx).
		Model(&models.Sitter{}).
		Distinct("sitters.*").
		Joins("JOIN availability_slots ON availability_slots.sitter_id = sitters.id").
		Where(
			"availability_slots.date = ? AND availability_slots.start_time <= ? AND availability_slots.end_time >= ?",
			w.Date, w.StartTime, w.EndTime,
		).
		Order("sitters.id ASC").
		Find(&sitters).Error; err != nil {
		return nil, err
	}

	return sitters, nil
}

func (r *BookingGormRepository) DeleteSlot(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.AvailabilitySlot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Lifecycle (atomic state changes)
// --------------------------------------------------

func (r *BookingGormRepository) ConfirmRequest(
	ctx context.Context,
	requestID uint,
	b *models.Booking,
	now time.Time,
	consumeSlotID uint,
) (bool, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"sitter_id = ? AND status = ? AND date = ? AND start_time < ? AND end_time > ?",
				b.SitterID,
				string(domain.StatusConfirmed),
				b.Date,
				b.EndTime,
				b.StartTime,
			).
			Count(&conflicts).Error; err != nil {
			return err
		}

		if conflicts > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		res := tx.
			Model(&models.BookingRequest{}).
			Where("id = ? AND status = ?", requestID, string(domain.StatusPending)).
			Updates(map[string]any{
				"status":       string(domain.StatusConfirmed),
				"confirmed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleStatus
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		if consumeSlotID != 0 {
			if err := tx.Delete(&models.AvailabilitySlot{}, consumeSlotID).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if errors.Is(err, errStaleStatus) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookingGormRepository) CancelRequest(
	ctx context.Context,
	requestID uint,
	now time.Time,
) (bool, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.
			Model(&models.BookingRequest{}).
			Where(
				"id = ? AND status IN ?",
				requestID,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			).
			Updates(map[string]any{
				"status":       string(domain.StatusCancelled),
				"cancelled_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleStatus
		}

		// Cascade to the derived booking, if one exists.
		return tx.
			Model(&models.Booking{}).
			Where("request_id = ? AND status = ?", requestID, string(domain.StatusConfirmed)).
			Updates(map[string]any{
				"status":       string(domain.StatusCancelled),
				"cancelled_at": now,
			}).Error
	})

	if errors.Is(err, errStaleStatus) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookingGormRepository) CompleteRequest(
	ctx context.Context,
	requestID uint,
	now time.Time,
) (bool, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.
			Model(&models.BookingRequest{}).
			Where("id = ? AND status = ?", requestID, string(domain.StatusConfirmed)).
			Updates(map[string]any{
				"status":       string(domain.StatusCompleted),
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleStatus
		}

		return tx.
			Model(&models.Booking{}).
			Where("request_id = ? AND status = ?", requestID, string(domain.StatusConfirmed)).
			Updates(map[string]any{
				"status":       string(domain.StatusCompleted),
				"completed_at": now,
			}).Error
	})

	if errors.Is(err, errStaleStatus) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Sitter").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingByRequestID(
	ctx context.Context,
	requestID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	parentID uint,
	sitterID uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Sitter")

	if parentID != 0 {
		q = q.Where("parent_id = ?", parentID)
	}
	if sitterID != 0 {
		q = q.Where("sitter_id = ?", sitterID)
	}

	var bookings []models.Booking
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
