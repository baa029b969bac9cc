package models

import "time"

// BookingRequest is a parent's ask for coverage. Requests are never deleted;
// terminal states are kept for history.
type BookingRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ParentID uint   `gorm:"index" json:"parent_id"`
	Parent   Parent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"parent"`

	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Notes string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
