package models

import "time"

// Booking is the confirmed assignment of a sitter to a request. It is only
// ever created as a side effect of confirming a BookingRequest; the unique
// index on RequestID guarantees at most one booking per request.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID uint           `gorm:"uniqueIndex;not null" json:"request_id"`
	Request   BookingRequest `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"request"`

	ParentID uint   `gorm:"index" json:"parent_id"`
	Parent   Parent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"parent"`

	SitterID uint   `gorm:"index" json:"sitter_id"`
	Sitter   Sitter `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sitter"`

	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Notes string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
