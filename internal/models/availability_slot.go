package models

import "time"

// AvailabilitySlot is an open window a sitter has published.
// Date is YYYY-MM-DD, times are HH:MM; HH:MM compares correctly as text.
type AvailabilitySlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SitterID uint   `gorm:"index" json:"sitter_id"`
	Sitter   Sitter `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sitter"`

	Date      string `gorm:"size:10;not null;index" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Recurring bool `gorm:"default:false" json:"recurring"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
