package models

import "time"

// BookingStatus values are persisted as integers.
type BookingStatus int

const (
	BookingCancelled BookingStatus = 0
	BookingActive    BookingStatus = 1
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `gorm:"index:idx_booking_pro_start" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	StartTime time.Time `gorm:"index:idx_booking_pro_start;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Services []Service `gorm:"many2many:booking_services;" json:"services"`

	Status      BookingStatus `gorm:"not null;index" json:"status"`
	CancelledAt *time.Time    `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
