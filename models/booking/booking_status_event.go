package booking

import (
	"time"
)

// BookingStatusEvent is an append-only record of a status transition. Tracking
// endpoints read these back newest-last to show a parcel's journey.
type BookingStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID string `gorm:"type:varchar(30);not null;index" json:"booking_id"`

	FromStatus ParcelStatus `gorm:"type:varchar(20)" json:"from_status"`
	ToStatus   ParcelStatus `gorm:"type:varchar(20);not null" json:"to_status"`

	// UpdatedBy is the email of the account that caused the transition.
	UpdatedBy string `gorm:"type:varchar(255)" json:"updated_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the BookingStatusEvent model
func (BookingStatusEvent) TableName() string {
	return "booking_status_events"
}
