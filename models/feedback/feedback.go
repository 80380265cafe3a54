package feedback

import (
	"time"
)

// Feedback is a customer's rating of a delivered parcel. One row per booking,
// enforced by the unique index on BookingID.
type Feedback struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID string `gorm:"type:varchar(30);not null;uniqueIndex" json:"booking_id"`
	AccountID uint   `gorm:"not null;index" json:"account_id"`

	Rating      int    `gorm:"not null" json:"rating"`
	Description string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedbacks"
}
