package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"parcel-booking/models/user"
)

// Booking is a parcel booking. Rows are never deleted; cancellation is a
// status transition so the audit trail stays intact.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// BookingID is the public identifier handed to customers ("BK" + epoch
	// millis). All lookups from the API go through this, not the row id.
	BookingID string `gorm:"type:varchar(30);not null;unique" json:"booking_id"`

	AccountID uint         `gorm:"not null;index" json:"account_id"`
	Account   user.Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`

	ReceiverName    string `gorm:"type:varchar(255);not null" json:"receiver_name"`
	ReceiverAddress string `gorm:"type:text;not null" json:"receiver_address"`
	ReceiverMobile  string `gorm:"type:varchar(20);not null" json:"receiver_mobile"`
	ReceiverPin     string `gorm:"type:varchar(10);not null" json:"receiver_pin"`

	WeightInGram        int    `gorm:"not null" json:"weight_in_gram"`
	ContentsDescription string `gorm:"type:text;not null" json:"contents_description"`

	DeliveryType      DeliveryType      `gorm:"type:varchar(20);not null" json:"delivery_type"`
	PackingPreference PackingPreference `gorm:"type:varchar(20);not null" json:"packing_preference"`

	PickupTime  *time.Time `json:"pickup_time"`
	DropoffTime *time.Time `json:"dropoff_time"`

	// PaymentTime stays nil until a payment succeeds.
	PaymentTime *time.Time `json:"payment_time"`

	// ServiceCost is computed once at creation and reused as the payment
	// amount; it is never recomputed afterwards.
	ServiceCost decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"service_cost"`

	Status ParcelStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
