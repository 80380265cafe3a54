package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	TypeCredit PaymentType = "CREDIT"
)

type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "SUCCESS"
)

// Payment is the record of a successful card authorization for one booking.
// The unique index on BookingID guarantees at most one payment per booking
// even when two requests race past the application-level check.
type Payment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	PaymentID     string `gorm:"type:varchar(20);not null;unique" json:"payment_id"`
	TransactionID string `gorm:"type:varchar(20);not null;unique" json:"transaction_id"`

	BookingID string `gorm:"type:varchar(30);not null;uniqueIndex" json:"booking_id"`
	AccountID uint   `gorm:"not null;index" json:"account_id"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`

	// MaskedCardNumber keeps only the last four digits
	// (****-****-****-1234); the full PAN is never stored.
	MaskedCardNumber string `gorm:"type:varchar(25);not null" json:"masked_card_number"`
	CardholderName   string `gorm:"type:varchar(255);not null" json:"cardholder_name"`

	PaymentType   PaymentType   `gorm:"type:varchar(20);not null" json:"payment_type"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	TransactionTime time.Time `gorm:"not null" json:"transaction_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
