package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "parcel-booking/models/booking"
	paymentModel "parcel-booking/models/payment"
)

var (
	ErrInvalidCardDetails = errors.New("invalid card details")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPaymentExists      = errors.New("payment already exists for booking")
)

// declineCard always fails authorization; used to exercise the decline path
// without a real gateway.
const declineCard = "4000000000000002"

// CardDetails is the card input as received from the client. Number may
// contain spaces; they are stripped before validation.
type CardDetails struct {
	Number         string
	CardholderName string
	Expiry         string
	CVV            string
}

// Authorizer decides whether a card payment goes through. The simulated
// implementation is the default; a real gateway client satisfies the same
// contract.
type Authorizer interface {
	Authorize(card CardDetails) error
}

type simulatedAuthorizer struct{}

func NewSimulatedAuthorizer() Authorizer {
	return simulatedAuthorizer{}
}

func (simulatedAuthorizer) Authorize(card CardDetails) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	if !isDigits(number) || len(number) != 16 {
		return fmt.Errorf("%w: card number must be 16 digits", ErrInvalidCardDetails)
	}
	if !isExpiryFormat(card.Expiry) {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidCardDetails)
	}
	if !isDigits(card.CVV) || len(card.CVV) < 3 || len(card.CVV) > 4 {
		return fmt.Errorf("%w: cvv must be 3 or 4 digits", ErrInvalidCardDetails)
	}
	if strings.TrimSpace(card.CardholderName) == "" {
		return fmt.Errorf("%w: cardholder name required", ErrInvalidCardDetails)
	}
	if number == declineCard {
		return ErrInsufficientFunds
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isExpiryFormat(s string) bool {
	if len(s) != 5 || s[2] != '/' {
		return false
	}
	return isDigits(s[:2]) && isDigits(s[3:])
}

// MaskCardNumber keeps only the last four digits.
func MaskCardNumber(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) < 4 {
		return "****-****-****-****"
	}
	return "****-****-****-" + number[len(number)-4:]
}

func newPaymentID() string {
	return "PAY" + strings.ToUpper(uuid.NewString()[:8])
}

func newTransactionID() string {
	return "TXN" + strings.ToUpper(uuid.NewString()[:8])
}

// Service processes card payments for bookings.
type Service struct {
	authorizer Authorizer
}

func NewService(authorizer Authorizer) *Service {
	return &Service{authorizer: authorizer}
}

// Process authorizes the card and records the payment. The amount is always
// the booking's stored service cost, never a client-supplied figure. The
// exists-check runs inside the caller's transaction and the unique index on
// booking_id backstops it against races.
func (s *Service) Process(tx *gorm.DB, b *bookingModel.Booking, card CardDetails) (*paymentModel.Payment, error) {
	var count int64
	if err := tx.Model(&paymentModel.Payment{}).Where("booking_id = ?", b.BookingID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if count > 0 {
		return nil, ErrPaymentExists
	}

	if err := s.authorizer.Authorize(card); err != nil {
		return nil, err
	}

	p := paymentModel.Payment{
		PaymentID:        newPaymentID(),
		TransactionID:    newTransactionID(),
		BookingID:        b.BookingID,
		AccountID:        b.AccountID,
		Amount:           b.ServiceCost,
		MaskedCardNumber: MaskCardNumber(card.Number),
		CardholderName:   strings.TrimSpace(card.CardholderName),
		PaymentType:      paymentModel.TypeCredit,
		PaymentStatus:    paymentModel.StatusSuccess,
		TransactionTime:  time.Now(),
	}

	if err := tx.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &p, nil
}
