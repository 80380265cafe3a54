package payment

import (
	"fmt"
	"strings"
)

// ProcessRequest represents the request payload for paying a booking
type ProcessRequest struct {
	BookingID      string `json:"bookingId" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required"`
	CardholderName string `json:"cardholderName" validate:"required"`
	ExpiryDate     string `json:"expiryDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required"`
}

func (r ProcessRequest) Validate() error {
	if strings.TrimSpace(r.BookingID) == "" {
		return fmt.Errorf("bookingId is required")
	}
	if strings.TrimSpace(r.CardNumber) == "" {
		return fmt.Errorf("cardNumber is required")
	}
	if strings.TrimSpace(r.CardholderName) == "" {
		return fmt.Errorf("cardholderName is required")
	}
	if strings.TrimSpace(r.ExpiryDate) == "" {
		return fmt.Errorf("expiryDate is required")
	}
	if strings.TrimSpace(r.CVV) == "" {
		return fmt.Errorf("cvv is required")
	}
	return nil
}
