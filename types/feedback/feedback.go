package feedback

import (
	"fmt"
	"strings"
)

// AddRequest represents the request payload for leaving feedback on a booking
type AddRequest struct {
	BookingID   string `json:"bookingId" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required,min=10,max=500"`
}

func (r AddRequest) Validate() error {
	if strings.TrimSpace(r.BookingID) == "" {
		return fmt.Errorf("bookingId is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if len(r.Description) < 10 || len(r.Description) > 500 {
		return fmt.Errorf("description must be between 10 and 500 characters")
	}
	return nil
}
