package booking

import (
	"fmt"

	bookingModel "parcel-booking/models/booking"
	"parcel-booking/utils"
)

// BookingCreateRequest represents the request payload for creating a booking
type BookingCreateRequest struct {
	ReceiverName        string `json:"receiverName" validate:"required,min=1,max=255"`
	ReceiverAddress     string `json:"receiverAddress" validate:"required,min=1"`
	ReceiverMobile      string `json:"receiverMobile" validate:"required"`
	ReceiverPin         string `json:"receiverPin" validate:"required,min=4,max=10"`
	WeightInGram        int    `json:"weightInGram" validate:"required,min=1"`
	ContentsDescription string `json:"contentsDescription" validate:"required,min=1"`
	DeliveryType        string `json:"deliveryType" validate:"required"`
	PackingPreference   string `json:"packingPreference" validate:"required"`
}

func (b BookingCreateRequest) Validate() error {
	if b.ReceiverName == "" {
		return fmt.Errorf("receiverName is required")
	}
	if b.ReceiverAddress == "" {
		return fmt.Errorf("receiverAddress is required")
	}
	if !utils.ValidateMobileNumber(b.ReceiverMobile) {
		return fmt.Errorf("receiverMobile must be 10 digits")
	}
	if b.ReceiverPin == "" {
		return fmt.Errorf("receiverPin is required")
	}
	if b.WeightInGram < 1 {
		return fmt.Errorf("weightInGram must be at least 1")
	}
	if b.ContentsDescription == "" {
		return fmt.Errorf("contentsDescription is required")
	}
	if !bookingModel.DeliveryType(b.DeliveryType).IsValid() {
		return fmt.Errorf("deliveryType must be one of STANDARD, EXPRESS, SAME_DAY")
	}
	if !bookingModel.PackingPreference(b.PackingPreference).IsValid() {
		return fmt.Errorf("packingPreference must be one of BASIC, PREMIUM")
	}
	return nil
}

// DeliveryStatusUpdateRequest represents the request payload for a status override
type DeliveryStatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r DeliveryStatusUpdateRequest) Validate() error {
	if !bookingModel.ParcelStatus(r.Status).IsValid() {
		return fmt.Errorf("status %q is not a known parcel status", r.Status)
	}
	return nil
}

// ScheduleRequest represents the request payload for pickup scheduling
type ScheduleRequest struct {
	PickupDateTime string `json:"pickupDateTime" validate:"required"`
	DropDateTime   string `json:"dropDateTime" validate:"required"`
}

func (r ScheduleRequest) Validate() error {
	if r.PickupDateTime == "" {
		return fmt.Errorf("pickupDateTime is required")
	}
	if r.DropDateTime == "" {
		return fmt.Errorf("dropDateTime is required")
	}
	return nil
}

// BookingPage is the envelope for paginated booking lists
type BookingPage struct {
	Bookings      interface{} `json:"bookings"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	CurrentPage   int         `json:"currentPage"`
	PageSize      int         `json:"pageSize"`
}
