package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() BookingCreateRequest {
	return BookingCreateRequest{
		ReceiverName:        "Jane Roe",
		ReceiverAddress:     "12 Harbour Lane",
		ReceiverMobile:      "9876543210",
		ReceiverPin:         "560001",
		WeightInGram:        1000,
		ContentsDescription: "Books",
		DeliveryType:        "STANDARD",
		PackingPreference:   "BASIC",
	}
}

func TestBookingCreateRequestValidate(t *testing.T) {
	assert.NoError(t, validCreateRequest().Validate())

	tests := []struct {
		name   string
		mutate func(*BookingCreateRequest)
	}{
		{"missing receiver name", func(r *BookingCreateRequest) { r.ReceiverName = "" }},
		{"missing address", func(r *BookingCreateRequest) { r.ReceiverAddress = "" }},
		{"short mobile", func(r *BookingCreateRequest) { r.ReceiverMobile = "12345" }},
		{"missing pin", func(r *BookingCreateRequest) { r.ReceiverPin = "" }},
		{"zero weight", func(r *BookingCreateRequest) { r.WeightInGram = 0 }},
		{"negative weight", func(r *BookingCreateRequest) { r.WeightInGram = -5 }},
		{"missing contents", func(r *BookingCreateRequest) { r.ContentsDescription = "" }},
		{"bad delivery type", func(r *BookingCreateRequest) { r.DeliveryType = "OVERNIGHT" }},
		{"lowercase delivery type", func(r *BookingCreateRequest) { r.DeliveryType = "standard" }},
		{"bad packing", func(r *BookingCreateRequest) { r.PackingPreference = "GIFT" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestDeliveryStatusUpdateRequestValidate(t *testing.T) {
	assert.NoError(t, DeliveryStatusUpdateRequest{Status: "IN_TRANSIT"}.Validate())
	assert.NoError(t, DeliveryStatusUpdateRequest{Status: "DELIVERED"}.Validate())
	assert.Error(t, DeliveryStatusUpdateRequest{Status: "SHIPPED"}.Validate())
	assert.Error(t, DeliveryStatusUpdateRequest{Status: ""}.Validate())
}

func TestScheduleRequestValidate(t *testing.T) {
	assert.NoError(t, ScheduleRequest{PickupDateTime: "2026-07-15T10:00:00", DropDateTime: "2026-07-15 18:00:00"}.Validate())
	assert.Error(t, ScheduleRequest{DropDateTime: "2026-07-15 18:00:00"}.Validate())
	assert.Error(t, ScheduleRequest{PickupDateTime: "2026-07-15T10:00:00"}.Validate())
}
