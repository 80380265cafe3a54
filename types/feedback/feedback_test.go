package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRequestValidate(t *testing.T) {
	valid := AddRequest{
		BookingID:   "BK1700000000000",
		Rating:      4,
		Description: "Parcel arrived on time and intact.",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*AddRequest)
	}{
		{"missing booking id", func(r *AddRequest) { r.BookingID = "  " }},
		{"rating too low", func(r *AddRequest) { r.Rating = 0 }},
		{"rating too high", func(r *AddRequest) { r.Rating = 6 }},
		{"description too short", func(r *AddRequest) { r.Description = "short" }},
		{"description too long", func(r *AddRequest) { r.Description = strings.Repeat("x", 501) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}

	boundary := valid
	boundary.Description = strings.Repeat("x", 500)
	assert.NoError(t, boundary.Validate())

	boundary.Description = strings.Repeat("x", 10)
	assert.NoError(t, boundary.Validate())
}
