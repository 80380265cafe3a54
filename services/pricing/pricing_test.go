package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "parcel-booking/models/booking"
)

func TestComputeCost_StandardBasicCustomer(t *testing.T) {
	cost, err := ComputeCost(1000, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("115.50")), "got %s", cost)
}

func TestComputeCost_SameDayPremiumOfficer(t *testing.T) {
	cost, err := ComputeCost(1000, bookingModel.DeliverySameDay, bookingModel.PackingPremium, true)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("315.00")), "got %s", cost)
}

func TestComputeCost_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		delivery bookingModel.DeliveryType
		packing  bookingModel.PackingPreference
		officer  bool
		expected string
	}{
		{"express basic", bookingModel.DeliveryExpress, bookingModel.PackingBasic, false, "168.00"},
		{"express premium", bookingModel.DeliveryExpress, bookingModel.PackingPremium, false, "189.00"},
		{"standard premium officer", bookingModel.DeliveryStandard, bookingModel.PackingPremium, true, "189.00"},
		{"same day basic", bookingModel.DeliverySameDay, bookingModel.PackingBasic, false, "241.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := ComputeCost(1000, tt.delivery, tt.packing, tt.officer)
			require.NoError(t, err)
			assert.True(t, cost.Equal(decimal.RequireFromString(tt.expected)), "got %s, want %s", cost, tt.expected)
		})
	}
}

func TestComputeCost_MonotonicInWeight(t *testing.T) {
	light, err := ComputeCost(100, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)
	require.NoError(t, err)
	heavy, err := ComputeCost(5000, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)
	require.NoError(t, err)
	assert.True(t, heavy.GreaterThan(light))
}

func TestComputeCost_RoundsToTwoPlaces(t *testing.T) {
	// 50 + 0.02*3 + 30 + 10 = 90.06; *1.05 = 94.563 -> 94.56
	cost, err := ComputeCost(3, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("94.56")), "got %s", cost)
}

func TestComputeCost_InvalidWeight(t *testing.T) {
	_, err := ComputeCost(0, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = ComputeCost(-10, bookingModel.DeliveryStandard, bookingModel.PackingBasic, false)
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestComputeCost_UnknownEnums(t *testing.T) {
	_, err := ComputeCost(1000, bookingModel.DeliveryType("OVERNIGHT"), bookingModel.PackingBasic, false)
	assert.ErrorIs(t, err, ErrUnknownDelivery)

	_, err = ComputeCost(1000, bookingModel.DeliveryStandard, bookingModel.PackingPreference("GIFT"), false)
	assert.ErrorIs(t, err, ErrUnknownPacking)
}
