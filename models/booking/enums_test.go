package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParcelStatusIsValid(t *testing.T) {
	for _, s := range GetAllParcelStatuses() {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, ParcelStatus("SHIPPED").IsValid())
	assert.False(t, ParcelStatus("").IsValid())
	assert.False(t, ParcelStatus("booked").IsValid())
}

func TestCanBeCancelled(t *testing.T) {
	for _, s := range GetAllParcelStatuses() {
		if s == StatusBooked {
			assert.True(t, s.CanBeCancelled())
		} else {
			assert.False(t, s.CanBeCancelled(), "%s should not be cancellable", s)
		}
	}
}

func TestAcceptsFeedback(t *testing.T) {
	assert.True(t, StatusDelivered.AcceptsFeedback())
	assert.False(t, StatusBooked.AcceptsFeedback())
	assert.False(t, StatusInTransit.AcceptsFeedback())
	assert.False(t, StatusCancelled.AcceptsFeedback())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Picked Up", StatusPickedUp.DisplayName())
	assert.Equal(t, "In Transit", StatusInTransit.DisplayName())
	assert.Equal(t, "UNKNOWN", ParcelStatus("UNKNOWN").DisplayName())
}

func TestDeliveryTypeIsValid(t *testing.T) {
	assert.True(t, DeliveryStandard.IsValid())
	assert.True(t, DeliveryExpress.IsValid())
	assert.True(t, DeliverySameDay.IsValid())
	assert.False(t, DeliveryType("OVERNIGHT").IsValid())
	assert.False(t, DeliveryType("").IsValid())
}

func TestPackingPreferenceIsValid(t *testing.T) {
	assert.True(t, PackingBasic.IsValid())
	assert.True(t, PackingPremium.IsValid())
	assert.False(t, PackingPreference("GIFT").IsValid())
}
