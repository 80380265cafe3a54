package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	bookingModel "parcel-booking/models/booking"
)

func TestBookingsWorkbook(t *testing.T) {
	bookings := []bookingModel.Booking{
		{
			BookingID:         "BK1700000000001",
			ReceiverName:      "Jane Roe",
			ReceiverAddress:   "12 Harbour Lane",
			ReceiverMobile:    "9876543210",
			WeightInGram:      1200,
			DeliveryType:      bookingModel.DeliveryStandard,
			PackingPreference: bookingModel.PackingBasic,
			ServiceCost:       decimal.RequireFromString("118.65"),
			Status:            bookingModel.StatusBooked,
			CreatedAt:         time.Date(2026, 5, 2, 9, 15, 0, 0, time.UTC),
		},
		{
			BookingID:         "BK1700000000002",
			ReceiverName:      "John Doe",
			ReceiverAddress:   "9 Mill Road",
			ReceiverMobile:    "9123456780",
			WeightInGram:      400,
			DeliveryType:      bookingModel.DeliverySameDay,
			PackingPreference: bookingModel.PackingPremium,
			ServiceCost:       decimal.RequireFromString("249.90"),
			Status:            bookingModel.StatusDelivered,
			CreatedAt:         time.Date(2026, 5, 3, 14, 0, 0, 0, time.UTC),
		},
	}

	fileBytes, err := BookingsWorkbook(bookings)
	require.NoError(t, err)
	require.NotEmpty(t, fileBytes)

	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Booking ID", rows[0][0])
	assert.Equal(t, "Status", rows[0][8])

	assert.Equal(t, "BK1700000000001", rows[1][0])
	assert.Equal(t, "118.65", rows[1][7])
	assert.Equal(t, "Booked", rows[1][8])

	assert.Equal(t, "BK1700000000002", rows[2][0])
	assert.Equal(t, "Delivered", rows[2][8])
}

func TestBookingsWorkbook_Empty(t *testing.T) {
	fileBytes, err := BookingsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
