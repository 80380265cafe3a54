package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "parcel-booking/models/booking"
	paymentModel "parcel-booking/models/payment"
)

func sampleBookingAndPayment() (*bookingModel.Booking, *paymentModel.Payment) {
	b := &bookingModel.Booking{
		BookingID:         "BK1700000000000",
		ReceiverName:      "Jane Roe",
		ReceiverAddress:   "12 Harbour Lane",
		WeightInGram:      1500,
		DeliveryType:      bookingModel.DeliveryExpress,
		PackingPreference: bookingModel.PackingPremium,
		ServiceCost:       decimal.RequireFromString("199.50"),
	}
	p := &paymentModel.Payment{
		PaymentID:        "PAY1A2B3C4D",
		TransactionID:    "TXN5E6F7A8B",
		BookingID:        b.BookingID,
		Amount:           b.ServiceCost,
		MaskedCardNumber: "****-****-****-1111",
		CardholderName:   "Jane Roe",
		TransactionTime:  time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	return b, p
}

func TestBuild(t *testing.T) {
	b, p := sampleBookingAndPayment()

	data := Build(b, p)
	assert.Equal(t, "INVBK1700000000000", data.InvoiceNumber)
	assert.Equal(t, "BK1700000000000", data.BookingID)
	assert.Equal(t, "Jane Roe", data.ReceiverName)
	assert.Equal(t, "EXPRESS", data.DeliveryType)
	assert.Equal(t, "PREMIUM", data.Packing)
	assert.Equal(t, "199.50", data.Amount)
	assert.Equal(t, "****-****-****-1111", data.MaskedCardNumber)
	assert.Equal(t, "14-03-2026 10:30:00", data.TransactionTime)
}

func TestPDFRenderer(t *testing.T) {
	b, p := sampleBookingAndPayment()

	pdfBytes, err := NewPDFRenderer().Render(Build(b, p))
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
