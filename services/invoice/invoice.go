package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	bookingModel "parcel-booking/models/booking"
	paymentModel "parcel-booking/models/payment"
)

// Data is everything an invoice shows, assembled from a paid booking and its
// payment record.
type Data struct {
	InvoiceNumber    string `json:"invoiceNumber"`
	BookingID        string `json:"bookingId"`
	ReceiverName     string `json:"receiverName"`
	ReceiverAddress  string `json:"receiverAddress"`
	WeightInGram     int    `json:"weightInGram"`
	DeliveryType     string `json:"deliveryType"`
	Packing          string `json:"packing"`
	Amount           string `json:"amount"`
	PaymentID        string `json:"paymentId"`
	TransactionID    string `json:"transactionId"`
	MaskedCardNumber string `json:"maskedCardNumber"`
	CardholderName   string `json:"cardholderName"`
	TransactionTime  string `json:"transactionTime"`
}

// Build assembles invoice data from a booking and its payment.
func Build(b *bookingModel.Booking, p *paymentModel.Payment) Data {
	return Data{
		InvoiceNumber:    "INV" + b.BookingID,
		BookingID:        b.BookingID,
		ReceiverName:     b.ReceiverName,
		ReceiverAddress:  b.ReceiverAddress,
		WeightInGram:     b.WeightInGram,
		DeliveryType:     b.DeliveryType.String(),
		Packing:          b.PackingPreference.String(),
		Amount:           p.Amount.StringFixed(2),
		PaymentID:        p.PaymentID,
		TransactionID:    p.TransactionID,
		MaskedCardNumber: p.MaskedCardNumber,
		CardholderName:   p.CardholderName,
		TransactionTime:  p.TransactionTime.Format("02-01-2006 15:04:05"),
	}
}

// Renderer turns invoice data into a downloadable document.
type Renderer interface {
	Render(data Data) ([]byte, error)
}

type pdfRenderer struct{}

func NewPDFRenderer() Renderer {
	return pdfRenderer{}
}

func (pdfRenderer) Render(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Parcel Booking Invoice")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Invoice Number", data.InvoiceNumber)
	line("Booking ID", data.BookingID)
	line("Receiver", data.ReceiverName)
	line("Receiver Address", data.ReceiverAddress)
	line("Weight", fmt.Sprintf("%d g", data.WeightInGram))
	line("Delivery Type", data.DeliveryType)
	line("Packing", data.Packing)
	pdf.Ln(4)
	line("Payment ID", data.PaymentID)
	line("Transaction ID", data.TransactionID)
	line("Card", data.MaskedCardNumber)
	line("Cardholder", data.CardholderName)
	line("Transaction Time", data.TransactionTime)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(60, 10, "Amount Paid", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, data.Amount, "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
