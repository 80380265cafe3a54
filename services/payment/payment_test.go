package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_ValidCard(t *testing.T) {
	auth := NewSimulatedAuthorizer()

	card := CardDetails{
		Number:         "4111111111111111",
		CardholderName: "Alice Smith",
		Expiry:         "12/27",
		CVV:            "123",
	}
	assert.NoError(t, auth.Authorize(card))
}

func TestAuthorize_SpacesInNumberAccepted(t *testing.T) {
	auth := NewSimulatedAuthorizer()

	card := CardDetails{
		Number:         "4111 1111 1111 1111",
		CardholderName: "Alice Smith",
		Expiry:         "01/30",
		CVV:            "4567",
	}
	assert.NoError(t, auth.Authorize(card))
}

func TestAuthorize_InvalidCards(t *testing.T) {
	auth := NewSimulatedAuthorizer()

	valid := CardDetails{
		Number:         "4111111111111111",
		CardholderName: "Alice Smith",
		Expiry:         "12/27",
		CVV:            "123",
	}

	tests := []struct {
		name   string
		mutate func(CardDetails) CardDetails
	}{
		{"short number", func(c CardDetails) CardDetails { c.Number = "411111111111111"; return c }},
		{"long number", func(c CardDetails) CardDetails { c.Number = "41111111111111112"; return c }},
		{"letters in number", func(c CardDetails) CardDetails { c.Number = "41111111111111ab"; return c }},
		{"empty number", func(c CardDetails) CardDetails { c.Number = ""; return c }},
		{"bad expiry separator", func(c CardDetails) CardDetails { c.Expiry = "12-27"; return c }},
		{"expiry too long", func(c CardDetails) CardDetails { c.Expiry = "12/2027"; return c }},
		{"empty expiry", func(c CardDetails) CardDetails { c.Expiry = ""; return c }},
		{"cvv too short", func(c CardDetails) CardDetails { c.CVV = "12"; return c }},
		{"cvv too long", func(c CardDetails) CardDetails { c.CVV = "12345"; return c }},
		{"cvv letters", func(c CardDetails) CardDetails { c.CVV = "12a"; return c }},
		{"blank cardholder", func(c CardDetails) CardDetails { c.CardholderName = "   "; return c }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Authorize(tt.mutate(valid))
			assert.ErrorIs(t, err, ErrInvalidCardDetails)
		})
	}
}

func TestAuthorize_DeclineCard(t *testing.T) {
	auth := NewSimulatedAuthorizer()

	card := CardDetails{
		Number:         "4000000000000002",
		CardholderName: "Bob Jones",
		Expiry:         "09/28",
		CVV:            "321",
	}
	assert.ErrorIs(t, auth.Authorize(card), ErrInsufficientFunds)

	// Decline fixture applies after space stripping too.
	card.Number = "4000 0000 0000 0002"
	assert.ErrorIs(t, auth.Authorize(card), ErrInsufficientFunds)
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "****-****-****-1111", MaskCardNumber("4111111111111111"))
	assert.Equal(t, "****-****-****-0002", MaskCardNumber("4000 0000 0000 0002"))
	assert.Equal(t, "****-****-****-****", MaskCardNumber(""))
}

func TestIDGenerators(t *testing.T) {
	pid := newPaymentID()
	assert.Len(t, pid, 11)
	assert.Equal(t, "PAY", pid[:3])

	tid := newTransactionID()
	assert.Len(t, tid, 11)
	assert.Equal(t, "TXN", tid[:3])

	assert.NotEqual(t, newPaymentID(), newPaymentID())
}
