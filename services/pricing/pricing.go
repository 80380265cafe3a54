package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	bookingModel "parcel-booking/models/booking"
)

var (
	ErrInvalidWeight   = errors.New("weight must be at least one gram")
	ErrUnknownDelivery = errors.New("unknown delivery type")
	ErrUnknownPacking  = errors.New("unknown packing preference")
)

var (
	baseRate      = decimal.NewFromInt(50)
	perGramRate   = decimal.RequireFromString("0.02")
	adminFee      = decimal.NewFromInt(50)
	taxMultiplier = decimal.RequireFromString("1.05")
)

// deliveryCharge returns the flat charge for the delivery tier.
func deliveryCharge(dt bookingModel.DeliveryType) (decimal.Decimal, error) {
	switch dt {
	case bookingModel.DeliveryStandard:
		return decimal.NewFromInt(30), nil
	case bookingModel.DeliveryExpress:
		return decimal.NewFromInt(80), nil
	case bookingModel.DeliverySameDay:
		return decimal.NewFromInt(150), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownDelivery, dt)
	}
}

func packingCharge(pp bookingModel.PackingPreference) (decimal.Decimal, error) {
	switch pp {
	case bookingModel.PackingBasic:
		return decimal.NewFromInt(10), nil
	case bookingModel.PackingPremium:
		return decimal.NewFromInt(30), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownPacking, pp)
	}
}

// ComputeCost prices a parcel: base rate plus a per-gram rate plus the
// delivery and packing charges, an administrative fee when booked through an
// officer, then 5% tax, rounded to two decimal places.
func ComputeCost(weightInGram int, dt bookingModel.DeliveryType, pp bookingModel.PackingPreference, officerChannel bool) (decimal.Decimal, error) {
	if weightInGram < 1 {
		return decimal.Decimal{}, ErrInvalidWeight
	}

	delivery, err := deliveryCharge(dt)
	if err != nil {
		return decimal.Decimal{}, err
	}
	packing, err := packingCharge(pp)
	if err != nil {
		return decimal.Decimal{}, err
	}

	cost := baseRate.
		Add(perGramRate.Mul(decimal.NewFromInt(int64(weightInGram)))).
		Add(delivery).
		Add(packing)

	if officerChannel {
		cost = cost.Add(adminFee)
	}

	return cost.Mul(taxMultiplier).Round(2), nil
}
