package booking

// ParcelStatus tracks a parcel through its journey from booking to delivery.
type ParcelStatus string

const (
	StatusNew       ParcelStatus = "NEW"
	StatusScheduled ParcelStatus = "SCHEDULED"
	StatusPickedUp  ParcelStatus = "PICKED_UP"
	StatusAssigned  ParcelStatus = "ASSIGNED"
	StatusBooked    ParcelStatus = "BOOKED"
	StatusInTransit ParcelStatus = "IN_TRANSIT"
	StatusDelivered ParcelStatus = "DELIVERED"
	StatusCancelled ParcelStatus = "CANCELLED"
)

func (ps ParcelStatus) String() string {
	return string(ps)
}

func (ps ParcelStatus) IsValid() bool {
	switch ps {
	case StatusNew, StatusScheduled, StatusPickedUp, StatusAssigned,
		StatusBooked, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanBeCancelled returns true if a cancellation request is legal from this
// status. Only booked parcels may be cancelled.
func (ps ParcelStatus) CanBeCancelled() bool {
	return ps == StatusBooked
}

// AcceptsFeedback returns true if feedback may be left for a parcel in this
// status.
func (ps ParcelStatus) AcceptsFeedback() bool {
	return ps == StatusDelivered
}

// DisplayName returns the user-facing label for the status.
func (ps ParcelStatus) DisplayName() string {
	switch ps {
	case StatusNew:
		return "New"
	case StatusScheduled:
		return "Scheduled"
	case StatusPickedUp:
		return "Picked Up"
	case StatusAssigned:
		return "Assigned"
	case StatusBooked:
		return "Booked"
	case StatusInTransit:
		return "In Transit"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(ps)
	}
}

// GetAllParcelStatuses returns all valid parcel statuses
func GetAllParcelStatuses() []ParcelStatus {
	return []ParcelStatus{
		StatusNew,
		StatusScheduled,
		StatusPickedUp,
		StatusAssigned,
		StatusBooked,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}

// DeliveryType selects the delivery speed tier for a parcel.
type DeliveryType string

const (
	DeliveryStandard DeliveryType = "STANDARD"
	DeliveryExpress  DeliveryType = "EXPRESS"
	DeliverySameDay  DeliveryType = "SAME_DAY"
)

func (dt DeliveryType) String() string {
	return string(dt)
}

func (dt DeliveryType) IsValid() bool {
	switch dt {
	case DeliveryStandard, DeliveryExpress, DeliverySameDay:
		return true
	default:
		return false
	}
}

// PackingPreference selects how the parcel is packed before transit.
type PackingPreference string

const (
	PackingBasic   PackingPreference = "BASIC"
	PackingPremium PackingPreference = "PREMIUM"
)

func (pp PackingPreference) String() string {
	return string(pp)
}

func (pp PackingPreference) IsValid() bool {
	switch pp {
	case PackingBasic, PackingPremium:
		return true
	default:
		return false
	}
}
