package booking_event

import (
	"gorm.io/gorm"

	bookingModel "parcel-booking/models/booking"
)

// RecordStatusEvent appends a transition row for a booking. Call it inside
// the same transaction that updates the booking's status so the history never
// disagrees with the row.
func RecordStatusEvent(tx *gorm.DB, bookingID string, from, to bookingModel.ParcelStatus, updatedBy string) error {
	ev := bookingModel.BookingStatusEvent{
		BookingID:  bookingID,
		FromStatus: from,
		ToStatus:   to,
		UpdatedBy:  updatedBy,
	}
	return tx.Create(&ev).Error
}

// History returns all transition rows for a booking, oldest first.
func History(db *gorm.DB, bookingID string) ([]bookingModel.BookingStatusEvent, error) {
	var events []bookingModel.BookingStatusEvent
	err := db.Where("booking_id = ?", bookingID).Order("created_at asc, id asc").Find(&events).Error
	return events, err
}
