package cancel

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parcel-booking/logger"
	"parcel-booking/middleware"
	bookingModel "parcel-booking/models/booking"
	"parcel-booking/services/booking_event"
	"parcel-booking/types"
	"parcel-booking/utils"
)

type CancelController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewCancelController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CancelController {
	return &CancelController{db: db, loggerInstance: asyncLogger}
}

// cancel flips a booking from BOOKED to CANCELLED. When enforceOwnership is
// set the booking must belong to the caller.
func (h *CancelController) cancel(c *fiber.Ctx, enforceOwnership bool) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Authorization required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	bookingID := c.Query("bookingId")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "bookingId query parameter is required",
			Status:  fiber.StatusBadRequest,
		})
	}

	var b bookingModel.Booking
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
			return err
		}

		if enforceOwnership {
			accountID, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil || b.AccountID != uint(accountID) {
				return errOwnership
			}
		}

		if !b.Status.CanBeCancelled() {
			return errNotCancellable
		}

		from := b.Status
		b.Status = bookingModel.StatusCancelled
		if err := tx.Model(&b).Update("status", bookingModel.StatusCancelled).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, b.BookingID, from, bookingModel.StatusCancelled, claims.Email)
	})
	if err != nil {
		status, message := cancelFailure(err)
		if status == fiber.StatusInternalServerError {
			logger.Error("Failed to cancel booking", err)
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: message,
			Status:  status,
		})
	}

	logger.Success("Booking cancelled: " + b.BookingID)
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking cancelled successfully",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

var (
	errOwnership      = errors.New("booking owned by another account")
	errNotCancellable = errors.New("booking not in a cancellable status")
)

// cancelFailure maps a cancellation error to its response. Cancelling from a
// non-BOOKED status is a validation failure, not a conflict.
func cancelFailure(err error) (int, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "Booking not found"
	case errors.Is(err, errOwnership):
		return fiber.StatusForbidden, "You can only cancel your own bookings"
	case errors.Is(err, errNotCancellable):
		return fiber.StatusBadRequest, "Only booked parcels can be cancelled"
	default:
		return fiber.StatusInternalServerError, "Failed to cancel booking"
	}
}

func (h *CancelController) CancelCustomer(c *fiber.Ctx) error {
	return h.cancel(c, true)
}

func (h *CancelController) CancelOfficer(c *fiber.Ctx) error {
	return h.cancel(c, false)
}
