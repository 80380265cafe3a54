package tracking

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
)

type TrackingController struct {
	db *gorm.DB
}

func NewTrackingController(db *gorm.DB) *TrackingController {
	return &TrackingController{db: db}
}

// track loads a booking with its status history. Ownership is enforced for
// the customer endpoint only.
func (h *TrackingController) track(c *fiber.Ctx, enforceOwnership bool) error {
	claims := middleware.ClaimsFromContext(c)
	bookingID := c.Params("bookingId")

	var b bookingModel.Booking
	if err := h.db.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to track booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if enforceOwnership {
		accountID, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil || b.AccountID != uint(accountID) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "You can only track your own bookings",
				Status:  fiber.StatusForbidden,
			})
		}
	}

	history, err := booking_event.History(h.db, b.BookingID)
	if err != nil {
		logger.Error("Failed to load status history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to track booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Tracking loaded",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"bookingId":     b.BookingID,
			"status":        b.Status,
			"statusDisplay": b.Status.DisplayName(),
			"pickupTime":    b.PickupTime,
			"dropTime":      b.DropoffTime,
			"history":       history,
		},
	})
}

func (h *TrackingController) Customer(c *fiber.Ctx) error {
	return h.track(c, true)
}

func (h *TrackingController) Officer(c *fiber.Ctx) error {
	return h.track(c, false)
}
