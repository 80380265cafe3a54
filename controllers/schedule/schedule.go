package schedule

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
	bookingTypes "parcel-booking/types/booking"
	"parcel-booking/utils"
)

type ScheduleController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewScheduleController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ScheduleController {
	return &ScheduleController{db: db, loggerInstance: asyncLogger}
}

// Schedule sets the pickup and drop windows on the caller's booking and moves
// it to SCHEDULED.
func (h *ScheduleController) Schedule(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	bookingID := c.Params("bookingId")

	var req bookingTypes.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing scheduling body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	pickup, err := utils.ParseFlexibleDateTime(req.PickupDateTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "pickupDateTime is not a valid datetime",
			Status:  fiber.StatusBadRequest,
		})
	}
	drop, err := utils.ParseFlexibleDateTime(req.DropDateTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "dropDateTime is not a valid datetime",
			Status:  fiber.StatusBadRequest,
		})
	}
	if !drop.After(pickup) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "dropDateTime must be after pickupDateTime",
			Status:  fiber.StatusBadRequest,
		})
	}

	var b bookingModel.Booking
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
			return err
		}

		accountID, perr := strconv.ParseUint(claims.UserID, 10, 64)
		if perr != nil || b.AccountID != uint(accountID) {
			return errOwnership
		}

		from := b.Status
		b.PickupTime = &pickup
		b.DropoffTime = &drop
		b.Status = bookingModel.StatusScheduled
		if err := tx.Model(&b).Updates(map[string]interface{}{
			"pickup_time":  pickup,
			"dropoff_time": drop,
			"status":       bookingModel.StatusScheduled,
		}).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, b.BookingID, from, bookingModel.StatusScheduled, claims.Email)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, errOwnership):
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "You can only schedule your own bookings",
				Status:  fiber.StatusForbidden,
			})
		default:
			logger.Error("Failed to schedule pickup", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to schedule pickup",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	logger.Success("Pickup scheduled for booking " + b.BookingID)
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Pickup scheduled successfully",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

var errOwnership = errors.New("booking owned by another account")

// GetSchedule returns the pickup/drop window of a booking.
func (h *ScheduleController) GetSchedule(c *fiber.Ctx) error {
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
			Message: "Failed to load schedule",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Schedule loaded",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"bookingId":  b.BookingID,
			"pickupTime": b.PickupTime,
			"dropTime":   b.DropoffTime,
			"status":     b.Status,
		},
	})
}
