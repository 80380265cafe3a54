package delivery

import (
	"errors"

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

type DeliveryController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewDeliveryController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DeliveryController {
	return &DeliveryController{db: db, loggerInstance: asyncLogger}
}

// UpdateStatus lets an officer set any named status on a booking. The
// override is free-form on purpose; correcting mis-scanned parcels needs
// backward moves.
func (h *DeliveryController) UpdateStatus(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	bookingID := c.Params("bookingId")

	var req bookingTypes.DeliveryStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing status update body", err)
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

	newStatus := bookingModel.ParcelStatus(req.Status)

	var b bookingModel.Booking
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
			return err
		}
		from := b.Status
		b.Status = newStatus
		if err := tx.Model(&b).Update("status", newStatus).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, b.BookingID, from, newStatus, claims.Email)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update delivery status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update delivery status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Delivery status updated: " + b.BookingID + " -> " + newStatus.String())
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Delivery status updated",
		Status:  fiber.StatusOK,
		Data:    b,
	})
}

// GetStatus returns the current status of a booking.
func (h *DeliveryController) GetStatus(c *fiber.Ctx) error {
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
			Message: "Failed to load delivery status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Delivery status loaded",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"bookingId":     b.BookingID,
			"status":        b.Status,
			"statusDisplay": b.Status.DisplayName(),
		},
	})
}
