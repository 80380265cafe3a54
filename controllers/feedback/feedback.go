package feedback

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parcel-booking/logger"
	"parcel-booking/middleware"
	bookingModel "parcel-booking/models/booking"
	feedbackModel "parcel-booking/models/feedback"
	"parcel-booking/types"
	feedbackTypes "parcel-booking/types/feedback"
	"parcel-booking/utils"
)

type FeedbackController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewFeedbackController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *FeedbackController {
	return &FeedbackController{db: db, loggerInstance: asyncLogger}
}

var (
	errOwnership    = errors.New("booking owned by another account")
	errNotDelivered = errors.New("booking not delivered")
	errDuplicate    = errors.New("feedback already exists")
)

// addFailure maps a feedback error to its response. Reviewing an undelivered
// parcel is a validation failure; only the true duplicate is a conflict.
func addFailure(err error) (int, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, "Booking not found"
	case errors.Is(err, errOwnership):
		return fiber.StatusForbidden, "You can only review your own bookings"
	case errors.Is(err, errNotDelivered):
		return fiber.StatusBadRequest, "Feedback is only allowed for delivered parcels"
	case errors.Is(err, errDuplicate):
		return fiber.StatusConflict, "Feedback already submitted for this booking"
	default:
		return fiber.StatusInternalServerError, "Failed to save feedback"
	}
}

// Add records feedback for a delivered booking. One feedback per booking,
// owner only.
func (h *FeedbackController) Add(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)

	var req feedbackTypes.AddRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing feedback request body", err)
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

	var fb feedbackModel.Feedback
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var b bookingModel.Booking
		if err := tx.Where("booking_id = ?", req.BookingID).First(&b).Error; err != nil {
			return err
		}

		accountID, perr := strconv.ParseUint(claims.UserID, 10, 64)
		if perr != nil || b.AccountID != uint(accountID) {
			return errOwnership
		}

		if !b.Status.AcceptsFeedback() {
			return errNotDelivered
		}

		var count int64
		if err := tx.Model(&feedbackModel.Feedback{}).Where("booking_id = ?", b.BookingID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errDuplicate
		}

		fb = feedbackModel.Feedback{
			BookingID:   b.BookingID,
			AccountID:   b.AccountID,
			Rating:      req.Rating,
			Description: req.Description,
		}
		return tx.Create(&fb).Error
	})
	if err != nil {
		status, message := addFailure(err)
		if status == fiber.StatusInternalServerError {
			logger.Error("Failed to save feedback", err)
		}
		return c.Status(status).JSON(types.ApiResponse{
			Message: message,
			Status:  status,
		})
	}

	logger.Success("Feedback recorded for booking " + fb.BookingID)
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Feedback submitted successfully",
		Status:  fiber.StatusCreated,
		Data:    fb,
	})
}

// OfficerAll lists all feedback, newest first, paginated.
func (h *FeedbackController) OfficerAll(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.Query("size", "10"))
	if err != nil || size < 1 || size > 100 {
		size = 10
	}

	var total int64
	if err := h.db.Model(&feedbackModel.Feedback{}).Count(&total).Error; err != nil {
		logger.Error("Failed to count feedback", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load feedback",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var items []feedbackModel.Feedback
	if err := h.db.Order("created_at desc").Offset(page * size).Limit(size).Find(&items).Error; err != nil {
		logger.Error("Failed to load feedback", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load feedback",
			Status:  fiber.StatusInternalServerError,
		})
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Feedback loaded",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"feedback":      items,
			"totalElements": total,
			"totalPages":    totalPages,
			"currentPage":   page,
			"pageSize":      size,
		},
	})
}
