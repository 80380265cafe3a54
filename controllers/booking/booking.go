package booking

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parcel-booking/logger"
	"parcel-booking/middleware"
	bookingModel "parcel-booking/models/booking"
	"parcel-booking/services/booking_event"
	"parcel-booking/services/export"
	"parcel-booking/services/pricing"
	"parcel-booking/services/token"
	"parcel-booking/types"
	bookingTypes "parcel-booking/types/booking"
	"parcel-booking/utils"
)

type BookingController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{db: db, loggerInstance: asyncLogger}
}

// parsePagination reads page/size query params with the defaults 0/10.
func parsePagination(c *fiber.Ctx) (page, size int) {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err = strconv.Atoi(c.Query("size", "10"))
	if err != nil || size < 1 || size > 100 {
		size = 10
	}
	return page, size
}

func accountIDFromClaims(claims *token.Claims) (uint, error) {
	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad userId claim %q", claims.UserID)
	}
	return uint(id), nil
}

// store creates a booking for the authenticated account. Customer bookings
// start at NEW; officer-channel bookings start at BOOKED and carry the
// administrative fee in their cost.
func (h *BookingController) store(c *fiber.Ctx, officerChannel bool) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Authorization required",
			Status:  fiber.StatusUnauthorized,
		})
	}
	accountID, err := accountIDFromClaims(claims)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing booking request body", err)
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

	deliveryType := bookingModel.DeliveryType(req.DeliveryType)
	packing := bookingModel.PackingPreference(req.PackingPreference)

	cost, err := pricing.ComputeCost(req.WeightInGram, deliveryType, packing, officerChannel)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	status := bookingModel.StatusNew
	if officerChannel {
		status = bookingModel.StatusBooked
	}

	b := bookingModel.Booking{
		BookingID:           utils.GenerateBookingID(),
		AccountID:           accountID,
		ReceiverName:        req.ReceiverName,
		ReceiverAddress:     req.ReceiverAddress,
		ReceiverMobile:      req.ReceiverMobile,
		ReceiverPin:         req.ReceiverPin,
		WeightInGram:        req.WeightInGram,
		ContentsDescription: req.ContentsDescription,
		DeliveryType:        deliveryType,
		PackingPreference:   packing,
		ServiceCost:         cost,
		Status:              status,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, b.BookingID, "", status, claims.Email)
	})
	if err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create booking",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Booking created: " + b.BookingID)
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created successfully",
		Status:  fiber.StatusCreated,
		Data:    b,
	})
}

func (h *BookingController) Store(c *fiber.Ctx) error {
	return h.store(c, false)
}

func (h *BookingController) StoreOfficer(c *fiber.Ctx) error {
	return h.store(c, true)
}

// listPage runs a paginated booking query and wraps it in the page envelope.
func (h *BookingController) listPage(c *fiber.Ctx, scope func(*gorm.DB) *gorm.DB) error {
	page, size := parsePagination(c)

	var total int64
	if err := scope(h.db.Model(&bookingModel.Booking{})).Count(&total).Error; err != nil {
		logger.Error("Failed to count bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var bookings []bookingModel.Booking
	err := scope(h.db.Model(&bookingModel.Booking{})).
		Order("created_at desc").
		Offset(page * size).
		Limit(size).
		Find(&bookings).Error
	if err != nil {
		logger.Error("Failed to load bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings loaded",
		Status:  fiber.StatusOK,
		Data: bookingTypes.BookingPage{
			Bookings:      bookings,
			TotalElements: total,
			TotalPages:    totalPages,
			CurrentPage:   page,
			PageSize:      size,
		},
	})
}

// OfficerBookings lists bookings created by the authenticated officer.
func (h *BookingController) OfficerBookings(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	accountID, err := accountIDFromClaims(claims)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token",
			Status:  fiber.StatusUnauthorized,
		})
	}
	return h.listPage(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("account_id = ?", accountID)
	})
}

// AllBookings lists every booking in the system, newest first.
func (h *BookingController) AllBookings(c *fiber.Ctx) error {
	return h.listPage(c, func(q *gorm.DB) *gorm.DB { return q })
}

// PreviousBookings lists the authenticated customer's own bookings.
func (h *BookingController) PreviousBookings(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	accountID, err := accountIDFromClaims(claims)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token",
			Status:  fiber.StatusUnauthorized,
		})
	}
	return h.listPage(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("account_id = ?", accountID)
	})
}

// Export streams the customer's bookings as an xlsx attachment.
func (h *BookingController) Export(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	accountID, err := accountIDFromClaims(claims)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token",
			Status:  fiber.StatusUnauthorized,
		})
	}

	format := c.Query("format", "xlsx")
	if format != "xlsx" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Unsupported export format: " + format,
			Status:  fiber.StatusBadRequest,
		})
	}

	var bookings []bookingModel.Booking
	if err := h.db.Where("account_id = ?", accountID).Order("created_at desc").Find(&bookings).Error; err != nil {
		logger.Error("Failed to load bookings for export", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to export bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	fileBytes, err := export.BookingsWorkbook(bookings)
	if err != nil {
		logger.Error("Failed to build export workbook", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to export bookings",
			Status:  fiber.StatusInternalServerError,
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bookings.xlsx"`)
	return c.Status(fiber.StatusOK).Send(fileBytes)
}
