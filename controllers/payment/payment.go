package payment

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parcel-booking/logger"
	"parcel-booking/middleware"
	bookingModel "parcel-booking/models/booking"
	paymentModel "parcel-booking/models/payment"
	userModel "parcel-booking/models/user"
	"parcel-booking/services/booking_event"
	"parcel-booking/services/invoice"
	paymentService "parcel-booking/services/payment"
	"parcel-booking/types"
	paymentTypes "parcel-booking/types/payment"
	"parcel-booking/utils"
)

type PaymentController struct {
	db              *gorm.DB
	payments        *paymentService.Service
	invoiceRenderer invoice.Renderer
	loggerInstance  *logger.AsyncLogger
}

func NewPaymentController(db *gorm.DB, payments *paymentService.Service, renderer invoice.Renderer, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{db: db, payments: payments, invoiceRenderer: renderer, loggerInstance: asyncLogger}
}

var errOwnership = errors.New("booking owned by another account")

// Process charges the card for a booking, records the payment and advances
// the booking to BOOKED with the payment time stamped. The charged amount is
// always the booking's stored service cost.
func (h *PaymentController) Process(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)

	var req paymentTypes.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing payment request body", err)
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

	card := paymentService.CardDetails{
		Number:         req.CardNumber,
		CardholderName: req.CardholderName,
		Expiry:         req.ExpiryDate,
		CVV:            req.CVV,
	}

	var b bookingModel.Booking
	var p *paymentModel.Payment
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", req.BookingID).First(&b).Error; err != nil {
			return err
		}

		accountID, perr := strconv.ParseUint(claims.UserID, 10, 64)
		if perr != nil || b.AccountID != uint(accountID) {
			return errOwnership
		}

		var err error
		p, err = h.payments.Process(tx, &b, card)
		if err != nil {
			return err
		}

		from := b.Status
		paidAt := time.Now()
		b.Status = bookingModel.StatusBooked
		b.PaymentTime = &paidAt
		if err := tx.Model(&b).Updates(map[string]interface{}{
			"status":       bookingModel.StatusBooked,
			"payment_time": paidAt,
		}).Error; err != nil {
			return err
		}
		return booking_event.RecordStatusEvent(tx, b.BookingID, from, bookingModel.StatusBooked, claims.Email)
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
				Message: "You can only pay for your own bookings",
				Status:  fiber.StatusForbidden,
			})
		case errors.Is(err, paymentService.ErrPaymentExists):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Payment already exists for this booking",
				Status:  fiber.StatusConflict,
			})
		case errors.Is(err, paymentService.ErrInvalidCardDetails):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, paymentService.ErrInsufficientFunds):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Payment declined: insufficient funds",
				Status:  fiber.StatusBadRequest,
			})
		default:
			logger.Error("Failed to process payment", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to process payment",
				Status:  fiber.StatusInternalServerError,
			})
		}
	}

	logger.Success("Payment processed for booking " + b.BookingID + ": " + p.PaymentID)
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Payment successful",
		Status:  fiber.StatusCreated,
		Data:    p,
	})
}

// loadPaidBooking fetches the booking and its payment, enforcing ownership
// for customers (officers can see any invoice).
func (h *PaymentController) loadPaidBooking(c *fiber.Ctx) (*bookingModel.Booking, *paymentModel.Payment, error) {
	claims := middleware.ClaimsFromContext(c)
	bookingID := c.Params("bookingId")

	var b bookingModel.Booking
	if err := h.db.Where("booking_id = ?", bookingID).First(&b).Error; err != nil {
		return nil, nil, err
	}

	if claims.Role != userModel.RoleOfficer {
		accountID, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil || b.AccountID != uint(accountID) {
			return nil, nil, errOwnership
		}
	}

	var p paymentModel.Payment
	if err := h.db.Where("booking_id = ?", bookingID).First(&p).Error; err != nil {
		return nil, nil, err
	}
	return &b, &p, nil
}

// Invoice returns the invoice data for a paid booking as JSON.
func (h *PaymentController) Invoice(c *fiber.Ctx) error {
	b, p, err := h.loadPaidBooking(c)
	if err != nil {
		return h.invoiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Invoice loaded",
		Status:  fiber.StatusOK,
		Data:    invoice.Build(b, p),
	})
}

// InvoiceDownload streams the invoice as a PDF attachment.
func (h *PaymentController) InvoiceDownload(c *fiber.Ctx) error {
	b, p, err := h.loadPaidBooking(c)
	if err != nil {
		return h.invoiceError(c, err)
	}

	data := invoice.Build(b, p)
	pdfBytes, err := h.invoiceRenderer.Render(data)
	if err != nil {
		logger.Error("Failed to render invoice PDF", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to render invoice",
			Status:  fiber.StatusInternalServerError,
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+data.InvoiceNumber+`.pdf"`)
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}

func (h *PaymentController) invoiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "No invoice found for this booking",
			Status:  fiber.StatusNotFound,
		})
	case errors.Is(err, errOwnership):
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "You can only view invoices for your own bookings",
			Status:  fiber.StatusForbidden,
		})
	default:
		logger.Error("Failed to load invoice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load invoice",
			Status:  fiber.StatusInternalServerError,
		})
	}
}
