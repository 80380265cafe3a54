package routes

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parcel-booking/controllers/auth"
	"parcel-booking/controllers/booking"
	"parcel-booking/controllers/cancel"
	"parcel-booking/controllers/delivery"
	feedbackController "parcel-booking/controllers/feedback"
	paymentController "parcel-booking/controllers/payment"
	"parcel-booking/controllers/schedule"
	"parcel-booking/controllers/tracking"
	"parcel-booking/logger"
	"parcel-booking/middleware"
	"parcel-booking/models/user"
	"parcel-booking/services/invoice"
	paymentService "parcel-booking/services/payment"
	"parcel-booking/services/token"
)

// tokenTTL reads JWT_EXPIRY_HOURS with a 24 hour default.
func tokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS"))
	if err != nil || hours < 1 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	tokenService := token.NewService(os.Getenv("JWT_SECRET"), tokenTTL())
	asyncLogger := logger.NewAsyncLogger(db)

	payments := paymentService.NewService(paymentService.NewSimulatedAuthorizer())

	authCtrl := auth.NewAuthController(db, tokenService, asyncLogger)
	bookingCtrl := booking.NewBookingController(db, asyncLogger)
	cancelCtrl := cancel.NewCancelController(db, asyncLogger)
	deliveryCtrl := delivery.NewDeliveryController(db, asyncLogger)
	scheduleCtrl := schedule.NewScheduleController(db, asyncLogger)
	paymentCtrl := paymentController.NewPaymentController(db, payments, invoice.NewPDFRenderer(), asyncLogger)
	feedbackCtrl := feedbackController.NewFeedbackController(db, asyncLogger)
	trackingCtrl := tracking.NewTrackingController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	protected := middleware.Protected(tokenService)
	customerOnly := middleware.RequireRole(user.RoleCustomer)
	officerOnly := middleware.RequireRole(user.RoleOfficer)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/register", authCtrl.Register)
	api.Post("/auth/login", authCtrl.Login)
	api.Post("/auth/officer-login", authCtrl.OfficerLogin)

	/*=============================================================================
	| Account Routes
	===============================================================================*/
	api.Post("/auth/change-password", protected, authCtrl.ChangePassword)
	api.Get("/auth/profile", protected, authCtrl.Profile)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	api.Post("/bookings", protected, customerOnly, bookingCtrl.Store)
	api.Post("/bookings/officer", protected, officerOnly, bookingCtrl.StoreOfficer)
	api.Get("/bookings/officer", protected, officerOnly, bookingCtrl.OfficerBookings)
	api.Get("/all-bookings", protected, officerOnly, bookingCtrl.AllBookings)
	api.Get("/previous-bookings", protected, customerOnly, bookingCtrl.PreviousBookings)
	api.Get("/previous-bookings/export", protected, customerOnly, bookingCtrl.Export)

	api.Post("/cancel-booking/customer", protected, customerOnly, cancelCtrl.CancelCustomer)
	api.Post("/cancel-booking/officer", protected, officerOnly, cancelCtrl.CancelOfficer)

	/*=============================================================================
	| Delivery & Scheduling Routes
	===============================================================================*/
	api.Put("/delivery-status/:bookingId", protected, officerOnly, deliveryCtrl.UpdateStatus)
	api.Get("/delivery-status/:bookingId", protected, deliveryCtrl.GetStatus)

	api.Put("/pickup-scheduling/:bookingId", protected, customerOnly, scheduleCtrl.Schedule)
	api.Get("/pickup-scheduling/:bookingId", protected, scheduleCtrl.GetSchedule)

	/*=============================================================================
	| Payment & Invoice Routes
	===============================================================================*/
	// Payments are open to both roles; officer-channel bookings are paid by
	// the officer account and the controller's ownership check covers both.
	api.Post("/payments", protected, paymentCtrl.Process)
	api.Get("/payments/:bookingId/invoice", protected, paymentCtrl.Invoice)
	api.Get("/payments/invoice/:bookingId/download", protected, paymentCtrl.InvoiceDownload)

	/*=============================================================================
	| Feedback & Tracking Routes
	===============================================================================*/
	api.Post("/feedback/add", protected, customerOnly, feedbackCtrl.Add)
	api.Get("/feedback/officer/all", protected, officerOnly, feedbackCtrl.OfficerAll)

	api.Get("/tracking/customer/:bookingId", protected, customerOnly, trackingCtrl.Customer)
	api.Get("/tracking/officer/:bookingId", protected, officerOnly, trackingCtrl.Officer)
}
