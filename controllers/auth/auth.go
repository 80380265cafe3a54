package auth

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"parcel-booking/logger"
	"parcel-booking/middleware"
	userModel "parcel-booking/models/user"
	"parcel-booking/services/token"
	"parcel-booking/types"
	authTypes "parcel-booking/types/auth"
	"parcel-booking/utils"
)

type AuthController struct {
	db             *gorm.DB
	tokenService   *token.Service
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, tokenService *token.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, tokenService: tokenService, loggerInstance: asyncLogger}
}

// setSecureCookie sets the access cookie; secure flag only in production.
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a new account and returns a signed token with the profile.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing register request body", err)
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

	if !utils.ValidateMobileNumber(req.MobileNumber) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "mobileNumber must be 10 digits",
			Status:  fiber.StatusBadRequest,
		})
	}

	role := userModel.RoleCustomer
	if req.Role != "" {
		role = userModel.Role(req.Role)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Registration failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	account := userModel.Account{
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		CountryCode:   req.CountryCode,
		MobileNumber:  req.MobileNumber,
		Address:       req.Address,
		Password:      hashed,
		Role:          role,
		UniqueID:      utils.GenerateUniqueID(role),
		GetUpdatesVia: req.Preferences,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel.Account{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Email already registered",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to create account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Registration failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	signed, err := h.tokenService.Issue(account.Email, account.ID, account.Role)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Registration failed",
			Status:  fiber.StatusInternalServerError,
		})
	}
	h.setSecureCookie(c, "access", signed, 24*60*60)

	logger.Success("Account registered: " + account.UniqueID)
	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful",
		Status:  fiber.StatusCreated,
		Token:   signed,
		Data:    account,
	})
}

// login authenticates by unique id and issues a token when the stored role
// matches the expected one.
func (h *AuthController) login(c *fiber.Ctx, expectedRole userModel.Role) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing login request body", err)
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

	var account userModel.Account
	if err := h.db.Where("unique_id = ?", req.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid credentials",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to look up account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Login failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !utils.CheckPasswordHash(req.Password, account.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if account.Role != expectedRole {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Access denied for this role",
			Status:  fiber.StatusForbidden,
		})
	}

	signed, err := h.tokenService.Issue(account.Email, account.ID, account.Role)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Login failed",
			Status:  fiber.StatusInternalServerError,
		})
	}
	h.setSecureCookie(c, "access", signed, 24*60*60)

	if h.loggerInstance != nil {
		defer h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c))
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   signed,
		Data:    account,
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	return h.login(c, userModel.RoleCustomer)
}

func (h *AuthController) OfficerLogin(c *fiber.Ctx) error {
	return h.login(c, userModel.RoleOfficer)
}

// ChangePassword verifies the current password and stores a new digest.
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Authorization required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req authTypes.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing change-password request body", err)
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

	var account userModel.Account
	if err := h.db.Where("email = ?", claims.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Account not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to look up account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Password change failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, account.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Current password is incorrect",
			Status:  fiber.StatusUnauthorized,
		})
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("Failed to hash new password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Password change failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if err := h.db.Model(&account).Update("password", hashed).Error; err != nil {
		logger.Error("Failed to update password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Password change failed",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Password changed for account " + account.UniqueID)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password changed successfully",
		Status:  fiber.StatusOK,
	})
}

// Profile returns the authenticated account.
func (h *AuthController) Profile(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Authorization required",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var account userModel.Account
	if err := h.db.Where("email = ?", claims.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Account not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to look up account", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to load profile",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile loaded",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}
