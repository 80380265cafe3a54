package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest represents the request payload for account registration
type RegisterRequest struct {
	CustomerName    string `json:"customerName" validate:"required,min=1,max=255"`
	Email           string `json:"email" validate:"required,email"`
	CountryCode     string `json:"countryCode" validate:"required,min=1,max=10"`
	MobileNumber    string `json:"mobileNumber" validate:"required"`
	Address         string `json:"address" validate:"required,min=1"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Preferences     string `json:"preferences" validate:"required,oneof=EMAIL SMS BOTH"`
	Role            string `json:"role" validate:"omitempty,oneof=CUSTOMER OFFICER"`
}

func (r RegisterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("%s is invalid", errs[0].Field())
		}
		return err
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("password and confirmPassword do not match")
	}
	return nil
}

// LoginRequest represents the request payload for customer and officer login.
// The unique id travels in the email field.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ChangePasswordRequest represents the request payload for changing a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (r ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return fmt.Errorf("currentPassword is required")
	}
	if r.NewPassword == "" {
		return fmt.Errorf("newPassword is required")
	}
	if len(r.NewPassword) < 8 {
		return fmt.Errorf("newPassword must be at least 8 characters")
	}
	if r.NewPassword != r.ConfirmPassword {
		return fmt.Errorf("newPassword and confirmPassword do not match")
	}
	return nil
}
