package feedback

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAddFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing booking", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"foreign booking", errOwnership, fiber.StatusForbidden},
		{"not delivered", errNotDelivered, fiber.StatusBadRequest},
		{"duplicate feedback", errDuplicate, fiber.StatusConflict},
		{"unexpected", errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := addFailure(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, message)
		})
	}
}
