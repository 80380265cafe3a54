package utils

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"golang.org/x/crypto/bcrypt"

	"parcel-booking/models/user"
	"parcel-booking/types"
)

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plain-text password against a bcrypt digest
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateUniqueID builds the human-friendly alternate login identifier for
// an account: CUST/OFF prefix, epoch-millis suffix and a random tail so two
// registrations in the same millisecond cannot collide.
func GenerateUniqueID(role user.Role) string {
	prefix := "CUST"
	if role == user.RoleOfficer {
		prefix = "OFF"
	}
	return fmt.Sprintf("%s%d%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}

// GenerateBookingID builds the public booking identifier ("BK" + epoch millis).
func GenerateBookingID() string {
	return fmt.Sprintf("BK%d", time.Now().UnixMilli())
}

// ValidateMobileNumber accepts exactly ten digits.
func ValidateMobileNumber(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	pattern := `^[0-9]{10}$`
	re := regexp.MustCompile(pattern)
	return re.MatchString(mobile)
}

// ParseFlexibleDateTime parses a scheduling timestamp. Both the ISO form
// (2006-01-02T15:04:05) and the space-separated form (2006-01-02 15:04:05)
// are accepted.
func ParseFlexibleDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	t, err := now.Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable datetime %q", value)
	}
	return t, nil
}

// sanitizeRequestBody sanitizes request body for logging; password fields are
// redacted and oversized bodies are replaced with a marker.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if len(body) > 10000 {
		return "[LARGE_REQUEST_BODY_TRUNCATED]"
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return body
	}
	for key := range parsed {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "password") || strings.Contains(lower, "cardnumber") || strings.Contains(lower, "cvv") {
			parsed[key] = "[REDACTED]"
		}
	}
	if jsonBytes, err := json.Marshal(parsed); err == nil {
		return string(jsonBytes)
	}
	return body
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for logging
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	// Deep copies so the entry stays valid after fiber recycles the context.
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
