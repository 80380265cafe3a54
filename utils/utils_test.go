package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-booking/models/user"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.True(t, CheckPasswordHash("s3cret-passw0rd", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("s3cret-passw0rd", "not-a-hash"))
}

func TestGenerateUniqueID(t *testing.T) {
	custID := GenerateUniqueID(user.RoleCustomer)
	assert.True(t, strings.HasPrefix(custID, "CUST"))

	offID := GenerateUniqueID(user.RoleOfficer)
	assert.True(t, strings.HasPrefix(offID, "OFF"))

	assert.NotEqual(t, GenerateUniqueID(user.RoleCustomer), GenerateUniqueID(user.RoleCustomer))
}

func TestGenerateBookingID(t *testing.T) {
	id := GenerateBookingID()
	assert.True(t, strings.HasPrefix(id, "BK"))
	assert.GreaterOrEqual(t, len(id), 15)
	for _, r := range id[2:] {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestValidateMobileNumber(t *testing.T) {
	assert.True(t, ValidateMobileNumber("9876543210"))
	assert.True(t, ValidateMobileNumber(" 9876543210 "))

	assert.False(t, ValidateMobileNumber("987654321"))
	assert.False(t, ValidateMobileNumber("98765432101"))
	assert.False(t, ValidateMobileNumber("98765asdfg"))
	assert.False(t, ValidateMobileNumber("+19876543210"))
	assert.False(t, ValidateMobileNumber(""))
}

func TestParseFlexibleDateTime(t *testing.T) {
	want := time.Date(2026, 7, 15, 14, 30, 0, 0, time.UTC)

	iso, err := ParseFlexibleDateTime("2026-07-15T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, want.Format("2006-01-02 15:04:05"), iso.Format("2006-01-02 15:04:05"))

	spaced, err := ParseFlexibleDateTime("2026-07-15 14:30:00")
	require.NoError(t, err)
	assert.Equal(t, want.Format("2006-01-02 15:04:05"), spaced.Format("2006-01-02 15:04:05"))

	_, err = ParseFlexibleDateTime("")
	assert.Error(t, err)

	_, err = ParseFlexibleDateTime("not a date")
	assert.Error(t, err)
}
