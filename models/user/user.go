package user

import (
	"time"
)

// Role discriminates the two kinds of accounts sharing this table.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleOfficer  Role = "OFFICER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOfficer:
		return true
	default:
		return false
	}
}

// Account represents a customer or an officer. Both roles live in the same
// table and are told apart by the Role column; authorization checks key off
// that field rather than separate entities.
type Account struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	CountryCode  string `gorm:"type:varchar(10);not null" json:"country_code"`
	MobileNumber string `gorm:"type:varchar(20);not null" json:"mobile_number"`
	Address      string `gorm:"type:text;not null" json:"address"`

	// Bcrypt digest, never serialized.
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	Role Role `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`

	// UniqueID is the human-friendly alternate login identifier
	// (CUST.../OFF... prefix), distinct from the numeric primary key.
	UniqueID string `gorm:"type:varchar(50);unique" json:"unique_id"`

	GetUpdatesVia string `gorm:"type:varchar(50);not null" json:"get_updates_via"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
