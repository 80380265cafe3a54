package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parcel-booking/logger"
	"parcel-booking/models/booking"
	"parcel-booking/models/feedback"
	"parcel-booking/models/log"
	"parcel-booking/models/payment"
	"parcel-booking/models/user"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	dbUser := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, dbUser, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: foundation models
	stage1Models := []interface{}{
		&user.Account{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing accounts
	stage2Models := []interface{}{
		&booking.Booking{},
		&booking.BookingStatusEvent{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: models referencing bookings, plus logging
	remainingModels := []interface{}{
		&payment.Payment{},
		&feedback.Feedback{},
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_accounts_email ON accounts(email)").Error; err != nil {
		return fmt.Errorf("failed to create account email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_accounts_unique_id ON accounts(unique_id)").Error; err != nil {
		return fmt.Errorf("failed to create account unique_id index: %w", err)
	}

	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_booking_id ON bookings(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_account_status ON bookings(account_id, status)").Error; err != nil {
		return fmt.Errorf("failed to create booking account/status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_booking_status_events_booking ON booking_status_events(booking_id, created_at)").Error; err != nil {
		return fmt.Errorf("failed to create status event index: %w", err)
	}

	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create payment booking_id index: %w", err)
	}
	if err := DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_feedbacks_booking_id ON feedbacks(booking_id)").Error; err != nil {
		return fmt.Errorf("failed to create feedback booking_id index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints adds the cross-table constraints AutoMigrate
// does not cover
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			"fk_bookings_account",
			`ALTER TABLE bookings ADD CONSTRAINT fk_bookings_account
			 FOREIGN KEY (account_id) REFERENCES accounts(id)`,
		},
		{
			"fk_payments_account",
			`ALTER TABLE payments ADD CONSTRAINT fk_payments_account
			 FOREIGN KEY (account_id) REFERENCES accounts(id)`,
		},
		{
			"fk_payments_booking",
			`ALTER TABLE payments ADD CONSTRAINT fk_payments_booking
			 FOREIGN KEY (booking_id) REFERENCES bookings(booking_id)`,
		},
		{
			"fk_feedbacks_account",
			`ALTER TABLE feedbacks ADD CONSTRAINT fk_feedbacks_account
			 FOREIGN KEY (account_id) REFERENCES accounts(id)`,
		},
		{
			"fk_feedbacks_booking",
			`ALTER TABLE feedbacks ADD CONSTRAINT fk_feedbacks_booking
			 FOREIGN KEY (booking_id) REFERENCES bookings(booking_id)`,
		},
	}

	for _, c := range constraints {
		var exists bool
		err := DB.Raw(
			"SELECT EXISTS (SELECT 1 FROM information_schema.table_constraints WHERE constraint_name = ?)",
			c.name,
		).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := DB.Exec(c.sql).Error; err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", c.name, err)
		}
	}

	return nil
}
