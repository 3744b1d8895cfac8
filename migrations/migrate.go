package migrations

import (
	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

// Run auto-migrates every back-office table.
func Run() error {
	return utils.DB.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Booking{},
		&models.Inspection{},
		&models.Payout{},
		&models.Repair{},
		&models.Transaction{},
		&models.Verification{},
		&models.CallLog{},
		&models.Feedback{},
	)
}
