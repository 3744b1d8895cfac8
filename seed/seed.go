package seed

import (
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

// SeedAdmin creates the initial back-office admin account if no staff user
// exists yet. Credentials come from the environment.
func SeedAdmin() error {
	var existing models.User
	err := utils.DB.Where("user_type = ?", "staff").First(&existing).Error
	if err == nil {
		utils.Log.Info("Staff account already exists, skipping admin seed")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.Log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName:          "Back",
		LastName:           "Office",
		Email:              email,
		Password:           string(hashed),
		UserType:           "staff",
		Department:         "support",
		VerificationStatus: "verified",
	}

	if err := utils.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.Log.Infof("Admin account seeded for %s", email)
	return nil
}
