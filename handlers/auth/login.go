package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("Please provide a valid email and password"))
		return
	}

	var user models.User
	if err := utils.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.Fail(c, utils.Validation("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.Fail(c, utils.Validation("Invalid email or password"))
		return
	}

	token, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		utils.Fail(c, utils.Store(err, "Could not generate token"))
		return
	}

	utils.Respond(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.FullName(),
			"user_type": user.UserType,
		},
	})
}

func Logout(c *gin.Context) {
	userInterface, exists := c.Get("user")
	if !exists {
		utils.Fail(c, utils.Validation("User not found in context"))
		return
	}
	user := userInterface.(models.User)

	now := time.Now()
	user.LastLogoutAt = &now
	if err := utils.DB.Save(&user).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to log out"))
		return
	}

	utils.Respond(c, "Logout successful", nil)
}
