package properties

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

var validStatuses = map[string]bool{
	"available":   true,
	"rented":      true,
	"maintenance": true,
	"inactive":    true,
}

func GetProperties(c *gin.Context) {
	tx := utils.DB.Model(&models.Property{}).Scopes(reporting.StatusIs(c.Query("status")), reporting.NewestFirst)

	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" || end != "" {
		r, err := reporting.ParseRange(start, end)
		if err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		tx = tx.Scopes(reporting.CreatedWithin(r))
	}

	var properties []models.Property
	if err := tx.Find(&properties).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch properties"))
		return
	}

	utils.RespondList(c, "Properties retrieved", properties, int64(len(properties)))
}

func GetProperty(c *gin.Context) {
	var property models.Property
	if err := utils.DB.First(&property, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Property not found", "Failed to fetch property"))
		return
	}

	// A back-office view still counts toward the listing's view counter.
	utils.DB.Model(&property).UpdateColumn("views", property.Views+1)

	utils.RespondData(c, "Property retrieved", property)
}

func SearchProperties(c *gin.Context) {
	term, err := reporting.ValidateSearchTerm(c.Query("q"))
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var properties []models.Property
	if err := utils.DB.Model(&models.Property{}).
		Scopes(reporting.MatchesTitle(term), reporting.NewestFirst).
		Find(&properties).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to search properties"))
		return
	}

	utils.RespondList(c, "Search results", properties, int64(len(properties)))
}

func CreateProperty(c *gin.Context) {
	var input struct {
		Title        string  `json:"title" binding:"required"`
		Description  string  `json:"description"`
		LandlordID   uint    `json:"landlord_id" binding:"required"`
		Price        float64 `json:"price" binding:"required,gt=0"`
		Address      string  `json:"address"`
		City         string  `json:"city"`
		State        string  `json:"state"`
		PropertyType string  `json:"property_type"`
		Bedrooms     int     `json:"bedrooms"`
		Bathrooms    int     `json:"bathrooms"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("title, landlord_id and a positive price are required"))
		return
	}

	var landlord models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", input.LandlordID, "landlord").First(&landlord).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Landlord not found", "Failed to verify landlord"))
		return
	}

	property := models.Property{
		Title:        input.Title,
		Description:  input.Description,
		LandlordID:   input.LandlordID,
		Status:       "available",
		Price:        input.Price,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		PropertyType: input.PropertyType,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
	}

	if err := utils.DB.Create(&property).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create property"))
		return
	}

	utils.RespondCreated(c, "Property created", property)
}

func UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := utils.DB.First(&property, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Property not found", "Failed to fetch property"))
		return
	}

	var input struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Status      *string  `json:"status"`
		Price       *float64 `json:"price"`
		Address     *string  `json:"address"`
		City        *string  `json:"city"`
		State       *string  `json:"state"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("Invalid update payload"))
		return
	}

	if input.Status != nil && !validStatuses[*input.Status] {
		utils.Fail(c, utils.Validation("status must be one of available, rented, maintenance, inactive"))
		return
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Status != nil {
		property.Status = *input.Status
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.State != nil {
		property.State = *input.State
	}
	property.UpdatedAt = time.Now()

	if err := utils.DB.Save(&property).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to update property"))
		return
	}

	utils.RespondData(c, "Property updated", property)
}

func DeleteProperty(c *gin.Context) {
	var property models.Property
	if err := utils.DB.First(&property, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Property not found", "Failed to fetch property"))
		return
	}

	if err := utils.DB.Delete(&property).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to delete property"))
		return
	}

	utils.Respond(c, "Property deleted", nil)
}
