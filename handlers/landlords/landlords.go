package landlords

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetLandlords(c *gin.Context) {
	var landlords []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("landlord"), reporting.NewestFirst).
		Find(&landlords).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch landlords"))
		return
	}

	utils.RespondList(c, "Landlords retrieved", landlords, int64(len(landlords)))
}

func GetLandlord(c *gin.Context) {
	var landlord models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", c.Param("id"), "landlord").First(&landlord).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Landlord not found", "Failed to fetch landlord"))
		return
	}

	var properties []models.Property
	if err := utils.DB.Where("landlord_id = ?", landlord.ID).Scopes(reporting.NewestFirst).Find(&properties).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch landlord properties"))
		return
	}

	utils.Respond(c, "Landlord retrieved", gin.H{
		"data":           landlord,
		"properties":     properties,
		"property_count": len(properties),
	})
}

func SearchLandlords(c *gin.Context) {
	term, err := reporting.ValidateSearchTerm(c.Query("q"))
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var landlords []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("landlord"), reporting.MatchesName(term), reporting.NewestFirst).
		Find(&landlords).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to search landlords"))
		return
	}

	utils.RespondList(c, "Search results", landlords, int64(len(landlords)))
}

func CountLandlords(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.User{}).Scopes(reporting.UserTypeIs("landlord")).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count landlords"))
		return
	}

	utils.Respond(c, "Landlord count retrieved", gin.H{"count": count})
}

func LandlordsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var landlords []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("landlord"), reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&landlords).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch landlords"))
		return
	}

	utils.RespondList(c, "Landlords retrieved", landlords, int64(len(landlords)))
}

// LandlordStats ranks landlords by portfolio size and totals their pending
// payout exposure.
func LandlordStats(c *gin.Context) {
	var total int64
	if err := utils.DB.Model(&models.User{}).Scopes(reporting.UserTypeIs("landlord")).Count(&total).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute landlord stats"))
		return
	}

	var portfolio []struct {
		LandlordID uint   `json:"landlord_id"`
		Count      int64  `json:"count"`
		Email      string `json:"email"`
	}
	if err := utils.DB.Model(&models.Property{}).
		Select("properties.landlord_id, COUNT(*) as count, users.email").
		Joins("JOIN users ON users.id = properties.landlord_id").
		Group("properties.landlord_id, users.email").
		Order("count DESC").
		Limit(10).
		Scan(&portfolio).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute landlord stats"))
		return
	}

	var pendingPayouts struct {
		Count int64
		Total *float64
	}
	if err := utils.DB.Model(&models.Payout{}).
		Select("COUNT(*) as count, SUM(amount) as total").
		Where("status = ?", "pending").
		Scan(&pendingPayouts).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute landlord stats"))
		return
	}

	pendingTotal := 0.0
	if pendingPayouts.Total != nil {
		pendingTotal = reporting.Round2(*pendingPayouts.Total)
	}

	utils.Respond(c, "Landlord stats retrieved", gin.H{
		"total":                total,
		"top_by_portfolio":     portfolio,
		"pending_payout_count": pendingPayouts.Count,
		"pending_payout_total": pendingTotal,
	})
}
