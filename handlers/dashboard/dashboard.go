package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

// Overview is the landing dashboard: headline counts across every entity the
// back office tracks, plus this month's growth. All month boundaries come
// from a single "now".
func Overview(c *gin.Context) {
	month := reporting.MonthOf(time.Now())

	entityCounts := gin.H{}
	for name, model := range map[string]interface{}{
		"tenants":       &models.User{},
		"properties":    &models.Property{},
		"bookings":      &models.Booking{},
		"inspections":   &models.Inspection{},
		"payouts":       &models.Payout{},
		"repairs":       &models.Repair{},
		"transactions":  &models.Transaction{},
		"verifications": &models.Verification{},
	} {
		tx := utils.DB.Model(model)
		switch name {
		case "tenants":
			tx = tx.Where("user_type = ?", "tenant")
		}
		var count int64
		if err := tx.Count(&count).Error; err != nil {
			utils.Fail(c, utils.Store(err, "Failed to compute dashboard overview"))
			return
		}
		entityCounts[name] = count
	}

	var landlordCount int64
	if err := utils.DB.Model(&models.User{}).Where("user_type = ?", "landlord").Count(&landlordCount).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute dashboard overview"))
		return
	}
	entityCounts["landlords"] = landlordCount

	var newTenants, newProperties int64
	if err := utils.DB.Model(&models.User{}).
		Where("user_type = ?", "tenant").
		Scopes(reporting.CreatedWithin(month)).
		Count(&newTenants).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute dashboard overview"))
		return
	}
	if err := utils.DB.Model(&models.Property{}).
		Scopes(reporting.CreatedWithin(month)).
		Count(&newProperties).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute dashboard overview"))
		return
	}

	var openRepairs int64
	if err := utils.DB.Model(&models.Repair{}).
		Where("status IN ?", []string{"pending", "in_progress"}).
		Count(&openRepairs).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute dashboard overview"))
		return
	}

	var pendingPayouts int64
	if err := utils.DB.Model(&models.Payout{}).Where("status = ?", "pending").Count(&pendingPayouts).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute dashboard overview"))
		return
	}

	utils.Respond(c, "Dashboard overview retrieved", gin.H{
		"counts":                    entityCounts,
		"new_tenants_this_month":    newTenants,
		"new_properties_this_month": newProperties,
		"open_repairs":              openRepairs,
		"pending_payouts":           pendingPayouts,
	})
}
