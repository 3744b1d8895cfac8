package tenants

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetTenants(c *gin.Context) {
	tx := utils.DB.Model(&models.User{}).Scopes(reporting.UserTypeIs("tenant"), reporting.NewestFirst)

	if status := c.Query("verification_status"); status != "" {
		tx = tx.Where("verification_status = ?", status)
	}

	var tenants []models.User
	if err := tx.Find(&tenants).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch tenants"))
		return
	}

	utils.RespondList(c, "Tenants retrieved", tenants, int64(len(tenants)))
}

func GetTenant(c *gin.Context) {
	var tenant models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", c.Param("id"), "tenant").First(&tenant).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Tenant not found", "Failed to fetch tenant"))
		return
	}

	// Bookings give the back office the tenant's active rental context.
	var bookings []models.Booking
	if err := utils.DB.Where("tenant_id = ?", tenant.ID).Scopes(reporting.NewestFirst).Find(&bookings).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch tenant bookings"))
		return
	}

	utils.Respond(c, "Tenant retrieved", gin.H{
		"data":     tenant,
		"bookings": bookings,
	})
}

func SearchTenants(c *gin.Context) {
	term, err := reporting.ValidateSearchTerm(c.Query("q"))
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var tenants []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("tenant"), reporting.MatchesName(term), reporting.NewestFirst).
		Find(&tenants).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to search tenants"))
		return
	}

	utils.RespondList(c, "Search results", tenants, int64(len(tenants)))
}

func CountTenants(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.User{}).Scopes(reporting.UserTypeIs("tenant")).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count tenants"))
		return
	}

	utils.Respond(c, "Tenant count retrieved", gin.H{"count": count})
}

func TenantsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var tenants []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("tenant"), reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&tenants).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch tenants"))
		return
	}

	utils.RespondList(c, "Tenants retrieved", tenants, int64(len(tenants)))
}

// TenantStats reports the verification-state distribution and the overall
// verification rate.
func TenantStats(c *gin.Context) {
	var rows []struct {
		VerificationStatus string
		Count              int64
	}
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("tenant")).
		Select("verification_status, COUNT(*) as count").
		Group("verification_status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute tenant stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.VerificationStatus] = row.Count
	}
	summary := reporting.Summarize(counts)

	utils.Respond(c, "Tenant stats retrieved", gin.H{
		"total":             summary.Total,
		"by_verification":   summary.Breakdown,
		"verification_rate": reporting.Rate(counts["verified"], summary.Total),
	})
}

func CreateTenant(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone"`
		Password  string `json:"password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("first_name, last_name, a valid email and a password of at least 8 characters are required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create tenant"))
		return
	}

	tenant := models.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		Phone:              input.Phone,
		Password:           string(hashed),
		UserType:           "tenant",
		VerificationStatus: "unverified",
	}

	if err := utils.DB.Create(&tenant).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create tenant"))
		return
	}

	utils.RespondCreated(c, "Tenant created", tenant)
}

func UpdateTenant(c *gin.Context) {
	var tenant models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", c.Param("id"), "tenant").First(&tenant).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Tenant not found", "Failed to fetch tenant"))
		return
	}

	var input struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("Invalid update payload"))
		return
	}

	if input.FirstName != nil {
		tenant.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		tenant.LastName = *input.LastName
	}
	if input.Phone != nil {
		tenant.Phone = *input.Phone
	}

	if err := utils.DB.Save(&tenant).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to update tenant"))
		return
	}

	utils.RespondData(c, "Tenant updated", tenant)
}

func DeleteTenant(c *gin.Context) {
	var tenant models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", c.Param("id"), "tenant").First(&tenant).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Tenant not found", "Failed to fetch tenant"))
		return
	}

	if err := utils.DB.Delete(&tenant).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to delete tenant"))
		return
	}

	utils.Respond(c, "Tenant deleted", nil)
}
