package verifications

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

// sendStatusEmail is swapped out in tests to observe dispatches.
var sendStatusEmail = utils.SendVerificationStatusEmail

var validVerificationStatuses = map[string]bool{
	"pending":    true,
	"incomplete": true,
	"verified":   true,
	"rejected":   true,
}

func GetVerifications(c *gin.Context) {
	var verifications []models.Verification
	if err := utils.DB.Model(&models.Verification{}).
		Scopes(reporting.StatusIs(c.Query("status")), reporting.NewestFirst).
		Find(&verifications).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch verifications"))
		return
	}

	utils.RespondList(c, "Verifications retrieved", verifications, int64(len(verifications)))
}

func GetVerification(c *gin.Context) {
	var verification models.Verification
	if err := utils.DB.First(&verification, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Verification not found", "Failed to fetch verification"))
		return
	}

	utils.RespondData(c, "Verification retrieved", verification)
}

func CountVerifications(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Verification{}).Scopes(reporting.StatusIs(c.Query("status"))).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count verifications"))
		return
	}

	utils.Respond(c, "Verification count retrieved", gin.H{"count": count})
}

func VerificationsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var verifications []models.Verification
	if err := utils.DB.Model(&models.Verification{}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&verifications).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch verifications"))
		return
	}

	utils.RespondList(c, "Verifications retrieved", verifications, int64(len(verifications)))
}

// VerificationStats reports the status distribution, the approval rate, and
// the average declared income. Records without a declared income are left
// out of the average entirely.
func VerificationStats(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := utils.DB.Model(&models.Verification{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute verification stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	summary := reporting.Summarize(counts)

	var verifications []models.Verification
	if err := utils.DB.Find(&verifications).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute verification stats"))
		return
	}

	incomes := make([]*float64, 0, len(verifications))
	for _, v := range verifications {
		incomes = append(incomes, v.MonthlyIncome)
	}

	utils.Respond(c, "Verification stats retrieved", gin.H{
		"total":                  summary.Total,
		"by_status":              summary.Breakdown,
		"verification_rate":      reporting.Rate(counts["verified"], summary.Total),
		"average_monthly_income": reporting.Average(incomes),
	})
}

func SubmitVerification(c *gin.Context) {
	var input struct {
		UserID         uint     `json:"user_id" binding:"required"`
		EmployerName   string   `json:"employer_name"`
		JobTitle       string   `json:"job_title"`
		MonthlyIncome  *float64 `json:"monthly_income"`
		GuarantorName  string   `json:"guarantor_name"`
		GuarantorPhone string   `json:"guarantor_phone"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("user_id is required"))
		return
	}

	var user models.User
	if err := utils.DB.First(&user, input.UserID).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "User not found", "Failed to verify user"))
		return
	}

	verification := models.Verification{
		UserID:         input.UserID,
		EmployerName:   input.EmployerName,
		JobTitle:       input.JobTitle,
		MonthlyIncome:  input.MonthlyIncome,
		GuarantorName:  input.GuarantorName,
		GuarantorPhone: input.GuarantorPhone,
		Status:         "pending",
	}

	if err := utils.DB.Create(&verification).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to submit verification"))
		return
	}

	utils.RespondCreated(c, "Verification submitted", verification)
}

// UpdateVerificationStatus sets the screening outcome, mirrors it onto the
// user record, and dispatches exactly one status-specific notification email.
func UpdateVerificationStatus(c *gin.Context) {
	var verification models.Verification
	if err := utils.DB.First(&verification, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Verification not found", "Failed to fetch verification"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("status is required"))
		return
	}
	if !validVerificationStatuses[input.Status] {
		utils.Fail(c, utils.Validation("status must be one of pending, incomplete, verified, rejected"))
		return
	}

	var user models.User
	if err := utils.DB.First(&user, verification.UserID).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "User not found", "Failed to fetch user"))
		return
	}

	verification.Status = input.Status
	if err := utils.DB.Save(&verification).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to update verification"))
		return
	}

	user.VerificationStatus = input.Status
	if err := utils.DB.Save(&user).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to update user verification status"))
		return
	}

	sendStatusEmail(user.Email, user.FullName(), input.Status)

	utils.RespondData(c, "Verification status updated", verification)
}
