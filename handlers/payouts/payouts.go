package payouts

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetPayouts(c *gin.Context) {
	var payouts []models.Payout
	if err := utils.DB.Model(&models.Payout{}).
		Scopes(reporting.StatusIs(c.Query("status")), reporting.NewestFirst).
		Find(&payouts).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch payouts"))
		return
	}

	utils.RespondList(c, "Payouts retrieved", payouts, int64(len(payouts)))
}

func GetPayout(c *gin.Context) {
	var payout models.Payout
	if err := utils.DB.First(&payout, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Payout not found", "Failed to fetch payout"))
		return
	}

	utils.RespondData(c, "Payout retrieved", payout)
}

func CountPayouts(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Payout{}).Scopes(reporting.StatusIs(c.Query("status"))).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count payouts"))
		return
	}

	utils.Respond(c, "Payout count retrieved", gin.H{"count": count})
}

// DueSoon lists pending and approved payouts ordered by ascending due date.
func DueSoon(c *gin.Context) {
	var payouts []models.Payout
	if err := utils.DB.Model(&models.Payout{}).
		Where("status IN ? AND due_date IS NOT NULL", []string{"pending", "approved"}).
		Scopes(reporting.SoonestDueFirst("due_date")).
		Find(&payouts).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch payouts"))
		return
	}

	var total reporting.MoneyTotal
	for _, p := range payouts {
		total.Add(p.Amount)
	}

	utils.Respond(c, "Payouts due soon retrieved", gin.H{
		"data":         payouts,
		"count":        len(payouts),
		"total_amount": total.Value(),
	})
}

func PayoutsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var payouts []models.Payout
	if err := utils.DB.Model(&models.Payout{}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&payouts).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch payouts"))
		return
	}

	utils.RespondList(c, "Payouts retrieved", payouts, int64(len(payouts)))
}

// PayoutStats reports counts and amount totals per status. Amount totals are
// summed at full precision and rounded at the edge.
func PayoutStats(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
		Total  *float64
	}
	if err := utils.DB.Model(&models.Payout{}).
		Select("status, COUNT(*) as count, SUM(amount) as total").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute payout stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	amounts := make(map[string]float64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
		if row.Total != nil {
			amounts[row.Status] = reporting.Round2(*row.Total)
		}
	}
	summary := reporting.Summarize(counts)

	utils.Respond(c, "Payout stats retrieved", gin.H{
		"total":            summary.Total,
		"by_status":        summary.Breakdown,
		"amount_by_status": amounts,
		"disbursed_rate":   reporting.Rate(counts["disbursed"], summary.Total),
	})
}

func CreatePayout(c *gin.Context) {
	var input struct {
		LandlordID uint    `json:"landlord_id" binding:"required"`
		Amount     float64 `json:"amount" binding:"required,gt=0"`
		DueDate    string  `json:"due_date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("landlord_id and a positive amount are required"))
		return
	}

	var landlord models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", input.LandlordID, "landlord").First(&landlord).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Landlord not found", "Failed to verify landlord"))
		return
	}

	payout := models.Payout{
		Reference:  "PO-" + uuid.NewString(),
		LandlordID: input.LandlordID,
		Amount:     input.Amount,
		Status:     "pending",
	}
	if input.DueDate != "" {
		due, err := time.Parse("2006-01-02", input.DueDate)
		if err != nil {
			utils.Fail(c, utils.Validation("due_date must be in YYYY-MM-DD format"))
			return
		}
		payout.DueDate = &due
	}

	if err := utils.DB.Create(&payout).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create payout"))
		return
	}

	utils.RespondCreated(c, "Payout created", payout)
}

// UpdatePayoutStatus moves a payout along pending -> approved -> disbursed.
// The approving staff member is recorded from the request context.
func UpdatePayoutStatus(c *gin.Context) {
	var payout models.Payout
	if err := utils.DB.First(&payout, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Payout not found", "Failed to fetch payout"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("status is required"))
		return
	}

	switch input.Status {
	case "pending", "approved", "disbursed":
	default:
		utils.Fail(c, utils.Validation("status must be one of pending, approved, disbursed"))
		return
	}

	payout.Status = input.Status
	if userInterface, exists := c.Get("user"); exists && input.Status != "pending" {
		approver := userInterface.(models.User)
		payout.ApprovedBy = &approver.ID
	}

	if err := utils.DB.Save(&payout).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to update payout"))
		return
	}

	utils.RespondData(c, "Payout updated", payout)
}
