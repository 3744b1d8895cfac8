package transactions

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetTransactions(c *gin.Context) {
	tx := utils.DB.Model(&models.Transaction{}).Scopes(reporting.StatusIs(c.Query("status")), reporting.NewestFirst)

	if txType := c.Query("type"); txType != "" {
		tx = tx.Where("type = ?", txType)
	}
	if userID := c.Query("user_id"); userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" || end != "" {
		r, err := reporting.ParseRange(start, end)
		if err != nil {
			utils.Fail(c, utils.Validation(err.Error()))
			return
		}
		tx = tx.Scopes(reporting.CreatedWithin(r))
	}

	var transactions []models.Transaction
	if err := tx.Find(&transactions).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch transactions"))
		return
	}

	utils.RespondList(c, "Transactions retrieved", transactions, int64(len(transactions)))
}

func GetTransaction(c *gin.Context) {
	var transaction models.Transaction
	if err := utils.DB.First(&transaction, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Transaction not found", "Failed to fetch transaction"))
		return
	}

	utils.RespondData(c, "Transaction retrieved", transaction)
}

func CountTransactions(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Transaction{}).Scopes(reporting.StatusIs(c.Query("status"))).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count transactions"))
		return
	}

	utils.Respond(c, "Transaction count retrieved", gin.H{"count": count})
}

func TransactionsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var transactions []models.Transaction
	if err := utils.DB.Model(&models.Transaction{}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&transactions).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch transactions"))
		return
	}

	utils.RespondList(c, "Transactions retrieved", transactions, int64(len(transactions)))
}

// TransactionStats reports distributions by type, payment method and status,
// plus volume totals over successful transactions.
func TransactionStats(c *gin.Context) {
	byType, err := groupCount("type")
	if err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute transaction stats"))
		return
	}
	byMethod, err := groupCount("payment_method")
	if err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute transaction stats"))
		return
	}
	byStatus, err := groupCount("status")
	if err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute transaction stats"))
		return
	}

	statusCounts := make(map[string]int64)
	for _, b := range byStatus.Breakdown {
		statusCounts[b.Key] = b.Count
	}

	var volume struct {
		Total *float64
	}
	if err := utils.DB.Model(&models.Transaction{}).
		Select("SUM(amount) as total").
		Where("status = ?", "success").
		Scan(&volume).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute transaction stats"))
		return
	}

	totalVolume := 0.0
	if volume.Total != nil {
		totalVolume = reporting.Round2(*volume.Total)
	}

	utils.Respond(c, "Transaction stats retrieved", gin.H{
		"total":        byStatus.Total,
		"by_type":      byType.Breakdown,
		"by_method":    byMethod.Breakdown,
		"by_status":    byStatus.Breakdown,
		"success_rate": reporting.Rate(statusCounts["success"], byStatus.Total),
		"total_volume": totalVolume,
	})
}

// MonthlyTrend reports successful transaction counts and volume per calendar
// month of the year containing now, ordered chronologically.
func MonthlyTrend(c *gin.Context) {
	year := reporting.YearOf(time.Now())

	var transactions []models.Transaction
	if err := utils.DB.Model(&models.Transaction{}).
		Where("status = ?", "success").
		Scopes(reporting.CreatedWithin(year)).
		Find(&transactions).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute monthly trend"))
		return
	}

	counts := make(map[string]int64)
	volumes := make(map[string]*reporting.MoneyTotal)
	for _, t := range transactions {
		key := t.CreatedAt.Format("2006-01")
		counts[key]++
		if volumes[key] == nil {
			volumes[key] = &reporting.MoneyTotal{}
		}
		volumes[key].Add(t.Amount)
	}

	buckets := reporting.Chronological(reporting.Summarize(counts).Breakdown)
	trend := make([]gin.H, 0, len(buckets))
	for _, b := range buckets {
		trend = append(trend, gin.H{
			"month":  b.Key,
			"count":  b.Count,
			"volume": volumes[b.Key].Value(),
		})
	}

	utils.Respond(c, "Monthly trend retrieved", gin.H{
		"trend": trend,
		"count": len(trend),
	})
}

func CreateTransaction(c *gin.Context) {
	var input struct {
		UserID        uint    `json:"user_id" binding:"required"`
		Type          string  `json:"type" binding:"required"`
		Amount        float64 `json:"amount" binding:"required,gt=0"`
		PaymentMethod string  `json:"payment_method"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("user_id, type and a positive amount are required"))
		return
	}

	switch input.Type {
	case "rent", "deposit", "payout", "refund":
	default:
		utils.Fail(c, utils.Validation("type must be one of rent, deposit, payout, refund"))
		return
	}

	var user models.User
	if err := utils.DB.First(&user, input.UserID).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "User not found", "Failed to verify user"))
		return
	}

	transaction := models.Transaction{
		Reference:     fmt.Sprintf("TX-%s", uuid.NewString()),
		UserID:        input.UserID,
		Type:          input.Type,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        "pending",
	}

	if err := utils.DB.Create(&transaction).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create transaction"))
		return
	}

	utils.RespondCreated(c, "Transaction created", transaction)
}

func groupCount(column string) (reporting.Summary, error) {
	var rows []struct {
		Label string
		Count int64
	}
	if err := utils.DB.Model(&models.Transaction{}).
		Select(column + " as label, COUNT(*) as count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return reporting.Summary{}, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Label] = row.Count
	}
	return reporting.Summarize(counts), nil
}
