package repairs

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetRepairs(c *gin.Context) {
	tx := utils.DB.Model(&models.Repair{}).Scopes(reporting.StatusIs(c.Query("status")), reporting.NewestFirst)

	if technician := c.Query("technician_id"); technician != "" {
		tx = tx.Where("technician_id = ?", technician)
	}

	var repairs []models.Repair
	if err := tx.Find(&repairs).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch repairs"))
		return
	}

	utils.RespondList(c, "Repairs retrieved", repairs, int64(len(repairs)))
}

func GetRepair(c *gin.Context) {
	var repair models.Repair
	if err := utils.DB.First(&repair, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Repair not found", "Failed to fetch repair"))
		return
	}

	utils.RespondData(c, "Repair retrieved", repair)
}

func CountRepairs(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Repair{}).Scopes(reporting.StatusIs(c.Query("status"))).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count repairs"))
		return
	}

	utils.Respond(c, "Repair count retrieved", gin.H{"count": count})
}

func RepairsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var repairs []models.Repair
	if err := utils.DB.Model(&models.Repair{}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&repairs).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch repairs"))
		return
	}

	utils.RespondList(c, "Repairs retrieved", repairs, int64(len(repairs)))
}

// OpenByUrgency buckets open repair requests by how long they have been
// open. One "now" is taken for the whole report.
func OpenByUrgency(c *gin.Context) {
	var open []models.Repair
	if err := utils.DB.Model(&models.Repair{}).
		Where("status IN ?", []string{"pending", "in_progress"}).
		Scopes(reporting.NewestFirst).
		Find(&open).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch open repairs"))
		return
	}

	now := time.Now()
	counts := make(map[string]int64)
	grouped := map[string][]models.Repair{}
	for _, r := range open {
		urgency := reporting.UrgencyFor(reporting.DaysOpen(r.CreatedAt, now))
		counts[urgency]++
		grouped[urgency] = append(grouped[urgency], r)
	}
	summary := reporting.Summarize(counts)

	utils.Respond(c, "Open repairs by urgency retrieved", gin.H{
		"total":      summary.Total,
		"by_urgency": summary.Breakdown,
		"grouped":    grouped,
	})
}

// RepairStats reports status distribution, completion rate, and cost
// aggregates over completed work.
func RepairStats(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := utils.DB.Model(&models.Repair{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute repair stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	summary := reporting.Summarize(counts)

	var costAgg struct {
		Total *float64
		Avg   *float64
	}
	if err := utils.DB.Model(&models.Repair{}).
		Select("SUM(cost) as total, AVG(NULLIF(cost, 0)) as avg").
		Where("status = ?", "completed").
		Scan(&costAgg).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute repair stats"))
		return
	}

	totalCost, avgCost := 0.0, 0.0
	if costAgg.Total != nil {
		totalCost = reporting.Round2(*costAgg.Total)
	}
	if costAgg.Avg != nil {
		avgCost = reporting.Round2(*costAgg.Avg)
	}

	utils.Respond(c, "Repair stats retrieved", gin.H{
		"total":           summary.Total,
		"by_status":       summary.Breakdown,
		"completion_rate": reporting.Rate(counts["completed"], summary.Total),
		"total_cost":      totalCost,
		"average_cost":    avgCost,
	})
}

func CreateRepair(c *gin.Context) {
	var input struct {
		TenantID    uint   `json:"tenant_id" binding:"required"`
		PropertyID  *uint  `json:"property_id"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("tenant_id and title are required"))
		return
	}

	repair := models.Repair{
		TenantID:    input.TenantID,
		PropertyID:  input.PropertyID,
		Title:       input.Title,
		Description: input.Description,
		Status:      "pending",
	}

	if err := utils.DB.Create(&repair).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create repair"))
		return
	}

	utils.RespondCreated(c, "Repair created", repair)
}

// AssignTechnician puts a maintenance-department staff member on a repair.
func AssignTechnician(c *gin.Context) {
	var repair models.Repair
	if err := utils.DB.First(&repair, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Repair not found", "Failed to fetch repair"))
		return
	}

	var input struct {
		TechnicianID uint `json:"technician_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("technician_id is required"))
		return
	}

	var technician models.User
	if err := utils.DB.Where("id = ? AND user_type = ? AND department = ?", input.TechnicianID, "staff", "maintenance").
		First(&technician).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Technician not found", "Failed to verify technician"))
		return
	}

	repair.TechnicianID = &input.TechnicianID
	if repair.Status == "pending" {
		repair.Status = "in_progress"
	}
	if err := utils.DB.Save(&repair).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to assign technician"))
		return
	}

	utils.RespondData(c, "Technician assigned", repair)
}

func CompleteRepair(c *gin.Context) {
	var repair models.Repair
	if err := utils.DB.First(&repair, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Repair not found", "Failed to fetch repair"))
		return
	}

	var input struct {
		Cost float64 `json:"cost"`
	}
	_ = c.ShouldBindJSON(&input)

	now := time.Now()
	repair.Status = "completed"
	repair.CompletedAt = &now
	if input.Cost > 0 {
		repair.Cost = input.Cost
	}

	if err := utils.DB.Save(&repair).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to complete repair"))
		return
	}

	utils.RespondData(c, "Repair completed", repair)
}
