package inspections

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetInspections(c *gin.Context) {
	tx := utils.DB.Model(&models.Inspection{}).Scopes(reporting.StatusIs(c.Query("status")), reporting.NewestFirst)

	if inspector := c.Query("inspector_id"); inspector != "" {
		tx = tx.Where("inspector_id = ?", inspector)
	}

	var inspections []models.Inspection
	if err := tx.Find(&inspections).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch inspections"))
		return
	}

	utils.RespondList(c, "Inspections retrieved", inspections, int64(len(inspections)))
}

func GetInspection(c *gin.Context) {
	var inspection models.Inspection
	if err := utils.DB.First(&inspection, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Inspection not found", "Failed to fetch inspection"))
		return
	}

	utils.RespondData(c, "Inspection retrieved", inspection)
}

func CountInspections(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Inspection{}).Scopes(reporting.StatusIs(c.Query("status"))).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count inspections"))
		return
	}

	utils.Respond(c, "Inspection count retrieved", gin.H{"count": count})
}

func InspectionsByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var inspections []models.Inspection
	if err := utils.DB.Model(&models.Inspection{}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&inspections).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch inspections"))
		return
	}

	utils.RespondList(c, "Inspections retrieved", inspections, int64(len(inspections)))
}

// InspectionStats reports the status distribution, completion rate, and the
// average days from creation to completion. Inspections without a completion
// date are excluded from that average, not counted as zero.
func InspectionStats(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := utils.DB.Model(&models.Inspection{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute inspection stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	summary := reporting.Summarize(counts)

	var completed []models.Inspection
	if err := utils.DB.Where("status = ? AND completed_date IS NOT NULL", "completed").Find(&completed).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute inspection stats"))
		return
	}

	durations := make([]*float64, 0, len(completed))
	for _, insp := range completed {
		days := insp.CompletedDate.Sub(insp.CreatedAt).Hours() / 24
		durations = append(durations, &days)
	}

	utils.Respond(c, "Inspection stats retrieved", gin.H{
		"total":                   summary.Total,
		"by_status":               summary.Breakdown,
		"completion_rate":         reporting.Rate(counts["completed"], summary.Total),
		"average_completion_days": reporting.Average(durations),
	})
}

func CreateInspection(c *gin.Context) {
	var input struct {
		TenantID      uint   `json:"tenant_id" binding:"required"`
		PropertyID    uint   `json:"property_id" binding:"required"`
		ScheduledDate string `json:"scheduled_date"`
		Notes         string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("tenant_id and property_id are required"))
		return
	}

	inspection := models.Inspection{
		TenantID:   input.TenantID,
		PropertyID: input.PropertyID,
		Status:     "pending",
		Notes:      input.Notes,
	}
	if input.ScheduledDate != "" {
		scheduled, err := time.Parse("2006-01-02", input.ScheduledDate)
		if err != nil {
			utils.Fail(c, utils.Validation("scheduled_date must be in YYYY-MM-DD format"))
			return
		}
		inspection.ScheduledDate = &scheduled
		inspection.Status = "scheduled"
	}

	if err := utils.DB.Create(&inspection).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create inspection"))
		return
	}

	utils.RespondCreated(c, "Inspection created", inspection)
}

// AssignInspector attaches an inspection-department staff member to an
// inspection.
func AssignInspector(c *gin.Context) {
	var inspection models.Inspection
	if err := utils.DB.First(&inspection, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Inspection not found", "Failed to fetch inspection"))
		return
	}

	var input struct {
		InspectorID uint `json:"inspector_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("inspector_id is required"))
		return
	}

	var inspector models.User
	if err := utils.DB.Where("id = ? AND user_type = ? AND department = ?", input.InspectorID, "staff", "inspection").
		First(&inspector).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Inspector not found", "Failed to verify inspector"))
		return
	}

	inspection.InspectorID = &input.InspectorID
	if inspection.Status == "pending" {
		inspection.Status = "scheduled"
	}
	if err := utils.DB.Save(&inspection).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to assign inspector"))
		return
	}

	utils.RespondData(c, "Inspector assigned", inspection)
}

func CompleteInspection(c *gin.Context) {
	var inspection models.Inspection
	if err := utils.DB.First(&inspection, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Inspection not found", "Failed to fetch inspection"))
		return
	}

	var input struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&input)

	now := time.Now()
	inspection.Status = "completed"
	inspection.CompletedDate = &now
	if input.Notes != "" {
		inspection.Notes = input.Notes
	}

	if err := utils.DB.Save(&inspection).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to complete inspection"))
		return
	}

	utils.RespondData(c, "Inspection completed", inspection)
}
