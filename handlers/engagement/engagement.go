package engagement

import (
	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetCallLogs(c *gin.Context) {
	tx := utils.DB.Model(&models.CallLog{}).Scopes(reporting.NewestFirst)

	if department := c.Query("department"); department != "" {
		tx = tx.Where("department = ?", department)
	}
	if staffID := c.Query("staff_id"); staffID != "" {
		tx = tx.Where("staff_id = ?", staffID)
	}

	var logs []models.CallLog
	if err := tx.Find(&logs).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch call logs"))
		return
	}

	utils.RespondList(c, "Call logs retrieved", logs, int64(len(logs)))
}

func CreateCallLog(c *gin.Context) {
	var input struct {
		StaffID    uint   `json:"staff_id" binding:"required"`
		UserID     *uint  `json:"user_id"`
		Department string `json:"department" binding:"required"`
		Purpose    string `json:"purpose"`
		Outcome    string `json:"outcome"`
		DurationS  int    `json:"duration_seconds"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("staff_id and department are required"))
		return
	}

	log := models.CallLog{
		StaffID:    input.StaffID,
		UserID:     input.UserID,
		Department: input.Department,
		Purpose:    input.Purpose,
		Outcome:    input.Outcome,
		DurationS:  input.DurationS,
	}

	if err := utils.DB.Create(&log).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create call log"))
		return
	}

	utils.RespondCreated(c, "Call log created", log)
}

// CallLogStats reports call volume by department and the average call
// duration. Zero-duration rows are excluded from the average.
func CallLogStats(c *gin.Context) {
	var rows []struct {
		Department string
		Count      int64
	}
	if err := utils.DB.Model(&models.CallLog{}).
		Select("department, COUNT(*) as count").
		Group("department").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute call log stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Department] = row.Count
	}
	summary := reporting.Summarize(counts)

	var durationAgg struct {
		Avg *float64
	}
	if err := utils.DB.Model(&models.CallLog{}).
		Select("AVG(NULLIF(duration_seconds, 0)) as avg").
		Scan(&durationAgg).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute call log stats"))
		return
	}

	avgDuration := 0.0
	if durationAgg.Avg != nil {
		avgDuration = reporting.Round2(*durationAgg.Avg)
	}

	utils.Respond(c, "Call log stats retrieved", gin.H{
		"total":                    summary.Total,
		"by_department":            summary.Breakdown,
		"average_duration_seconds": avgDuration,
	})
}

func GetFeedback(c *gin.Context) {
	tx := utils.DB.Model(&models.Feedback{}).Scopes(reporting.NewestFirst)

	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}

	var entries []models.Feedback
	if err := tx.Find(&entries).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch feedback"))
		return
	}

	utils.RespondList(c, "Feedback retrieved", entries, int64(len(entries)))
}

func CreateFeedback(c *gin.Context) {
	var input struct {
		UserID   uint   `json:"user_id" binding:"required"`
		Category string `json:"category" binding:"required"`
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
		Comment  string `json:"comment"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("user_id, category and a rating between 1 and 5 are required"))
		return
	}

	entry := models.Feedback{
		UserID:   input.UserID,
		Category: input.Category,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	if err := utils.DB.Create(&entry).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create feedback"))
		return
	}

	utils.RespondCreated(c, "Feedback created", entry)
}

// FeedbackStats reports the rating distribution per category and the overall
// average rating.
func FeedbackStats(c *gin.Context) {
	var rows []struct {
		Category string
		Count    int64
	}
	if err := utils.DB.Model(&models.Feedback{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute feedback stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	summary := reporting.Summarize(counts)

	var ratingAgg struct {
		Avg *float64
	}
	if err := utils.DB.Model(&models.Feedback{}).
		Select("AVG(rating) as avg").
		Scan(&ratingAgg).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute feedback stats"))
		return
	}

	avgRating := 0.0
	if ratingAgg.Avg != nil {
		avgRating = reporting.Round2(*ratingAgg.Avg)
	}

	utils.Respond(c, "Feedback stats retrieved", gin.H{
		"total":          summary.Total,
		"by_category":    summary.Breakdown,
		"average_rating": avgRating,
	})
}
