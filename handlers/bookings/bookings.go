package bookings

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetBookings(c *gin.Context) {
	tx := utils.DB.Model(&models.Booking{}).Scopes(reporting.NewestFirst)

	if status := c.Query("rent_status"); status != "" {
		tx = tx.Where("rent_status = ?", status)
	}

	var bookings []models.Booking
	if err := tx.Find(&bookings).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch bookings"))
		return
	}

	utils.RespondList(c, "Bookings retrieved", bookings, int64(len(bookings)))
}

func GetBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Booking not found", "Failed to fetch booking"))
		return
	}

	utils.RespondData(c, "Booking retrieved", booking)
}

func CountBookings(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Booking{}).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count bookings"))
		return
	}

	utils.Respond(c, "Booking count retrieved", gin.H{"count": count})
}

// DueThisMonth lists active subscriptions whose next rent falls inside the
// calendar month containing now, soonest first, with the total rent due.
// The month window is computed once and reused for every row.
func DueThisMonth(c *gin.Context) {
	month := reporting.MonthOf(time.Now())

	var bookings []models.Booking
	if err := utils.DB.Model(&models.Booking{}).
		Where("rent_status <> ?", "ended").
		Scopes(reporting.ColumnWithin("next_rental", month), reporting.SoonestDueFirst("next_rental")).
		Find(&bookings).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch bookings due this month"))
		return
	}

	var totalDue reporting.MoneyTotal
	for _, b := range bookings {
		totalDue.Add(b.Amount)
	}

	utils.Respond(c, "Bookings due this month retrieved", gin.H{
		"data":             bookings,
		"count":            len(bookings),
		"total_amount_due": totalDue.Value(),
	})
}

// BookingStats reports the rent-status distribution and recurring revenue.
func BookingStats(c *gin.Context) {
	var rows []struct {
		RentStatus string
		Count      int64
	}
	if err := utils.DB.Model(&models.Booking{}).
		Select("rent_status, COUNT(*) as count").
		Group("rent_status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute booking stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RentStatus] = row.Count
	}
	summary := reporting.Summarize(counts)

	var revenue struct {
		Total *float64
	}
	if err := utils.DB.Model(&models.Booking{}).
		Select("SUM(amount) as total").
		Where("rent_status <> ?", "ended").
		Scan(&revenue).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute booking stats"))
		return
	}

	recurring := 0.0
	if revenue.Total != nil {
		recurring = reporting.Round2(*revenue.Total)
	}

	utils.Respond(c, "Booking stats retrieved", gin.H{
		"total":             summary.Total,
		"by_rent_status":    summary.Breakdown,
		"overdue_rate":      reporting.Rate(counts["overdue"], summary.Total),
		"recurring_revenue": recurring,
	})
}

func CreateBooking(c *gin.Context) {
	var input struct {
		TenantID   uint    `json:"tenant_id" binding:"required"`
		PropertyID uint    `json:"property_id" binding:"required"`
		Amount     float64 `json:"amount" binding:"required,gt=0"`
		Frequency  string  `json:"frequency"`
		NextRental string  `json:"next_rental"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("tenant_id, property_id and a positive amount are required"))
		return
	}

	var tenant models.User
	if err := utils.DB.Where("id = ? AND user_type = ?", input.TenantID, "tenant").First(&tenant).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Tenant not found", "Failed to verify tenant"))
		return
	}

	var property models.Property
	if err := utils.DB.First(&property, input.PropertyID).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Property not found", "Failed to verify property"))
		return
	}

	booking := models.Booking{
		TenantID:   input.TenantID,
		PropertyID: input.PropertyID,
		RentStatus: "active",
		Amount:     input.Amount,
		Frequency:  input.Frequency,
	}
	if booking.Frequency == "" {
		booking.Frequency = "monthly"
	}
	if input.NextRental != "" {
		due, err := time.Parse("2006-01-02", input.NextRental)
		if err != nil {
			utils.Fail(c, utils.Validation("next_rental must be in YYYY-MM-DD format"))
			return
		}
		booking.NextRental = &due
	}

	if err := utils.DB.Create(&booking).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create booking"))
		return
	}

	utils.RespondCreated(c, "Booking created", booking)
}

func UpdateBookingStatus(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Booking not found", "Failed to fetch booking"))
		return
	}

	var input struct {
		RentStatus string `json:"rent_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("rent_status is required"))
		return
	}

	switch input.RentStatus {
	case "active", "due", "overdue", "ended":
	default:
		utils.Fail(c, utils.Validation("rent_status must be one of active, due, overdue, ended"))
		return
	}

	booking.RentStatus = input.RentStatus
	if err := utils.DB.Save(&booking).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to update booking"))
		return
	}

	utils.RespondData(c, "Booking updated", booking)
}
