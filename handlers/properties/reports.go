package properties

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func CountProperties(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.Property{}).Scopes(reporting.StatusIs(c.Query("status"))).Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count properties"))
		return
	}

	utils.Respond(c, "Property count retrieved", gin.H{"count": count})
}

func PropertiesByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var properties []models.Property
	if err := utils.DB.Model(&models.Property{}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&properties).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch properties"))
		return
	}

	utils.RespondList(c, "Properties retrieved", properties, int64(len(properties)))
}

// PropertyStats reports the status distribution, occupancy rate and price
// aggregates across the whole portfolio.
func PropertyStats(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := utils.DB.Model(&models.Property{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute property stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	summary := reporting.Summarize(counts)

	var priceAgg struct {
		AvgPrice   *float64
		TotalViews int64
	}
	if err := utils.DB.Model(&models.Property{}).
		Select("AVG(NULLIF(price, 0)) as avg_price, COALESCE(SUM(views), 0) as total_views").
		Scan(&priceAgg).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute property stats"))
		return
	}

	avgPrice := 0.0
	if priceAgg.AvgPrice != nil {
		avgPrice = reporting.Round2(*priceAgg.AvgPrice)
	}

	utils.Respond(c, "Property stats retrieved", gin.H{
		"total":          summary.Total,
		"by_status":      summary.Breakdown,
		"occupancy_rate": reporting.Rate(counts["rented"], summary.Total),
		"average_price":  avgPrice,
		"total_views":    priceAgg.TotalViews,
	})
}
