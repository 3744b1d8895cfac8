package staff

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func GetStaff(c *gin.Context) {
	tx := utils.DB.Model(&models.User{}).
		Where("user_type IN ?", []string{"staff", "account_manager"}).
		Scopes(reporting.NewestFirst)

	if department := c.Query("department"); department != "" {
		tx = tx.Where("department = ?", department)
	}

	var members []models.User
	if err := tx.Find(&members).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch staff"))
		return
	}

	utils.RespondList(c, "Staff retrieved", members, int64(len(members)))
}

func GetStaffMember(c *gin.Context) {
	var member models.User
	if err := utils.DB.Where("id = ? AND user_type IN ?", c.Param("id"), []string{"staff", "account_manager"}).
		First(&member).Error; err != nil {
		utils.Fail(c, utils.WrapLookup(err, "Staff member not found", "Failed to fetch staff member"))
		return
	}

	utils.RespondData(c, "Staff member retrieved", member)
}

func SearchStaff(c *gin.Context) {
	term, err := reporting.ValidateSearchTerm(c.Query("q"))
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var members []models.User
	if err := utils.DB.Model(&models.User{}).
		Where("user_type IN ?", []string{"staff", "account_manager"}).
		Scopes(reporting.MatchesName(term), reporting.NewestFirst).
		Find(&members).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to search staff"))
		return
	}

	utils.RespondList(c, "Search results", members, int64(len(members)))
}

func CountStaff(c *gin.Context) {
	var count int64
	if err := utils.DB.Model(&models.User{}).
		Where("user_type IN ?", []string{"staff", "account_manager"}).
		Count(&count).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to count staff"))
		return
	}

	utils.Respond(c, "Staff count retrieved", gin.H{"count": count})
}

func StaffByPeriod(c *gin.Context) {
	bucket, err := reporting.BucketFor(c.Param("period"), time.Now())
	if err != nil {
		utils.Fail(c, utils.Validation(err.Error()))
		return
	}

	var members []models.User
	if err := utils.DB.Model(&models.User{}).
		Where("user_type IN ?", []string{"staff", "account_manager"}).
		Scopes(reporting.CreatedWithin(bucket), reporting.NewestFirst).
		Find(&members).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch staff"))
		return
	}

	utils.RespondList(c, "Staff retrieved", members, int64(len(members)))
}

// StaffStats reports headcount by department.
func StaffStats(c *gin.Context) {
	var rows []struct {
		Department string
		Count      int64
	}
	if err := utils.DB.Model(&models.User{}).
		Where("user_type IN ?", []string{"staff", "account_manager"}).
		Select("department, COUNT(*) as count").
		Group("department").
		Scan(&rows).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to compute staff stats"))
		return
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := row.Department
		if key == "" {
			key = "unassigned"
		}
		counts[key] = row.Count
	}
	summary := reporting.Summarize(counts)

	utils.Respond(c, "Staff stats retrieved", gin.H{
		"total":         summary.Total,
		"by_department": summary.Breakdown,
	})
}

func CreateStaffMember(c *gin.Context) {
	var input struct {
		FirstName  string `json:"first_name" binding:"required"`
		LastName   string `json:"last_name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Phone      string `json:"phone"`
		Password   string `json:"password" binding:"required,min=8"`
		UserType   string `json:"user_type" binding:"required"`
		Department string `json:"department"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("first_name, last_name, a valid email, user_type and a password of at least 8 characters are required"))
		return
	}

	switch input.UserType {
	case "staff", "account_manager":
	default:
		utils.Fail(c, utils.Validation("user_type must be staff or account_manager"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create staff member"))
		return
	}

	member := models.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		Phone:              input.Phone,
		Password:           string(hashed),
		UserType:           input.UserType,
		Department:         input.Department,
		VerificationStatus: "verified",
	}

	if err := utils.DB.Create(&member).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to create staff member"))
		return
	}

	utils.RespondCreated(c, "Staff member created", member)
}
