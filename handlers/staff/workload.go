package staff

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/models"
	"github.com/dovewaysmall/api2-smallsmall-sub000/reporting"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

type memberLoad struct {
	StaffID         uint   `json:"staff_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	OpenAssignments int64  `json:"open_assignments"`
	LoadLevel       string `json:"load_level"`
}

// InspectionTeamWorkload reports open inspection counts and load levels for
// the inspection-department pool, least loaded first.
func InspectionTeamWorkload(c *gin.Context) {
	departmentWorkload(c, "inspection", func(staffID uint) (int64, error) {
		var count int64
		err := utils.DB.Model(&models.Inspection{}).
			Where("inspector_id = ? AND status IN ?", staffID, []string{"pending", "scheduled"}).
			Count(&count).Error
		return count, err
	})
}

// MaintenanceTeamWorkload reports open repair counts and load levels for the
// maintenance-department pool, least loaded first.
func MaintenanceTeamWorkload(c *gin.Context) {
	departmentWorkload(c, "maintenance", func(staffID uint) (int64, error) {
		var count int64
		err := utils.DB.Model(&models.Repair{}).
			Where("technician_id = ? AND status IN ?", staffID, []string{"pending", "in_progress"}).
			Count(&count).Error
		return count, err
	})
}

func departmentWorkload(c *gin.Context, department string, openCount func(uint) (int64, error)) {
	var members []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("staff"), reporting.DepartmentIs(department)).
		Find(&members).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch department staff"))
		return
	}

	thresholds := reporting.LoadThresholds()

	loads := make([]memberLoad, 0, len(members))
	var totalOpen int64
	var overloaded int64
	for _, m := range members {
		open, err := openCount(m.ID)
		if err != nil {
			utils.Fail(c, utils.Store(err, "Failed to compute workload"))
			return
		}
		level := thresholds.Classify(int(open))
		if level == reporting.LoadOverloaded {
			overloaded++
		}
		totalOpen += open
		loads = append(loads, memberLoad{
			StaffID:         m.ID,
			Name:            m.FullName(),
			Email:           m.Email,
			OpenAssignments: open,
			LoadLevel:       level,
		})
	}

	// Least loaded first, so the next task goes to the top of the list.
	sort.Slice(loads, func(i, j int) bool {
		if loads[i].OpenAssignments != loads[j].OpenAssignments {
			return loads[i].OpenAssignments < loads[j].OpenAssignments
		}
		return loads[i].StaffID < loads[j].StaffID
	})

	average := 0.0
	if len(loads) > 0 {
		average = reporting.Round2(float64(totalOpen) / float64(len(loads)))
	}

	utils.Respond(c, "Department workload retrieved", gin.H{
		"department":       department,
		"data":             loads,
		"count":            len(loads),
		"total_open":       totalOpen,
		"average_open":     average,
		"overloaded_count": overloaded,
	})
}

// AccountManagerWorkload reports each account manager's assigned-client
// count with advisory over/under-load flags against the cohort average.
func AccountManagerWorkload(c *gin.Context) {
	var managers []models.User
	if err := utils.DB.Model(&models.User{}).
		Scopes(reporting.UserTypeIs("account_manager")).
		Find(&managers).Error; err != nil {
		utils.Fail(c, utils.Store(err, "Failed to fetch account managers"))
		return
	}

	loads := make([]reporting.ManagerLoad, 0, len(managers))
	for _, m := range managers {
		var assigned int64
		if err := utils.DB.Model(&models.User{}).
			Where("account_manager_id = ?", m.ID).
			Count(&assigned).Error; err != nil {
			utils.Fail(c, utils.Store(err, "Failed to compute manager workload"))
			return
		}
		loads = append(loads, reporting.ManagerLoad{
			ManagerID:       m.ID,
			Name:            m.FullName(),
			Email:           m.Email,
			AssignedClients: assigned,
		})
	}

	ranked, average := reporting.BalanceReport(loads, reporting.LoadThresholds(), reporting.BalanceDelta())

	utils.Respond(c, "Account manager workload retrieved", gin.H{
		"data":             ranked,
		"count":            len(ranked),
		"cohort_average":   average,
		"rebalance_needed": rebalanceNeeded(ranked),
	})
}

func rebalanceNeeded(loads []reporting.ManagerLoad) bool {
	for _, l := range loads {
		if l.Flag != reporting.FlagBalanced {
			return true
		}
	}
	return false
}

// BulkAssignManagers applies an array of (user, account manager) pairs, each
// independently. Partial failure is expected: the response is still a success
// envelope carrying both tallies and the identifiers that failed.
func BulkAssignManagers(c *gin.Context) {
	var input struct {
		Assignments []struct {
			UserID           uint `json:"user_id" binding:"required"`
			AccountManagerID uint `json:"account_manager_id" binding:"required"`
		} `json:"assignments" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, utils.Validation("assignments must be a non-empty array of user_id/account_manager_id pairs"))
		return
	}

	var successful int
	failedUserIDs := make([]uint, 0)

	for _, a := range input.Assignments {
		var manager models.User
		if err := utils.DB.Where("id = ? AND user_type = ?", a.AccountManagerID, "account_manager").
			First(&manager).Error; err != nil {
			failedUserIDs = append(failedUserIDs, a.UserID)
			continue
		}

		var user models.User
		if err := utils.DB.Where("id = ? AND user_type IN ?", a.UserID, []string{"tenant", "landlord"}).
			First(&user).Error; err != nil {
			failedUserIDs = append(failedUserIDs, a.UserID)
			continue
		}

		user.AccountManagerID = &a.AccountManagerID
		if err := utils.DB.Save(&user).Error; err != nil {
			utils.Log.Errorf("Bulk assignment failed for user %d: %v", a.UserID, err)
			failedUserIDs = append(failedUserIDs, a.UserID)
			continue
		}
		successful++
	}

	utils.Respond(c, "Bulk assignment processed", gin.H{
		"successful_assignments": successful,
		"failed_assignments":     len(failedUserIDs),
		"failed_user_ids":        failedUserIDs,
	})
}
