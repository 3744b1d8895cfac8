package main

import (
	"github.com/gin-gonic/gin"

	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/auth"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/bookings"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/dashboard"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/engagement"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/inspections"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/landlords"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/payouts"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/properties"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/repairs"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/staff"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/tenants"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/transactions"
	"github.com/dovewaysmall/api2-smallsmall-sub000/handlers/verifications"
)

func registerRoutes(r *gin.Engine) {
	r.POST("/login", auth.Login)

	api := r.Group("/", auth.AuthMiddleware())

	api.POST("/logout", auth.Logout)

	api.GET("/dashboard/overview", dashboard.Overview)
	api.GET("/dashboard/inspection-team", staff.InspectionTeamWorkload)
	api.GET("/dashboard/maintenance-team", staff.MaintenanceTeamWorkload)

	api.GET("/properties", properties.GetProperties)
	api.GET("/properties/search", properties.SearchProperties)
	api.GET("/properties/count", properties.CountProperties)
	api.GET("/properties/stats", properties.PropertyStats)
	api.GET("/properties/period/:period", properties.PropertiesByPeriod)
	api.GET("/properties/:id", properties.GetProperty)
	api.POST("/properties", properties.CreateProperty)
	api.PUT("/properties/:id", properties.UpdateProperty)
	api.DELETE("/properties/:id", properties.DeleteProperty)

	api.GET("/tenants", tenants.GetTenants)
	api.GET("/tenants/search", tenants.SearchTenants)
	api.GET("/tenants/count", tenants.CountTenants)
	api.GET("/tenants/stats", tenants.TenantStats)
	api.GET("/tenants/period/:period", tenants.TenantsByPeriod)
	api.GET("/tenants/:id", tenants.GetTenant)
	api.POST("/tenants", tenants.CreateTenant)
	api.PUT("/tenants/:id", tenants.UpdateTenant)
	api.DELETE("/tenants/:id", tenants.DeleteTenant)

	api.GET("/landlords", landlords.GetLandlords)
	api.GET("/landlords/search", landlords.SearchLandlords)
	api.GET("/landlords/count", landlords.CountLandlords)
	api.GET("/landlords/stats", landlords.LandlordStats)
	api.GET("/landlords/period/:period", landlords.LandlordsByPeriod)
	api.GET("/landlords/:id", landlords.GetLandlord)

	api.GET("/staff", staff.GetStaff)
	api.GET("/staff/search", staff.SearchStaff)
	api.GET("/staff/count", staff.CountStaff)
	api.GET("/staff/stats", staff.StaffStats)
	api.GET("/staff/period/:period", staff.StaffByPeriod)
	api.GET("/staff/account-managers/workload", staff.AccountManagerWorkload)
	api.POST("/staff/account-managers/bulk-assign", staff.BulkAssignManagers)
	api.GET("/staff/:id", staff.GetStaffMember)
	api.POST("/staff", staff.CreateStaffMember)

	api.GET("/bookings", bookings.GetBookings)
	api.GET("/bookings/count", bookings.CountBookings)
	api.GET("/bookings/stats", bookings.BookingStats)
	api.GET("/bookings/due-this-month", bookings.DueThisMonth)
	api.GET("/bookings/:id", bookings.GetBooking)
	api.POST("/bookings", bookings.CreateBooking)
	api.PUT("/bookings/:id/status", bookings.UpdateBookingStatus)

	api.GET("/inspections", inspections.GetInspections)
	api.GET("/inspections/count", inspections.CountInspections)
	api.GET("/inspections/stats", inspections.InspectionStats)
	api.GET("/inspections/period/:period", inspections.InspectionsByPeriod)
	api.GET("/inspections/:id", inspections.GetInspection)
	api.POST("/inspections", inspections.CreateInspection)
	api.PUT("/inspections/:id/assign", inspections.AssignInspector)
	api.PUT("/inspections/:id/complete", inspections.CompleteInspection)

	api.GET("/payouts", payouts.GetPayouts)
	api.GET("/payouts/count", payouts.CountPayouts)
	api.GET("/payouts/stats", payouts.PayoutStats)
	api.GET("/payouts/due-soon", payouts.DueSoon)
	api.GET("/payouts/period/:period", payouts.PayoutsByPeriod)
	api.GET("/payouts/:id", payouts.GetPayout)
	api.POST("/payouts", payouts.CreatePayout)
	api.PUT("/payouts/:id/status", payouts.UpdatePayoutStatus)

	api.GET("/repairs", repairs.GetRepairs)
	api.GET("/repairs/count", repairs.CountRepairs)
	api.GET("/repairs/stats", repairs.RepairStats)
	api.GET("/repairs/urgency", repairs.OpenByUrgency)
	api.GET("/repairs/period/:period", repairs.RepairsByPeriod)
	api.GET("/repairs/:id", repairs.GetRepair)
	api.POST("/repairs", repairs.CreateRepair)
	api.PUT("/repairs/:id/assign", repairs.AssignTechnician)
	api.PUT("/repairs/:id/complete", repairs.CompleteRepair)

	api.GET("/transactions", transactions.GetTransactions)
	api.GET("/transactions/count", transactions.CountTransactions)
	api.GET("/transactions/stats", transactions.TransactionStats)
	api.GET("/transactions/monthly-trend", transactions.MonthlyTrend)
	api.GET("/transactions/period/:period", transactions.TransactionsByPeriod)
	api.GET("/transactions/:id", transactions.GetTransaction)
	api.POST("/transactions", transactions.CreateTransaction)

	api.GET("/verifications", verifications.GetVerifications)
	api.GET("/verifications/count", verifications.CountVerifications)
	api.GET("/verifications/stats", verifications.VerificationStats)
	api.GET("/verifications/period/:period", verifications.VerificationsByPeriod)
	api.GET("/verifications/:id", verifications.GetVerification)
	api.POST("/verifications", verifications.SubmitVerification)
	api.PUT("/verifications/:id/status", verifications.UpdateVerificationStatus)

	api.GET("/call-logs", engagement.GetCallLogs)
	api.GET("/call-logs/stats", engagement.CallLogStats)
	api.POST("/call-logs", engagement.CreateCallLog)
	api.GET("/feedback", engagement.GetFeedback)
	api.GET("/feedback/stats", engagement.FeedbackStats)
	api.POST("/feedback", engagement.CreateFeedback)
}
