package models

import "time"

// User covers every person the back office tracks: tenants, landlords,
// platform staff and account managers, distinguished by UserType.
type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	FirstName          string     `gorm:"column:first_name" json:"first_name"`
	LastName           string     `gorm:"column:last_name" json:"last_name"`
	Email              string     `gorm:"unique;not null" json:"email"`
	Phone              string     `gorm:"column:phone" json:"phone"`
	Password           string     `gorm:"not null" json:"-"`
	UserType           string     `gorm:"column:user_type;not null;index" json:"user_type"` // tenant, landlord, staff, account_manager
	Department         string     `gorm:"column:department" json:"department"`              // staff only: inspection, maintenance, support
	VerificationStatus string     `gorm:"column:verification_status;default:unverified" json:"verification_status"`
	AccountManagerID   *uint      `gorm:"column:account_manager_id;index" json:"account_manager_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	LastLogoutAt       *time.Time `gorm:"column:last_logout_at" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
