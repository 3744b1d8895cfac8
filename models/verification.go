package models

import "time"

// Verification holds the employment and guarantor details a tenant submits
// for screening. Status moves through pending, incomplete, verified, rejected.
type Verification struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	EmployerName   string    `gorm:"column:employer_name" json:"employer_name"`
	JobTitle       string    `gorm:"column:job_title" json:"job_title"`
	MonthlyIncome  *float64  `gorm:"column:monthly_income" json:"monthly_income"`
	GuarantorName  string    `gorm:"column:guarantor_name" json:"guarantor_name"`
	GuarantorPhone string    `gorm:"column:guarantor_phone" json:"guarantor_phone"`
	Status         string    `gorm:"default:pending;index" json:"status"` // pending, incomplete, verified, rejected
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Verification) TableName() string {
	return "verifications"
}
