package models

import "time"

type Payout struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Reference  string     `gorm:"unique;not null" json:"reference"`
	LandlordID uint       `gorm:"column:landlord_id;index;not null" json:"landlord_id"`
	Amount     float64    `json:"amount"`
	Status     string     `gorm:"default:pending;index" json:"status"` // pending, approved, disbursed
	DueDate    *time.Time `gorm:"column:due_date" json:"due_date"`
	ApprovedBy *uint      `gorm:"column:approved_by" json:"approved_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Payout) TableName() string {
	return "payouts"
}
