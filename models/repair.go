package models

import "time"

type Repair struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TenantID     uint       `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	PropertyID   *uint      `gorm:"column:property_id;index" json:"property_id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	Status       string     `gorm:"default:pending;index" json:"status"` // pending, in_progress, completed, cancelled
	Cost         float64    `json:"cost"`
	TechnicianID *uint      `gorm:"column:technician_id;index" json:"technician_id"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Repair) TableName() string {
	return "repairs"
}
