package models

import "time"

type Inspection struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TenantID      uint       `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	PropertyID    uint       `gorm:"column:property_id;index;not null" json:"property_id"`
	InspectorID   *uint      `gorm:"column:inspector_id;index" json:"inspector_id"`
	Status        string     `gorm:"default:pending;index" json:"status"` // pending, scheduled, completed, cancelled
	ScheduledDate *time.Time `gorm:"column:scheduled_date" json:"scheduled_date"`
	CompletedDate *time.Time `gorm:"column:completed_date" json:"completed_date"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Inspection) TableName() string {
	return "inspections"
}
