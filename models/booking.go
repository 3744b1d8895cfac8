package models

import "time"

// Booking is a tenant's recurring rental subscription on a property.
// NextRental is the next rent due date for the cycle.
type Booking struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TenantID   uint       `gorm:"column:tenant_id;index;not null" json:"tenant_id"`
	PropertyID uint       `gorm:"column:property_id;index;not null" json:"property_id"`
	RentStatus string     `gorm:"column:rent_status;default:active;index" json:"rent_status"` // active, due, overdue, ended
	NextRental *time.Time `gorm:"column:next_rental" json:"next_rental"`
	Amount     float64    `json:"amount"`
	Frequency  string     `gorm:"default:monthly" json:"frequency"` // monthly, quarterly, yearly
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
