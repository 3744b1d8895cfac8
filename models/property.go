package models

import "time"

type Property struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	LandlordID   uint      `gorm:"column:landlord_id;index;not null" json:"landlord_id"`
	Status       string    `gorm:"default:available;index" json:"status"` // available, rented, maintenance, inactive
	Price        float64   `json:"price"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PropertyType string    `gorm:"column:property_type" json:"property_type"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Views        int       `gorm:"default:0" json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}
