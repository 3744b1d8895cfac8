package models

import "time"

type Transaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Reference     string    `gorm:"unique;not null" json:"reference"`
	UserID        uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Type          string    `gorm:"not null;index" json:"type"` // rent, deposit, payout, refund
	Amount        float64   `json:"amount"`
	PaymentMethod string    `gorm:"column:payment_method" json:"payment_method"` // card, transfer, cash
	Status        string    `gorm:"default:pending;index" json:"status"`         // pending, success, failed
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
