package models

import "time"

type CallLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StaffID    uint      `gorm:"column:staff_id;index;not null" json:"staff_id"`
	UserID     *uint     `gorm:"column:user_id;index" json:"user_id"`
	Department string    `gorm:"index" json:"department"`
	Purpose    string    `json:"purpose"`
	Outcome    string    `json:"outcome"`
	DurationS  int       `gorm:"column:duration_seconds" json:"duration_seconds"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CallLog) TableName() string {
	return "call_logs"
}
