package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records a confirmed charge. Rows are immutable once created;
// TransactionID doubles as the idempotent replay key, so a retried
// confirmation with the same provider transaction cannot double-apply.
type Payment struct {
	gorm.Model
	Email         string    `json:"email" gorm:"index;not null"`
	ClassID       string    `json:"classId" gorm:"index;not null"`
	ClassName     string    `json:"className" gorm:"default:''"`
	Amount        float64   `json:"amount" gorm:"not null"`
	TransactionID string    `json:"transactionId" gorm:"uniqueIndex;not null"`
	Date          time.Time `json:"date"`
	IsDeleted     bool      `json:"-" gorm:"default:false"`
}
