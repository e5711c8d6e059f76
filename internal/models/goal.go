package models

import "github.com/shopspring/decimal"

// Goal represents a savings goal with a target amount and date.
type Goal struct {
	Base
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"current_amount"`
	TargetDate    Date            `gorm:"not null" json:"target_date"`
	Notes         string          `json:"notes"`
}
