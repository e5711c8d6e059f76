package models

import "github.com/shopspring/decimal"

// MonthlyBudget is a stored month/year income-expense-savings record.
// It is maintained through its own CRUD surface; the dashboard rollup
// computes its figures live and does not populate this table.
type MonthlyBudget struct {
	Base
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	Month        int             `gorm:"not null" json:"month"`
	Year         int             `gorm:"not null" json:"year"`
	TotalIncome  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_income"`
	TotalExpense decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_expense"`
	Savings      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"savings"`
}
