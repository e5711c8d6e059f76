package models

import "github.com/shopspring/decimal"

// SuggestedExpenseCategories is the category list offered in the UI.
// Categories are free text; expenses are not constrained to this list.
var SuggestedExpenseCategories = []string{
	"Housing", "Utilities", "Food", "Transportation",
	"Medical", "Insurance", "Entertainment", "Education",
	"Shopping", "Investments", "Travel", "Debt", "Other",
}

// Expense represents a single expense record.
type Expense struct {
	Base
	UserID              uint                `gorm:"not null;index" json:"user_id"`
	Category            string              `gorm:"not null" json:"category"`
	Amount              decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date                Date                `gorm:"not null" json:"date"`
	IsRecurring         bool                `gorm:"default:false" json:"is_recurring"`
	RecurrenceFrequency RecurrenceFrequency `json:"recurrence_frequency,omitempty"`
	Notes               string              `json:"notes"`
}
