package models

import "github.com/shopspring/decimal"

// RecurrenceFrequency is how often a recurring income or expense repeats.
// It is only meaningful when the record's IsRecurring flag is set.
type RecurrenceFrequency string

const (
	RecurrenceDaily      RecurrenceFrequency = "daily"
	RecurrenceWeekly     RecurrenceFrequency = "weekly"
	RecurrenceBiWeekly   RecurrenceFrequency = "bi-weekly"
	RecurrenceMonthly    RecurrenceFrequency = "monthly"
	RecurrenceQuarterly  RecurrenceFrequency = "quarterly"
	RecurrenceHalfYearly RecurrenceFrequency = "half-yearly"
	RecurrenceYearly     RecurrenceFrequency = "yearly"
)

// Income represents a single income record.
type Income struct {
	Base
	UserID              uint                `gorm:"not null;index" json:"user_id"`
	Source              string              `gorm:"not null" json:"source"`
	Amount              decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date                Date                `gorm:"not null" json:"date"`
	IsRecurring         bool                `gorm:"default:false" json:"is_recurring"`
	RecurrenceFrequency RecurrenceFrequency `json:"recurrence_frequency,omitempty"`
	Notes               string              `json:"notes"`
}
