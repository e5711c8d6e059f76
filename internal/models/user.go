package models

// User represents the user model in the database
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`

	FixedDeposits []FixedDeposit `gorm:"foreignKey:UserID" json:"fixed_deposits,omitempty"`
	Incomes       []Income       `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses      []Expense      `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Goals         []Goal         `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
