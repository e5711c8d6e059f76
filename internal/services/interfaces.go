package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fdtrack/internal/models"
	"fdtrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password, name, email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// DepositInput holds the fields for creating a fixed deposit. MaturityDate,
// InterestAmount and MaturityAmount may be left unset, in which case they
// are derived from the start date, tenure and rate.
type DepositInput struct {
	FDNumber        string
	BankName        string
	PrincipalAmount decimal.Decimal
	InterestRate    decimal.Decimal
	Tenure          int
	TenureUnit      models.TenureUnit
	StartDate       models.Date
	MaturityDate    models.Date
	InterestAmount  *decimal.Decimal
	MaturityAmount  *decimal.Decimal
	IsActive        *bool
	Notes           string
}

// DepositUpdate holds optional fields for a partial fixed deposit update.
// Nil fields are left untouched.
type DepositUpdate struct {
	FDNumber        *string
	BankName        *string
	PrincipalAmount *decimal.Decimal
	InterestRate    *decimal.Decimal
	Tenure          *int
	TenureUnit      *models.TenureUnit
	StartDate       *models.Date
	MaturityDate    *models.Date
	InterestAmount  *decimal.Decimal
	MaturityAmount  *decimal.Decimal
	IsActive        *bool
	Notes           *string
}

// DepositServicer defines the contract for fixed-deposit business logic.
type DepositServicer interface {
	CreateDeposit(userID uint, input DepositInput) (*models.FixedDeposit, error)
	GetUserDeposits(userID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.FixedDeposit], error)
	GetDepositByID(userID, depositID uint) (*models.FixedDeposit, error)
	UpdateDeposit(userID, depositID uint, update DepositUpdate) (*models.FixedDeposit, error)
	DeleteDeposit(userID, depositID uint) error
}

// IncomeUpdate holds optional fields for a partial income update.
type IncomeUpdate struct {
	Source              *string
	Amount              *decimal.Decimal
	Date                *models.Date
	IsRecurring         *bool
	RecurrenceFrequency *models.RecurrenceFrequency
	Notes               *string
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID uint, source string, amount decimal.Decimal, date models.Date, isRecurring bool, frequency models.RecurrenceFrequency, notes string) (*models.Income, error)
	GetUserIncomes(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(userID, incomeID uint) (*models.Income, error)
	UpdateIncome(userID, incomeID uint, update IncomeUpdate) (*models.Income, error)
	DeleteIncome(userID, incomeID uint) error
}

// ExpenseUpdate holds optional fields for a partial expense update.
type ExpenseUpdate struct {
	Category            *string
	Amount              *decimal.Decimal
	Date                *models.Date
	IsRecurring         *bool
	RecurrenceFrequency *models.RecurrenceFrequency
	Notes               *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID uint, category string, amount decimal.Decimal, date models.Date, isRecurring bool, frequency models.RecurrenceFrequency, notes string) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// GoalUpdate holds optional fields for a partial goal update.
type GoalUpdate struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *models.Date
	Notes         *string
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID uint, name string, targetAmount, currentAmount decimal.Decimal, targetDate models.Date, notes string) (*models.Goal, error)
	GetUserGoals(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID uint) (*models.Goal, error)
	UpdateGoal(userID, goalID uint, update GoalUpdate) (*models.Goal, error)
	DeleteGoal(userID, goalID uint) error
}

// BudgetUpdate holds optional fields for a partial monthly budget update.
type BudgetUpdate struct {
	TotalIncome  *decimal.Decimal
	TotalExpense *decimal.Decimal
	Savings      *decimal.Decimal
}

// BudgetServicer defines the contract for stored monthly budget records.
// Budgets are maintained through this CRUD surface only; no aggregation
// path writes them.
type BudgetServicer interface {
	CreateBudget(userID uint, month, year int, totalIncome, totalExpense, savings decimal.Decimal) (*models.MonthlyBudget, error)
	GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.MonthlyBudget], error)
	GetBudgetByID(userID, budgetID uint) (*models.MonthlyBudget, error)
	UpdateBudget(userID, budgetID uint, update BudgetUpdate) (*models.MonthlyBudget, error)
}

// MonthlyFinances summarizes the current calendar month's incomes and expenses.
type MonthlyFinances struct {
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	Savings            decimal.Decimal            `json:"savings"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
}

// DashboardSummary is the aggregate record the dashboard view consumes.
type DashboardSummary struct {
	TotalInvestment   decimal.Decimal       `json:"total_investment"`
	ActiveFDs         int                   `json:"active_fds"`
	InterestEarnedYTD decimal.Decimal       `json:"interest_earned_ytd"`
	MaturingSoonCount int                   `json:"maturing_soon_count"`
	MaturingSoon      []models.FixedDeposit `json:"maturing_soon"`
	MonthlyFinances   MonthlyFinances       `json:"monthly_finances"`
}

// DashboardServicer defines the contract for the dashboard rollup.
type DashboardServicer interface {
	GetSummary(userID uint, now time.Time) (*DashboardSummary, error)
}

// ProjectionServicer defines the contract for investment growth projections.
type ProjectionServicer interface {
	GetGrowthProjection(userID uint, horizon Horizon) (*ProjectionSeries, error)
	GetBankBreakdown(userID uint) ([]BankTotal, error)
	GetMaturityBreakdown(userID uint) ([]MaturityBucket, error)
}

// ReinvestTerms holds the user-chosen terms for reinvesting a deposit.
// A nil PrincipalAmount defaults to the source deposit's maturity value.
type ReinvestTerms struct {
	BankName        string
	PrincipalAmount *decimal.Decimal
	InterestRate    decimal.Decimal
	Tenure          int
	TenureUnit      models.TenureUnit
}

// ReinvestResult holds both sides of a completed reinvestment.
type ReinvestResult struct {
	Source     *models.FixedDeposit `json:"source"`
	NewDeposit *models.FixedDeposit `json:"new_deposit"`
}

// GoalSeed holds the user-supplied fields for seeding a goal from a deposit.
type GoalSeed struct {
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   models.Date
	Notes        string
}

// GoalSeedResult holds the created goal, the closed source deposit, and the
// suggested monthly contribution toward the target. The suggestion is omitted
// when the target date is not far enough in the future or the goal is
// already funded.
type GoalSeedResult struct {
	Source                       *models.FixedDeposit `json:"source"`
	Goal                         *models.Goal         `json:"goal"`
	SuggestedMonthlyContribution *decimal.Decimal     `json:"suggested_monthly_contribution,omitempty"`
}

// MaturityServicer defines the contract for acting on maturing deposits.
type MaturityServicer interface {
	Reinvest(userID, depositID uint, terms ReinvestTerms, now time.Time) (*ReinvestResult, error)
	SeedGoal(userID, depositID uint, seed GoalSeed, now time.Time) (*GoalSeedResult, error)
}
