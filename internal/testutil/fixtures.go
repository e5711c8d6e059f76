package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fdtrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Name:     "Test User",
		Email:    username + "@test.com",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestDeposit creates an active fixed deposit starting today with a
// 12-month tenure and precomputed interest/maturity amounts.
func CreateTestDeposit(t *testing.T, db *gorm.DB, userID uint, principal, rate decimal.Decimal) *models.FixedDeposit {
	t.Helper()

	start := models.DateOf(time.Now())
	return CreateTestDepositWithDates(t, db, userID, principal, rate, start, start.AddMonths(12))
}

// CreateTestDepositWithDates creates an active fixed deposit with explicit
// start and maturity dates.
func CreateTestDepositWithDates(t *testing.T, db *gorm.DB, userID uint, principal, rate decimal.Decimal, start, maturity models.Date) *models.FixedDeposit {
	t.Helper()

	interest := models.SimpleInterest(principal, rate, decimal.NewFromInt(1))
	maturityAmount := principal.Add(interest)

	fd := &models.FixedDeposit{
		UserID:          userID,
		FDNumber:        fmt.Sprintf("FD%d", nextID()),
		BankName:        "Test Bank",
		PrincipalAmount: principal,
		InterestRate:    rate,
		Tenure:          12,
		TenureUnit:      models.TenureMonths,
		StartDate:       start,
		MaturityDate:    maturity,
		InterestAmount:  &interest,
		MaturityAmount:  &maturityAmount,
		IsActive:        true,
	}
	if err := db.Create(fd).Error; err != nil {
		t.Fatalf("failed to create test deposit: %v", err)
	}
	return fd
}

// CreateTestIncome creates an income record on the given date.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount decimal.Decimal, date models.Date) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: userID,
		Source: fmt.Sprintf("Test Source %d", nextID()),
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense record in the given category on the
// given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, category string, amount decimal.Decimal, date models.Date) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestGoal creates a savings goal due one year out.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, target decimal.Decimal) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: target,
		TargetDate:   models.DateOf(time.Now()).AddYears(1),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
