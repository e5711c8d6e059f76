package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"fdtrack/internal/pagination"
	"fdtrack/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, 6, 2025,
			decimal.RequireFromString("5000"), decimal.RequireFromString("3000"), decimal.RequireFromString("2000"))
		testutil.AssertNoError(t, err)

		if budget.Month != 6 || budget.Year != 2025 {
			t.Errorf("period = %d/%d", budget.Month, budget.Year)
		}
	})

	t.Run("rejects_bad_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, 13, 2025, decimal.Zero, decimal.Zero, decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgetsOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.CreateBudget(user.ID, 5, 2025, decimal.Zero, decimal.Zero, decimal.Zero)
	testutil.AssertNoError(t, err)
	_, err = svc.CreateBudget(user.ID, 12, 2024, decimal.Zero, decimal.Zero, decimal.Zero)
	testutil.AssertNoError(t, err)
	_, err = svc.CreateBudget(user.ID, 6, 2025, decimal.Zero, decimal.Zero, decimal.Zero)
	testutil.AssertNoError(t, err)

	result, err := svc.GetUserBudgets(user.ID, pagination.PageRequest{Page: 1, PageSize: 20})
	testutil.AssertNoError(t, err)

	if len(result.Data) != 3 {
		t.Fatalf("expected 3 budgets, got %d", len(result.Data))
	}
	// Newest period first.
	if result.Data[0].Month != 6 || result.Data[0].Year != 2025 {
		t.Errorf("first = %d/%d, want 6/2025", result.Data[0].Month, result.Data[0].Year)
	}
	if result.Data[2].Year != 2024 {
		t.Errorf("last = %d/%d, want 12/2024", result.Data[2].Month, result.Data[2].Year)
	}
}

func TestUpdateBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)

	budget, err := svc.CreateBudget(user.ID, 6, 2025,
		decimal.RequireFromString("5000"), decimal.RequireFromString("3000"), decimal.RequireFromString("2000"))
	testutil.AssertNoError(t, err)

	income := decimal.RequireFromString("5500")
	updated, err := svc.UpdateBudget(user.ID, budget.ID, BudgetUpdate{TotalIncome: &income})
	testutil.AssertNoError(t, err)
	testutil.AssertDecimalEqual(t, income, updated.TotalIncome)

	_, err = svc.UpdateBudget(user.ID, 9999, BudgetUpdate{})
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}
