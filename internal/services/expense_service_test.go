package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fdtrack/internal/models"
	"fdtrack/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("free_text_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		// Categories are not restricted to the suggested list.
		expense, err := svc.CreateExpense(user.ID, "Pet grooming", decimal.RequireFromString("80"),
			models.NewDate(2025, time.June, 1), false, "", "")
		testutil.AssertNoError(t, err)

		if expense.Category != "Pet grooming" {
			t.Errorf("category = %q", expense.Category)
		}
	})

	t.Run("one_off_clears_frequency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "Food", decimal.RequireFromString("120"),
			models.NewDate(2025, time.June, 1), false, models.RecurrenceWeekly, "")
		testutil.AssertNoError(t, err)

		if expense.RecurrenceFrequency != "" {
			t.Errorf("frequency should be cleared on one-off expense, got %q", expense.RecurrenceFrequency)
		}
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Food", decimal.RequireFromString("-10"),
			models.NewDate(2025, time.June, 1), false, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestExpenseUpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)

	created, err := svc.CreateExpense(user.ID, "Food", decimal.RequireFromString("120"),
		models.NewDate(2025, time.June, 1), false, "", "")
	testutil.AssertNoError(t, err)

	category := "Travel"
	updated, err := svc.UpdateExpense(user.ID, created.ID, ExpenseUpdate{Category: &category})
	testutil.AssertNoError(t, err)
	if updated.Category != "Travel" {
		t.Errorf("category = %q", updated.Category)
	}

	testutil.AssertNoError(t, svc.DeleteExpense(user.ID, created.ID))
	_, err = svc.GetExpenseByID(user.ID, created.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}
