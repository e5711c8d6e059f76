package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fdtrack/internal/models"
	"fdtrack/internal/pagination"
	"fdtrack/internal/testutil"
)

func TestCreateIncome(t *testing.T) {
	t.Run("recurring", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		income, err := svc.CreateIncome(user.ID, "Salary", decimal.RequireFromString("5000"),
			models.NewDate(2025, time.June, 1), true, models.RecurrenceMonthly, "")
		testutil.AssertNoError(t, err)

		if income.RecurrenceFrequency != models.RecurrenceMonthly {
			t.Errorf("frequency = %q", income.RecurrenceFrequency)
		}
	})

	t.Run("one_off_clears_frequency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		income, err := svc.CreateIncome(user.ID, "Bonus", decimal.RequireFromString("1000"),
			models.NewDate(2025, time.June, 1), false, models.RecurrenceMonthly, "")
		testutil.AssertNoError(t, err)

		if income.RecurrenceFrequency != "" {
			t.Errorf("frequency should be cleared on one-off income, got %q", income.RecurrenceFrequency)
		}
	})

	t.Run("rejects_empty_source", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateIncome(user.ID, "", decimal.RequireFromString("1000"),
			models.NewDate(2025, time.June, 1), false, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestIncomeCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)

	created, err := svc.CreateIncome(user.ID, "Salary", decimal.RequireFromString("5000"),
		models.NewDate(2025, time.June, 1), false, "", "June pay")
	testutil.AssertNoError(t, err)

	fetched, err := svc.GetIncomeByID(user.ID, created.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertDecimalEqual(t, created.Amount, fetched.Amount)

	amount := decimal.RequireFromString("5500")
	updated, err := svc.UpdateIncome(user.ID, created.ID, IncomeUpdate{Amount: &amount})
	testutil.AssertNoError(t, err)
	testutil.AssertDecimalEqual(t, amount, updated.Amount)

	list, err := svc.GetUserIncomes(user.ID, pagination.PageRequest{Page: 1, PageSize: 20})
	testutil.AssertNoError(t, err)
	if list.TotalItems != 1 {
		t.Errorf("expected 1 income, got %d", list.TotalItems)
	}

	testutil.AssertNoError(t, svc.DeleteIncome(user.ID, created.ID))
	_, err = svc.GetIncomeByID(user.ID, created.ID)
	testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
}

func TestDeleteIncomeNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)

	err := svc.DeleteIncome(user.ID, 9999)
	testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
}
