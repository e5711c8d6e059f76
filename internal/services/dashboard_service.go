package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
)

// dashboardService aggregates a user's deposits, incomes and expenses into
// the summary the dashboard view consumes.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetSummary computes the full dashboard rollup for the user at the given
// instant. A user with no records gets a summary of zeros, not an error.
func (s *dashboardService) GetSummary(userID uint, now time.Time) (*DashboardSummary, error) {
	var deposits []models.FixedDeposit
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&deposits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &DashboardSummary{
		MaturingSoon: []models.FixedDeposit{},
	}

	for i := range deposits {
		fd := &deposits[i]
		if !fd.IsActive {
			continue
		}
		summary.TotalInvestment = summary.TotalInvestment.Add(fd.PrincipalAmount)
		summary.ActiveFDs++
		// Interest is counted whenever it is recorded on the deposit,
		// regardless of the year it accrues in.
		if fd.InterestAmount != nil {
			summary.InterestEarnedYTD = summary.InterestEarnedYTD.Add(*fd.InterestAmount)
		}
		if fd.StatusAt(now) == models.StatusMaturingSoon {
			summary.MaturingSoon = append(summary.MaturingSoon, *fd)
		}
	}
	summary.MaturingSoonCount = len(summary.MaturingSoon)

	finances, err := s.monthlyFinances(userID, now)
	if err != nil {
		return nil, err
	}
	summary.MonthlyFinances = *finances

	return summary, nil
}

// monthlyFinances totals the user's incomes and expenses for the calendar
// month containing now. Savings is income minus expenses and may be negative.
func (s *dashboardService) monthlyFinances(userID uint, now time.Time) (*MonthlyFinances, error) {
	today := models.DateOf(now)

	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	finances := &MonthlyFinances{
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, inc := range incomes {
		if !inc.Date.SameMonth(today) {
			continue
		}
		finances.TotalIncome = finances.TotalIncome.Add(inc.Amount)
	}

	for _, exp := range expenses {
		if !exp.Date.SameMonth(today) {
			continue
		}
		finances.TotalExpenses = finances.TotalExpenses.Add(exp.Amount)
		finances.ExpensesByCategory[exp.Category] = finances.ExpensesByCategory[exp.Category].Add(exp.Amount)
	}

	finances.Savings = finances.TotalIncome.Sub(finances.TotalExpenses)
	return finances, nil
}
