package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
	"fdtrack/internal/pagination"
)

// budgetService handles stored monthly budget records.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget stores a monthly budget record for the user.
func (s *budgetService) CreateBudget(
	userID uint,
	month, year int,
	totalIncome, totalExpense, savings decimal.Decimal,
) (*models.MonthlyBudget, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1900 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be 1900 or later")
	}
	if totalIncome.IsNegative() || totalExpense.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "totals must not be negative")
	}

	budget := &models.MonthlyBudget{
		UserID:       userID,
		Month:        month,
		Year:         year,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Savings:      savings,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of the user's budgets, newest
// period first.
func (s *budgetService) GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.MonthlyBudget], error) {
	page.Defaults()

	base := s.db.Model(&models.MonthlyBudget{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.MonthlyBudget
	if err := base.Order("year DESC, month DESC").Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget merges the non-nil fields of update over the stored budget.
// The period itself is immutable once recorded.
func (s *budgetService) UpdateBudget(userID, budgetID uint, update BudgetUpdate) (*models.MonthlyBudget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.TotalIncome != nil {
		if update.TotalIncome.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "totals must not be negative")
		}
		updates["total_income"] = *update.TotalIncome
	}
	if update.TotalExpense != nil {
		if update.TotalExpense.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "totals must not be negative")
		}
		updates["total_expense"] = *update.TotalExpense
	}
	if update.Savings != nil {
		updates["savings"] = *update.Savings
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}
