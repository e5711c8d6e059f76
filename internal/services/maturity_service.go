package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
)

// maturityService acts on maturing deposits: rolling the proceeds into a
// new deposit, or seeding a savings goal with them. Both paths close the
// source deposit and create the new record in a single transaction.
type maturityService struct {
	db *gorm.DB
}

// NewMaturityService creates a new MaturityServicer.
func NewMaturityService(db *gorm.DB) MaturityServicer {
	return &maturityService{db: db}
}

func (s *maturityService) getOpenDeposit(userID, depositID uint) (*models.FixedDeposit, error) {
	var fd models.FixedDeposit
	if err := s.db.Where("id = ? AND user_id = ?", depositID, userID).First(&fd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepositNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !fd.IsActive {
		return nil, apperrors.ErrDepositClosed
	}
	return &fd, nil
}

// closeDeposit marks the source deposit inactive and appends the given
// remark to its notes.
func closeDeposit(tx *gorm.DB, fd *models.FixedDeposit, remark string) error {
	note := remark
	if fd.Notes != "" {
		note = fd.Notes + " - " + remark
	}
	updates := map[string]interface{}{
		"is_active": false,
		"notes":     note,
	}
	if err := tx.Model(fd).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Reinvest closes the source deposit and opens a new one with its proceeds.
// The new deposit starts today; its principal defaults to the source's
// maturity value when the terms leave it unset.
func (s *maturityService) Reinvest(userID, depositID uint, terms ReinvestTerms, now time.Time) (*ReinvestResult, error) {
	if terms.Tenure < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be at least 1")
	}
	if terms.InterestRate.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
	}
	if terms.PrincipalAmount != nil && terms.PrincipalAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal amount must not be negative")
	}

	source, err := s.getOpenDeposit(userID, depositID)
	if err != nil {
		return nil, err
	}

	today := models.DateOf(now)

	principal := source.MaturityValue()
	if terms.PrincipalAmount != nil {
		principal = *terms.PrincipalAmount
	}

	bankName := terms.BankName
	if bankName == "" {
		bankName = source.BankName
	}

	unit := terms.TenureUnit
	if unit == "" {
		unit = models.TenureMonths
	}

	fdNumber := "RENEW"
	if source.FDNumber != "" {
		fdNumber = "RE" + source.FDNumber
	}

	interest := models.SimpleInterest(principal, terms.InterestRate, models.TenureInYears(terms.Tenure, unit))
	maturityAmount := principal.Add(interest)

	newDeposit := &models.FixedDeposit{
		UserID:          userID,
		FDNumber:        fdNumber,
		BankName:        bankName,
		PrincipalAmount: principal,
		InterestRate:    terms.InterestRate,
		Tenure:          terms.Tenure,
		TenureUnit:      unit,
		StartDate:       today,
		MaturityDate:    models.MaturityDateFrom(today, terms.Tenure, unit),
		InterestAmount:  &interest,
		MaturityAmount:  &maturityAmount,
		IsActive:        true,
		Notes:           fmt.Sprintf("Reinvested from FD %s", source.FDNumber),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := closeDeposit(tx, source, "Reinvested on "+today.String()); err != nil {
			return err
		}
		if err := tx.Create(newDeposit).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ReinvestResult{Source: source, NewDeposit: newDeposit}, nil
}

// SeedGoal closes the source deposit and creates a savings goal funded with
// its maturity value. When the target date is far enough out and the goal is
// not already funded, a suggested monthly contribution toward the remainder
// is included.
func (s *maturityService) SeedGoal(userID, depositID uint, seed GoalSeed, now time.Time) (*GoalSeedResult, error) {
	if seed.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if seed.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	source, err := s.getOpenDeposit(userID, depositID)
	if err != nil {
		return nil, err
	}

	today := models.DateOf(now)
	current := source.MaturityValue()

	goal := &models.Goal{
		UserID:        userID,
		Name:          seed.Name,
		TargetAmount:  seed.TargetAmount,
		CurrentAmount: current,
		TargetDate:    seed.TargetDate,
		Notes:         seed.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		remark := fmt.Sprintf("Used for goal %q on %s", seed.Name, today)
		if err := closeDeposit(tx, source, remark); err != nil {
			return err
		}
		if err := tx.Create(goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &GoalSeedResult{Source: source, Goal: goal}
	if months := today.MonthsUntil(seed.TargetDate); months > 0 {
		if gap := seed.TargetAmount.Sub(current); gap.IsPositive() {
			suggestion := gap.Div(decimal.NewFromInt(int64(months))).Round(2)
			result.SuggestedMonthlyContribution = &suggestion
		}
	}
	return result, nil
}
