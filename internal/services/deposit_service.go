package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
	"fdtrack/internal/pagination"
)

// depositService handles fixed-deposit business logic.
type depositService struct {
	db *gorm.DB
}

// NewDepositService creates a new DepositServicer.
func NewDepositService(db *gorm.DB) DepositServicer {
	return &depositService{db: db}
}

// CreateDeposit creates a new fixed deposit for the user. A zero maturity
// date is derived from the start date and tenure; absent interest and
// maturity amounts are derived from the principal, rate and tenure using
// simple interest.
func (s *depositService) CreateDeposit(userID uint, input DepositInput) (*models.FixedDeposit, error) {
	if input.PrincipalAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal amount must not be negative")
	}
	if input.InterestRate.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
	}
	if input.Tenure <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tenure must be at least 1")
	}

	unit := input.TenureUnit
	if unit == "" {
		unit = models.TenureMonths
	}

	maturityDate := input.MaturityDate
	if maturityDate.IsZero() {
		maturityDate = models.MaturityDateFrom(input.StartDate, input.Tenure, unit)
	}

	interestAmount := input.InterestAmount
	maturityAmount := input.MaturityAmount
	if interestAmount == nil && maturityAmount == nil {
		interest := models.SimpleInterest(input.PrincipalAmount, input.InterestRate, models.TenureInYears(input.Tenure, unit))
		maturity := input.PrincipalAmount.Add(interest)
		interestAmount = &interest
		maturityAmount = &maturity
	} else if maturityAmount == nil && interestAmount != nil {
		maturity := input.PrincipalAmount.Add(*interestAmount)
		maturityAmount = &maturity
	} else if interestAmount == nil && maturityAmount != nil {
		interest := maturityAmount.Sub(input.PrincipalAmount)
		interestAmount = &interest
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	deposit := &models.FixedDeposit{
		UserID:          userID,
		FDNumber:        input.FDNumber,
		BankName:        input.BankName,
		PrincipalAmount: input.PrincipalAmount,
		InterestRate:    input.InterestRate,
		Tenure:          input.Tenure,
		TenureUnit:      unit,
		StartDate:       input.StartDate,
		MaturityDate:    maturityDate,
		InterestAmount:  interestAmount,
		MaturityAmount:  maturityAmount,
		IsActive:        isActive,
		Notes:           input.Notes,
	}

	if err := s.db.Create(deposit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return deposit, nil
}

// GetUserDeposits returns a paginated list of the user's deposits in
// insertion order, optionally filtered by active flag.
func (s *depositService) GetUserDeposits(userID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.FixedDeposit], error) {
	page.Defaults()

	base := s.db.Model(&models.FixedDeposit{}).Where("user_id = ?", userID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var deposits []models.FixedDeposit
	if err := base.Order("id").Scopes(pagination.Paginate(page)).Find(&deposits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(deposits, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDepositByID returns a deposit by ID if it belongs to the user.
func (s *depositService) GetDepositByID(userID, depositID uint) (*models.FixedDeposit, error) {
	var deposit models.FixedDeposit
	if err := s.db.Where("id = ? AND user_id = ?", depositID, userID).First(&deposit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepositNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deposit, nil
}

// UpdateDeposit merges the non-nil fields of update over the stored deposit.
func (s *depositService) UpdateDeposit(userID, depositID uint, update DepositUpdate) (*models.FixedDeposit, error) {
	deposit, err := s.GetDepositByID(userID, depositID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.FDNumber != nil {
		updates["fd_number"] = *update.FDNumber
	}
	if update.BankName != nil {
		updates["bank_name"] = *update.BankName
	}
	if update.PrincipalAmount != nil {
		if update.PrincipalAmount.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "principal amount must not be negative")
		}
		updates["principal_amount"] = *update.PrincipalAmount
	}
	if update.InterestRate != nil {
		if update.InterestRate.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
		}
		updates["interest_rate"] = *update.InterestRate
	}
	if update.Tenure != nil {
		updates["tenure"] = *update.Tenure
	}
	if update.TenureUnit != nil {
		updates["tenure_unit"] = *update.TenureUnit
	}
	if update.StartDate != nil {
		updates["start_date"] = *update.StartDate
	}
	if update.MaturityDate != nil {
		// The stored maturity date is authoritative; a direct edit may
		// diverge from start date + tenure.
		updates["maturity_date"] = *update.MaturityDate
	}
	if update.InterestAmount != nil {
		updates["interest_amount"] = *update.InterestAmount
	}
	if update.MaturityAmount != nil {
		updates["maturity_amount"] = *update.MaturityAmount
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(deposit).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return deposit, nil
}

// DeleteDeposit removes a deposit permanently.
func (s *depositService) DeleteDeposit(userID, depositID uint) error {
	deposit, err := s.GetDepositByID(userID, depositID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(deposit).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
