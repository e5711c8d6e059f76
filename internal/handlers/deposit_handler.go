package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
	"fdtrack/internal/pagination"
	"fdtrack/internal/services"
)

// DepositHandler handles fixed-deposit requests.
type DepositHandler struct {
	depositService services.DepositServicer
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositService services.DepositServicer) *DepositHandler {
	return &DepositHandler{depositService: depositService}
}

// CreateDepositRequest represents the request payload for creating a fixed
// deposit. Maturity date and the interest/maturity amounts may be omitted;
// they are derived from the start date, tenure and rate.
type CreateDepositRequest struct {
	FDNumber        string            `json:"fd_number" binding:"required,max=100"`
	BankName        string            `json:"bank_name" binding:"required,max=100"`
	PrincipalAmount decimal.Decimal   `json:"principal_amount" binding:"required"`
	InterestRate    decimal.Decimal   `json:"interest_rate" binding:"required"`
	Tenure          int               `json:"tenure" binding:"required,min=1"`
	TenureUnit      models.TenureUnit `json:"tenure_unit" binding:"omitempty,tenure_unit"`
	StartDate       models.Date       `json:"start_date" binding:"required"`
	MaturityDate    models.Date       `json:"maturity_date"`
	InterestAmount  *decimal.Decimal  `json:"interest_amount"`
	MaturityAmount  *decimal.Decimal  `json:"maturity_amount"`
	IsActive        *bool             `json:"is_active"`
	Notes           string            `json:"notes" binding:"max=500"`
}

// UpdateDepositRequest represents the request payload for a partial fixed
// deposit update. Nil fields are left untouched.
type UpdateDepositRequest struct {
	FDNumber        *string            `json:"fd_number" binding:"omitempty,max=100"`
	BankName        *string            `json:"bank_name" binding:"omitempty,max=100"`
	PrincipalAmount *decimal.Decimal   `json:"principal_amount"`
	InterestRate    *decimal.Decimal   `json:"interest_rate"`
	Tenure          *int               `json:"tenure" binding:"omitempty,min=1"`
	TenureUnit      *models.TenureUnit `json:"tenure_unit" binding:"omitempty,tenure_unit"`
	StartDate       *models.Date       `json:"start_date"`
	MaturityDate    *models.Date       `json:"maturity_date"`
	InterestAmount  *decimal.Decimal   `json:"interest_amount"`
	MaturityAmount  *decimal.Decimal   `json:"maturity_amount"`
	IsActive        *bool              `json:"is_active"`
	Notes           *string            `json:"notes" binding:"omitempty,max=500"`
}

// CreateDeposit handles the creation of a new fixed deposit
// @Summary     Create a fixed deposit
// @Description Create a new fixed deposit for the authenticated user
// @Tags        fixed-deposits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDepositRequest true "Fixed deposit details"
// @Success     201 {object} models.FixedDeposit "Deposit created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deposit, err := h.depositService.CreateDeposit(userID, services.DepositInput{
		FDNumber:        req.FDNumber,
		BankName:        req.BankName,
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
		Tenure:          req.Tenure,
		TenureUnit:      req.TenureUnit,
		StartDate:       req.StartDate,
		MaturityDate:    req.MaturityDate,
		InterestAmount:  req.InterestAmount,
		MaturityAmount:  req.MaturityAmount,
		IsActive:        req.IsActive,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fixed_deposit": deposit})
}

// GetUserDeposits handles the retrieval of the user's fixed deposits
// @Summary     List fixed deposits
// @Description Get a paginated list of fixed deposits for the authenticated user
// @Tags        fixed-deposits
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int  false "Page number (default 1)"
// @Param       page_size query int  false "Items per page (default 20, max 100)"
// @Param       is_active query bool false "Filter by active flag"
// @Success     200 {object} pagination.PageResponse[models.FixedDeposit] "Paginated deposits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits [get]
func (h *DepositHandler) GetUserDeposits(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid is_active"))
			return
		}
		isActive = &parsed
	}

	result, err := h.depositService.GetUserDeposits(userID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDepositByID handles the retrieval of a specific fixed deposit
// @Summary     Get fixed deposit by ID
// @Description Get a specific fixed deposit by ID for the authenticated user
// @Tags        fixed-deposits
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Deposit ID"
// @Success     200 {object} models.FixedDeposit "Deposit details"
// @Failure     400 {object} ErrorResponse "Invalid deposit ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits/{id} [get]
func (h *DepositHandler) GetDepositByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	depositID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deposit, err := h.depositService.GetDepositByID(userID, depositID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_deposit": deposit, "status": deposit.StatusAt(timeNow())})
}

// UpdateDeposit handles a partial update of a fixed deposit
// @Summary     Update fixed deposit
// @Description Update an existing fixed deposit for the authenticated user
// @Tags        fixed-deposits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Deposit ID"
// @Param       request body UpdateDepositRequest true "Updated deposit fields"
// @Success     200 {object} models.FixedDeposit "Updated deposit"
// @Failure     400 {object} ErrorResponse "Invalid input or deposit ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits/{id} [put]
func (h *DepositHandler) UpdateDeposit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	depositID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	deposit, err := h.depositService.UpdateDeposit(userID, depositID, services.DepositUpdate{
		FDNumber:        req.FDNumber,
		BankName:        req.BankName,
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
		Tenure:          req.Tenure,
		TenureUnit:      req.TenureUnit,
		StartDate:       req.StartDate,
		MaturityDate:    req.MaturityDate,
		InterestAmount:  req.InterestAmount,
		MaturityAmount:  req.MaturityAmount,
		IsActive:        req.IsActive,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fixed_deposit": deposit})
}

// DeleteDeposit handles the deletion of a fixed deposit
// @Summary     Delete fixed deposit
// @Description Delete a fixed deposit for the authenticated user
// @Tags        fixed-deposits
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Deposit ID"
// @Success     200 {object} map[string]string "Deposit deleted"
// @Failure     400 {object} ErrorResponse "Invalid deposit ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits/{id} [delete]
func (h *DepositHandler) DeleteDeposit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	depositID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.depositService.DeleteDeposit(userID, depositID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fixed deposit deleted"})
}
