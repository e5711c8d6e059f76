package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
	"fdtrack/internal/services"
)

// MaturityHandler handles actions on maturing deposits.
type MaturityHandler struct {
	maturityService services.MaturityServicer
}

// NewMaturityHandler creates a new MaturityHandler.
func NewMaturityHandler(maturityService services.MaturityServicer) *MaturityHandler {
	return &MaturityHandler{maturityService: maturityService}
}

// ReinvestRequest represents the terms for reinvesting a deposit. A missing
// principal defaults to the source deposit's maturity value; a missing bank
// keeps the source's bank.
type ReinvestRequest struct {
	BankName        string            `json:"bank_name" binding:"omitempty,max=100"`
	PrincipalAmount *decimal.Decimal  `json:"principal_amount"`
	InterestRate    decimal.Decimal   `json:"interest_rate" binding:"required"`
	Tenure          int               `json:"tenure" binding:"required,min=1"`
	TenureUnit      models.TenureUnit `json:"tenure_unit" binding:"omitempty,tenure_unit"`
}

// SeedGoalRequest represents the goal fields when seeding a goal from a
// deposit's proceeds.
type SeedGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	TargetDate   models.Date     `json:"target_date" binding:"required"`
	Notes        string          `json:"notes" binding:"max=500"`
}

// Reinvest handles rolling a deposit's proceeds into a new deposit
// @Summary     Reinvest a deposit
// @Description Close a deposit and open a new one with its proceeds under new terms
// @Tags        fixed-deposits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Source deposit ID"
// @Param       request body ReinvestRequest true "New deposit terms"
// @Success     201 {object} services.ReinvestResult "Source closed and new deposit created"
// @Failure     400 {object} ErrorResponse "Invalid input or deposit ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     409 {object} ErrorResponse "Deposit already closed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits/{id}/reinvest [post]
func (h *MaturityHandler) Reinvest(c *gin.Context) {
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

	var req ReinvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.maturityService.Reinvest(userID, depositID, services.ReinvestTerms{
		BankName:        req.BankName,
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
		Tenure:          req.Tenure,
		TenureUnit:      req.TenureUnit,
	}, timeNow())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SeedGoal handles seeding a savings goal with a deposit's proceeds
// @Summary     Create a goal from a deposit
// @Description Close a deposit and create a savings goal funded with its maturity value
// @Tags        fixed-deposits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Source deposit ID"
// @Param       request body SeedGoalRequest true "Goal fields"
// @Success     201 {object} services.GoalSeedResult "Source closed and goal created"
// @Failure     400 {object} ErrorResponse "Invalid input or deposit ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Deposit not found"
// @Failure     409 {object} ErrorResponse "Deposit already closed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fixed-deposits/{id}/goal [post]
func (h *MaturityHandler) SeedGoal(c *gin.Context) {
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

	var req SeedGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.maturityService.SeedGoal(userID, depositID, services.GoalSeed{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
		Notes:        req.Notes,
	}, timeNow())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
