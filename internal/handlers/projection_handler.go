package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/services"
)

// ProjectionHandler serves portfolio growth projections and breakdowns.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(projectionService services.ProjectionServicer) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// projectionQuery binds the horizon selector from the query string.
type projectionQuery struct {
	Horizon string `form:"horizon" binding:"omitempty,horizon"`
}

// GetGrowthProjection returns the projected portfolio value series
// @Summary     Growth projection
// @Description Project the portfolio value over a selectable horizon under simple interest
// @Tags        projections
// @Produce     json
// @Security    BearerAuth
// @Param       horizon query string false "Projection horizon" Enums(1Y, 3Y, 5Y, 10Y) default(3Y)
// @Success     200 {object} services.ProjectionSeries "Projection series"
// @Failure     400 {object} ErrorResponse "Invalid horizon"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections [get]
func (h *ProjectionHandler) GetGrowthProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query projectionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	horizon := services.Horizon(query.Horizon)
	if query.Horizon == "" {
		horizon = services.HorizonThreeYear
	}

	series, err := h.projectionService.GetGrowthProjection(userID, horizon)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetBankBreakdown returns principal grouped by bank
// @Summary     Principal by bank
// @Description Get the user's invested principal grouped by bank
// @Tags        projections
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.BankTotal "Bank totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections/by-bank [get]
func (h *ProjectionHandler) GetBankBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.projectionService.GetBankBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"banks": totals})
}

// GetMaturityBreakdown returns principal grouped by maturity quarter
// @Summary     Principal by maturity quarter
// @Description Get the user's invested principal grouped by calendar quarter of maturity
// @Tags        projections
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.MaturityBucket "Maturity buckets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections/by-maturity [get]
func (h *ProjectionHandler) GetMaturityBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	buckets, err := h.projectionService.GetMaturityBreakdown(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quarters": buckets})
}
