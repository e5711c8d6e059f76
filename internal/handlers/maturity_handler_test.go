package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
	"fdtrack/internal/services"
)

type mockMaturityService struct {
	reinvestFn func(userID, depositID uint, terms services.ReinvestTerms, now time.Time) (*services.ReinvestResult, error)
	seedGoalFn func(userID, depositID uint, seed services.GoalSeed, now time.Time) (*services.GoalSeedResult, error)
}

func (m *mockMaturityService) Reinvest(userID, depositID uint, terms services.ReinvestTerms, now time.Time) (*services.ReinvestResult, error) {
	if m.reinvestFn != nil {
		return m.reinvestFn(userID, depositID, terms, now)
	}
	return &services.ReinvestResult{}, nil
}

func (m *mockMaturityService) SeedGoal(userID, depositID uint, seed services.GoalSeed, now time.Time) (*services.GoalSeedResult, error) {
	if m.seedGoalFn != nil {
		return m.seedGoalFn(userID, depositID, seed, now)
	}
	return &services.GoalSeedResult{}, nil
}

var _ services.MaturityServicer = (*mockMaturityService)(nil)

func setupMaturityRouter(handler *MaturityHandler) *gin.Engine {
	r := gin.New()
	group := r.Group("/", injectUserID(1))
	group.POST("/fixed-deposits/:id/reinvest", handler.Reinvest)
	group.POST("/fixed-deposits/:id/goal", handler.SeedGoal)
	return r
}

func TestMaturityHandler_Reinvest(t *testing.T) {
	t.Run("returns 201 with both sides of the rollover", func(t *testing.T) {
		maturitySvc := &mockMaturityService{
			reinvestFn: func(userID, depositID uint, terms services.ReinvestTerms, _ time.Time) (*services.ReinvestResult, error) {
				if depositID != 4 {
					t.Errorf("expected deposit ID 4, got %d", depositID)
				}
				if terms.Tenure != 12 {
					t.Errorf("expected tenure 12, got %d", terms.Tenure)
				}
				return &services.ReinvestResult{
					Source: &models.FixedDeposit{
						Base:     models.Base{ID: depositID},
						FDNumber: "FD001",
						IsActive: false,
					},
					NewDeposit: &models.FixedDeposit{
						Base:            models.Base{ID: 9},
						FDNumber:        "REFD001",
						PrincipalAmount: decimal.NewFromInt(108000),
						IsActive:        true,
					},
				}, nil
			},
		}
		r := setupMaturityRouter(NewMaturityHandler(maturitySvc))

		rec := doRequest(r, "POST", "/fixed-deposits/4/reinvest",
			`{"interest_rate":"7.0","tenure":12,"tenure_unit":"months"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		source := result["source"].(map[string]interface{})
		if source["is_active"] != false {
			t.Error("expected source deposit to be closed")
		}
		fresh := result["new_deposit"].(map[string]interface{})
		if fresh["fd_number"] != "REFD001" {
			t.Errorf("expected REFD001, got %v", fresh["fd_number"])
		}
	})

	t.Run("returns 400 when tenure is missing", func(t *testing.T) {
		r := setupMaturityRouter(NewMaturityHandler(&mockMaturityService{}))

		rec := doRequest(r, "POST", "/fixed-deposits/4/reinvest", `{"interest_rate":"7.0"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when the deposit is already closed", func(t *testing.T) {
		maturitySvc := &mockMaturityService{
			reinvestFn: func(_, _ uint, _ services.ReinvestTerms, _ time.Time) (*services.ReinvestResult, error) {
				return nil, apperrors.ErrDepositClosed
			},
		}
		r := setupMaturityRouter(NewMaturityHandler(maturitySvc))

		rec := doRequest(r, "POST", "/fixed-deposits/4/reinvest",
			`{"interest_rate":"7.0","tenure":12}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DEPOSIT_CLOSED")
	})
}

func TestMaturityHandler_SeedGoal(t *testing.T) {
	t.Run("returns 201 with the goal and suggestion", func(t *testing.T) {
		suggestion := decimal.RequireFromString("7666.67")
		maturitySvc := &mockMaturityService{
			seedGoalFn: func(_, _ uint, seed services.GoalSeed, _ time.Time) (*services.GoalSeedResult, error) {
				if seed.Name != "House down payment" {
					t.Errorf("unexpected goal name %q", seed.Name)
				}
				return &services.GoalSeedResult{
					Source: &models.FixedDeposit{Base: models.Base{ID: 4}, IsActive: false},
					Goal: &models.Goal{
						Base:          models.Base{ID: 2},
						Name:          seed.Name,
						TargetAmount:  seed.TargetAmount,
						CurrentAmount: decimal.NewFromInt(108000),
						TargetDate:    seed.TargetDate,
					},
					SuggestedMonthlyContribution: &suggestion,
				}, nil
			},
		}
		r := setupMaturityRouter(NewMaturityHandler(maturitySvc))

		rec := doRequest(r, "POST", "/fixed-deposits/4/goal",
			`{"name":"House down payment","target_amount":"200000","target_date":"2026-06-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		goal := result["goal"].(map[string]interface{})
		if goal["current_amount"] != "108000" {
			t.Errorf("expected goal seeded with 108000, got %v", goal["current_amount"])
		}
		if result["suggested_monthly_contribution"] != "7666.67" {
			t.Errorf("expected suggestion 7666.67, got %v", result["suggested_monthly_contribution"])
		}
	})

	t.Run("omits the suggestion when the service gives none", func(t *testing.T) {
		maturitySvc := &mockMaturityService{
			seedGoalFn: func(_, _ uint, seed services.GoalSeed, _ time.Time) (*services.GoalSeedResult, error) {
				return &services.GoalSeedResult{
					Source: &models.FixedDeposit{},
					Goal:   &models.Goal{Name: seed.Name},
				}, nil
			},
		}
		r := setupMaturityRouter(NewMaturityHandler(maturitySvc))

		rec := doRequest(r, "POST", "/fixed-deposits/4/goal",
			`{"name":"Emergency fund","target_amount":"50000","target_date":"2026-06-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if _, ok := parseJSON(t, rec)["suggested_monthly_contribution"]; ok {
			t.Error("expected suggestion to be omitted")
		}
	})

	t.Run("returns 404 for another user's deposit", func(t *testing.T) {
		maturitySvc := &mockMaturityService{
			seedGoalFn: func(_, _ uint, _ services.GoalSeed, _ time.Time) (*services.GoalSeedResult, error) {
				return nil, apperrors.ErrDepositNotFound
			},
		}
		r := setupMaturityRouter(NewMaturityHandler(maturitySvc))

		rec := doRequest(r, "POST", "/fixed-deposits/4/goal",
			`{"name":"Emergency fund","target_amount":"50000","target_date":"2026-06-15"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
