package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fdtrack/internal/errors"
	"fdtrack/internal/models"
	"fdtrack/internal/pagination"
	"fdtrack/internal/services"
)

type mockDepositService struct {
	createDepositFn   func(userID uint, input services.DepositInput) (*models.FixedDeposit, error)
	getUserDepositsFn func(userID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.FixedDeposit], error)
	getDepositByIDFn  func(userID, depositID uint) (*models.FixedDeposit, error)
	updateDepositFn   func(userID, depositID uint, update services.DepositUpdate) (*models.FixedDeposit, error)
	deleteDepositFn   func(userID, depositID uint) error
}

func (m *mockDepositService) CreateDeposit(userID uint, input services.DepositInput) (*models.FixedDeposit, error) {
	if m.createDepositFn != nil {
		return m.createDepositFn(userID, input)
	}
	return &models.FixedDeposit{}, nil
}

func (m *mockDepositService) GetUserDeposits(userID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.FixedDeposit], error) {
	if m.getUserDepositsFn != nil {
		return m.getUserDepositsFn(userID, page, isActive)
	}
	return &pagination.PageResponse[models.FixedDeposit]{Data: []models.FixedDeposit{}}, nil
}

func (m *mockDepositService) GetDepositByID(userID, depositID uint) (*models.FixedDeposit, error) {
	if m.getDepositByIDFn != nil {
		return m.getDepositByIDFn(userID, depositID)
	}
	return &models.FixedDeposit{}, nil
}

func (m *mockDepositService) UpdateDeposit(userID, depositID uint, update services.DepositUpdate) (*models.FixedDeposit, error) {
	if m.updateDepositFn != nil {
		return m.updateDepositFn(userID, depositID, update)
	}
	return &models.FixedDeposit{}, nil
}

func (m *mockDepositService) DeleteDeposit(userID, depositID uint) error {
	if m.deleteDepositFn != nil {
		return m.deleteDepositFn(userID, depositID)
	}
	return nil
}

var _ services.DepositServicer = (*mockDepositService)(nil)

func setupDepositRouter(handler *DepositHandler) *gin.Engine {
	r := gin.New()
	group := r.Group("/", injectUserID(1))
	group.POST("/fixed-deposits", handler.CreateDeposit)
	group.GET("/fixed-deposits", handler.GetUserDeposits)
	group.GET("/fixed-deposits/:id", handler.GetDepositByID)
	group.PUT("/fixed-deposits/:id", handler.UpdateDeposit)
	group.DELETE("/fixed-deposits/:id", handler.DeleteDeposit)
	return r
}

func TestDepositHandler_CreateDeposit(t *testing.T) {
	t.Run("returns 201 with the created deposit", func(t *testing.T) {
		depositSvc := &mockDepositService{
			createDepositFn: func(userID uint, input services.DepositInput) (*models.FixedDeposit, error) {
				if userID != 1 {
					t.Errorf("expected user ID 1, got %d", userID)
				}
				if input.Tenure != 12 {
					t.Errorf("expected tenure 12, got %d", input.Tenure)
				}
				interest := decimal.NewFromInt(7500)
				maturity := decimal.NewFromInt(107500)
				return &models.FixedDeposit{
					Base:            models.Base{ID: 3},
					UserID:          userID,
					FDNumber:        input.FDNumber,
					BankName:        input.BankName,
					PrincipalAmount: input.PrincipalAmount,
					InterestRate:    input.InterestRate,
					Tenure:          input.Tenure,
					TenureUnit:      models.TenureMonths,
					InterestAmount:  &interest,
					MaturityAmount:  &maturity,
					IsActive:        true,
				}, nil
			},
		}
		r := setupDepositRouter(NewDepositHandler(depositSvc))

		rec := doRequest(r, "POST", "/fixed-deposits",
			`{"fd_number":"FD001","bank_name":"HDFC","principal_amount":"100000","interest_rate":"7.5","tenure":12,"tenure_unit":"months","start_date":"2025-01-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		deposit := result["fixed_deposit"].(map[string]interface{})
		if deposit["fd_number"] != "FD001" {
			t.Errorf("expected FD001, got %v", deposit["fd_number"])
		}
		if deposit["interest_amount"] != "7500" {
			t.Errorf("expected derived interest 7500, got %v", deposit["interest_amount"])
		}
	})

	t.Run("returns 400 on bad tenure unit", func(t *testing.T) {
		r := setupDepositRouter(NewDepositHandler(&mockDepositService{}))

		rec := doRequest(r, "POST", "/fixed-deposits",
			`{"fd_number":"FD001","bank_name":"HDFC","principal_amount":"100000","interest_rate":"7.5","tenure":12,"tenure_unit":"decades","start_date":"2025-01-15"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing bank name", func(t *testing.T) {
		r := setupDepositRouter(NewDepositHandler(&mockDepositService{}))

		rec := doRequest(r, "POST", "/fixed-deposits",
			`{"fd_number":"FD001","principal_amount":"100000","interest_rate":"7.5","tenure":12,"start_date":"2025-01-15"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDepositHandler_GetUserDeposits(t *testing.T) {
	t.Run("passes the is_active filter through", func(t *testing.T) {
		var gotFilter *bool
		depositSvc := &mockDepositService{
			getUserDepositsFn: func(_ uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.FixedDeposit], error) {
				gotFilter = isActive
				return &pagination.PageResponse[models.FixedDeposit]{Data: []models.FixedDeposit{}}, nil
			},
		}
		r := setupDepositRouter(NewDepositHandler(depositSvc))

		rec := doRequest(r, "GET", "/fixed-deposits?is_active=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFilter == nil || !*gotFilter {
			t.Error("expected is_active filter to be true")
		}
	})

	t.Run("returns 400 on malformed is_active", func(t *testing.T) {
		r := setupDepositRouter(NewDepositHandler(&mockDepositService{}))

		rec := doRequest(r, "GET", "/fixed-deposits?is_active=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDepositHandler_GetDepositByID(t *testing.T) {
	t.Run("returns the deposit with its derived status", func(t *testing.T) {
		depositSvc := &mockDepositService{
			getDepositByIDFn: func(_, depositID uint) (*models.FixedDeposit, error) {
				return &models.FixedDeposit{
					Base:         models.Base{ID: depositID},
					FDNumber:     "FD001",
					StartDate:    models.DateOf(timeNow()).AddYears(-1),
					MaturityDate: models.DateOf(timeNow()).AddYears(1),
					IsActive:     true,
				}, nil
			},
		}
		r := setupDepositRouter(NewDepositHandler(depositSvc))

		rec := doRequest(r, "GET", "/fixed-deposits/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["status"] != "active" {
			t.Errorf("expected status active, got %v", result["status"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		depositSvc := &mockDepositService{
			getDepositByIDFn: func(_, _ uint) (*models.FixedDeposit, error) {
				return nil, apperrors.ErrDepositNotFound
			},
		}
		r := setupDepositRouter(NewDepositHandler(depositSvc))

		rec := doRequest(r, "GET", "/fixed-deposits/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DEPOSIT_NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric ID", func(t *testing.T) {
		r := setupDepositRouter(NewDepositHandler(&mockDepositService{}))

		rec := doRequest(r, "GET", "/fixed-deposits/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDepositHandler_UpdateDeposit(t *testing.T) {
	t.Run("passes only the provided fields", func(t *testing.T) {
		depositSvc := &mockDepositService{
			updateDepositFn: func(_, _ uint, update services.DepositUpdate) (*models.FixedDeposit, error) {
				if update.BankName == nil || *update.BankName != "ICICI" {
					t.Errorf("expected bank name ICICI, got %v", update.BankName)
				}
				if update.PrincipalAmount != nil {
					t.Error("expected principal to be untouched")
				}
				return &models.FixedDeposit{BankName: *update.BankName}, nil
			},
		}
		r := setupDepositRouter(NewDepositHandler(depositSvc))

		rec := doRequest(r, "PUT", "/fixed-deposits/5", `{"bank_name":"ICICI"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestDepositHandler_DeleteDeposit(t *testing.T) {
	t.Run("returns a confirmation message", func(t *testing.T) {
		r := setupDepositRouter(NewDepositHandler(&mockDepositService{}))

		rec := doRequest(r, "DELETE", "/fixed-deposits/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["message"] != "Fixed deposit deleted" {
			t.Error("expected deletion confirmation message")
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		depositSvc := &mockDepositService{
			deleteDepositFn: func(_, _ uint) error { return apperrors.ErrDepositNotFound },
		}
		r := setupDepositRouter(NewDepositHandler(depositSvc))

		rec := doRequest(r, "DELETE", "/fixed-deposits/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
