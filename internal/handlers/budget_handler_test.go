package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/pagination"
	"centsible/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	createBudgetFn   func(userID, category string, amount int64, startDate time.Time, endDate *time.Time) (*models.Budget, error)
	getUserBudgetsFn func(userID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Budget], error)
	getBudgetByIDFn  func(userID, budgetID string) (*models.Budget, error)
	updateBudgetFn   func(userID, budgetID string, category *string, amount *int64, endDate *time.Time, isActive *bool) (*models.Budget, error)
	deleteBudgetFn   func(userID, budgetID string) error
}

func (m *mockBudgetService) CreateBudget(userID, category string, amount int64, startDate time.Time, endDate *time.Time) (*models.Budget, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(userID, category, amount, startDate, endDate)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID string, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Budget], error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID, page, isActive)
	}
	resp := pagination.NewPageResponse([]models.Budget{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockBudgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(userID, budgetID)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) UpdateBudget(userID, budgetID string, category *string, amount *int64, endDate *time.Time, isActive *bool) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(userID, budgetID, category, amount, endDate, isActive)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) DeleteBudget(userID, budgetID string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(userID, budgetID)
	}
	return nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

const testBudgetID = "0196fae5-9d3e-7d5b-c3e7-2d4f5a6b7c8d"

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/budgets", handler.CreateBudget)
	auth.GET("/budgets", handler.GetUserBudgets)
	auth.GET("/budgets/:id", handler.GetBudgetByID)
	auth.PUT("/budgets/:id", handler.UpdateBudget)
	auth.DELETE("/budgets/:id", handler.DeleteBudget)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			createBudgetFn: func(userID, category string, amount int64, startDate time.Time, endDate *time.Time) (*models.Budget, error) {
				return &models.Budget{
					Base:      models.Base{ID: testBudgetID},
					UserID:    userID,
					Category:  "groceries",
					Amount:    amount,
					StartDate: startDate,
					IsActive:  true,
				}, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets", `{"category":"Groceries","amount":50000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["category"] != "groceries" {
			t.Errorf("expected groceries, got %v", budget["category"])
		}
	})

	t.Run("returns 400 on missing category", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets", `{"amount":50000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "POST", "/budgets", `{"category":"rent","amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetUserBudgets(t *testing.T) {
	t.Run("passes is_active filter", func(t *testing.T) {
		var gotIsActive *bool
		budgetSvc := &mockBudgetService{
			getUserBudgetsFn: func(_ string, _ pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Budget], error) {
				gotIsActive = isActive
				resp := pagination.NewPageResponse([]models.Budget{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?is_active=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotIsActive == nil || !*gotIsActive {
			t.Error("expected is_active filter true")
		}
	})

	t.Run("returns 400 on bad is_active", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "GET", "/budgets?is_active=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		budgetSvc := &mockBudgetService{
			updateBudgetFn: func(_, _ string, _ *string, _ *int64, _ *time.Time, _ *bool) (*models.Budget, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		handler := NewBudgetHandler(budgetSvc, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets/"+testBudgetID, `{"amount":100}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_NOT_FOUND")
	})

	t.Run("returns 400 on malformed ID", func(t *testing.T) {
		handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
		r := setupBudgetRouter(handler)

		rec := doRequest(r, "PUT", "/budgets/123", `{"amount":100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	handler := NewBudgetHandler(&mockBudgetService{}, &mockAuditService{})
	r := setupBudgetRouter(handler)

	rec := doRequest(r, "DELETE", "/budgets/"+testBudgetID, "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
