package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/services"
)

// --- mock fund service ---

type mockFundService struct {
	getFundFn    func(userID string) (*models.EmergencyFund, error)
	upsertFundFn func(userID string, currentAmount, goalAmount *int64, targetMonths *int, notes *string, now time.Time) (*models.EmergencyFund, error)
	deleteFundFn func(userID string) error
}

func (m *mockFundService) GetFund(userID string) (*models.EmergencyFund, error) {
	if m.getFundFn != nil {
		return m.getFundFn(userID)
	}
	return &models.EmergencyFund{}, nil
}

func (m *mockFundService) UpsertFund(userID string, currentAmount, goalAmount *int64, targetMonths *int, notes *string, now time.Time) (*models.EmergencyFund, error) {
	if m.upsertFundFn != nil {
		return m.upsertFundFn(userID, currentAmount, goalAmount, targetMonths, notes, now)
	}
	return &models.EmergencyFund{}, nil
}

func (m *mockFundService) DeleteFund(userID string) error {
	if m.deleteFundFn != nil {
		return m.deleteFundFn(userID)
	}
	return nil
}

var _ services.FundServicer = (*mockFundService)(nil)

func setupFundRouter(handler *FundHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/emergency-fund", handler.GetFund)
	auth.PUT("/emergency-fund", handler.UpsertFund)
	auth.DELETE("/emergency-fund", handler.DeleteFund)
	return r
}

func TestFundHandler_GetFund(t *testing.T) {
	t.Run("returns 200 with fund", func(t *testing.T) {
		fundSvc := &mockFundService{
			getFundFn: func(userID string) (*models.EmergencyFund, error) {
				return &models.EmergencyFund{
					UserID:        userID,
					CurrentAmount: 300000,
					GoalAmount:    1200000,
					TargetMonths:  6,
				}, nil
			},
		}
		handler := NewFundHandler(fundSvc, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "GET", "/emergency-fund", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		fund := result["emergency_fund"].(map[string]interface{})
		if fund["goal_amount"].(float64) != 1200000 {
			t.Errorf("expected goal 1200000, got %v", fund["goal_amount"])
		}
	})

	t.Run("returns 404 when fund is not set up", func(t *testing.T) {
		fundSvc := &mockFundService{
			getFundFn: func(string) (*models.EmergencyFund, error) { return nil, nil },
		}
		handler := NewFundHandler(fundSvc, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "GET", "/emergency-fund", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FUND_NOT_CONFIGURED")
	})
}

func TestFundHandler_UpsertFund(t *testing.T) {
	t.Run("passes only provided fields", func(t *testing.T) {
		var gotCurrent, gotGoal *int64
		var gotMonths *int
		fundSvc := &mockFundService{
			upsertFundFn: func(userID string, currentAmount, goalAmount *int64, targetMonths *int, _ *string, _ time.Time) (*models.EmergencyFund, error) {
				gotCurrent, gotGoal, gotMonths = currentAmount, goalAmount, targetMonths
				return &models.EmergencyFund{UserID: userID, CurrentAmount: *currentAmount}, nil
			},
		}
		handler := NewFundHandler(fundSvc, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "PUT", "/emergency-fund", `{"current_amount":250000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCurrent == nil || *gotCurrent != 250000 {
			t.Errorf("expected current amount 250000, got %v", gotCurrent)
		}
		if gotGoal != nil || gotMonths != nil {
			t.Error("expected omitted fields to stay nil")
		}
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		handler := NewFundHandler(&mockFundService{}, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "PUT", "/emergency-fund", `{"current_amount":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on zero target months", func(t *testing.T) {
		handler := NewFundHandler(&mockFundService{}, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "PUT", "/emergency-fund", `{"target_months":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestFundHandler_DeleteFund(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewFundHandler(&mockFundService{}, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "DELETE", "/emergency-fund", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when fund is not set up", func(t *testing.T) {
		fundSvc := &mockFundService{
			deleteFundFn: func(string) error { return apperrors.ErrFundNotConfigured },
		}
		handler := NewFundHandler(fundSvc, &mockAuditService{})
		r := setupFundRouter(handler)

		rec := doRequest(r, "DELETE", "/emergency-fund", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
