package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/services"
)

// DashboardHandler handles dashboard metric requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles the main dashboard view.
// @Summary     Get dashboard summary
// @Description Get net worth, the current month's income/expense aggregates, the debt summary, and emergency-fund coverage, all computed from one consistent snapshot.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrends handles the trailing income/expense trend series.
// @Summary     Get monthly trends
// @Description Get the trailing monthly income, expense, and savings series. Months without transactions appear as zero points.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of trailing months (default 6, max 24)"
// @Success     200 {array} metrics.TrendPoint "Trend series, oldest month first"
// @Failure     400 {object} ErrorResponse "Invalid months"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/trends [get]
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 0
	if v := c.Query("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil || months < 1 || months > 24 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 1 and 24"))
			return
		}
	}

	points, err := h.dashboardService.GetTrends(userID, time.Now(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": points})
}

// GetExpenseBreakdown handles the current month's per-category expense totals.
// @Summary     Get expense breakdown
// @Description Get the current month's expenses grouped by category, largest first. Uncategorized spending is grouped under "uncategorized".
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} metrics.CategoryAmount "Per-category expense totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/expense-breakdown [get]
func (h *DashboardHandler) GetExpenseBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.dashboardService.GetExpenseBreakdown(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetBudgetProgress handles per-budget consumption for the current month.
// @Summary     Get budget progress
// @Description Get each active budget's spending for the current month against its cap, most-consumed first.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} metrics.BudgetStatus "Per-budget progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/budget-progress [get]
func (h *DashboardHandler) GetBudgetProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.dashboardService.GetBudgetProgress(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": progress})
}
