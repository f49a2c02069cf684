package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/pagination"
	"centsible/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Category  string     `json:"category" binding:"required,min=1,max=100"`
	Amount    int64      `json:"amount" binding:"required,gt=0"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Category *string    `json:"category" binding:"omitempty,min=1,max=100"`
	Amount   *int64     `json:"amount" binding:"omitempty,gt=0"`
	EndDate  *time.Time `json:"end_date"`
	IsActive *bool      `json:"is_active"`
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a new monthly spending cap for a category. Categories are normalized to lowercase; several budgets may share one category.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	budget, err := h.budgetService.CreateBudget(userID, req.Category, req.Amount, startDate, req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"category": budget.Category, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetUserBudgets handles the retrieval of budgets for a user.
// @Summary     Get user budgets
// @Description Get a paginated list of budgets for the authenticated user
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int  false "Page number (default 1)"
// @Param       page_size query int  false "Items per page (default 20, max 100)"
// @Param       is_active query bool false "Filter by active state"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetUserBudgets(c *gin.Context) {
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
	if v := c.Query("is_active"); v != "" {
		parsed, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid is_active"))
			return
		}
		isActive = &parsed
	}

	result, err := h.budgetService.GetUserBudgets(userID, page, isActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudgetByID handles the retrieval of a specific budget.
// @Summary     Get budget by ID
// @Description Get a specific budget by ID for the authenticated user
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles updating a budget.
// @Summary     Update budget
// @Description Update an existing budget. Only provided fields are applied.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Fields to update"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, req.Category, req.Amount, req.EndDate, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete budget
// @Description Soft-delete a budget for the authenticated user
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     204 "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid budget ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
