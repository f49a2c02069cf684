package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/models"
	"centsible/internal/pagination"
	"centsible/internal/services"
)

// DebtHandler handles debt-related requests.
type DebtHandler struct {
	debtService  services.DebtServicer
	auditService services.AuditServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer, auditService services.AuditServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService, auditService: auditService}
}

// CreateDebtRequest represents the request payload for creating a debt.
type CreateDebtRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Balance      int64   `json:"balance" binding:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0,lte=100"`
	MinPayment   int64   `json:"min_payment" binding:"gte=0"`
	DueDate      *string `json:"due_date"`
	Strategy     string  `json:"strategy" binding:"omitempty,debt_strategy"`
	Notes        string  `json:"notes" binding:"max=500"`
}

// UpdateDebtRequest represents the request payload for updating a debt.
type UpdateDebtRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Balance      *int64   `json:"balance" binding:"omitempty,gt=0"`
	InterestRate *float64 `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	MinPayment   *int64   `json:"min_payment" binding:"omitempty,gte=0"`
	DueDate      *string  `json:"due_date"`
	Strategy     *string  `json:"strategy" binding:"omitempty,debt_strategy"`
	Notes        *string  `json:"notes" binding:"omitempty,max=500"`
}

// CreateDebt handles the creation of a new debt.
// @Summary     Create a debt
// @Description Track a new debt. Balance and minimum payment are in cents; the interest rate is an annual percentage.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.DueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format"))
			return
		}
		dueDate = &parsed
	}

	debt, err := h.debtService.CreateDebt(
		userID, req.Name, req.Balance, req.InterestRate, req.MinPayment,
		dueDate, models.DebtStrategy(req.Strategy), req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_DEBT", "debt", debt.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "balance": req.Balance})

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetUserDebts handles the retrieval of debts for a user.
// @Summary     Get user debts
// @Description Get a paginated list of debts for the authenticated user
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Debt] "Paginated debts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetUserDebts(c *gin.Context) {
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

	result, err := h.debtService.GetUserDebts(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDebtByID handles the retrieval of a specific debt.
// @Summary     Get debt by ID
// @Description Get a specific debt by ID for the authenticated user
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} models.Debt "Debt details"
// @Failure     400 {object} ErrorResponse "Invalid debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebtByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtByID(userID, debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// UpdateDebt handles updating a debt.
// @Summary     Update debt
// @Description Update an existing debt. Only provided fields are applied.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Debt ID"
// @Param       request body UpdateDebtRequest true "Fields to update"
// @Success     200 {object} models.Debt "Updated debt"
// @Failure     400 {object} ErrorResponse "Invalid input or debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.DebtUpdateFields{
		Name:         req.Name,
		Balance:      req.Balance,
		InterestRate: req.InterestRate,
		MinPayment:   req.MinPayment,
		Notes:        req.Notes,
	}
	if req.Strategy != nil {
		strategy := models.DebtStrategy(*req.Strategy)
		fields.Strategy = &strategy
	}
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.DueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format"))
			return
		}
		fields.DueDate = &parsed
	}

	debt, err := h.debtService.UpdateDebt(userID, debtID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_DEBT", "debt", debtID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles deleting a debt.
// @Summary     Delete debt
// @Description Soft-delete a debt for the authenticated user
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     204 "Debt deleted"
// @Failure     400 {object} ErrorResponse "Invalid debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(userID, debtID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_DEBT", "debt", debtID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetPayoffProjection handles amortizing a single debt.
// @Summary     Project debt payoff
// @Description Amortize a debt under its minimum payment plus an optional extra monthly payment. Reports months to payoff, total interest, and the projected payoff date, or flags the plan as unpayable when payments never cover accruing interest.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id            path  string true  "Debt ID"
// @Param       extra_payment query int    false "Extra monthly payment in cents"
// @Success     200 {object} services.DebtProjection "Payoff projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/projection [get]
func (h *DebtHandler) GetPayoffProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var extraPayment int64
	if v := c.Query("extra_payment"); v != "" {
		extraPayment, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid extra_payment"))
			return
		}
	}

	projection, err := h.debtService.GetPayoffProjection(userID, debtID, extraPayment, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}

// GetPayoffPlan handles building a payoff plan across all debts.
// @Summary     Get payoff plan
// @Description Order all debts by the chosen strategy (avalanche pays the highest rate first, snowball the smallest balance first) with a per-debt projection under minimum payments.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       strategy query string false "Payoff strategy (avalanche or snowball, default avalanche)"
// @Success     200 {object} services.PayoffPlan "Payoff plan"
// @Failure     400 {object} ErrorResponse "Invalid strategy"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/payoff-plan [get]
func (h *DebtHandler) GetPayoffPlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	strategy := models.DebtStrategy(c.Query("strategy"))
	switch strategy {
	case "", models.DebtStrategyAvalanche, models.DebtStrategySnowball:
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "strategy must be avalanche or snowball"))
		return
	}

	plan, err := h.debtService.GetPayoffPlan(userID, strategy, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
