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
	"centsible/internal/uuid"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	AccountID   string                 `json:"account_id" binding:"required,uuid"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Category    string                 `json:"category" binding:"max=100"`
	Description string                 `json:"description" binding:"max=500"`
	Date        *string                `json:"date"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	AccountID   string                 `json:"account_id"`
	Type        models.TransactionType `json:"type"`
	Amount      int64                  `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Date        time.Time              `json:"date"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new transaction (income or expense) for an account. Amount is the unsigned magnitude in cents; the direction comes from the type.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactionDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		transactionDate = parsed
	}

	transaction, err := h.transactionService.CreateTransaction(
		userID,
		req.AccountID,
		req.Type,
		req.Amount,
		req.Category,
		req.Description,
		transactionDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount, "account_id": req.AccountID})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetAccountTransactions handles the retrieval of transactions for a specific account
// @Summary     Get account transactions
// @Description Get a paginated list of transactions for a specific account with optional filters
// @Tags        accounts,transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id         path  string true  "Account ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Param       from_date  query string false "Filter by start date (RFC3339 e.g. 2024-01-01T00:00:00Z, or YYYY-MM-DD)"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type       query string false "Filter by transaction type (income, expense)"
// @Param       category   query string false "Filter by category"
// @Param       min_amount query int    false "Filter by minimum amount (cents)"
// @Param       max_amount query int    false "Filter by maximum amount (cents)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id}/transactions [get]
func (h *TransactionHandler) GetAccountTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetAccountTransactions(userID, accountID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserTransactions handles the retrieval of all transactions for the authenticated user
// @Summary     Get user transactions
// @Description Get a paginated list of all transactions for the authenticated user with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Param       account_id query string false "Filter by account ID"
// @Param       from_date  query string false "Filter by start date (RFC3339 e.g. 2024-01-01T00:00:00Z, or YYYY-MM-DD)"
// @Param       to_date    query string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type       query string false "Filter by transaction type (income, expense)"
// @Param       category   query string false "Filter by category"
// @Param       min_amount query int    false "Filter by minimum amount (cents)"
// @Param       max_amount query int    false "Filter by maximum amount (cents)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
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

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if v := c.Query("account_id"); v != "" {
		if !uuid.IsValid(v) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid account_id"))
			return
		}
		accountID := v
		filter.AccountID = &accountID
	}

	result, err := h.transactionService.GetUserTransactions(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			filter.Type = &txType
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense")
		}
	}

	if v := c.Query("category"); v != "" {
		category := v
		filter.Category = &category
	}

	if v := c.Query("min_amount"); v != "" {
		amt, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid min_amount")
		}
		filter.MinAmount = &amt
	}

	if v := c.Query("max_amount"); v != "" {
		amt, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid max_amount")
		}
		filter.MaxAmount = &amt
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID and reverse its effect on the account balance
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
