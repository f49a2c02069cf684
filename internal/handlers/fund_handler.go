package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "centsible/internal/errors"
	"centsible/internal/services"
)

// FundHandler handles emergency-fund requests.
type FundHandler struct {
	fundService  services.FundServicer
	auditService services.AuditServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer, auditService services.AuditServicer) *FundHandler {
	return &FundHandler{fundService: fundService, auditService: auditService}
}

// UpsertFundRequest represents the request payload for creating or updating
// the emergency fund. All fields are optional; on first creation a missing
// goal is derived from recent average monthly expenses.
type UpsertFundRequest struct {
	CurrentAmount *int64  `json:"current_amount" binding:"omitempty,gte=0"`
	GoalAmount    *int64  `json:"goal_amount" binding:"omitempty,gte=0"`
	TargetMonths  *int    `json:"target_months" binding:"omitempty,gt=0"`
	Notes         *string `json:"notes" binding:"omitempty,max=500"`
}

// GetFund handles retrieval of the user's emergency fund.
// @Summary     Get emergency fund
// @Description Get the authenticated user's emergency fund settings
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.EmergencyFund "Emergency fund"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not set up"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.GetFund(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if fund == nil {
		respondWithError(c, apperrors.ErrFundNotConfigured)
		return
	}

	c.JSON(http.StatusOK, gin.H{"emergency_fund": fund})
}

// UpsertFund handles creating or updating the user's emergency fund.
// @Summary     Create or update emergency fund
// @Description Create the user's emergency fund or update the provided fields on the existing one. Each user has at most one fund.
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpsertFundRequest true "Fund details"
// @Success     200 {object} models.EmergencyFund "Emergency fund"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund [put]
func (h *FundHandler) UpsertFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fund, err := h.fundService.UpsertFund(userID, req.CurrentAmount, req.GoalAmount, req.TargetMonths, req.Notes, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPSERT_FUND", "emergency_fund", fund.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"emergency_fund": fund})
}

// DeleteFund handles removing the user's emergency fund.
// @Summary     Delete emergency fund
// @Description Remove the authenticated user's emergency fund
// @Tags        emergency-fund
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Fund deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not set up"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /emergency-fund [delete]
func (h *FundHandler) DeleteFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.fundService.DeleteFund(userID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_FUND", "emergency_fund", "", c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
