package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/refward/refward/internal/domain/errors"
	"github.com/refward/refward/internal/server/http/dto"
)

// BalanceHandler manages balance-related endpoints.
type BalanceHandler struct {
	facade BalanceFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade BalanceFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/user/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	userID := CurrentUserID(c)
	summary, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{TotalEarned: summary.TotalEarned, Available: summary.Available})
}

// Withdraw handles POST /api/user/balance/withdraw.
func (h *BalanceHandler) Withdraw(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.WithdrawResponse{Success: false, Message: "Insufficient balance or invalid amount"})
		return
	}

	err := h.facade.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.JSON(http.StatusUnprocessableEntity, dto.WithdrawResponse{Success: false, Message: "Insufficient balance or invalid amount"})
		case errors.Is(err, domainErrors.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, dto.WithdrawResponse{Success: false, Message: "Insufficient balance or invalid amount"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithdrawResponse{Success: true, Message: fmt.Sprintf("Successfully withdrawn Rs.%g", req.Amount)})
}

// Withdrawals handles GET /api/user/withdrawals.
func (h *BalanceHandler) Withdrawals(c *gin.Context) {
	userID := CurrentUserID(c)
	withdrawals, err := h.facade.Withdrawals(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(withdrawals) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		resp = append(resp, dto.WithdrawalResponse{Amount: w.Amount, Status: string(w.Status), WithdrawnAt: w.CreatedAt})
	}
	c.JSON(http.StatusOK, resp)
}
