package handler

import (
	"net/http"

	"payout-gateway/internal/adapter/http/dto"
	"payout-gateway/internal/core/domain"
	"payout-gateway/internal/core/ports"
	"payout-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the read-only lookup endpoints.
type ReferenceHandler struct {
	balanceSvc ports.BalanceService
	currency   string
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(balanceSvc ports.BalanceService, currency string) *ReferenceHandler {
	return &ReferenceHandler{balanceSvc: balanceSvc, currency: currency}
}

// ListBanks handles GET /banks.
func (h *ReferenceHandler) ListBanks(c *gin.Context) {
	response.OK(c, dto.BanksResponse{
		Success: true,
		Banks:   domain.Banks(),
	})
}

// ListTransactions handles GET /transactions. No history is retained,
// so the list is always empty.
func (h *ReferenceHandler) ListTransactions(c *gin.Context) {
	response.OK(c, dto.TransactionsResponse{
		Success:      true,
		Transactions: []interface{}{},
	})
}

// GetBalance handles GET /balance.
func (h *ReferenceHandler) GetBalance(c *gin.Context) {
	balance, err := h.balanceSvc.Balance(c.Request.Context(), c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{
		Success:  true,
		Balance:  balance,
		Currency: h.currency,
	})
}

// Ping handles GET /test, a plain liveness probe.
func (h *ReferenceHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payout gateway is up and running",
	})
}
