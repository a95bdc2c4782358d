package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/wallet"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles balance and ledger HTTP requests
type WalletHandler struct {
	walletService *wallet.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *wallet.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// GetBalance handles GET /users/{userId}/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.Param("userId")

	balance, err := h.walletService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	})
}

// ListTransactions handles GET /users/{userId}/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	txns, err := h.walletService.ListTransactions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// ListRecentTransactions handles GET /admin/transactions
func (h *WalletHandler) ListRecentTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	txns, err := h.walletService.ListRecentTransactions(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// Deposit handles POST /users/{userId}/deposits
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.walletService.Deposit(c.Request.Context(), c.Param("userId"), req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// RequestWithdrawal handles POST /users/{userId}/withdrawals
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.walletService.RequestWithdrawal(c.Request.Context(), c.Param("userId"), req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListPendingWithdrawals handles GET /admin/withdrawals
func (h *WalletHandler) ListPendingWithdrawals(c *gin.Context) {
	txns, err := h.walletService.ListPendingWithdrawals(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// ApproveWithdrawal handles POST /admin/withdrawals/{txnId}/approve
func (h *WalletHandler) ApproveWithdrawal(c *gin.Context) {
	if err := h.walletService.ApproveWithdrawal(c.Request.Context(), c.Param("txnId")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RejectWithdrawal handles POST /admin/withdrawals/{txnId}/reject
func (h *WalletHandler) RejectWithdrawal(c *gin.Context) {
	if err := h.walletService.RejectWithdrawal(c.Request.Context(), c.Param("txnId")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
