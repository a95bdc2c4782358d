package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/wager"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/dto"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// BetHandler handles bet-related HTTP requests
type BetHandler struct {
	wagerService *wager.Service
	logger       coreport.Logger
}

// NewBetHandler creates a new bet handler instance
func NewBetHandler(wagerService *wager.Service, logger coreport.Logger) *BetHandler {
	return &BetHandler{
		wagerService: wagerService,
		logger:       logger,
	}
}

// PlaceBet handles POST /bets
func (h *BetHandler) PlaceBet(c *gin.Context) {
	var req dto.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bet, err := h.wagerService.PlaceBet(c.Request.Context(), wager.PlaceBetRequest{
		UserID:  c.GetString(middleware.ContextUserID),
		MatchID: req.MatchID,
		Choice:  req.Choice,
		Amount:  req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBetResponse(bet))
}

// CancelBet handles DELETE /bets/{betId}
func (h *BetHandler) CancelBet(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	betID := c.Param("betId")

	bet, err := h.wagerService.CancelBet(c.Request.Context(), userID, betID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponse(bet))
}

// GetBet handles GET /bets/{betId}
func (h *BetHandler) GetBet(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	betID := c.Param("betId")

	bet, err := h.wagerService.GetBet(c.Request.Context(), userID, betID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponse(bet))
}

// ListUserBets handles GET /users/{userId}/bets
func (h *BetHandler) ListUserBets(c *gin.Context) {
	bets, err := h.wagerService.ListUserBets(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponses(bets))
}

// ListRecentBets handles GET /admin/bets
func (h *BetHandler) ListRecentBets(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	bets, err := h.wagerService.ListRecentBets(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponses(bets))
}

// ListMatchBets handles GET /admin/matches/{matchId}/bets
func (h *BetHandler) ListMatchBets(c *gin.Context) {
	bets, err := h.wagerService.ListMatchBets(c.Request.Context(), c.Param("matchId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponses(bets))
}

// ListUserOpenBets handles GET /users/{userId}/bets/open
func (h *BetHandler) ListUserOpenBets(c *gin.Context) {
	bets, err := h.wagerService.ListUserOpenBets(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBetResponses(bets))
}
