package handler

import (
	"net/http"
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/match"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/settlement"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// MatchHandler handles match and settlement HTTP requests
type MatchHandler struct {
	matchService      *match.Service
	settlementService *settlement.Service
	logger            coreport.Logger
}

// NewMatchHandler creates a new match handler instance
func NewMatchHandler(
	matchService *match.Service,
	settlementService *settlement.Service,
	logger coreport.Logger,
) *MatchHandler {
	return &MatchHandler{
		matchService:      matchService,
		settlementService: settlementService,
		logger:            logger,
	}
}

// ListActive handles GET /matches/active
func (h *MatchHandler) ListActive(c *gin.Context) {
	matches, err := h.matchService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponses(matches))
}

// ListCompleted handles GET /matches/completed?from=...&to=...
func (h *MatchHandler) ListCompleted(c *gin.Context) {
	from, to, err := parseTimeRange(c.Query("from"), c.Query("to"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	matches, err := h.matchService.ListCompleted(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponses(matches))
}

// GetMatch handles GET /matches/{matchId}
func (h *MatchHandler) GetMatch(c *gin.Context) {
	m, err := h.matchService.GetMatch(c.Request.Context(), c.Param("matchId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponse(m))
}

// CreateMatch handles POST /admin/matches
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	createReq, err := req.ToCreateMatchRequest()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	m, err := h.matchService.CreateMatch(c.Request.Context(), createReq)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMatchResponse(m))
}

// UpdateMatch handles PUT /admin/matches/{matchId}
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updateReq, err := req.ToCreateMatchRequest()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	m, err := h.matchService.UpdateMatch(c.Request.Context(), c.Param("matchId"), updateReq)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponse(m))
}

// MarkLive handles POST /admin/matches/{matchId}/live
func (h *MatchHandler) MarkLive(c *gin.Context) {
	m, err := h.matchService.MarkLive(c.Request.Context(), c.Param("matchId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponse(m))
}

// SettleMatch handles POST /admin/matches/{matchId}/settle
func (h *MatchHandler) SettleMatch(c *gin.Context) {
	var req dto.SettleMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	scoreHome, scoreAway, err := settlement.ParseScore(req.Score)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	summary, err := h.settlementService.SettleMatch(c.Request.Context(), c.Param("matchId"), scoreHome, scoreAway)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SettlementResponse{
		MatchID:  summary.MatchID,
		Result:   summary.Result,
		WonBets:  summary.WonBets,
		LostBets: summary.LostBets,
		PaidOut:  entity.FormatCents(summary.PaidOutCents),
	})
}

// ListAll handles GET /admin/matches
func (h *MatchHandler) ListAll(c *gin.Context) {
	matches, err := h.matchService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponses(matches))
}

// ListArchived handles GET /admin/matches/archived
func (h *MatchHandler) ListArchived(c *gin.Context) {
	matches, err := h.matchService.ListArchived(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponses(matches))
}

// ArchiveMatch handles POST /admin/matches/{matchId}/archive
func (h *MatchHandler) ArchiveMatch(c *gin.Context) {
	if err := h.matchService.Archive(c.Request.Context(), c.Param("matchId")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreMatch handles POST /admin/matches/{matchId}/restore
func (h *MatchHandler) RestoreMatch(c *gin.Context) {
	if err := h.matchService.Restore(c.Request.Context(), c.Param("matchId")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseTimeRange parses the completed-listing window, defaulting to the
// last seven days
func parseTimeRange(fromParam, toParam string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -7)
	to := now

	var err error
	if fromParam != "" {
		from, err = time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toParam != "" {
		to, err = time.Parse(time.RFC3339, toParam)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return from, to, nil
}
