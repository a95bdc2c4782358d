package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrNotBetOwner):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrUserLocked):
		return http.StatusLocked
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrDuplicateOpenBet),
		errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrMarketClosed),
		errors.Is(err, domainerr.ErrBettingWindowClosed),
		errors.Is(err, domainerr.ErrCancellationWindowClosed),
		errors.Is(err, domainerr.ErrOutcomeUnavailable),
		errors.Is(err, domainerr.ErrBetAlreadyResolved),
		errors.Is(err, domainerr.ErrMatchAlreadySettled),
		errors.Is(err, domainerr.ErrInvalidMatchTransition),
		errors.Is(err, domainerr.ErrWithdrawalNotPending),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrInvalidStake),
		errors.Is(err, domainerr.ErrInvalidScore),
		errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidUsername),
		errors.Is(err, domainerr.ErrInvalidRole),
		errors.Is(err, domainerr.ErrInvalidMatchData):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error envelope for a domain error
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError writes the envelope for a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeInvalidRequest,
		Message: "Invalid request payload: " + err.Error(),
	})
}
