package middleware

import (
	"net/http"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	domainerr "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the identity middleware
const (
	ContextUserID   = "auth_user_id"
	ContextUserRole = "auth_user_role"
)

// Identity reads the caller identity from the gateway headers.
// Authentication itself happens upstream; this service only trusts the
// forwarded X-User-ID and X-User-Role headers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(ContextUserID, userID)
		}
		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set(ContextUserRole, role)
		}
		c.Next()
	}
}

// RequireAuth aborts requests without a caller identity
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidRequest,
				Message: "Missing caller identity",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests from non-admin callers
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != string(entity.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeNotOwner,
				Message: "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin aborts when the caller is neither the user named in
// the path parameter nor an admin
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetString(ContextUserID)
		if callerID == c.Param(param) || c.GetString(ContextUserRole) == string(entity.RoleAdmin) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.CodeNotOwner,
			Message: "Access denied",
		})
	}
}
