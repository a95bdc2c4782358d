package handler

import (
	"net/http"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/user"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	userService *user.Service
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *user.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	role := entity.RoleUser
	if req.Role != "" {
		if !entity.IsValidRole(req.Role) {
			respondError(c, h.logger, errs.ErrInvalidRole)
			return
		}
		role = entity.Role(req.Role)
	}

	u, err := h.userService.Register(c.Request.Context(), req.Username, role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// GetUser handles GET /admin/users/{userId}
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.userService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// ListUsers handles GET /admin/users?username=...
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateRole handles PATCH /admin/users/{userId}/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userService.UpdateRole(c.Request.Context(), c.Param("userId"), entity.Role(req.Role)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOverview handles GET /admin/overview
func (h *UserHandler) GetOverview(c *gin.Context) {
	overview, err := h.userService.GetOverview(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}
