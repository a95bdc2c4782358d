package dto

import (
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/user"
)

// RegisterUserRequest is the payload for creating an account
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// UpdateRoleRequest is the payload for changing an account role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Balance   string    `json:"balance"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// OverviewResponse represents the admin dashboard aggregates
type OverviewResponse struct {
	TotalBalance       string `json:"totalBalance"`
	TotalBets          int64  `json:"totalBets"`
	TotalStaked        string `json:"totalStaked"`
	TotalWonPayouts    string `json:"totalWonPayouts"`
	ActiveMatches      int64  `json:"activeMatches"`
	PendingWithdrawals int64  `json:"pendingWithdrawals"`
	NetHouseResult     string `json:"netHouseResult"`
}

// ToUserResponse maps a user entity to its API representation
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Balance:   u.Balance(),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses maps a slice of user entities
func ToUserResponses(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

// ToOverviewResponse maps the admin aggregates to their API representation
func ToOverviewResponse(o *user.Overview) OverviewResponse {
	return OverviewResponse{
		TotalBalance:       o.TotalBalance,
		TotalBets:          o.TotalBets,
		TotalStaked:        o.TotalStaked,
		TotalWonPayouts:    o.TotalWonPayouts,
		ActiveMatches:      o.ActiveMatches,
		PendingWithdrawals: o.PendingWithdrawals,
		NetHouseResult:     entity.FormatCents(o.NetHouseResultCents),
	}
}
