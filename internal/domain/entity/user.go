package entity

import (
	"strings"
	"time"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// Role distinguishes regular bettors from operators
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValidRole reports whether the string is a known role
func IsValidRole(s string) bool {
	return s == string(RoleUser) || s == string(RoleAdmin)
}

// User represents an account holding a wagerable balance. Users are
// never hard-deleted; their bets and ledger entries reference them for
// the lifetime of the system.
type User struct {
	ID           string
	Username     string
	balanceCents int64 // minor units, non-negative invariant (private)
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with the given username and initial balance
func NewUser(id, username, initialBalance string, role Role, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if !IsValidRole(string(role)) {
		return nil, errs.ErrInvalidRole
	}

	balanceCents, err := ParseAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Username:     username,
		balanceCents: balanceCents,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// BalanceCents returns the current balance in minor units
func (u *User) BalanceCents() int64 {
	return u.balanceCents
}

// Balance returns the balance as a string with 2 decimal places
func (u *User) Balance() string {
	return FormatCents(u.balanceCents)
}

// SetBalanceCents updates the balance directly (repository use)
func (u *User) SetBalanceCents(balanceCents int64, timeProvider coreport.TimeProvider) {
	u.balanceCents = balanceCents
	u.UpdatedAt = timeProvider.Now()
}

// CanDebit checks whether the balance covers a deduction
func (u *User) CanDebit(amountCents int64) bool {
	return u.balanceCents >= amountCents
}

// IsAdmin reports whether the user holds the operator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
