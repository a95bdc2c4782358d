package persistence

import (
	"context"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns users ordered by creation time, optionally filtered
	// by a username substring. Admin surface only.
	List(ctx context.Context, usernameQuery string) ([]entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same username already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole changes a user's role
	UpdateRole(ctx context.Context, id string, role entity.Role) error

	// AdjustBalance applies a signed delta to a user balance and returns
	// the updated user. The row is locked FOR UPDATE for the remainder of
	// the enclosing transaction, so a concurrent debit cannot drain the
	// same balance past zero.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientBalance: If the delta would take the balance negative
	// - ErrUserLocked: If the row lock could not be acquired in time
	// - ErrDatabaseConnection: If database connection fails
	AdjustBalance(ctx context.Context, id string, deltaCents int64) (*entity.User, error)

	// TotalBalanceCents sums all user balances. Admin overview only.
	TotalBalanceCents(ctx context.Context) (int64, error)
}
