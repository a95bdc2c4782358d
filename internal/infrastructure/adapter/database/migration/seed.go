package migration

import (
	"context"
	"errors"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	domainErr "github.com/parlayhq/wager-engine/internal/domain/error"
	userUseCase "github.com/parlayhq/wager-engine/internal/domain/usecase/user"
)

// Default accounts created on a fresh database
var defaultAccounts = map[string]entity.Role{
	"admin": entity.RoleAdmin,
}

// SeedDefaultUsers creates the default accounts if they do not exist yet
func SeedDefaultUsers(ctx context.Context, userService *userUseCase.Service) error {
	for username, role := range defaultAccounts {
		_, err := userService.Register(ctx, username, role)
		if err != nil && !errors.Is(err, domainErr.ErrDuplicateUser) {
			return err
		}
	}

	return nil
}
