package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/port/persistence"
)

// Config holds account defaults
type Config struct {
	// InitialBalance is granted to every new account
	InitialBalance string
}

// DefaultConfig mirrors the production signup grant
func DefaultConfig() Config {
	return Config{InitialBalance: "100000.00"}
}

// Service handles account registration and the admin user surface
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewService creates a user service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Register creates an account with the configured starting balance.
// Called on first login; the identity provider owns credentials.
func (s *Service) Register(ctx context.Context, username string, role entity.Role) (*entity.User, error) {
	repo := s.uow.GetUserRepository(ctx)

	existing, err := repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateUser
	}

	user, err := entity.NewUser(uuid.NewString(), username, s.cfg.InitialBalance, role, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})
	return user, nil
}

// GetUser returns one account
func (s *Service) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return s.uow.GetUserRepository(ctx).GetByID(ctx, id)
}

// ListUsers returns accounts, optionally filtered by a username
// substring. Admin surface.
func (s *Service) ListUsers(ctx context.Context, usernameQuery string) ([]entity.User, error) {
	return s.uow.GetUserRepository(ctx).List(ctx, usernameQuery)
}

// UpdateRole changes an account's role
func (s *Service) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	if !entity.IsValidRole(string(role)) {
		return errs.ErrInvalidRole
	}
	if err := s.uow.GetUserRepository(ctx).UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.logger.Info("User role updated", map[string]any{
		"user_id": id,
		"role":    string(role),
	})
	return nil
}

// Overview aggregates the admin dashboard numbers
type Overview struct {
	TotalBalance        string
	TotalBets           int64
	TotalStaked         string
	TotalWonPayouts     string
	ActiveMatches       int64
	PendingWithdrawals  int64
	NetHouseResultCents int64
}

// GetOverview collects system-wide aggregates for the admin dashboard.
// Reads are not transactional; the numbers are a snapshot, not a
// reconciliation.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	userRepo := s.uow.GetUserRepository(ctx)
	betRepo := s.uow.GetBetRepository(ctx)
	matchRepo := s.uow.GetMatchRepository(ctx)
	txnRepo := s.uow.GetTransactionRepository(ctx)

	totalBalance, err := userRepo.TotalBalanceCents(ctx)
	if err != nil {
		return nil, err
	}
	totalBets, err := betRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStaked, err := betRepo.SumStakesCents(ctx)
	if err != nil {
		return nil, err
	}
	totalWon, err := betRepo.SumWonPayoutsCents(ctx)
	if err != nil {
		return nil, err
	}
	activeMatches, err := matchRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	pendingWithdrawals, err := txnRepo.CountPendingWithdrawals(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalBalance:        entity.FormatCents(totalBalance),
		TotalBets:           totalBets,
		TotalStaked:         entity.FormatCents(totalStaked),
		TotalWonPayouts:     entity.FormatCents(totalWon),
		ActiveMatches:       activeMatches,
		PendingWithdrawals:  pendingWithdrawals,
		NetHouseResultCents: totalStaked - totalWon,
	}, nil
}
