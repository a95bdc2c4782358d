package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	mockcore "github.com/parlayhq/wager-engine/mocks/port/core"
	mockpersistence "github.com/parlayhq/wager-engine/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type userMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	userRepo     *mockpersistence.MockUserRepository
	matchRepo    *mockpersistence.MockMatchRepository
	betRepo      *mockpersistence.MockBetRepository
	txnRepo      *mockpersistence.MockTransactionRepository
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
}

func newUserMocks(t *testing.T) *userMocks {
	m := &userMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		userRepo:     mockpersistence.NewMockUserRepository(t),
		matchRepo:    mockpersistence.NewMockMatchRepository(t),
		betRepo:      mockpersistence.NewMockBetRepository(t),
		txnRepo:      mockpersistence.NewMockTransactionRepository(t),
		timeProvider: mockcore.NewMockTimeProvider(t),
		logger:       mockcore.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().GetMatchRepository(mock.Anything).Return(m.matchRepo).Maybe()
	m.uow.EXPECT().GetBetRepository(mock.Anything).Return(m.betRepo).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txnRepo).Maybe()
	return m
}

func (m *userMocks) service() *Service {
	return NewService(m.uow, m.timeProvider, m.logger, DefaultConfig())
}

func TestRegister(t *testing.T) {
	t.Run("Grants the starting balance", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().GetByUsername(ctx, "kemal").Return(nil, errs.ErrUserNotFound)

		var created *entity.User
		m.userRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, user *entity.User) {
			created = user
		}).Return(nil)

		user, err := m.service().Register(ctx, "kemal", entity.RoleUser)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "kemal", user.Username)
		assert.Equal(t, entity.RoleUser, user.Role)
		assert.Equal(t, "100000.00", user.Balance())
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, created, user)
	})

	t.Run("Rejects a taken username", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		existing, err := entity.NewUser("user-1", "kemal", "100000.00", entity.RoleUser, m.timeProvider)
		require.NoError(t, err)
		m.userRepo.EXPECT().GetByUsername(ctx, "kemal").Return(existing, nil)

		user, err := m.service().Register(ctx, "kemal", entity.RoleUser)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Rejects a blank username", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().GetByUsername(ctx, "   ").Return(nil, errs.ErrUserNotFound)

		user, err := m.service().Register(ctx, "   ", entity.RoleUser)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})

	t.Run("Surfaces lookup failures", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()
		dbErr := errors.New("connection reset")

		m.userRepo.EXPECT().GetByUsername(ctx, "kemal").Return(nil, dbErr)

		user, err := m.service().Register(ctx, "kemal", entity.RoleUser)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUpdateRole(t *testing.T) {
	t.Run("Promotes to admin", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().UpdateRole(ctx, "user-1", entity.RoleAdmin).Return(nil)

		require.NoError(t, m.service().UpdateRole(ctx, "user-1", entity.RoleAdmin))
	})

	t.Run("Rejects an unknown role", func(t *testing.T) {
		m := newUserMocks(t)

		err := m.service().UpdateRole(context.Background(), "user-1", entity.Role("SUPERUSER"))

		assert.ErrorIs(t, err, errs.ErrInvalidRole)
	})

	t.Run("Surfaces not found", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().UpdateRole(ctx, "missing", entity.RoleUser).Return(errs.ErrUserNotFound)

		assert.ErrorIs(t, m.service().UpdateRole(ctx, "missing", entity.RoleUser), errs.ErrUserNotFound)
	})
}

func TestGetOverview(t *testing.T) {
	t.Run("Aggregates the dashboard numbers", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().TotalBalanceCents(ctx).Return(50000000, nil)
		m.betRepo.EXPECT().Count(ctx).Return(120, nil)
		m.betRepo.EXPECT().SumStakesCents(ctx).Return(36000000, nil)
		m.betRepo.EXPECT().SumWonPayoutsCents(ctx).Return(29500000, nil)
		m.matchRepo.EXPECT().CountActive(ctx).Return(8, nil)
		m.txnRepo.EXPECT().CountPendingWithdrawals(ctx).Return(2, nil)

		overview, err := m.service().GetOverview(ctx)

		require.NoError(t, err)
		assert.Equal(t, "500000.00", overview.TotalBalance)
		assert.Equal(t, int64(120), overview.TotalBets)
		assert.Equal(t, "360000.00", overview.TotalStaked)
		assert.Equal(t, "295000.00", overview.TotalWonPayouts)
		assert.Equal(t, int64(8), overview.ActiveMatches)
		assert.Equal(t, int64(2), overview.PendingWithdrawals)
		// staked minus won payouts is the house result
		assert.Equal(t, int64(6500000), overview.NetHouseResultCents)
	})

	t.Run("Surfaces the first aggregate failure", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()
		dbErr := errors.New("connection reset")

		m.userRepo.EXPECT().TotalBalanceCents(ctx).Return(0, dbErr)

		overview, err := m.service().GetOverview(ctx)

		assert.Nil(t, overview)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserQueries(t *testing.T) {
	t.Run("GetUser delegates", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		user, err := entity.NewUser("user-1", "kemal", "100000.00", entity.RoleUser, m.timeProvider)
		require.NoError(t, err)
		m.userRepo.EXPECT().GetByID(ctx, "user-1").Return(user, nil)

		got, err := m.service().GetUser(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", got.ID)
	})

	t.Run("ListUsers passes the filter through", func(t *testing.T) {
		m := newUserMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().List(ctx, "kem").Return([]entity.User{}, nil)

		got, err := m.service().ListUsers(ctx, "kem")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
