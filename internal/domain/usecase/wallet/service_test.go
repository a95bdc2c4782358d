package wallet

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

type walletMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	userRepo     *mockpersistence.MockUserRepository
	txnRepo      *mockpersistence.MockTransactionRepository
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
}

func newWalletMocks(t *testing.T) *walletMocks {
	m := &walletMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		userRepo:     mockpersistence.NewMockUserRepository(t),
		txnRepo:      mockpersistence.NewMockTransactionRepository(t),
		timeProvider: mockcore.NewMockTimeProvider(t),
		logger:       mockcore.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txnRepo).Maybe()
	return m
}

func (m *walletMocks) service() *Service {
	return NewService(m.uow, m.timeProvider, m.logger, DefaultConfig())
}

func (m *walletMocks) expectTx(ctx context.Context) {
	txCtx := context.WithValue(ctx, struct{ k string }{"tx"}, true)
	m.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
}

func pendingWithdrawal() *entity.Transaction {
	return &entity.Transaction{
		ID:          "txn-1",
		UserID:      "user-1",
		AmountCents: -50000,
		Type:        entity.TxnWithdrawRequest,
		Status:      entity.TxnStatusPending,
		CreatedAt:   fixedNow.Add(-time.Hour),
	}
}

func TestDeposit(t *testing.T) {
	t.Run("Credits the balance and writes a completed entry", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(25000)).Return(nil, nil)

		var created *entity.Transaction
		m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, txn *entity.Transaction) {
			created = txn
		}).Return(nil)
		m.uow.EXPECT().Commit(mock.Anything).Return(nil)

		txn, err := m.service().Deposit(ctx, "user-1", "250.00")

		require.NoError(t, err)
		require.NotNil(t, txn)
		assert.Equal(t, int64(25000), txn.AmountCents)
		assert.Equal(t, entity.TxnDeposit, txn.Type)
		assert.Equal(t, entity.TxnStatusCompleted, txn.Status)
		assert.Equal(t, created, txn)
	})

	t.Run("Rejects a deposit below the floor", func(t *testing.T) {
		m := newWalletMocks(t)

		txn, err := m.service().Deposit(context.Background(), "user-1", "99.99")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Rejects a malformed amount", func(t *testing.T) {
		m := newWalletMocks(t)

		txn, err := m.service().Deposit(context.Background(), "user-1", "abc")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Rolls back when the ledger write fails", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)
		dbErr := errors.New("connection reset")

		m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(25000)).Return(nil, nil)
		m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		txn, err := m.service().Deposit(ctx, "user-1", "250.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	t.Run("Debits immediately and parks a pending entry", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-50000)).Return(nil, nil)
		m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		m.uow.EXPECT().Commit(mock.Anything).Return(nil)

		txn, err := m.service().RequestWithdrawal(ctx, "user-1", "500.00")

		require.NoError(t, err)
		assert.Equal(t, int64(-50000), txn.AmountCents)
		assert.Equal(t, entity.TxnWithdrawRequest, txn.Type)
		assert.Equal(t, entity.TxnStatusPending, txn.Status)
		assert.True(t, txn.IsPendingWithdrawal())
	})

	t.Run("Rejects below the floor", func(t *testing.T) {
		m := newWalletMocks(t)

		txn, err := m.service().RequestWithdrawal(context.Background(), "user-1", "50.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Insufficient balance surfaces from the debit", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-50000)).
			Return(nil, errs.ErrInsufficientBalance)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		txn, err := m.service().RequestWithdrawal(ctx, "user-1", "500.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})
}

func TestApproveWithdrawal(t *testing.T) {
	t.Run("Flips a pending request to completed", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(pendingWithdrawal(), nil)
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, "txn-1", entity.TxnStatusCompleted).Return(nil)
		m.uow.EXPECT().Commit(mock.Anything).Return(nil)

		require.NoError(t, m.service().ApproveWithdrawal(ctx, "txn-1"))
	})

	t.Run("Fails when a concurrent review resolved the request first", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		// The read still sees PENDING, but the guarded update loses to
		// a review that committed in between
		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(pendingWithdrawal(), nil)
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, "txn-1", entity.TxnStatusCompleted).Return(errs.ErrWithdrawalNotPending)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		assert.ErrorIs(t, m.service().ApproveWithdrawal(ctx, "txn-1"), errs.ErrWithdrawalNotPending)
	})

	t.Run("Rejects a non-pending entry", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		done := pendingWithdrawal()
		done.Status = entity.TxnStatusCompleted

		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(done, nil)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		assert.ErrorIs(t, m.service().ApproveWithdrawal(ctx, "txn-1"), errs.ErrWithdrawalNotPending)
	})

	t.Run("Rejects a deposit entry", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		deposit := pendingWithdrawal()
		deposit.Type = entity.TxnDeposit

		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(deposit, nil)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		assert.ErrorIs(t, m.service().ApproveWithdrawal(ctx, "txn-1"), errs.ErrWithdrawalNotPending)
	})
}

func TestRejectWithdrawal(t *testing.T) {
	t.Run("Refunds the debit and records the refund entry", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(pendingWithdrawal(), nil)
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, "txn-1", entity.TxnStatusRejected).Return(nil)
		m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(50000)).Return(nil, nil)

		var refund *entity.Transaction
		m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, txn *entity.Transaction) {
			refund = txn
		}).Return(nil)
		m.uow.EXPECT().Commit(mock.Anything).Return(nil)

		require.NoError(t, m.service().RejectWithdrawal(ctx, "txn-1"))

		require.NotNil(t, refund)
		assert.Equal(t, int64(50000), refund.AmountCents)
		assert.Equal(t, entity.TxnWithdrawRefund, refund.Type)
		assert.Equal(t, entity.TxnStatusCompleted, refund.Status)
		assert.Equal(t, "txn-1", refund.Reference)
	})

	t.Run("Refunds at most once when two rejects race", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		// Both rejects read the committed PENDING row; only the first
		// guarded update matches it. The loser sees the status error
		// and never reaches the refund, so the stake cannot be
		// credited twice.
		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(pendingWithdrawal(), nil)
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, "txn-1", entity.TxnStatusRejected).Return(errs.ErrWithdrawalNotPending)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		assert.ErrorIs(t, m.service().RejectWithdrawal(ctx, "txn-1"), errs.ErrWithdrawalNotPending)
	})

	t.Run("Rejects a non-pending entry", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)

		rejected := pendingWithdrawal()
		rejected.Status = entity.TxnStatusRejected

		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(rejected, nil)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		assert.ErrorIs(t, m.service().RejectWithdrawal(ctx, "txn-1"), errs.ErrWithdrawalNotPending)
	})

	t.Run("Rolls back when the refund fails", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		m.expectTx(ctx)
		dbErr := errors.New("deadlock detected")

		m.txnRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(pendingWithdrawal(), nil)
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, "txn-1", entity.TxnStatusRejected).Return(nil)
		m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(50000)).Return(nil, dbErr)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		assert.ErrorIs(t, m.service().RejectWithdrawal(ctx, "txn-1"), dbErr)
	})
}

func TestWalletQueries(t *testing.T) {
	t.Run("GetBalance formats the stored cents", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()

		user, err := entity.NewUser("user-1", "kemal", "1234.50", entity.RoleUser, m.timeProvider)
		require.NoError(t, err)
		m.userRepo.EXPECT().GetByID(ctx, "user-1").Return(user, nil)

		balance, err := m.service().GetBalance(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "1234.50", balance)
	})

	t.Run("GetBalance surfaces not found", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()

		m.userRepo.EXPECT().GetByID(ctx, "missing").Return(nil, errs.ErrUserNotFound)

		balance, err := m.service().GetBalance(ctx, "missing")

		assert.Empty(t, balance)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("ListTransactions delegates", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()
		entries := []entity.Transaction{*pendingWithdrawal()}

		m.txnRepo.EXPECT().ListByUser(ctx, "user-1").Return(entries, nil)

		got, err := m.service().ListTransactions(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("ListPendingWithdrawals delegates", func(t *testing.T) {
		m := newWalletMocks(t)
		ctx := context.Background()

		m.txnRepo.EXPECT().ListPendingWithdrawals(ctx).Return([]entity.Transaction{}, nil)

		got, err := m.service().ListPendingWithdrawals(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
