package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/domain/port/persistence"
)

// Config holds the wallet limits
type Config struct {
	// MinDepositCents and MinWithdrawCents floor a single movement
	MinDepositCents  int64
	MinWithdrawCents int64
}

// DefaultConfig mirrors the production limits
func DefaultConfig() Config {
	return Config{
		MinDepositCents:  10000, // 100.00
		MinWithdrawCents: 10000, // 100.00
	}
}

// Service handles deposits and the withdrawal request/review flow.
// A withdrawal debits the balance immediately and parks a PENDING
// ledger entry; rejection refunds, approval only flips the status.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewService creates a wallet service
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

// GetBalance returns a user's balance as a two-decimal string
func (s *Service) GetBalance(ctx context.Context, userID string) (string, error) {
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Balance(), nil
}

// ListTransactions returns a user's ledger entries, newest first
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID)
}

// ListRecentTransactions returns the newest ledger entries across all
// users. A non-positive limit falls back to 50.
func (s *Service) ListRecentTransactions(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.uow.GetTransactionRepository(ctx).ListRecent(ctx, limit)
}

// ListPendingWithdrawals returns withdrawal requests awaiting review
func (s *Service) ListPendingWithdrawals(ctx context.Context) ([]entity.Transaction, error) {
	return s.uow.GetTransactionRepository(ctx).ListPendingWithdrawals(ctx)
}

// Deposit credits a user's balance. Called by the payment gateway
// callback surface after an external payment clears.
func (s *Service) Deposit(ctx context.Context, userID, amount string) (*entity.Transaction, error) {
	amountCents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountCents < s.cfg.MinDepositCents {
		return nil, errs.ErrInvalidAmount
	}

	txn, err := s.applyMovement(ctx, userID, amountCents,
		entity.TxnDeposit, entity.TxnStatusCompleted)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deposit credited", map[string]any{
		"user_id": userID,
		"amount":  txn.Amount(),
	})
	return txn, nil
}

// RequestWithdrawal debits the balance and opens a PENDING request
func (s *Service) RequestWithdrawal(ctx context.Context, userID, amount string) (*entity.Transaction, error) {
	amountCents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountCents < s.cfg.MinWithdrawCents {
		return nil, errs.ErrInvalidAmount
	}

	txn, err := s.applyMovement(ctx, userID, -amountCents,
		entity.TxnWithdrawRequest, entity.TxnStatusPending)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal requested", map[string]any{
		"user_id":        userID,
		"amount":         entity.FormatCents(amountCents),
		"transaction_id": txn.ID,
	})
	return txn, nil
}

// ApproveWithdrawal completes a pending request. The money left the
// balance at request time, so approval only flips the ledger status.
func (s *Service) ApproveWithdrawal(ctx context.Context, txnID string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	err = func() error {
		txnRepo := s.uow.GetTransactionRepository(txCtx)

		txn, err := txnRepo.GetByID(txCtx, txnID)
		if err != nil {
			return err
		}
		if !txn.IsPendingWithdrawal() {
			return errs.ErrWithdrawalNotPending
		}

		return txnRepo.UpdateStatus(txCtx, txnID, entity.TxnStatusCompleted)
	}()
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back withdrawal approval", map[string]any{
				"transaction_id": txnID,
				"error":          rbErr.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Withdrawal approved", map[string]any{"transaction_id": txnID})
	return nil
}

// RejectWithdrawal refunds a pending request and records the refund as
// its own ledger entry
func (s *Service) RejectWithdrawal(ctx context.Context, txnID string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	err = func() error {
		txnRepo := s.uow.GetTransactionRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)

		txn, err := txnRepo.GetByID(txCtx, txnID)
		if err != nil {
			return err
		}
		if !txn.IsPendingWithdrawal() {
			return errs.ErrWithdrawalNotPending
		}

		if err := txnRepo.UpdateStatus(txCtx, txnID, entity.TxnStatusRejected); err != nil {
			return err
		}

		// the stored amount is the negative debit; refund its magnitude
		refundCents := -txn.AmountCents
		if _, err := userRepo.AdjustBalance(txCtx, txn.UserID, refundCents); err != nil {
			return err
		}

		refund, err := entity.NewTransaction(uuid.NewString(), txn.UserID, refundCents,
			entity.TxnWithdrawRefund, entity.TxnStatusCompleted, txn.ID, s.timeProvider)
		if err != nil {
			return err
		}
		return txnRepo.Create(txCtx, refund)
	}()
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back withdrawal rejection", map[string]any{
				"transaction_id": txnID,
				"error":          rbErr.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Withdrawal rejected and refunded", map[string]any{"transaction_id": txnID})
	return nil
}

// applyMovement runs one balance change plus its ledger entry in a
// transaction
func (s *Service) applyMovement(ctx context.Context, userID string, amountCents int64, txnType entity.TransactionType, status entity.TransactionStatus) (*entity.Transaction, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := func() (*entity.Transaction, error) {
		if _, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, amountCents); err != nil {
			return nil, err
		}

		txn, err := entity.NewTransaction(uuid.NewString(), userID, amountCents,
			txnType, status, "", s.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return nil, err
		}
		return txn, nil
	}()
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back balance movement", map[string]any{
				"user_id": userID,
				"error":   rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return txn, nil
}
