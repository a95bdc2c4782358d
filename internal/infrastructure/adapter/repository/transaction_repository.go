package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func txnToModel(txn *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:          txn.ID,
		UserID:      txn.UserID,
		AmountCents: txn.AmountCents,
		Type:        string(txn.Type),
		Status:      string(txn.Status),
		Reference:   txn.Reference,
		CreatedAt:   txn.CreatedAt,
	}
}

func txnToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          txnModel.ID,
		UserID:      txnModel.UserID,
		AmountCents: txnModel.AmountCents,
		Type:        entity.TransactionType(txnModel.Type),
		Status:      entity.TransactionStatus(txnModel.Status),
		Reference:   txnModel.Reference,
		CreatedAt:   txnModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, txnID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": txnID,
		"error":          err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txnToModel(txn)).Error; err != nil {
		return r.handleDatabaseError("creating ledger entry", err, txn.ID)
	}
	return nil
}

// GetByID retrieves a ledger entry
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	if err := r.db.WithContext(ctx).First(&txnModel, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting ledger entry", err, id)
	}
	return txnToEntity(&txnModel), nil
}

// list runs a find with the given scope and converts the results
func (r *TransactionRepository) list(query *gorm.DB) ([]entity.Transaction, error) {
	var txnModels []model.Transaction
	if err := query.Find(&txnModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing ledger entries", err, "")
	}

	txns := make([]entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, *txnToEntity(&txnModels[i]))
	}
	return txns, nil
}

// ListByUser returns a user's ledger entries, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC"))
}

// ListRecent returns the newest entries across all users
func (r *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit))
}

// ListPendingWithdrawals returns PENDING WITHDRAW_REQUEST entries, oldest first
func (r *TransactionRepository) ListPendingWithdrawals(ctx context.Context) ([]entity.Transaction, error) {
	return r.list(r.db.WithContext(ctx).
		Where("type = ? AND status = ?",
			string(entity.TxnWithdrawRequest), string(entity.TxnStatusPending)).
		Order("created_at ASC"))
}

// UpdateStatus resolves a withdrawal request. The status predicate
// makes the PENDING check part of the write, so two concurrent reviews
// of the same request cannot both succeed.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(entity.TxnStatusPending)).
		Update("status", string(status))

	if result.Error != nil {
		return r.handleDatabaseError("updating ledger status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Withdrawal request already left PENDING", map[string]any{
			"transaction_id": id,
			"target":         string(status),
		})
		return errs.ErrWithdrawalNotPending
	}
	return nil
}

// CountPendingWithdrawals counts PENDING WITHDRAW_REQUEST entries
func (r *TransactionRepository) CountPendingWithdrawals(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("type = ? AND status = ?",
			string(entity.TxnWithdrawRequest), string(entity.TxnStatusPending)).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting pending withdrawals", err, "")
	}
	return count, nil
}

// SumAmountCents sums the signed amounts of entries matching type and status
func (r *TransactionRepository) SumAmountCents(ctx context.Context, txnType entity.TransactionType, status entity.TransactionStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("type = ? AND status = ?", string(txnType), string(status)).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing ledger amounts", err, "")
	}
	return total, nil
}
