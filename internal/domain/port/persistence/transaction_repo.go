package persistence

import (
	"context"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// TransactionRepository defines persistence for the append-only ledger
// of balance-affecting operations. Records are never mutated except the
// status field of pending withdrawal requests.
type TransactionRepository interface {
	// Create appends a ledger entry
	Create(ctx context.Context, txn *entity.Transaction) error

	// GetByID retrieves a ledger entry
	//
	// Possible errors:
	// - ErrTransactionNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// ListByUser returns a user's ledger entries, newest first
	ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error)

	// ListRecent returns the newest entries across all users. Admin feed.
	ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error)

	// ListPendingWithdrawals returns PENDING WITHDRAW_REQUEST entries,
	// oldest first
	ListPendingWithdrawals(ctx context.Context) ([]entity.Transaction, error)

	// UpdateStatus resolves a withdrawal request. The update only
	// matches a row still in PENDING status, so concurrent reviews
	// serialize at the write.
	//
	// Possible errors:
	// - ErrWithdrawalNotPending: the request already left PENDING
	// - ErrDatabaseConnection
	UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) error

	// CountPendingWithdrawals counts PENDING WITHDRAW_REQUEST entries
	CountPendingWithdrawals(ctx context.Context) (int64, error)

	// SumAmountCents sums the signed amounts of entries matching type and
	// status. Admin overview aggregates.
	SumAmountCents(ctx context.Context, txnType entity.TransactionType, status entity.TransactionStatus) (int64, error)
}
