package entity

import (
	"time"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// TransactionType classifies a ledger entry by the operation that wrote it
type TransactionType string

const (
	TxnBetPlaced       TransactionType = "BET_PLACED"
	TxnBetRefund       TransactionType = "BET_REFUND"
	TxnBetWin          TransactionType = "BET_WIN"
	TxnDeposit         TransactionType = "DEPOSIT"
	TxnWithdrawRequest TransactionType = "WITHDRAW_REQUEST"
	TxnWithdrawRefund  TransactionType = "WITHDRAW_REFUND"
)

// TransactionStatus defines possible status values for a ledger entry.
// Only withdrawal requests ever change status after creation.
type TransactionStatus string

const (
	TxnStatusCompleted TransactionStatus = "COMPLETED"
	TxnStatusPending   TransactionStatus = "PENDING"
	TxnStatusRejected  TransactionStatus = "REJECTED"
)

// Transaction is an append-only audit record of a balance-affecting
// operation. AmountCents is signed: debits are negative, credits
// positive, so a user's entries sum to their net ledger movement.
type Transaction struct {
	ID          string
	UserID      string
	AmountCents int64
	Type        TransactionType
	Status      TransactionStatus
	Reference   string
	CreatedAt   time.Time
}

// NewTransaction creates a ledger entry with basic validation
func NewTransaction(id, userID string, amountCents int64, txnType TransactionType, status TransactionStatus, reference string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amountCents == 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		ID:          id,
		UserID:      userID,
		AmountCents: amountCents,
		Type:        txnType,
		Status:      status,
		Reference:   reference,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// Amount returns the signed amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountCents)
}

// IsPendingWithdrawal reports whether this entry is an approvable
// withdrawal request
func (t *Transaction) IsPendingWithdrawal() bool {
	return t.Type == TxnWithdrawRequest && t.Status == TxnStatusPending
}
