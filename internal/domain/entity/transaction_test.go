package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coremocks "github.com/parlayhq/wager-engine/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Debit entry", func(t *testing.T) {
		txn, err := NewTransaction("t-1", "u-1", -5000, TxnBetPlaced, TxnStatusCompleted, "b-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(-5000), txn.AmountCents)
		assert.Equal(t, "-50.00", txn.Amount())
		assert.Equal(t, TxnBetPlaced, txn.Type)
		assert.Equal(t, "b-1", txn.Reference)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Credit entry", func(t *testing.T) {
		txn, err := NewTransaction("t-2", "u-1", 9250, TxnBetWin, TxnStatusCompleted, "b-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "92.50", txn.Amount())
	})

	t.Run("Empty user rejected", func(t *testing.T) {
		_, err := NewTransaction("t-1", "", 100, TxnDeposit, TxnStatusCompleted, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		_, err := NewTransaction("t-1", "u-1", 0, TxnDeposit, TxnStatusCompleted, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestIsPendingWithdrawal(t *testing.T) {
	testCases := []struct {
		name    string
		txnType TransactionType
		status  TransactionStatus
		pending bool
	}{
		{"Pending request", TxnWithdrawRequest, TxnStatusPending, true},
		{"Completed request", TxnWithdrawRequest, TxnStatusCompleted, false},
		{"Rejected request", TxnWithdrawRequest, TxnStatusRejected, false},
		{"Pending status on other type", TxnDeposit, TxnStatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txn := &Transaction{Type: tc.txnType, Status: tc.status}
			assert.Equal(t, tc.pending, txn.IsPendingWithdrawal())
		})
	}
}
