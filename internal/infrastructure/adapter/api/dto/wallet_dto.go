package dto

import (
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID  string `json:"userId"`
	Balance string `json:"balance"`
}

// AmountRequest carries a decimal money amount, e.g. "2500.00"
type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse represents a ledger entry in API responses.
// Debits carry a negative amount.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    string    `json:"amount"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTransactionResponse maps a ledger entity to its API representation
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID,
		UserID:    txn.UserID,
		Amount:    entity.FormatCents(txn.AmountCents),
		Type:      string(txn.Type),
		Status:    string(txn.Status),
		Reference: txn.Reference,
		CreatedAt: txn.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of ledger entities
func ToTransactionResponses(txns []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		responses = append(responses, ToTransactionResponse(&txns[i]))
	}
	return responses
}
