package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating mutations across
// multiple repositories inside one database transaction. Every
// multi-step ledger mutation (bet placement, cancellation, settlement,
// withdrawal) runs between Begin and Commit so a failure anywhere rolls
// the whole effect back.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetMatchRepository returns a match repository bound to the current transaction
	GetMatchRepository(ctx context.Context) MatchRepository

	// GetBetRepository returns a bet repository bound to the current transaction
	GetBetRepository(ctx context.Context) BetRepository

	// GetTransactionRepository returns a ledger repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
