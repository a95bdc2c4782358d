package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance      = 4001
	CodeInvalidAmount            = 4002
	CodeInvalidStake             = 4003
	CodeInvalidScore             = 4004
	CodeDuplicateOpenBet         = 4005
	CodeMarketClosed             = 4006
	CodeBettingWindowClosed      = 4007
	CodeCancellationWindowClosed = 4008
	CodeOutcomeUnavailable       = 4009
	CodeBetAlreadyResolved       = 4010
	CodeMatchAlreadySettled      = 4011
	CodeInvalidRequest           = 4012
	CodeConstraintViolation      = 4013
	CodeNotFound                 = 4040
	CodeNotOwner                 = 4030
	CodeUserLocked               = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidStake is returned when the stake is outside the configured bounds
	ErrInvalidStake = errors.New("stake outside allowed bounds")

	// ErrInsufficientBalance is returned when a balance cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicateOpenBet is returned when the user already holds an open bet on the match
	ErrDuplicateOpenBet = errors.New("an open bet already exists for this match")

	// ErrMarketClosed is returned when the match no longer accepts bets by status
	ErrMarketClosed = errors.New("market is closed for this match")

	// ErrBettingWindowClosed is returned inside the pre-match betting cutoff
	ErrBettingWindowClosed = errors.New("betting window has closed")

	// ErrCancellationWindowClosed is returned inside the cancellation cutoff
	ErrCancellationWindowClosed = errors.New("cancellation window has closed")

	// ErrOutcomeUnavailable is returned when the chosen market carries no odds on the match
	ErrOutcomeUnavailable = errors.New("outcome is not offered for this match")

	// ErrBetAlreadyResolved is returned when a bet has already left OPEN
	ErrBetAlreadyResolved = errors.New("bet is no longer open")

	// ErrMatchAlreadySettled is returned on a second settlement attempt
	ErrMatchAlreadySettled = errors.New("match has already been settled")

	// ErrInvalidScore is returned for an unparseable final score
	ErrInvalidScore = errors.New("invalid score format")

	// ErrInvalidAmount is returned when a monetary amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user identifier is empty or malformed
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidUsername is returned when the username is empty
	ErrInvalidUsername = errors.New("username cannot be empty")

	// ErrInvalidRole is returned for an unknown role value
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidMatchData is returned for malformed match input
	ErrInvalidMatchData = errors.New("invalid match data")

	// ErrInvalidMatchTransition is returned for a disallowed lifecycle transition
	ErrInvalidMatchTransition = errors.New("invalid match state transition")

	// ErrNotBetOwner is returned when a caller acts on a bet they do not own
	ErrNotBetOwner = errors.New("bet belongs to another user")

	// ErrWithdrawalNotPending is returned when approving or rejecting a
	// withdrawal request that is not pending
	ErrWithdrawalNotPending = errors.New("withdrawal request is not pending")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrMatchNotFound is returned when the requested match doesn't exist
	ErrMatchNotFound = errors.New("match not found")

	// ErrBetNotFound is returned when the requested bet doesn't exist
	ErrBetNotFound = errors.New("bet not found")

	// ErrTransactionNotFound is returned when the requested ledger entry doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDuplicateUser is returned when creating a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserLocked is returned when a balance row is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidStake):
		return CodeInvalidStake
	case errors.Is(err, ErrInvalidScore):
		return CodeInvalidScore
	case errors.Is(err, ErrDuplicateOpenBet):
		return CodeDuplicateOpenBet
	case errors.Is(err, ErrMarketClosed):
		return CodeMarketClosed
	case errors.Is(err, ErrBettingWindowClosed):
		return CodeBettingWindowClosed
	case errors.Is(err, ErrCancellationWindowClosed):
		return CodeCancellationWindowClosed
	case errors.Is(err, ErrOutcomeUnavailable):
		return CodeOutcomeUnavailable
	case errors.Is(err, ErrBetAlreadyResolved), errors.Is(err, ErrWithdrawalNotPending):
		return CodeBetAlreadyResolved
	case errors.Is(err, ErrMatchAlreadySettled), errors.Is(err, ErrInvalidMatchTransition):
		return CodeMatchAlreadySettled
	case errors.Is(err, ErrNotBetOwner):
		return CodeNotOwner
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrDuplicateUser):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidMatchData):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError carries the balance details for logging
type InsufficientBalanceError struct {
	UserID      string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// WagerError represents a failed wager-engine operation with its inputs
type WagerError struct {
	UserID  string
	MatchID string
	Choice  string
	Stake   string
	Reason  string
	Err     error
}

// Error implements the error interface
func (e *WagerError) Error() string {
	return fmt.Sprintf("wager failed for user %s on match %s (%s, stake %s): %s - %v",
		e.UserID, e.MatchID, e.Choice, e.Stake, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *WagerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WagerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "wager_error",
		"user_id":    e.UserID,
		"match_id":   e.MatchID,
		"choice":     e.Choice,
		"stake":      e.Stake,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewWagerError creates a detailed wager error
func NewWagerError(userID, matchID, choice, stake, reason string, err error) error {
	return &WagerError{
		UserID:  userID,
		MatchID: matchID,
		Choice:  choice,
		Stake:   stake,
		Reason:  reason,
		Err:     err,
	}
}

// IsInsufficientBalanceError checks if the error relates to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsDuplicateOpenBetError checks if the error is a duplicate open bet rejection
func IsDuplicateOpenBetError(err error) bool {
	return errors.Is(err, ErrDuplicateOpenBet)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrMatchNotFound) ||
		errors.Is(err, ErrBetNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsUserLockedError checks if the error is related to a locked balance row
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsWindowError checks if the error is a betting or cancellation window rejection
func IsWindowError(err error) bool {
	return errors.Is(err, ErrBettingWindowClosed) ||
		errors.Is(err, ErrCancellationWindowClosed)
}
