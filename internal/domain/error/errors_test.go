package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidStake", ErrInvalidStake, 4003},
		{"InvalidScore", ErrInvalidScore, 4004},
		{"DuplicateOpenBet", ErrDuplicateOpenBet, 4005},
		{"MarketClosed", ErrMarketClosed, 4006},
		{"BettingWindowClosed", ErrBettingWindowClosed, 4007},
		{"CancellationWindowClosed", ErrCancellationWindowClosed, 4008},
		{"OutcomeUnavailable", ErrOutcomeUnavailable, 4009},
		{"BetAlreadyResolved", ErrBetAlreadyResolved, 4010},
		{"MatchAlreadySettled", ErrMatchAlreadySettled, 4011},
		{"NotBetOwner", ErrNotBetOwner, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"MatchNotFound", ErrMatchNotFound, 4040},
		{"BetNotFound", ErrBetNotFound, 4040},
		{"UserLocked", ErrUserLocked, 4230},
		{"ConstraintViolation", ErrConstraintViolation, 4013},
		{"InvalidRequest", ErrInvalidRequest, 4012},
		{"DatabaseConnection", ErrDatabaseConnection, 5000},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidStake), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("u-789", "30.00", "15.00")
	if err == nil {
		t.Fatal("NewInsufficientBalanceError returned nil")
	}

	expectedErrMsg := "insufficient balance for user u-789: required 30.00, available 15.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}

	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError(err) = false, want true")
	}

	var detailed *InsufficientBalanceError
	if !errors.As(err, &detailed) {
		t.Fatalf("errors.As failed: not an *InsufficientBalanceError")
	}
	fields := detailed.LogFields()
	if fields["user_id"] != "u-789" {
		t.Errorf("LogFields user_id = %v, want u-789", fields["user_id"])
	}
	if fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInsufficientBalance)
	}
}

func TestWagerError(t *testing.T) {
	baseErr := ErrBettingWindowClosed
	wagerErr := NewWagerError("u-1", "m-9", "MS1", "25.00", "window check failed", baseErr)

	expectedErrMsg := "wager failed for user u-1 on match m-9 (MS1, stake 25.00): window check failed - betting window has closed"
	if wagerErr.Error() != expectedErrMsg {
		t.Errorf("WagerError.Error() = %s, want %s", wagerErr.Error(), expectedErrMsg)
	}

	if !errors.Is(wagerErr, baseErr) {
		t.Errorf("errors.Is(wagerErr, baseErr) = false, want true")
	}

	var cast *WagerError
	if !errors.As(wagerErr, &cast) {
		t.Fatalf("errors.As failed: not a *WagerError")
	}
	if cast.MatchID != "m-9" {
		t.Errorf("MatchID = %s, want m-9", cast.MatchID)
	}
	if cast.LogFields()["error_code"] != CodeBettingWindowClosed {
		t.Errorf("LogFields error_code = %v, want %d", cast.LogFields()["error_code"], CodeBettingWindowClosed)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsInsufficientBalanceError(ErrInvalidUserID) {
		t.Errorf("IsInsufficientBalanceError(ErrInvalidUserID) = true, want false")
	}

	if IsDuplicateOpenBetError(ErrInvalidAmount) {
		t.Errorf("IsDuplicateOpenBetError(ErrInvalidAmount) = true, want false")
	}

	wrappedDuplicate := fmt.Errorf("wrapped: %w", ErrDuplicateOpenBet)
	if !IsDuplicateOpenBetError(wrappedDuplicate) {
		t.Errorf("IsDuplicateOpenBetError(wrappedDuplicate) = false, want true")
	}

	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrMatchNotFound)) {
		t.Errorf("IsNotFoundError(wrapped ErrMatchNotFound) = false, want true")
	}
	if IsNotFoundError(ErrMarketClosed) {
		t.Errorf("IsNotFoundError(ErrMarketClosed) = true, want false")
	}

	if !IsWindowError(ErrCancellationWindowClosed) {
		t.Errorf("IsWindowError(ErrCancellationWindowClosed) = false, want true")
	}
	if IsWindowError(ErrMarketClosed) {
		t.Errorf("IsWindowError(ErrMarketClosed) = true, want false")
	}
}
