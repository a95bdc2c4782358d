package wager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	mockcore "github.com/parlayhq/wager-engine/mocks/port/core"
	mockevents "github.com/parlayhq/wager-engine/mocks/port/events"
	mockpersistence "github.com/parlayhq/wager-engine/mocks/port/persistence"
)

// fixedNow is the reference clock for every wager test
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type wagerMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	userRepo     *mockpersistence.MockUserRepository
	matchRepo    *mockpersistence.MockMatchRepository
	betRepo      *mockpersistence.MockBetRepository
	txnRepo      *mockpersistence.MockTransactionRepository
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
	metrics      *mockcore.MockMetrics
	publisher    *mockevents.MockPublisher
}

func newWagerMocks(t *testing.T) *wagerMocks {
	m := &wagerMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		userRepo:     mockpersistence.NewMockUserRepository(t),
		matchRepo:    mockpersistence.NewMockMatchRepository(t),
		betRepo:      mockpersistence.NewMockBetRepository(t),
		txnRepo:      mockpersistence.NewMockTransactionRepository(t),
		timeProvider: mockcore.NewMockTimeProvider(t),
		logger:       mockcore.NewMockLogger(t),
		metrics:      mockcore.NewMockMetrics(t),
		publisher:    mockevents.NewMockPublisher(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	return m
}

func (m *wagerMocks) service() *Service {
	return NewService(m.uow, m.timeProvider, m.logger, m.metrics, m.publisher, DefaultConfig())
}

// expectTx wires Begin and the repository getters on the unit of work
func (m *wagerMocks) expectTx(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, struct{ k string }{"tx"}, true)
	m.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
	m.uow.EXPECT().GetMatchRepository(mock.Anything).Return(m.matchRepo).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().GetBetRepository(mock.Anything).Return(m.betRepo).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txnRepo).Maybe()
	return txCtx
}

func ptrDecimal(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// pendingMatch starts two hours from the fixed clock, comfortably
// outside the thirty minute betting cutoff
func pendingMatch() *entity.Match {
	return &entity.Match{
		ID:        "match-1",
		TeamA:     "Galatasaray",
		TeamB:     "Fenerbahce",
		Sport:     "football",
		StartTime: fixedNow.Add(2 * time.Hour),
		Status:    entity.MatchPending,
		Odds: entity.MatchOdds{
			Home:  decimal.NewFromFloat(1.85),
			Away:  decimal.NewFromFloat(2.10),
			Draw:  ptrDecimal(3.40),
			Over:  ptrDecimal(1.90),
			Under: ptrDecimal(1.90),
		},
		CreatedAt: fixedNow.Add(-24 * time.Hour),
		UpdatedAt: fixedNow.Add(-24 * time.Hour),
	}
}

// userWithBalance builds a test user holding the given balance
func (m *wagerMocks) userWithBalance(balance string) *entity.User {
	user, err := entity.NewUser("user-1", "kemal", balance, entity.RoleUser, m.timeProvider)
	if err != nil {
		panic(err)
	}
	return user
}

func placeReq() PlaceBetRequest {
	return PlaceBetRequest{
		UserID:  "user-1",
		MatchID: "match-1",
		Choice:  "HOME",
		Amount:  "2500.00",
	}
}

func TestPlaceBet_Success(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(pendingMatch(), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-250000)).Return(m.userWithBalance("100000.00"), nil)

	var createdBet *entity.Bet
	m.betRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, bet *entity.Bet) {
		createdBet = bet
	}).Return(nil)

	var createdTxn *entity.Transaction
	m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, txn *entity.Transaction) {
		createdTxn = txn
	}).Return(nil)

	m.uow.EXPECT().Commit(mock.Anything).Return(nil)
	m.metrics.EXPECT().BetPlaced(int64(250000)).Return()
	m.publisher.EXPECT().PublishBetPlaced(mock.Anything, mock.Anything).Return(nil)

	bet, err := m.service().PlaceBet(ctx, placeReq())

	require.NoError(t, err)
	require.NotNil(t, bet)
	assert.Equal(t, "user-1", bet.UserID)
	assert.Equal(t, "match-1", bet.MatchID)
	assert.Equal(t, entity.OutcomeHome, bet.Choice)
	assert.Equal(t, entity.BetOpen, bet.Status)
	assert.Equal(t, int64(250000), bet.StakeCents)
	// 2500.00 at 1.85 freezes a 4625.00 payout
	assert.Equal(t, int64(462500), bet.PayoutCents)
	assert.Equal(t, "4625.00", bet.Payout())

	require.NotNil(t, createdBet)
	assert.Equal(t, createdBet.ID, bet.ID)

	require.NotNil(t, createdTxn)
	assert.Equal(t, int64(-250000), createdTxn.AmountCents)
	assert.Equal(t, entity.TxnBetPlaced, createdTxn.Type)
	assert.Equal(t, entity.TxnStatusCompleted, createdTxn.Status)
	assert.Equal(t, bet.ID, createdTxn.Reference)
}

func TestPlaceBet_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlaceBetRequest)
		wantErr error
	}{
		{
			name:    "Unknown choice",
			mutate:  func(r *PlaceBetRequest) { r.Choice = "CORNERS_OVER" },
			wantErr: errs.ErrOutcomeUnavailable,
		},
		{
			name:    "Malformed amount",
			mutate:  func(r *PlaceBetRequest) { r.Amount = "25,00" },
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:    "Negative amount",
			mutate:  func(r *PlaceBetRequest) { r.Amount = "-2500.00" },
			wantErr: errs.ErrNegativeAmount,
		},
		{
			name:    "Stake below minimum",
			mutate:  func(r *PlaceBetRequest) { r.Amount = "999.99" },
			wantErr: errs.ErrInvalidStake,
		},
		{
			name:    "Stake above maximum",
			mutate:  func(r *PlaceBetRequest) { r.Amount = "10000.01" },
			wantErr: errs.ErrInvalidStake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newWagerMocks(t)
			req := placeReq()
			tt.mutate(&req)

			bet, err := m.service().PlaceBet(context.Background(), req)

			assert.Nil(t, bet)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlaceBet_StakeBoundsInclusive(t *testing.T) {
	// Exactly 1000.00 and exactly 10000.00 are both accepted
	for _, amount := range []string{"1000.00", "10000.00"} {
		t.Run(amount, func(t *testing.T) {
			m := newWagerMocks(t)
			ctx := context.Background()
			m.expectTx(ctx)

			stakeCents, err := entity.ParseAmount(amount)
			require.NoError(t, err)

			m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(pendingMatch(), nil)
			m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
			m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
			m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", -stakeCents).Return(m.userWithBalance("100000.00"), nil)
			m.betRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			m.uow.EXPECT().Commit(mock.Anything).Return(nil)
			m.metrics.EXPECT().BetPlaced(stakeCents).Return()
			m.publisher.EXPECT().PublishBetPlaced(mock.Anything, mock.Anything).Return(nil)

			req := placeReq()
			req.Amount = amount
			bet, err := m.service().PlaceBet(ctx, req)

			require.NoError(t, err)
			assert.Equal(t, stakeCents, bet.StakeCents)
		})
	}
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	// 1500.00 on hand, below the 2500.00 stake
	poor := m.userWithBalance("1500.00")

	// No match expectation: the balance check fails before the match
	// is ever read
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(poor, nil)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	bet, err := m.service().PlaceBet(ctx, placeReq())

	assert.Nil(t, bet)
	require.Error(t, err)
	assert.True(t, errs.IsInsufficientBalanceError(err))
	assert.Contains(t, err.Error(), "user-1")
	assert.Contains(t, err.Error(), "2500.00")
	assert.Contains(t, err.Error(), "1500.00")
}

func TestPlaceBet_DuplicateOpenBet(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(true, nil)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	bet, err := m.service().PlaceBet(ctx, placeReq())

	assert.Nil(t, bet)
	assert.ErrorIs(t, err, errs.ErrDuplicateOpenBet)
}

func TestPlaceBet_MatchNotFoundAfterUserChecks(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	// An unknown match only surfaces once balance and duplicate checks
	// have passed
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
	m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(nil, errs.ErrMatchNotFound)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	bet, err := m.service().PlaceBet(ctx, placeReq())

	assert.Nil(t, bet)
	assert.ErrorIs(t, err, errs.ErrMatchNotFound)
}

func TestPlaceBet_MatchStateAndWindow(t *testing.T) {
	tests := []struct {
		name    string
		match   func() *entity.Match
		wantErr error
	}{
		{
			name: "Ended match",
			match: func() *entity.Match {
				match := pendingMatch()
				match.Status = entity.MatchEnded
				return match
			},
			wantErr: errs.ErrMarketClosed,
		},
		{
			name: "Inside betting cutoff",
			match: func() *entity.Match {
				match := pendingMatch()
				match.StartTime = fixedNow.Add(30 * time.Minute)
				return match
			},
			wantErr: errs.ErrBettingWindowClosed,
		},
		{
			name: "Already kicked off and live stays open before the cutoff boundary",
			match: func() *entity.Match {
				match := pendingMatch()
				match.Status = entity.MatchLive
				match.StartTime = fixedNow.Add(31 * time.Minute)
				return match
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newWagerMocks(t)
			ctx := context.Background()
			m.expectTx(ctx)

			m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(tt.match(), nil)
			m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
			m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil).Maybe()

			if tt.wantErr == nil {
				m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-250000)).Return(m.userWithBalance("100000.00"), nil)
				m.betRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				m.uow.EXPECT().Commit(mock.Anything).Return(nil)
				m.metrics.EXPECT().BetPlaced(int64(250000)).Return()
				m.publisher.EXPECT().PublishBetPlaced(mock.Anything, mock.Anything).Return(nil)
			} else {
				m.uow.EXPECT().Rollback(mock.Anything).Return(nil)
			}

			bet, err := m.service().PlaceBet(ctx, placeReq())

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, bet)
			} else {
				assert.Nil(t, bet)
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPlaceBet_MarketNotOffered(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := pendingMatch()
	match.Odds.Draw = nil // DRAW market closed for this match

	m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(match, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	req := placeReq()
	req.Choice = "DRAW"
	bet, err := m.service().PlaceBet(ctx, req)

	assert.Nil(t, bet)
	assert.ErrorIs(t, err, errs.ErrOutcomeUnavailable)
}

func TestPlaceBet_RollsBackOnRepositoryError(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	dbErr := errors.New("connection reset")

	m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(pendingMatch(), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-250000)).Return(nil, dbErr)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	bet, err := m.service().PlaceBet(ctx, placeReq())

	assert.Nil(t, bet)
	assert.ErrorIs(t, err, dbErr)
}

func TestPlaceBet_CommitFailureSurfacesError(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	commitErr := errors.New("commit failed")

	m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(pendingMatch(), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-250000)).Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.uow.EXPECT().Commit(mock.Anything).Return(commitErr)

	bet, err := m.service().PlaceBet(ctx, placeReq())

	assert.Nil(t, bet)
	assert.ErrorIs(t, err, commitErr)
}

func TestPlaceBet_PublishFailureDoesNotFailPlacement(t *testing.T) {
	m := newWagerMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	m.matchRepo.EXPECT().GetShared(mock.Anything, "match-1").Return(pendingMatch(), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().HasOpenBet(mock.Anything, "user-1", "match-1").Return(false, nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(-250000)).Return(m.userWithBalance("100000.00"), nil)
	m.betRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.uow.EXPECT().Commit(mock.Anything).Return(nil)
	m.metrics.EXPECT().BetPlaced(int64(250000)).Return()
	m.publisher.EXPECT().PublishBetPlaced(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	bet, err := m.service().PlaceBet(ctx, placeReq())

	require.NoError(t, err)
	assert.NotNil(t, bet)
}
