package settlement

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
	mockcache "github.com/parlayhq/wager-engine/mocks/port/cache"
	mockcore "github.com/parlayhq/wager-engine/mocks/port/core"
	mockevents "github.com/parlayhq/wager-engine/mocks/port/events"
	mockpersistence "github.com/parlayhq/wager-engine/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC)

type settlementMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	userRepo     *mockpersistence.MockUserRepository
	matchRepo    *mockpersistence.MockMatchRepository
	betRepo      *mockpersistence.MockBetRepository
	txnRepo      *mockpersistence.MockTransactionRepository
	matchCache   *mockcache.MockMatchCache
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
	metrics      *mockcore.MockMetrics
	publisher    *mockevents.MockPublisher
}

func newSettlementMocks(t *testing.T) *settlementMocks {
	m := &settlementMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		userRepo:     mockpersistence.NewMockUserRepository(t),
		matchRepo:    mockpersistence.NewMockMatchRepository(t),
		betRepo:      mockpersistence.NewMockBetRepository(t),
		txnRepo:      mockpersistence.NewMockTransactionRepository(t),
		matchCache:   mockcache.NewMockMatchCache(t),
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

func (m *settlementMocks) service() *Service {
	return NewService(m.uow, m.matchCache, m.timeProvider, m.logger, m.metrics, m.publisher)
}

func (m *settlementMocks) expectTx(ctx context.Context) {
	txCtx := context.WithValue(ctx, struct{ k string }{"tx"}, true)
	m.uow.EXPECT().Begin(ctx).Return(txCtx, nil)
	m.uow.EXPECT().GetMatchRepository(mock.Anything).Return(m.matchRepo).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().GetBetRepository(mock.Anything).Return(m.betRepo).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txnRepo).Maybe()
}

func liveMatch() *entity.Match {
	draw := decimal.NewFromFloat(3.40)
	over := decimal.NewFromFloat(1.90)
	under := decimal.NewFromFloat(1.90)
	return &entity.Match{
		ID:        "match-1",
		TeamA:     "Besiktas",
		TeamB:     "Trabzonspor",
		Sport:     "football",
		StartTime: fixedNow.Add(-2 * time.Hour),
		Status:    entity.MatchLive,
		Odds: entity.MatchOdds{
			Home:  decimal.NewFromFloat(1.85),
			Away:  decimal.NewFromFloat(2.10),
			Draw:  &draw,
			Over:  &over,
			Under: &under,
		},
		CreatedAt: fixedNow.Add(-48 * time.Hour),
		UpdatedAt: fixedNow.Add(-2 * time.Hour),
	}
}

func bet(id, userID string, choice entity.Outcome, stakeCents, payoutCents int64) entity.Bet {
	return entity.Bet{
		ID:          id,
		UserID:      userID,
		MatchID:     "match-1",
		Choice:      choice,
		StakeCents:  stakeCents,
		PayoutCents: payoutCents,
		Status:      entity.BetOpen,
		CreatedAt:   fixedNow.Add(-3 * time.Hour),
	}
}

func TestSettleMatch_ResolvesWinnersAndLosers(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := liveMatch()

	// 2-1: HOME and OVER win, AWAY and UNDER lose
	openBets := []entity.Bet{
		bet("bet-home", "user-1", entity.OutcomeHome, 250000, 462500),
		bet("bet-away", "user-2", entity.OutcomeAway, 100000, 210000),
		bet("bet-over", "user-3", entity.OutcomeOver, 200000, 380000),
		bet("bet-under", "user-4", entity.OutcomeUnder, 100000, 190000),
	}

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "match-1").Return(match, nil)
	m.matchRepo.EXPECT().Update(mock.Anything, match).Return(nil)
	m.betRepo.EXPECT().ListOpenByMatch(mock.Anything, "match-1").Return(openBets, nil)

	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-home", entity.BetWon, fixedNow).Return(nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(462500)).Return(nil, nil)
	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-away", entity.BetLost, fixedNow).Return(nil)
	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-over", entity.BetWon, fixedNow).Return(nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-3", int64(380000)).Return(nil, nil)
	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-under", entity.BetLost, fixedNow).Return(nil)

	var winTxns []*entity.Transaction
	m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, txn *entity.Transaction) {
		winTxns = append(winTxns, txn)
	}).Return(nil)

	m.uow.EXPECT().Commit(mock.Anything).Return(nil)
	m.metrics.EXPECT().MatchSettled(2, 2).Return()
	m.metrics.EXPECT().PayoutCredited(int64(842500)).Return()
	m.matchCache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishMatchSettled(mock.Anything, mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "match-1", 2, 1)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "match-1", summary.MatchID)
	assert.Equal(t, "2-1", summary.Result)
	assert.Equal(t, 2, summary.WonBets)
	assert.Equal(t, 2, summary.LostBets)
	assert.Equal(t, int64(842500), summary.PaidOutCents)

	assert.Equal(t, entity.MatchEnded, match.Status)
	require.NotNil(t, match.ScoreA)
	require.NotNil(t, match.ScoreB)
	assert.Equal(t, 2, *match.ScoreA)
	assert.Equal(t, 1, *match.ScoreB)

	require.Len(t, winTxns, 2)
	for _, txn := range winTxns {
		assert.Equal(t, entity.TxnBetWin, txn.Type)
		assert.Equal(t, entity.TxnStatusCompleted, txn.Status)
	}
	assert.Equal(t, int64(462500), winTxns[0].AmountCents)
	assert.Equal(t, int64(380000), winTxns[1].AmountCents)
}

func TestSettleMatch_GoallessDraw(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := liveMatch()

	// 0-0: DRAW and UNDER win, KG_YOK would too; HOME loses
	openBets := []entity.Bet{
		bet("bet-draw", "user-1", entity.OutcomeDraw, 100000, 340000),
		bet("bet-home", "user-2", entity.OutcomeHome, 100000, 185000),
	}

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "match-1").Return(match, nil)
	m.matchRepo.EXPECT().Update(mock.Anything, match).Return(nil)
	m.betRepo.EXPECT().ListOpenByMatch(mock.Anything, "match-1").Return(openBets, nil)

	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-draw", entity.BetWon, fixedNow).Return(nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(340000)).Return(nil, nil)
	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-home", entity.BetLost, fixedNow).Return(nil)
	m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	m.uow.EXPECT().Commit(mock.Anything).Return(nil)
	m.metrics.EXPECT().MatchSettled(1, 1).Return()
	m.metrics.EXPECT().PayoutCredited(int64(340000)).Return()
	m.matchCache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishMatchSettled(mock.Anything, mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "match-1", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, "0-0", summary.Result)
	assert.Equal(t, 1, summary.WonBets)
	assert.Equal(t, 1, summary.LostBets)
}

func TestSettleMatch_NoOpenBets(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := liveMatch()

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "match-1").Return(match, nil)
	m.matchRepo.EXPECT().Update(mock.Anything, match).Return(nil)
	m.betRepo.EXPECT().ListOpenByMatch(mock.Anything, "match-1").Return([]entity.Bet{}, nil)

	m.uow.EXPECT().Commit(mock.Anything).Return(nil)
	m.metrics.EXPECT().MatchSettled(0, 0).Return()
	m.matchCache.EXPECT().Invalidate(mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishMatchSettled(mock.Anything, mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "match-1", 1, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.WonBets)
	assert.Equal(t, 0, summary.LostBets)
	assert.Equal(t, int64(0), summary.PaidOutCents)
}

func TestSettleMatch_AlreadySettled(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := liveMatch()
	match.Status = entity.MatchEnded

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "match-1").Return(match, nil)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "match-1", 2, 1)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, errs.ErrMatchAlreadySettled)
}

func TestSettleMatch_NegativeScore(t *testing.T) {
	m := newSettlementMocks(t)

	summary, err := m.service().SettleMatch(context.Background(), "match-1", -1, 0)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, errs.ErrInvalidScore)
}

func TestSettleMatch_MatchNotFound(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "missing").Return(nil, errs.ErrMatchNotFound)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "missing", 1, 1)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, errs.ErrMatchNotFound)
}

func TestSettleMatch_PayoutFailureRollsBack(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := liveMatch()
	dbErr := errors.New("connection reset")

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "match-1").Return(match, nil)
	m.matchRepo.EXPECT().Update(mock.Anything, match).Return(nil)
	m.betRepo.EXPECT().ListOpenByMatch(mock.Anything, "match-1").Return([]entity.Bet{
		bet("bet-home", "user-1", entity.OutcomeHome, 250000, 462500),
	}, nil)
	m.betRepo.EXPECT().Resolve(mock.Anything, "bet-home", entity.BetWon, fixedNow).Return(nil)
	m.userRepo.EXPECT().AdjustBalance(mock.Anything, "user-1", int64(462500)).Return(nil, dbErr)
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "match-1", 2, 1)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, dbErr)
}

func TestSettleMatch_CacheFailureDoesNotFailSettlement(t *testing.T) {
	m := newSettlementMocks(t)
	ctx := context.Background()
	m.expectTx(ctx)

	match := liveMatch()

	m.matchRepo.EXPECT().GetForUpdate(mock.Anything, "match-1").Return(match, nil)
	m.matchRepo.EXPECT().Update(mock.Anything, match).Return(nil)
	m.betRepo.EXPECT().ListOpenByMatch(mock.Anything, "match-1").Return([]entity.Bet{}, nil)
	m.uow.EXPECT().Commit(mock.Anything).Return(nil)
	m.metrics.EXPECT().MatchSettled(0, 0).Return()
	m.matchCache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down"))
	m.publisher.EXPECT().PublishMatchSettled(mock.Anything, mock.Anything).Return(nil)

	summary, err := m.service().SettleMatch(ctx, "match-1", 3, 0)

	require.NoError(t, err)
	assert.Equal(t, "3-0", summary.Result)
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHome int
		wantAway int
		wantErr  bool
	}{
		{name: "Simple score", input: "2-1", wantHome: 2, wantAway: 1},
		{name: "Goalless", input: "0-0"},
		{name: "Double digits", input: "10-0", wantHome: 10},
		{name: "Surrounding whitespace", input: " 3-2 ", wantHome: 3, wantAway: 2},
		{name: "Spaces around the dash", input: "3 - 2", wantHome: 3, wantAway: 2},
		{name: "Missing half", input: "2-", wantErr: true},
		{name: "Too many parts", input: "2-1-0", wantErr: true},
		{name: "Not a number", input: "two-one", wantErr: true},
		{name: "Wrong separator", input: "2:1", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away, err := ParseScore(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidScore)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHome, home)
			assert.Equal(t, tt.wantAway, away)
		})
	}
}
