package wager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
)

func TestBetQueries(t *testing.T) {
	openBet := entity.Bet{
		ID:      "bet-1",
		UserID:  "user-1",
		MatchID: "match-1",
		Choice:  entity.OutcomeHome,
		Status:  entity.BetOpen,
	}

	t.Run("ListUserBets delegates", func(t *testing.T) {
		m := newWagerMocks(t)
		ctx := context.Background()

		m.uow.EXPECT().GetBetRepository(ctx).Return(m.betRepo)
		m.betRepo.EXPECT().ListByUser(ctx, "user-1").Return([]entity.Bet{openBet}, nil)

		bets, err := m.service().ListUserBets(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, bets, 1)
		assert.Equal(t, "bet-1", bets[0].ID)
	})

	t.Run("ListMatchBets delegates", func(t *testing.T) {
		m := newWagerMocks(t)
		ctx := context.Background()

		m.uow.EXPECT().GetBetRepository(ctx).Return(m.betRepo)
		m.betRepo.EXPECT().ListByMatch(ctx, "match-1").Return([]entity.Bet{openBet}, nil)

		bets, err := m.service().ListMatchBets(ctx, "match-1")

		require.NoError(t, err)
		require.Len(t, bets, 1)
	})

	t.Run("ListRecentBets defaults the limit", func(t *testing.T) {
		m := newWagerMocks(t)
		ctx := context.Background()

		m.uow.EXPECT().GetBetRepository(mock.Anything).Return(m.betRepo)
		m.betRepo.EXPECT().ListRecent(ctx, 50).Return([]entity.Bet{openBet}, nil)

		bets, err := m.service().ListRecentBets(ctx, 0)

		require.NoError(t, err)
		require.Len(t, bets, 1)
	})

	t.Run("ListRecentBets passes an explicit limit", func(t *testing.T) {
		m := newWagerMocks(t)
		ctx := context.Background()

		m.uow.EXPECT().GetBetRepository(mock.Anything).Return(m.betRepo)
		m.betRepo.EXPECT().ListRecent(ctx, 10).Return(nil, nil)

		bets, err := m.service().ListRecentBets(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, bets)
	})

	t.Run("GetBet hides other users' bets behind an ownership error", func(t *testing.T) {
		m := newWagerMocks(t)
		ctx := context.Background()

		theirs := openBet
		theirs.UserID = "user-2"

		m.uow.EXPECT().GetBetRepository(ctx).Return(m.betRepo)
		m.betRepo.EXPECT().GetByID(ctx, "bet-1").Return(&theirs, nil)

		bet, err := m.service().GetBet(ctx, "user-1", "bet-1")

		assert.Nil(t, bet)
		assert.ErrorIs(t, err, errs.ErrNotBetOwner)
	})
}
