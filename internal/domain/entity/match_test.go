package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coremocks "github.com/parlayhq/wager-engine/mocks/port/core"
)

func testOdds() MatchOdds {
	draw := decimal.NewFromFloat(3.40)
	over := decimal.NewFromFloat(1.90)
	under := decimal.NewFromFloat(1.90)
	return MatchOdds{
		Home:  decimal.NewFromFloat(1.85),
		Away:  decimal.NewFromFloat(2.10),
		Draw:  &draw,
		Over:  &over,
		Under: &under,
	}
}

func TestNewMatch(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	start := fixedTime.Add(24 * time.Hour)

	t.Run("Valid match creation", func(t *testing.T) {
		match, err := NewMatch("m-1", "Galatasaray", "Fenerbahce", "football", start, testOdds(), nil, mockTime)

		require.NoError(t, err)
		assert.Equal(t, MatchPending, match.Status)
		assert.Equal(t, "Galatasaray", match.TeamA)
		assert.Equal(t, fixedTime, match.CreatedAt)
		assert.Nil(t, match.ScoreA)
		assert.False(t, match.IsArchived())
	})

	t.Run("Empty team name rejected", func(t *testing.T) {
		_, err := NewMatch("m-1", "  ", "Fenerbahce", "football", start, testOdds(), nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidMatchData)
	})

	t.Run("Non-positive headline odds rejected", func(t *testing.T) {
		odds := testOdds()
		odds.Home = decimal.Zero
		_, err := NewMatch("m-1", "Galatasaray", "Fenerbahce", "football", start, odds, nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidMatchData)
	})
}

func TestMatchLine(t *testing.T) {
	m := &Match{}
	assert.True(t, m.Line().Equal(decimal.NewFromFloat(2.5)))

	custom := decimal.NewFromFloat(3.5)
	m.OverUnderLine = &custom
	assert.True(t, m.Line().Equal(custom))
}

func TestMatchOddsFor(t *testing.T) {
	odds := testOdds()

	t.Run("Offered markets", func(t *testing.T) {
		home, ok := odds.For(OutcomeHome)
		require.True(t, ok)
		assert.True(t, home.Equal(decimal.NewFromFloat(1.85)))

		draw, ok := odds.For(OutcomeDraw)
		require.True(t, ok)
		assert.True(t, draw.Equal(decimal.NewFromFloat(3.40)))
	})

	t.Run("Missing market", func(t *testing.T) {
		_, ok := odds.For(OutcomeBothScore)
		assert.False(t, ok)
	})

	t.Run("Unknown choice", func(t *testing.T) {
		_, ok := odds.For(Outcome("NOPE"))
		assert.False(t, ok)
	})
}

func TestMatchBettingWindows(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	bettingCutoff := 30 * time.Minute
	cancelCutoff := 3 * time.Hour

	match := &Match{Status: MatchPending, StartTime: start}

	t.Run("Accepts bets well before kickoff", func(t *testing.T) {
		now := start.Add(-31 * time.Minute)
		assert.True(t, match.CanAcceptBets(now, bettingCutoff))
	})

	t.Run("Rejects bets inside the cutoff", func(t *testing.T) {
		now := start.Add(-30 * time.Minute)
		assert.False(t, match.CanAcceptBets(now, bettingCutoff))

		now = start.Add(-5 * time.Minute)
		assert.False(t, match.CanAcceptBets(now, bettingCutoff))
	})

	t.Run("Rejects bets on ended match regardless of clock", func(t *testing.T) {
		ended := &Match{Status: MatchEnded, StartTime: start}
		now := start.Add(-24 * time.Hour)
		assert.False(t, ended.CanAcceptBets(now, bettingCutoff))
	})

	t.Run("Live match still accepts before the cutoff", func(t *testing.T) {
		// early-opened live streams can start before the listed time
		live := &Match{Status: MatchLive, StartTime: start}
		now := start.Add(-time.Hour)
		assert.True(t, live.CanAcceptBets(now, bettingCutoff))
	})

	t.Run("Cancellation windows", func(t *testing.T) {
		now := start.Add(-3*time.Hour - time.Minute)
		assert.True(t, match.CanCancelBets(now, cancelCutoff))

		now = start.Add(-3 * time.Hour)
		assert.False(t, match.CanCancelBets(now, cancelCutoff))

		now = start.Add(-time.Hour)
		assert.False(t, match.CanCancelBets(now, cancelCutoff))
	})
}

func TestMatchLifecycle(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("MarkLive from pending", func(t *testing.T) {
		m := &Match{Status: MatchPending}
		require.NoError(t, m.MarkLive(mockTime))
		assert.Equal(t, MatchLive, m.Status)
	})

	t.Run("MarkLive rejected from live and ended", func(t *testing.T) {
		for _, status := range []MatchStatus{MatchLive, MatchEnded} {
			m := &Match{Status: status}
			err := m.MarkLive(mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidMatchTransition)
		}
	})

	t.Run("RecordResult ends the match", func(t *testing.T) {
		m := &Match{Status: MatchLive}
		require.NoError(t, m.RecordResult("2-1", 2, 1, mockTime))

		assert.Equal(t, MatchEnded, m.Status)
		assert.Equal(t, "2-1", m.Result)
		require.NotNil(t, m.ScoreA)
		assert.Equal(t, 2, *m.ScoreA)
		assert.Equal(t, 1, *m.ScoreB)
	})

	t.Run("RecordResult is one-way", func(t *testing.T) {
		m := &Match{Status: MatchPending}
		require.NoError(t, m.RecordResult("0-0", 0, 0, mockTime))

		err := m.RecordResult("1-0", 1, 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrMatchAlreadySettled)
		assert.Equal(t, "0-0", m.Result)
	})
}
