package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidOutcome(t *testing.T) {
	valid := []string{"HOME", "DRAW", "AWAY", "OVER", "UNDER", "HOME_OVER", "AWAY_OVER", "KG_VAR", "KG_YOK"}
	for _, v := range valid {
		assert.True(t, IsValidOutcome(v), v)
	}

	invalid := []string{"", "home", "MS1", "BOTH", "OVER_2.5"}
	for _, v := range invalid {
		assert.False(t, IsValidOutcome(v), v)
	}
}

func TestNewMatchResult(t *testing.T) {
	line := decimal.NewFromFloat(2.5)

	t.Run("Home win over the line", func(t *testing.T) {
		r := NewMatchResult(2, 1, line)

		assert.Equal(t, OutcomeHome, r.WinningSide)
		assert.Equal(t, OutcomeOver, r.TotalsSide)
		assert.True(t, r.BothScored)
	})

	t.Run("Goalless draw", func(t *testing.T) {
		r := NewMatchResult(0, 0, line)

		assert.Equal(t, OutcomeDraw, r.WinningSide)
		assert.Equal(t, OutcomeUnder, r.TotalsSide)
		assert.False(t, r.BothScored)
	})

	t.Run("Away win exactly on a whole-goal line", func(t *testing.T) {
		// total 3 against a 3.0 line is not over
		r := NewMatchResult(1, 2, decimal.NewFromInt(3))

		assert.Equal(t, OutcomeAway, r.WinningSide)
		assert.Equal(t, OutcomeUnder, r.TotalsSide)
	})

	t.Run("One-sided scoring", func(t *testing.T) {
		r := NewMatchResult(3, 0, line)

		assert.Equal(t, OutcomeHome, r.WinningSide)
		assert.Equal(t, OutcomeOver, r.TotalsSide)
		assert.False(t, r.BothScored)
	})
}

func TestMatchResultWins(t *testing.T) {
	line := decimal.NewFromFloat(2.5)

	t.Run("Score 2-1", func(t *testing.T) {
		r := NewMatchResult(2, 1, line)

		testCases := []struct {
			choice Outcome
			wins   bool
		}{
			{OutcomeHome, true},
			{OutcomeDraw, false},
			{OutcomeAway, false},
			{OutcomeOver, true},
			{OutcomeUnder, false},
			{OutcomeHomeOver, true},  // home scored 2, above 1.5
			{OutcomeAwayOver, false}, // away scored 1, below 1.5
			{OutcomeBothScore, true},
			{OutcomeBothNoScore, false},
		}

		for _, tc := range testCases {
			t.Run(string(tc.choice), func(t *testing.T) {
				assert.Equal(t, tc.wins, r.Wins(tc.choice))
			})
		}
	})

	t.Run("Score 0-0", func(t *testing.T) {
		r := NewMatchResult(0, 0, line)

		assert.True(t, r.Wins(OutcomeDraw))
		assert.True(t, r.Wins(OutcomeUnder))
		assert.True(t, r.Wins(OutcomeBothNoScore))
		assert.False(t, r.Wins(OutcomeBothScore))
		assert.False(t, r.Wins(OutcomeHomeOver))
		assert.False(t, r.Wins(OutcomeAwayOver))
	})

	t.Run("Score 0-3", func(t *testing.T) {
		r := NewMatchResult(0, 3, line)

		assert.True(t, r.Wins(OutcomeAway))
		assert.True(t, r.Wins(OutcomeOver))
		assert.True(t, r.Wins(OutcomeAwayOver))
		assert.False(t, r.Wins(OutcomeHomeOver))
		// one team kept a clean sheet, so both-score loses either way
		assert.False(t, r.Wins(OutcomeBothScore))
		assert.True(t, r.Wins(OutcomeBothNoScore))
	})

	t.Run("Unknown choice never wins", func(t *testing.T) {
		r := NewMatchResult(5, 5, line)
		assert.False(t, r.Wins(Outcome("MYSTERY")))
	})
}
