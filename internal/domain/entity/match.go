package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
)

// MatchStatus is the match lifecycle state. PENDING -> LIVE -> ENDED is
// one-way; ENDED is terminal and freezes odds and result.
type MatchStatus string

const (
	MatchPending MatchStatus = "PENDING"
	MatchLive    MatchStatus = "LIVE"
	MatchEnded   MatchStatus = "ENDED"
)

// defaultOverUnderLine is assumed when a match carries no explicit line
var defaultOverUnderLine = decimal.NewFromFloat(2.5)

// MatchOdds holds the operator-supplied prices per market. Home and
// Away are always quoted; the rest are optional and a nil pointer means
// the market is closed for this match.
type MatchOdds struct {
	Home        decimal.Decimal
	Away        decimal.Decimal
	Draw        *decimal.Decimal
	Over        *decimal.Decimal
	Under       *decimal.Decimal
	HomeOver    *decimal.Decimal
	AwayOver    *decimal.Decimal
	BothScore   *decimal.Decimal
	BothNoScore *decimal.Decimal
}

// For returns the odds quoted for a choice, or false when the market is
// not offered on this match.
func (o MatchOdds) For(choice Outcome) (decimal.Decimal, bool) {
	switch choice {
	case OutcomeHome:
		return o.Home, o.Home.IsPositive()
	case OutcomeAway:
		return o.Away, o.Away.IsPositive()
	case OutcomeDraw:
		return deref(o.Draw)
	case OutcomeOver:
		return deref(o.Over)
	case OutcomeUnder:
		return deref(o.Under)
	case OutcomeHomeOver:
		return deref(o.HomeOver)
	case OutcomeAwayOver:
		return deref(o.AwayOver)
	case OutcomeBothScore:
		return deref(o.BothScore)
	case OutcomeBothNoScore:
		return deref(o.BothNoScore)
	default:
		return decimal.Decimal{}, false
	}
}

func deref(d *decimal.Decimal) (decimal.Decimal, bool) {
	if d == nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return *d, true
}

// Match represents a bettable fixture
type Match struct {
	ID            string
	TeamA         string
	TeamB         string
	Sport         string
	StartTime     time.Time
	Status        MatchStatus
	Odds          MatchOdds
	OverUnderLine *decimal.Decimal
	ScoreA        *int
	ScoreB        *int
	Result        string
	ArchivedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewMatch creates a pending match from operator input
func NewMatch(id, teamA, teamB, sport string, startTime time.Time, odds MatchOdds, line *decimal.Decimal, timeProvider coreport.TimeProvider) (*Match, error) {
	teamA = strings.TrimSpace(teamA)
	teamB = strings.TrimSpace(teamB)
	if teamA == "" || teamB == "" {
		return nil, errs.ErrInvalidMatchData
	}
	if !odds.Home.IsPositive() || !odds.Away.IsPositive() {
		return nil, errs.ErrInvalidMatchData
	}

	now := timeProvider.Now()
	return &Match{
		ID:            id,
		TeamA:         teamA,
		TeamB:         teamB,
		Sport:         sport,
		StartTime:     startTime,
		Status:        MatchPending,
		Odds:          odds,
		OverUnderLine: line,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Line returns the over/under goals line, defaulting to 2.5
func (m *Match) Line() decimal.Decimal {
	if m.OverUnderLine == nil {
		return defaultOverUnderLine
	}
	return *m.OverUnderLine
}

// IsArchived reports whether the match is soft-deleted
func (m *Match) IsArchived() bool {
	return m.ArchivedAt != nil
}

// CanAcceptBets is the eligibility gate consumed by bet placement: the
// market is open while the match is PENDING or LIVE and the pre-match
// cutoff has not been reached.
func (m *Match) CanAcceptBets(now time.Time, cutoff time.Duration) bool {
	if m.Status != MatchPending && m.Status != MatchLive {
		return false
	}
	return now.Before(m.StartTime.Add(-cutoff))
}

// CanCancelBets is the gate consumed by cancellation: refunds stop at
// the cancellation cutoff before the scheduled start.
func (m *Match) CanCancelBets(now time.Time, cutoff time.Duration) bool {
	return now.Before(m.StartTime.Add(-cutoff))
}

// MarkLive transitions PENDING -> LIVE
func (m *Match) MarkLive(timeProvider coreport.TimeProvider) error {
	if m.Status != MatchPending {
		return errs.ErrInvalidMatchTransition
	}
	m.Status = MatchLive
	m.UpdatedAt = timeProvider.Now()
	return nil
}

// RecordResult transitions the match to ENDED with its final score.
// One-way: an ENDED match rejects any further result.
func (m *Match) RecordResult(result string, scoreA, scoreB int, timeProvider coreport.TimeProvider) error {
	if m.Status == MatchEnded {
		return errs.ErrMatchAlreadySettled
	}
	m.Status = MatchEnded
	m.Result = result
	m.ScoreA = &scoreA
	m.ScoreB = &scoreB
	m.UpdatedAt = timeProvider.Now()
	return nil
}
