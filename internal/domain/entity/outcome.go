package entity

import "github.com/shopspring/decimal"

// Outcome identifies the market a bet is placed on. The set is closed;
// anything else is rejected at the boundary.
type Outcome string

const (
	OutcomeHome     Outcome = "HOME"
	OutcomeDraw     Outcome = "DRAW"
	OutcomeAway     Outcome = "AWAY"
	OutcomeOver     Outcome = "OVER"
	OutcomeUnder    Outcome = "UNDER"
	OutcomeHomeOver Outcome = "HOME_OVER"
	OutcomeAwayOver Outcome = "AWAY_OVER"
	// KG_VAR / KG_YOK: both-teams-to-score yes/no
	OutcomeBothScore   Outcome = "KG_VAR"
	OutcomeBothNoScore Outcome = "KG_YOK"
)

// allOutcomes enumerates every valid choice
var allOutcomes = map[Outcome]struct{}{
	OutcomeHome:        {},
	OutcomeDraw:        {},
	OutcomeAway:        {},
	OutcomeOver:        {},
	OutcomeUnder:       {},
	OutcomeHomeOver:    {},
	OutcomeAwayOver:    {},
	OutcomeBothScore:   {},
	OutcomeBothNoScore: {},
}

// IsValidOutcome reports whether the string maps to a known market choice
func IsValidOutcome(s string) bool {
	_, ok := allOutcomes[Outcome(s)]
	return ok
}

// teamOverLine is the goals line for the team-total markets
// (HOME_OVER / AWAY_OVER): a team wins its total at two goals or more.
var teamOverLine = decimal.NewFromFloat(1.5)

// MatchResult carries the facts settlement derives from a final score.
type MatchResult struct {
	ScoreHome int
	ScoreAway int
	// WinningSide is HOME, AWAY or DRAW by plain score comparison
	WinningSide Outcome
	// TotalsSide is OVER or UNDER against the match's stored line
	TotalsSide Outcome
	// BothScored reports whether each team scored at least once
	BothScored bool
}

// NewMatchResult derives the settlement facts from a final score and
// the match's over/under line.
func NewMatchResult(scoreHome, scoreAway int, line decimal.Decimal) MatchResult {
	winning := OutcomeDraw
	if scoreHome > scoreAway {
		winning = OutcomeHome
	} else if scoreAway > scoreHome {
		winning = OutcomeAway
	}

	totals := OutcomeUnder
	if decimal.NewFromInt(int64(scoreHome + scoreAway)).GreaterThan(line) {
		totals = OutcomeOver
	}

	return MatchResult{
		ScoreHome:   scoreHome,
		ScoreAway:   scoreAway,
		WinningSide: winning,
		TotalsSide:  totals,
		BothScored:  scoreHome >= 1 && scoreAway >= 1,
	}
}

// Wins decides a single bet choice against the result. This is the one
// place in the system where market rules live.
func (r MatchResult) Wins(choice Outcome) bool {
	switch choice {
	case OutcomeHome, OutcomeAway, OutcomeDraw:
		return choice == r.WinningSide
	case OutcomeOver, OutcomeUnder:
		return choice == r.TotalsSide
	case OutcomeHomeOver:
		return decimal.NewFromInt(int64(r.ScoreHome)).GreaterThan(teamOverLine)
	case OutcomeAwayOver:
		return decimal.NewFromInt(int64(r.ScoreAway)).GreaterThan(teamOverLine)
	case OutcomeBothScore:
		return r.BothScored
	case OutcomeBothNoScore:
		return !r.BothScored
	default:
		return false
	}
}
