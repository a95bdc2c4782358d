package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	"github.com/parlayhq/wager-engine/internal/domain/usecase/match"
)

// MatchOddsRequest carries decimal odds as strings. Home and away are
// mandatory; every other market is optional.
type MatchOddsRequest struct {
	Home        string  `json:"home" binding:"required"`
	Away        string  `json:"away" binding:"required"`
	Draw        *string `json:"draw,omitempty"`
	Over        *string `json:"over,omitempty"`
	Under       *string `json:"under,omitempty"`
	HomeOver    *string `json:"homeOver,omitempty"`
	AwayOver    *string `json:"awayOver,omitempty"`
	BothScore   *string `json:"bothScore,omitempty"`
	BothNoScore *string `json:"bothNoScore,omitempty"`
}

// MatchRequest is the payload for creating or updating a match
type MatchRequest struct {
	TeamA         string           `json:"teamA" binding:"required"`
	TeamB         string           `json:"teamB" binding:"required"`
	Sport         string           `json:"sport" binding:"required"`
	StartTime     time.Time        `json:"startTime" binding:"required"`
	Odds          MatchOddsRequest `json:"odds" binding:"required"`
	OverUnderLine *string          `json:"overUnderLine,omitempty"`
}

// SettleMatchRequest carries the final score, e.g. "2-1"
type SettleMatchRequest struct {
	Score string `json:"score" binding:"required"`
}

// MatchResponse represents a match in API responses
type MatchResponse struct {
	ID            string     `json:"id"`
	TeamA         string     `json:"teamA"`
	TeamB         string     `json:"teamB"`
	Sport         string     `json:"sport"`
	StartTime     time.Time  `json:"startTime"`
	Status        string     `json:"status"`
	Odds          MatchOdds  `json:"odds"`
	OverUnderLine *string    `json:"overUnderLine,omitempty"`
	ScoreA        *int       `json:"scoreA,omitempty"`
	ScoreB        *int       `json:"scoreB,omitempty"`
	Result        string     `json:"result,omitempty"`
	ArchivedAt    *time.Time `json:"archivedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// MatchOdds mirrors the entity odds as decimal strings
type MatchOdds struct {
	Home        string  `json:"home"`
	Away        string  `json:"away"`
	Draw        *string `json:"draw,omitempty"`
	Over        *string `json:"over,omitempty"`
	Under       *string `json:"under,omitempty"`
	HomeOver    *string `json:"homeOver,omitempty"`
	AwayOver    *string `json:"awayOver,omitempty"`
	BothScore   *string `json:"bothScore,omitempty"`
	BothNoScore *string `json:"bothNoScore,omitempty"`
}

// SettlementResponse summarizes a completed settlement run
type SettlementResponse struct {
	MatchID  string `json:"matchId"`
	Result   string `json:"result"`
	WonBets  int    `json:"wonBets"`
	LostBets int    `json:"lostBets"`
	PaidOut  string `json:"paidOut"`
}

// ToCreateMatchRequest converts the API payload into a use case request
func (r MatchRequest) ToCreateMatchRequest() (match.CreateMatchRequest, error) {
	home, err := decimal.NewFromString(r.Odds.Home)
	if err != nil {
		return match.CreateMatchRequest{}, errs.ErrInvalidMatchData
	}
	away, err := decimal.NewFromString(r.Odds.Away)
	if err != nil {
		return match.CreateMatchRequest{}, errs.ErrInvalidMatchData
	}

	odds := entity.MatchOdds{Home: home, Away: away}

	optional := []struct {
		src *string
		dst **decimal.Decimal
	}{
		{r.Odds.Draw, &odds.Draw},
		{r.Odds.Over, &odds.Over},
		{r.Odds.Under, &odds.Under},
		{r.Odds.HomeOver, &odds.HomeOver},
		{r.Odds.AwayOver, &odds.AwayOver},
		{r.Odds.BothScore, &odds.BothScore},
		{r.Odds.BothNoScore, &odds.BothNoScore},
	}
	for _, o := range optional {
		if o.src == nil {
			continue
		}
		d, err := decimal.NewFromString(*o.src)
		if err != nil {
			return match.CreateMatchRequest{}, errs.ErrInvalidMatchData
		}
		*o.dst = &d
	}

	req := match.CreateMatchRequest{
		TeamA:     r.TeamA,
		TeamB:     r.TeamB,
		Sport:     r.Sport,
		StartTime: r.StartTime,
		Odds:      odds,
	}

	if r.OverUnderLine != nil {
		line, err := decimal.NewFromString(*r.OverUnderLine)
		if err != nil {
			return match.CreateMatchRequest{}, errs.ErrInvalidMatchData
		}
		req.OverUnderLine = &line
	}

	return req, nil
}

// ToMatchResponse maps a match entity to its API representation
func ToMatchResponse(m *entity.Match) MatchResponse {
	resp := MatchResponse{
		ID:         m.ID,
		TeamA:      m.TeamA,
		TeamB:      m.TeamB,
		Sport:      m.Sport,
		StartTime:  m.StartTime,
		Status:     string(m.Status),
		ScoreA:     m.ScoreA,
		ScoreB:     m.ScoreB,
		Result:     m.Result,
		ArchivedAt: m.ArchivedAt,
		CreatedAt:  m.CreatedAt,
		Odds: MatchOdds{
			Home:        m.Odds.Home.String(),
			Away:        m.Odds.Away.String(),
			Draw:        decimalString(m.Odds.Draw),
			Over:        decimalString(m.Odds.Over),
			Under:       decimalString(m.Odds.Under),
			HomeOver:    decimalString(m.Odds.HomeOver),
			AwayOver:    decimalString(m.Odds.AwayOver),
			BothScore:   decimalString(m.Odds.BothScore),
			BothNoScore: decimalString(m.Odds.BothNoScore),
		},
		OverUnderLine: decimalString(m.OverUnderLine),
	}
	return resp
}

// ToMatchResponses maps a slice of match entities
func ToMatchResponses(matches []entity.Match) []MatchResponse {
	responses := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		responses = append(responses, ToMatchResponse(&matches[i]))
	}
	return responses
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
