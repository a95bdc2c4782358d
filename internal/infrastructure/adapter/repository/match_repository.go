package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/model"
)

// MatchRepository implements MatchRepository interface using GORM
type MatchRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMatchRepository creates a new MatchRepository instance
func NewMatchRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *MatchRepository {
	return &MatchRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// decimalToString serializes optional odds for storage
func decimalToString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// stringToDecimal deserializes optional odds from storage
func stringToDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// entityToModel converts a match entity to its database model
func entityToModel(match *entity.Match) *model.Match {
	return &model.Match{
		ID:            match.ID,
		TeamA:         match.TeamA,
		TeamB:         match.TeamB,
		Sport:         match.Sport,
		StartTime:     match.StartTime,
		Status:        string(match.Status),
		OddsHome:      match.Odds.Home.String(),
		OddsAway:      match.Odds.Away.String(),
		OddsDraw:      decimalToString(match.Odds.Draw),
		OddsOver:      decimalToString(match.Odds.Over),
		OddsUnder:     decimalToString(match.Odds.Under),
		OddsHomeOver:  decimalToString(match.Odds.HomeOver),
		OddsAwayOver:  decimalToString(match.Odds.AwayOver),
		OddsBothYes:   decimalToString(match.Odds.BothScore),
		OddsBothNo:    decimalToString(match.Odds.BothNoScore),
		OverUnderLine: decimalToString(match.OverUnderLine),
		ScoreA:        match.ScoreA,
		ScoreB:        match.ScoreB,
		Result:        match.Result,
		ArchivedAt:    match.ArchivedAt,
		CreatedAt:     match.CreatedAt,
		UpdatedAt:     match.UpdatedAt,
	}
}

// modelToEntity converts a match model to an entity
func (r *MatchRepository) modelToEntity(matchModel *model.Match) (*entity.Match, error) {
	home, err := decimal.NewFromString(matchModel.OddsHome)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt home odds on match %s", errs.ErrInternalServer, matchModel.ID)
	}
	away, err := decimal.NewFromString(matchModel.OddsAway)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt away odds on match %s", errs.ErrInternalServer, matchModel.ID)
	}

	odds := entity.MatchOdds{Home: home, Away: away}
	for _, field := range []struct {
		src *string
		dst **decimal.Decimal
	}{
		{matchModel.OddsDraw, &odds.Draw},
		{matchModel.OddsOver, &odds.Over},
		{matchModel.OddsUnder, &odds.Under},
		{matchModel.OddsHomeOver, &odds.HomeOver},
		{matchModel.OddsAwayOver, &odds.AwayOver},
		{matchModel.OddsBothYes, &odds.BothScore},
		{matchModel.OddsBothNo, &odds.BothNoScore},
	} {
		d, err := stringToDecimal(field.src)
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt odds on match %s", errs.ErrInternalServer, matchModel.ID)
		}
		*field.dst = d
	}

	line, err := stringToDecimal(matchModel.OverUnderLine)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt line on match %s", errs.ErrInternalServer, matchModel.ID)
	}

	return &entity.Match{
		ID:            matchModel.ID,
		TeamA:         matchModel.TeamA,
		TeamB:         matchModel.TeamB,
		Sport:         matchModel.Sport,
		StartTime:     matchModel.StartTime,
		Status:        entity.MatchStatus(matchModel.Status),
		Odds:          odds,
		OverUnderLine: line,
		ScoreA:        matchModel.ScoreA,
		ScoreB:        matchModel.ScoreB,
		Result:        matchModel.Result,
		ArchivedAt:    matchModel.ArchivedAt,
		CreatedAt:     matchModel.CreatedAt,
		UpdatedAt:     matchModel.UpdatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *MatchRepository) handleDatabaseError(operation string, err error, matchID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Match not found", map[string]any{
			"match_id": matchID,
		})
		return errs.ErrMatchNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"match_id": matchID,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrUserLocked
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// getOne fetches a match with the given locking clauses applied
func (r *MatchRepository) getOne(ctx context.Context, id string, clauses ...clause.Expression) (*entity.Match, error) {
	query := r.db.WithContext(ctx)
	if len(clauses) > 0 {
		query = query.Clauses(clauses...)
	}

	var matchModel model.Match
	if err := query.First(&matchModel, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting match", err, id)
	}
	return r.modelToEntity(&matchModel)
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	return r.getOne(ctx, id)
}

// GetForUpdate retrieves a match holding an exclusive row lock
func (r *MatchRepository) GetForUpdate(ctx context.Context, id string) (*entity.Match, error) {
	return r.getOne(ctx, id, clause.Locking{Strength: "UPDATE"})
}

// GetShared retrieves a match holding a shared row lock
func (r *MatchRepository) GetShared(ctx context.Context, id string) (*entity.Match, error) {
	return r.getOne(ctx, id, clause.Locking{Strength: "SHARE"})
}

// Create persists a new match
func (r *MatchRepository) Create(ctx context.Context, match *entity.Match) error {
	matchModel := entityToModel(match)

	if err := r.db.WithContext(ctx).Create(matchModel).Error; err != nil {
		return r.handleDatabaseError("creating match", err, match.ID)
	}

	r.logger.Info("Match created", map[string]any{
		"match_id": match.ID,
		"team_a":   match.TeamA,
		"team_b":   match.TeamB,
	})
	return nil
}

// Update persists mutable match fields
func (r *MatchRepository) Update(ctx context.Context, match *entity.Match) error {
	matchModel := entityToModel(match)

	result := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("id = ?", match.ID).
		Select("*").Omit("id", "created_at").
		Updates(matchModel)

	if result.Error != nil {
		return r.handleDatabaseError("updating match", result.Error, match.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrMatchNotFound
	}
	return nil
}

// list runs a find with the given scope and converts the results
func (r *MatchRepository) list(query *gorm.DB) ([]entity.Match, error) {
	var matchModels []model.Match
	if err := query.Find(&matchModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing matches", err, "")
	}

	matches := make([]entity.Match, 0, len(matchModels))
	for i := range matchModels {
		match, err := r.modelToEntity(&matchModels[i])
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	return matches, nil
}

// ListActive returns non-archived PENDING and LIVE matches ordered by
// start time ascending
func (r *MatchRepository) ListActive(ctx context.Context) ([]entity.Match, error) {
	return r.list(r.db.WithContext(ctx).
		Where("archived_at IS NULL").
		Where("status IN ?", []string{string(entity.MatchPending), string(entity.MatchLive)}).
		Order("start_time ASC"))
}

// ListCompleted returns non-archived ENDED matches whose start time
// falls in [from, to), newest first
func (r *MatchRepository) ListCompleted(ctx context.Context, from, to time.Time) ([]entity.Match, error) {
	return r.list(r.db.WithContext(ctx).
		Where("archived_at IS NULL").
		Where("status = ?", string(entity.MatchEnded)).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time DESC"))
}

// ListAll returns every non-archived match, newest start time first
func (r *MatchRepository) ListAll(ctx context.Context) ([]entity.Match, error) {
	return r.list(r.db.WithContext(ctx).
		Where("archived_at IS NULL").
		Order("start_time DESC"))
}

// ListArchived returns archived matches, most recently archived first
func (r *MatchRepository) ListArchived(ctx context.Context) ([]entity.Match, error) {
	return r.list(r.db.WithContext(ctx).
		Where("archived_at IS NOT NULL").
		Order("archived_at DESC"))
}

// ArchiveStartedBefore soft-deletes every non-archived match that
// started before the cutoff
func (r *MatchRepository) ArchiveStartedBefore(ctx context.Context, cutoff, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("archived_at IS NULL").
		Where("start_time < ?", cutoff).
		Updates(map[string]interface{}{
			"archived_at": at,
			"updated_at":  at,
		})

	if result.Error != nil {
		return 0, r.handleDatabaseError("archiving matches", result.Error, "")
	}
	return result.RowsAffected, nil
}

// SetArchived sets or clears the soft-delete timestamp on one match
func (r *MatchRepository) SetArchived(ctx context.Context, id string, archivedAt *time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"archived_at": archivedAt,
			"updated_at":  r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("archiving match", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrMatchNotFound
	}
	return nil
}

// CountActive counts non-archived PENDING and LIVE matches
func (r *MatchRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("archived_at IS NULL").
		Where("status IN ?", []string{string(entity.MatchPending), string(entity.MatchLive)}).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting matches", err, "")
	}
	return count, nil
}
