package match

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
	mockpersistence "github.com/parlayhq/wager-engine/mocks/port/persistence"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type matchMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	matchRepo    *mockpersistence.MockMatchRepository
	matchCache   *mockcache.MockMatchCache
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
}

func newMatchMocks(t *testing.T) *matchMocks {
	m := &matchMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		matchRepo:    mockpersistence.NewMockMatchRepository(t),
		matchCache:   mockcache.NewMockMatchCache(t),
		timeProvider: mockcore.NewMockTimeProvider(t),
		logger:       mockcore.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	m.uow.EXPECT().GetMatchRepository(mock.Anything).Return(m.matchRepo).Maybe()
	return m
}

func (m *matchMocks) service() *Service {
	return NewService(m.uow, m.matchCache, m.timeProvider, m.logger, DefaultConfig())
}

func sampleOdds() entity.MatchOdds {
	draw := decimal.NewFromFloat(3.40)
	return entity.MatchOdds{
		Home: decimal.NewFromFloat(1.85),
		Away: decimal.NewFromFloat(2.10),
		Draw: &draw,
	}
}

func createReq() CreateMatchRequest {
	return CreateMatchRequest{
		TeamA:     "Galatasaray",
		TeamB:     "Fenerbahce",
		Sport:     "football",
		StartTime: fixedNow.Add(48 * time.Hour),
		Odds:      sampleOdds(),
	}
}

func (m *matchMocks) storedMatch() *entity.Match {
	match, err := entity.NewMatch("match-1", "Galatasaray", "Fenerbahce", "football",
		fixedNow.Add(48*time.Hour), sampleOdds(), nil, m.timeProvider)
	if err != nil {
		panic(err)
	}
	return match
}

func TestCreateMatch(t *testing.T) {
	t.Run("Creates a pending match and drops the cache", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		var created *entity.Match
		m.matchRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, match *entity.Match) {
			created = match
		}).Return(nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(nil)

		match, err := m.service().CreateMatch(ctx, createReq())

		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, entity.MatchPending, match.Status)
		assert.Equal(t, "Galatasaray", match.TeamA)
		assert.NotEmpty(t, match.ID)
		assert.Equal(t, created, match)
	})

	t.Run("Rejects blank team names", func(t *testing.T) {
		m := newMatchMocks(t)

		req := createReq()
		req.TeamB = "   "
		match, err := m.service().CreateMatch(context.Background(), req)

		assert.Nil(t, match)
		assert.ErrorIs(t, err, errs.ErrInvalidMatchData)
	})

	t.Run("Cache failure does not fail creation", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

		match, err := m.service().CreateMatch(ctx, createReq())

		require.NoError(t, err)
		assert.NotNil(t, match)
	})
}

func TestUpdateMatch(t *testing.T) {
	t.Run("Replaces mutable fields", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().GetByID(ctx, "match-1").Return(m.storedMatch(), nil)
		m.matchRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(nil)

		req := createReq()
		req.Odds.Home = decimal.NewFromFloat(1.95)
		line := decimal.NewFromFloat(3.5)
		req.OverUnderLine = &line

		match, err := m.service().UpdateMatch(ctx, "match-1", req)

		require.NoError(t, err)
		assert.True(t, match.Odds.Home.Equal(decimal.NewFromFloat(1.95)))
		assert.True(t, match.Line().Equal(decimal.NewFromFloat(3.5)))
		assert.Equal(t, fixedNow, match.UpdatedAt)
	})

	t.Run("Rejects an ended match", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		ended := m.storedMatch()
		ended.Status = entity.MatchEnded
		m.matchRepo.EXPECT().GetByID(ctx, "match-1").Return(ended, nil)

		match, err := m.service().UpdateMatch(ctx, "match-1", createReq())

		assert.Nil(t, match)
		assert.ErrorIs(t, err, errs.ErrMatchAlreadySettled)
	})
}

func TestMarkLive(t *testing.T) {
	t.Run("Pending goes live", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().GetByID(ctx, "match-1").Return(m.storedMatch(), nil)
		m.matchRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(nil)

		match, err := m.service().MarkLive(ctx, "match-1")

		require.NoError(t, err)
		assert.Equal(t, entity.MatchLive, match.Status)
	})

	t.Run("Ended match cannot go live", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		ended := m.storedMatch()
		ended.Status = entity.MatchEnded
		m.matchRepo.EXPECT().GetByID(ctx, "match-1").Return(ended, nil)

		match, err := m.service().MarkLive(ctx, "match-1")

		assert.Nil(t, match)
		assert.ErrorIs(t, err, errs.ErrInvalidMatchTransition)
	})
}

func TestListActive(t *testing.T) {
	t.Run("Cache hit skips the repository", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		cached := []entity.Match{*m.storedMatch()}

		m.matchCache.EXPECT().GetActive(ctx).Return(cached, true, nil)

		matches, err := m.service().ListActive(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, matches)
	})

	t.Run("Cache miss reads the repository and refills", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		fresh := []entity.Match{*m.storedMatch()}

		m.matchCache.EXPECT().GetActive(ctx).Return(nil, false, nil)
		m.matchRepo.EXPECT().ListActive(ctx).Return(fresh, nil)
		m.matchCache.EXPECT().SetActive(ctx, fresh, 30*time.Second).Return(nil)

		matches, err := m.service().ListActive(ctx)

		require.NoError(t, err)
		assert.Equal(t, fresh, matches)
	})

	t.Run("Cache error falls through to the repository", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		fresh := []entity.Match{*m.storedMatch()}

		m.matchCache.EXPECT().GetActive(ctx).Return(nil, false, errors.New("redis down"))
		m.matchRepo.EXPECT().ListActive(ctx).Return(fresh, nil)
		m.matchCache.EXPECT().SetActive(ctx, fresh, 30*time.Second).Return(errors.New("redis down"))

		matches, err := m.service().ListActive(ctx)

		require.NoError(t, err)
		assert.Equal(t, fresh, matches)
	})
}

func TestListAll_RunsRetentionSweep(t *testing.T) {
	t.Run("Sweep archives stale matches before listing", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		cutoff := fixedNow.Add(-21 * 24 * time.Hour)

		m.matchRepo.EXPECT().ArchiveStartedBefore(ctx, cutoff, fixedNow).Return(3, nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(nil)
		m.matchRepo.EXPECT().ListAll(ctx).Return([]entity.Match{*m.storedMatch()}, nil)

		matches, err := m.service().ListAll(ctx)

		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("Nothing to archive skips the cache", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		cutoff := fixedNow.Add(-21 * 24 * time.Hour)

		m.matchRepo.EXPECT().ArchiveStartedBefore(ctx, cutoff, fixedNow).Return(0, nil)
		m.matchRepo.EXPECT().ListAll(ctx).Return([]entity.Match{}, nil)

		matches, err := m.service().ListAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Sweep failure fails the listing", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		cutoff := fixedNow.Add(-21 * 24 * time.Hour)
		dbErr := errors.New("connection reset")

		m.matchRepo.EXPECT().ArchiveStartedBefore(ctx, cutoff, fixedNow).Return(0, dbErr)

		matches, err := m.service().ListAll(ctx)

		assert.Nil(t, matches)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestArchiveAndRestore(t *testing.T) {
	t.Run("Archive stamps the current time", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().SetArchived(ctx, "match-1", &fixedNow).Return(nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(nil)

		require.NoError(t, m.service().Archive(ctx, "match-1"))
	})

	t.Run("Restore clears the stamp", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().SetArchived(ctx, "match-1", (*time.Time)(nil)).Return(nil)
		m.matchCache.EXPECT().Invalidate(ctx).Return(nil)

		require.NoError(t, m.service().Restore(ctx, "match-1"))
	})

	t.Run("Archive of a missing match surfaces not found", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().SetArchived(ctx, "missing", &fixedNow).Return(errs.ErrMatchNotFound)

		assert.ErrorIs(t, m.service().Archive(ctx, "missing"), errs.ErrMatchNotFound)
	})
}

func TestListQueries(t *testing.T) {
	t.Run("GetMatch delegates", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().GetByID(ctx, "match-1").Return(m.storedMatch(), nil)

		match, err := m.service().GetMatch(ctx, "match-1")

		require.NoError(t, err)
		assert.Equal(t, "match-1", match.ID)
	})

	t.Run("ListCompleted delegates with the window", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()
		from := fixedNow.Add(-7 * 24 * time.Hour)
		to := fixedNow

		m.matchRepo.EXPECT().ListCompleted(ctx, from, to).Return([]entity.Match{}, nil)

		matches, err := m.service().ListCompleted(ctx, from, to)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("ListArchived delegates", func(t *testing.T) {
		m := newMatchMocks(t)
		ctx := context.Background()

		m.matchRepo.EXPECT().ListArchived(ctx).Return([]entity.Match{}, nil)

		matches, err := m.service().ListArchived(ctx)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}
