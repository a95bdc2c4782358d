package persistence

import (
	"context"
	"time"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
)

// MatchRepository defines persistence operations for matches
type MatchRepository interface {
	// GetByID retrieves a match by ID
	//
	// Possible errors:
	// - ErrMatchNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.Match, error)

	// GetForUpdate retrieves a match holding an exclusive row lock for the
	// remainder of the enclosing transaction. Settlement takes this lock
	// first so concurrent settlements of the same match serialize.
	GetForUpdate(ctx context.Context, id string) (*entity.Match, error)

	// GetShared retrieves a match holding a shared row lock. Bet placement
	// and cancellation take it so they cannot interleave with a settlement
	// holding the exclusive lock.
	GetShared(ctx context.Context, id string) (*entity.Match, error)

	// Create persists a new match
	Create(ctx context.Context, match *entity.Match) error

	// Update persists mutable match fields (teams, odds, start time,
	// status, result, scores)
	Update(ctx context.Context, match *entity.Match) error

	// ListActive returns non-archived PENDING and LIVE matches ordered by
	// start time ascending
	ListActive(ctx context.Context) ([]entity.Match, error)

	// ListCompleted returns non-archived ENDED matches whose start time
	// falls in [from, to), newest first
	ListCompleted(ctx context.Context, from, to time.Time) ([]entity.Match, error)

	// ListAll returns every non-archived match, newest start time first
	ListAll(ctx context.Context) ([]entity.Match, error)

	// ListArchived returns archived matches, most recently archived first
	ListArchived(ctx context.Context) ([]entity.Match, error)

	// ArchiveStartedBefore soft-deletes every non-archived match that
	// started before the cutoff. Returns the number of matches archived.
	ArchiveStartedBefore(ctx context.Context, cutoff, at time.Time) (int64, error)

	// SetArchived sets or clears the soft-delete timestamp on one match
	SetArchived(ctx context.Context, id string, archivedAt *time.Time) error

	// CountActive counts non-archived PENDING and LIVE matches
	CountActive(ctx context.Context) (int64, error)
}
