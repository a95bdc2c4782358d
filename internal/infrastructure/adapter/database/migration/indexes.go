package migration

import (
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the PostgreSQL indexes GORM tags cannot express
func (m *IndexManager) CreateIndexes() error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	// One open bet per user per match. The partial predicate lets a user
	// bet on the same match again once the earlier bet is resolved.
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bets_open_user_match
		ON bets (user_id, match_id)
		WHERE status = 'OPEN'
	`).Error; err != nil {
		m.logger.Error("Failed to create open bet unique index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Settlement loads every open bet of a match at once.
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bets_match_open
		ON bets (match_id)
		WHERE status = 'OPEN'
	`).Error; err != nil {
		m.logger.Error("Failed to create open bets by match index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// The retention sweep filters on start_time for unarchived rows.
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_matches_retention
		ON matches (start_time)
		WHERE archived_at IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create match retention index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Pending withdrawals are reviewed oldest first.
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_pending_withdrawals
		ON transactions (created_at)
		WHERE type = 'WITHDRAW_REQUEST' AND status = 'PENDING'
	`).Error; err != nil {
		m.logger.Error("Failed to create pending withdrawals index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for the ledger history (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}

// ApplyPerformanceTweaks applies PostgreSQL performance tweaks
func (m *IndexManager) ApplyPerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Set fillfactor for hot tables to reduce page splits
	if err := m.db.Exec(`
		ALTER TABLE bets SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for bets table", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	// Set statistics target for better query planning
	if err := m.db.Exec(`
		ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
		// Don't return error as this is not critical
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
