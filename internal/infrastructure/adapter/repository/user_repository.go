package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/parlayhq/wager-engine/internal/domain/entity"
	errs "github.com/parlayhq/wager-engine/internal/domain/error"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/model"
)

// getOperationType returns "credit" for positive or zero changes and "debit" for negative changes
func getOperationType(deltaCents int64) string {
	if deltaCents >= 0 {
		return "credit"
	}
	return "debit"
}

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(userModel.ID, userModel.Username,
		entity.FormatCents(userModel.Balance), entity.Role(userModel.Role), r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create user entity", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User row is locked by another transaction", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "username = ?", username)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting user by username", result.Error, username)
	}

	return r.modelToEntity(&userModel)
}

// List returns users ordered by creation time, optionally filtered by a
// username substring
func (r *UserRepository) List(ctx context.Context, usernameQuery string) ([]entity.User, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if usernameQuery != "" {
		query = query.Where("username LIKE ?", "%"+usernameQuery+"%")
	}

	var userModels []model.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, "")
	}

	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		user, err := r.modelToEntity(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	userModel := model.User{
		ID:        user.ID,
		Username:  user.Username,
		Balance:   user.BalanceCents(),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"balance":  user.Balance(),
	})
	return nil
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user role", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// AdjustBalance applies a signed delta to a user balance under an
// exclusive row lock. The lock holds until the enclosing transaction
// commits, so concurrent debits of the same balance serialize.
func (r *UserRepository) AdjustBalance(ctx context.Context, id string, deltaCents int64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, "id = ?", id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	newBalance := userModel.Balance + deltaCents
	if newBalance < 0 {
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"user_id":          id,
			"current_balance":  entity.FormatCents(userModel.Balance),
			"requested_change": entity.FormatCents(deltaCents),
			"operation_type":   getOperationType(deltaCents),
		})
		return nil, errs.NewInsufficientBalanceError(id,
			entity.FormatCents(-deltaCents), entity.FormatCents(userModel.Balance))
	}

	userModel.Balance = newBalance
	userModel.UpdatedAt = r.timeProvider.Now()

	result = r.db.WithContext(ctx).Model(&userModel).Updates(map[string]interface{}{
		"balance":    userModel.Balance,
		"updated_at": userModel.UpdatedAt,
	})
	if result.Error != nil {
		return nil, r.handleDatabaseError("adjusting balance", result.Error, id)
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"user_id":        id,
		"change":         entity.FormatCents(deltaCents),
		"new_balance":    entity.FormatCents(newBalance),
		"operation_type": getOperationType(deltaCents),
	})

	return r.modelToEntity(&userModel)
}

// TotalBalanceCents sums all user balances
func (r *UserRepository) TotalBalanceCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, r.handleDatabaseError("summing balances", err, "")
	}
	return total, nil
}
