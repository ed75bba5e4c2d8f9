package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence/models"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormGameSaveRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGameSaveRepository creates a new GORM-based SaveRepository implementation
func NewGormGameSaveRepository(db *gorm.DB, logger logger.Logger) (game.SaveRepository, error) {
	return &gormGameSaveRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGameSaveRepository) Get(ctx context.Context, userID string) (*game.Save, error) {
	var model models.GameSaveModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game save of %s: %w", userID, game.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch game save: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormGameSaveRepository) Create(ctx context.Context, save *game.Save) error {
	if err := save.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GameSaveModel{}
	model.FromDomain(save)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("game save of %s exists: %w", save.UserID, game.ErrConflict)
		}
		return fmt.Errorf("failed to create game save: %w", err)
	}

	r.logger.Info("Created game save for user ", save.UserID)
	return nil
}

// Update is a compare-and-swap on the version column
func (r *gormGameSaveRepository) Update(ctx context.Context, save *game.Save, expectedVersion int64) error {
	if err := save.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GameSaveModel{}
	model.FromDomain(save)

	result := r.db.WithContext(ctx).Model(&models.GameSaveModel{}).
		Where("user_id = ? AND version = ?", save.UserID, expectedVersion).
		Select("version", "state", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update game save: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("game save of %s is not at version %d: %w", save.UserID, expectedVersion, game.ErrConflict)
	}

	r.logger.Debug("Updated game save for user ", save.UserID, " to version ", save.Version)
	return nil
}
