package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence/models"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPurchaseRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPurchaseRepository creates a new GORM-based purchase Repository implementation
func NewGormPurchaseRepository(db *gorm.DB, logger logger.Logger) (store.Repository, error) {
	return &gormPurchaseRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPurchaseRepository) Create(ctx context.Context, purchase *store.Purchase) error {
	if err := purchase.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PurchaseModel{}
	model.FromDomain(purchase)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	r.logger.Info("Created purchase with id ", purchase.ID)
	return nil
}

// UpdateCharge records the gateway outcome of a purchase
func (r *gormPurchaseRepository) UpdateCharge(ctx context.Context, purchaseID, chargeID, status string) error {
	if err := store.ValidateCharge(chargeID, status); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PurchaseModel{}).
		Where("id = ?", purchaseID).
		Updates(map[string]any{"charge_id": chargeID, "status": status})
	if result.Error != nil {
		return fmt.Errorf("failed to update purchase charge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("purchase with ID %s: %w", purchaseID, store.ErrNotFound)
	}

	r.logger.Info("Purchase ", purchaseID, " is now ", status)
	return nil
}

func (r *gormPurchaseRepository) GetByID(ctx context.Context, purchaseID string) (*store.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).Where("id = ?", purchaseID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("purchase with ID %s: %w", purchaseID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch purchase: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPurchaseRepository) ListByClient(ctx context.Context, clientID string) ([]*store.Purchase, error) {
	var modelList []*models.PurchaseModel
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("created_at desc").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}

	domainList := make([]*store.Purchase, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
