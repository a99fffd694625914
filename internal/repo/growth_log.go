package repo

import (
	"context"

	"GardenGuru/internal/model"

	"gorm.io/gorm"
)

// GrowthLogRepository — доступ к записям дневника роста.
type GrowthLogRepository interface {
	Create(ctx context.Context, l *model.GrowthLog) error
	GetByID(ctx context.Context, id string) (*model.GrowthLog, error)

	// ListByItem — записи элемента сада, новые первыми.
	ListByItem(ctx context.Context, gardenItemID string) ([]model.GrowthLog, error)

	Delete(ctx context.Context, id string) error
}

type growthLogRepo struct {
	db *gorm.DB
}

// NewGrowthLogRepository создаёт реализацию репозитория для GrowthLog.
func NewGrowthLogRepository(db *gorm.DB) GrowthLogRepository {
	return &growthLogRepo{db: db}
}

func (r *growthLogRepo) Create(ctx context.Context, l *model.GrowthLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *growthLogRepo) GetByID(ctx context.Context, id string) (*model.GrowthLog, error) {
	var l model.GrowthLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *growthLogRepo) ListByItem(ctx context.Context, gardenItemID string) ([]model.GrowthLog, error) {
	var logs []model.GrowthLog
	err := r.db.WithContext(ctx).
		Where("garden_item_id = ?", gardenItemID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *growthLogRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GrowthLog{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
