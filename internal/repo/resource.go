package repo

import (
	"context"

	"GardenGuru/internal/model"

	"gorm.io/gorm"
)

// ResourceRepository — доступ к доске материалов сообщества.
type ResourceRepository interface {
	Create(ctx context.Context, res *model.Resource) error
	GetByID(ctx context.Context, id string) (*model.Resource, error)

	// ListAll — вся доска, новые первыми.
	ListAll(ctx context.Context) ([]model.Resource, error)

	Delete(ctx context.Context, id string) error
}

type resourceRepo struct {
	db *gorm.DB
}

// NewResourceRepository создаёт реализацию репозитория для Resource.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) Create(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	var res model.Resource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepo) ListAll(ctx context.Context) ([]model.Resource, error) {
	var list []model.Resource
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *resourceRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Resource{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
