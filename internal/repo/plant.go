package repo

import (
	"context"
	"strings"

	"GardenGuru/internal/model"

	"gorm.io/gorm"
)

// PlantRepository — доступ к глобальному каталогу растений.
type PlantRepository interface {
	Create(ctx context.Context, p *model.Plant) error
	GetByID(ctx context.Context, id string) (*model.Plant, error)

	// List возвращает каталог; при непустом search — регистронезависимый
	// поиск подстроки по имени.
	List(ctx context.Context, search string) ([]model.Plant, error)

	// Update применяет только переданные колонки. Возвращает
	// gorm.ErrRecordNotFound, если записи нет.
	Update(ctx context.Context, id string, updates map[string]any) error

	Delete(ctx context.Context, id string) error
}

type plantRepo struct {
	db *gorm.DB
}

// NewPlantRepository создаёт реализацию репозитория для Plant.
func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepo{db: db}
}

func (r *plantRepo) Create(ctx context.Context, p *model.Plant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *plantRepo) GetByID(ctx context.Context, id string) (*model.Plant, error) {
	var p model.Plant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) List(ctx context.Context, search string) ([]model.Plant, error) {
	q := r.db.WithContext(ctx).Model(&model.Plant{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var plants []model.Plant
	if err := q.Order("name").Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (r *plantRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Plant{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *plantRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Plant{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
