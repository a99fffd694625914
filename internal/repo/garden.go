package repo

import (
	"context"

	"GardenGuru/internal/model"

	"gorm.io/gorm"
)

// GardenRepository — доступ к элементам сада пользователя.
// GetByID намеренно без фильтра по владельцу: сервису нужно различать
// "не найдено" и "чужое" (404 vs 403).
type GardenRepository interface {
	Create(ctx context.Context, it *model.GardenItem) error
	GetByID(ctx context.Context, id string) (*model.GardenItem, error)

	// ListActive — активный сад (deleted=false), с каталожным растением.
	ListActive(ctx context.Context, userID int64) ([]model.GardenItem, error)
	// ListBin — корзина (deleted=true), с каталожным растением.
	ListBin(ctx context.Context, userID int64) ([]model.GardenItem, error)

	// Update применяет только переданные колонки.
	Update(ctx context.Context, id string, updates map[string]any) error

	// AddXP атомарно увеличивает счётчик опыта (xp = xp + delta в одном
	// UPDATE, без read-modify-write) и возвращает новое значение.
	AddXP(ctx context.Context, id string, delta int) (int, error)

	// PromoteStage — CAS-повышение стадии: срабатывает только если
	// текущая стадия всё ещё равна from. Снимает ручную фиксацию стадии.
	PromoteStage(ctx context.Context, id string, from, to model.Stage) (bool, error)

	// SetDeleted переключает флаг корзины (soft delete / restore).
	SetDeleted(ctx context.Context, id string, deleted bool) error

	// HardDelete в одной транзакции удаляет все записи дневника роста
	// элемента и сам элемент. Необратимо.
	HardDelete(ctx context.Context, id string) error
}

type gardenRepo struct {
	db *gorm.DB
}

// NewGardenRepository создаёт реализацию репозитория для GardenItem.
func NewGardenRepository(db *gorm.DB) GardenRepository {
	return &gardenRepo{db: db}
}

func (r *gardenRepo) Create(ctx context.Context, it *model.GardenItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *gardenRepo) GetByID(ctx context.Context, id string) (*model.GardenItem, error) {
	var it model.GardenItem
	err := r.db.WithContext(ctx).Preload("Plant").Where("id = ?", id).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *gardenRepo) ListActive(ctx context.Context, userID int64) ([]model.GardenItem, error) {
	return r.list(ctx, userID, false)
}

func (r *gardenRepo) ListBin(ctx context.Context, userID int64) ([]model.GardenItem, error) {
	return r.list(ctx, userID, true)
}

func (r *gardenRepo) list(ctx context.Context, userID int64, deleted bool) ([]model.GardenItem, error) {
	var items []model.GardenItem
	err := r.db.WithContext(ctx).
		Preload("Plant").
		Where("user_id = ? AND deleted = ?", userID, deleted).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gardenRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.GardenItem{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gardenRepo) AddXP(ctx context.Context, id string, delta int) (int, error) {
	tx := r.db.WithContext(ctx).Model(&model.GardenItem{}).Where("id = ?", id).
		UpdateColumn("xp", gorm.Expr("xp + ?", delta))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var xp int
	err := r.db.WithContext(ctx).Model(&model.GardenItem{}).
		Where("id = ?", id).Pluck("xp", &xp).Error
	if err != nil {
		return 0, err
	}
	return xp, nil
}

func (r *gardenRepo) PromoteStage(ctx context.Context, id string, from, to model.Stage) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.GardenItem{}).
		Where("id = ? AND stage = ?", id, from).
		UpdateColumns(map[string]any{"stage": to, "stage_pinned": false})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *gardenRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	tx := r.db.WithContext(ctx).Model(&model.GardenItem{}).Where("id = ?", id).
		UpdateColumn("deleted", deleted)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gardenRepo) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("garden_item_id = ?", id).Delete(&model.GrowthLog{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.GardenItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
