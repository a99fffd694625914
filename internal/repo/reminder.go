package repo

import (
	"context"

	"GardenGuru/internal/model"

	"gorm.io/gorm"
)

// ReminderRepository — доступ к напоминаниям об уходе.
type ReminderRepository interface {
	Create(ctx context.Context, rem *model.Reminder) error
	GetByID(ctx context.Context, id string) (*model.Reminder, error)

	// ListByUser — напоминания пользователя по возрастанию даты,
	// с элементом сада и его каталожным растением (для календаря).
	ListByUser(ctx context.Context, userID int64) ([]model.Reminder, error)

	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

type reminderRepo struct {
	db *gorm.DB
}

// NewReminderRepository создаёт реализацию репозитория для Reminder.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, rem *model.Reminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (*model.Reminder, error) {
	var rem model.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rem).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *reminderRepo) ListByUser(ctx context.Context, userID int64) ([]model.Reminder, error) {
	var rems []model.Reminder
	err := r.db.WithContext(ctx).
		Preload("GardenItem").
		Preload("GardenItem.Plant").
		Where("user_id = ?", userID).
		Order("date").
		Find(&rems).Error
	if err != nil {
		return nil, err
	}
	return rems, nil
}

func (r *reminderRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	tx := r.db.WithContext(ctx).Model(&model.Reminder{}).Where("id = ?", id).
		UpdateColumn("completed", completed)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reminderRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reminder{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
