package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GardenGuru/internal/model"
	"GardenGuru/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService — напоминания об уходе. Планировщика нет:
// список читается календарём, сервер таймеров не держит.
type ReminderService struct {
	repo   repo.ReminderRepository
	garden *GardenService
	logger *zap.SugaredLogger
}

func NewReminderService(r repo.ReminderRepository, garden *GardenService, logger *zap.SugaredLogger) *ReminderService {
	return &ReminderService{repo: r, garden: garden, logger: logger}
}

// CreateReminderInput — цель напоминания. Заполняется ровно одно из
// GardenItemID / PlantID.
type CreateReminderInput struct {
	GardenItemID string
	PlantID      string
	Type         model.ReminderType
	Date         time.Time
}

// Create ставит напоминание. Если передан PlantID, сначала выполняется
// явный шаг EnsureGardenItem: каталожное растение сажается в сад новым
// элементом (Seed, xp 0), и напоминание вешается на него. Повторный вызов
// с тем же PlantID создаст второй независимый элемент.
func (s *ReminderService) Create(ctx context.Context, userID int64, in CreateReminderInput) (*model.Reminder, error) {
	if !model.ValidReminderType(in.Type) {
		return nil, fmt.Errorf("%w: unknown reminder type %q", ErrValidation, in.Type)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date required", ErrValidation)
	}
	if (in.GardenItemID == "") == (in.PlantID == "") {
		return nil, fmt.Errorf("%w: exactly one of gardenItemId and plantId required", ErrValidation)
	}

	itemID := in.GardenItemID
	if itemID != "" {
		if _, err := s.garden.Get(ctx, userID, itemID); err != nil {
			return nil, err
		}
	} else {
		it, err := s.garden.EnsureGardenItem(ctx, userID, in.PlantID)
		if err != nil {
			return nil, err
		}
		itemID = it.ID
	}

	rem := &model.Reminder{
		ID:           uuid.NewString(),
		UserID:       userID,
		GardenItemID: itemID,
		Type:         in.Type,
		Date:         in.Date,
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	s.logger.Infow("reminder created", "id", rem.ID, "user_id", userID, "type", in.Type)
	return rem, nil
}

// List — напоминания пользователя по возрастанию даты, каждое с
// элементом сада и его каталожным растением.
func (s *ReminderService) List(ctx context.Context, userID int64) ([]model.Reminder, error) {
	rems, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return rems, nil
}

// ToggleComplete переключает флаг выполнения. Истории нет.
func (s *ReminderService) ToggleComplete(ctx context.Context, userID int64, id string) (*model.Reminder, error) {
	rem, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetCompleted(ctx, id, !rem.Completed); err != nil {
		return nil, fmt.Errorf("toggle reminder: %w", err)
	}
	return s.getOwned(ctx, userID, id)
}

// Delete удаляет напоминание. Каскадов нет.
func (s *ReminderService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

func (s *ReminderService) getOwned(ctx context.Context, userID int64, id string) (*model.Reminder, error) {
	rem, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	if rem.UserID != userID {
		return nil, ErrForbidden
	}
	return rem, nil
}
