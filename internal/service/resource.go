package service

import (
	"context"
	"errors"
	"fmt"

	"GardenGuru/internal/model"
	"GardenGuru/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResourceService — доска материалов сообщества. Чтение публичное,
// удалять запись может только её автор.
type ResourceService struct {
	repo   repo.ResourceRepository
	logger *zap.SugaredLogger
}

func NewResourceService(r repo.ResourceRepository, logger *zap.SugaredLogger) *ResourceService {
	return &ResourceService{repo: r, logger: logger}
}

// CreateResourceInput — поля новой записи доски.
type CreateResourceInput struct {
	Title       string
	Type        model.ResourceType // пустая строка — Article
	Description string
	URL         string
	ImageURL    string
}

func (s *ResourceService) Create(ctx context.Context, userID int64, in CreateResourceInput) (*model.Resource, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if in.Type == "" {
		in.Type = model.ResourceArticle
	}
	if !model.ValidResourceType(in.Type) {
		return nil, fmt.Errorf("%w: unknown resource type %q", ErrValidation, in.Type)
	}

	res := &model.Resource{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		URL:         in.URL,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	s.logger.Infow("resource created", "id", res.ID, "user_id", userID)
	return res, nil
}

func (s *ResourceService) List(ctx context.Context) ([]model.Resource, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return list, nil
}

// Delete — только автор записи.
func (s *ResourceService) Delete(ctx context.Context, userID int64, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get resource: %w", err)
	}
	if res.UserID != userID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}
