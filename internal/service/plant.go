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

// PlantService — бизнес-логика каталога растений.
// Каталог глобальный: мутации доступны любому аутентифицированному
// пользователю, проверки владельца нет (намеренное продуктовое решение).
type PlantService struct {
	repo   repo.PlantRepository
	logger *zap.SugaredLogger
}

func NewPlantService(r repo.PlantRepository, logger *zap.SugaredLogger) *PlantService {
	return &PlantService{repo: r, logger: logger}
}

// CreatePlantInput — поля создания/обновления каталожной записи.
// Для обновления nil-поля не трогаются.
type CreatePlantInput struct {
	Name           string
	ScientificName string
	WaterFrequency string
	Sunlight       string
	Fertilizer     string
	Pests          string
	ImageURL       string
	CareGuide      string
}

func (s *PlantService) Create(ctx context.Context, in CreatePlantInput) (*model.Plant, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	p := &model.Plant{
		ID:             uuid.NewString(),
		Name:           in.Name,
		ScientificName: in.ScientificName,
		WaterFrequency: in.WaterFrequency,
		Sunlight:       in.Sunlight,
		Fertilizer:     in.Fertilizer,
		Pests:          in.Pests,
		ImageURL:       in.ImageURL,
		CareGuide:      in.CareGuide,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create plant: %w", err)
	}
	s.logger.Infow("plant created", "id", p.ID, "name", p.Name)
	return p, nil
}

func (s *PlantService) Get(ctx context.Context, id string) (*model.Plant, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return p, nil
}

// List возвращает каталог; search — подстрока имени без учёта регистра.
func (s *PlantService) List(ctx context.Context, search string) ([]model.Plant, error) {
	plants, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	return plants, nil
}

// UpdatePlantInput — частичное обновление: применяются только не-nil поля.
type UpdatePlantInput struct {
	Name           *string
	ScientificName *string
	WaterFrequency *string
	Sunlight       *string
	Fertilizer     *string
	Pests          *string
	ImageURL       *string
	CareGuide      *string
}

func (s *PlantService) Update(ctx context.Context, id string, in UpdatePlantInput) (*model.Plant, error) {
	updates := map[string]any{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		updates["name"] = *in.Name
	}
	if in.ScientificName != nil {
		updates["scientific_name"] = *in.ScientificName
	}
	if in.WaterFrequency != nil {
		updates["water_frequency"] = *in.WaterFrequency
	}
	if in.Sunlight != nil {
		updates["sunlight"] = *in.Sunlight
	}
	if in.Fertilizer != nil {
		updates["fertilizer"] = *in.Fertilizer
	}
	if in.Pests != nil {
		updates["pests"] = *in.Pests
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.CareGuide != nil {
		updates["care_guide"] = *in.CareGuide
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("update plant: %w", err)
		}
	}
	return s.Get(ctx, id)
}

func (s *PlantService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete plant: %w", err)
	}
	s.logger.Infow("plant deleted", "id", id)
	return nil
}
