package service

import (
	"context"

	"GardenGuru/internal/model"
	"GardenGuru/internal/repo"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев, общие для тестов сервисного слоя.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockPlantRepo struct{ mock.Mock }

func (m *mockPlantRepo) Create(ctx context.Context, p *model.Plant) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPlantRepo) GetByID(ctx context.Context, id string) (*model.Plant, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Plant); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlantRepo) List(ctx context.Context, search string) ([]model.Plant, error) {
	args := m.Called(ctx, search)
	if v, ok := args.Get(0).([]model.Plant); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlantRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockPlantRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PlantRepository = (*mockPlantRepo)(nil)

type mockGardenRepo struct{ mock.Mock }

func (m *mockGardenRepo) Create(ctx context.Context, it *model.GardenItem) error {
	return m.Called(ctx, it).Error(0)
}
func (m *mockGardenRepo) GetByID(ctx context.Context, id string) (*model.GardenItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.GardenItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGardenRepo) ListActive(ctx context.Context, userID int64) ([]model.GardenItem, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.GardenItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGardenRepo) ListBin(ctx context.Context, userID int64) ([]model.GardenItem, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.GardenItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGardenRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}
func (m *mockGardenRepo) AddXP(ctx context.Context, id string, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}
func (m *mockGardenRepo) PromoteStage(ctx context.Context, id string, from, to model.Stage) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *mockGardenRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	return m.Called(ctx, id, deleted).Error(0)
}
func (m *mockGardenRepo) HardDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.GardenRepository = (*mockGardenRepo)(nil)

type mockGrowthLogRepo struct{ mock.Mock }

func (m *mockGrowthLogRepo) Create(ctx context.Context, l *model.GrowthLog) error {
	return m.Called(ctx, l).Error(0)
}
func (m *mockGrowthLogRepo) GetByID(ctx context.Context, id string) (*model.GrowthLog, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.GrowthLog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGrowthLogRepo) ListByItem(ctx context.Context, gardenItemID string) ([]model.GrowthLog, error) {
	args := m.Called(ctx, gardenItemID)
	if v, ok := args.Get(0).([]model.GrowthLog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockGrowthLogRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.GrowthLogRepository = (*mockGrowthLogRepo)(nil)

type mockReminderRepo struct{ mock.Mock }

func (m *mockReminderRepo) Create(ctx context.Context, rem *model.Reminder) error {
	return m.Called(ctx, rem).Error(0)
}
func (m *mockReminderRepo) GetByID(ctx context.Context, id string) (*model.Reminder, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Reminder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockReminderRepo) ListByUser(ctx context.Context, userID int64) ([]model.Reminder, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Reminder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockReminderRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	return m.Called(ctx, id, completed).Error(0)
}
func (m *mockReminderRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ReminderRepository = (*mockReminderRepo)(nil)

type mockResourceRepo struct{ mock.Mock }

func (m *mockResourceRepo) Create(ctx context.Context, res *model.Resource) error {
	return m.Called(ctx, res).Error(0)
}
func (m *mockResourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Resource); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockResourceRepo) ListAll(ctx context.Context) ([]model.Resource, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Resource); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockResourceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ResourceRepository = (*mockResourceRepo)(nil)
