package service

import (
	"context"
	"testing"

	"GardenGuru/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newGardenSvc() (*GardenService, *mockGardenRepo, *mockGrowthLogRepo, *mockPlantRepo) {
	gr := new(mockGardenRepo)
	lr := new(mockGrowthLogRepo)
	pr := new(mockPlantRepo)
	return NewGardenService(gr, lr, pr, zap.NewNop().Sugar()), gr, lr, pr
}

func ownedItem(id string, userID int64, stage model.Stage, xp int) *model.GardenItem {
	return &model.GardenItem{ID: id, UserID: userID, PlantID: "p1", Stage: stage, XP: xp}
}

func TestGardenService_AppendLog_AwardsXPAndStepsStage(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	// 50 XP за запись; 100 XP достигает порога Sprout — один шаг
	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 7, model.StageSeed, 50), nil).Twice()
	lr.On("Create", mock.Anything, mock.MatchedBy(func(l *model.GrowthLog) bool {
		return l.GardenItemID == "g1" && l.Notes == "watered"
	})).Return(nil).Once()
	gr.On("AddXP", mock.Anything, "g1", XPPerLog).Return(100, nil).Once()
	gr.On("PromoteStage", mock.Anything, "g1", model.StageSeed, model.StageSprout).Return(true, nil).Once()

	log, item, err := svc.AppendLog(ctx, 7, "g1", AppendLogInput{Notes: "watered"})
	assert.NoError(t, err)
	assert.NotNil(t, log)
	assert.NotNil(t, item)
	gr.AssertExpectations(t)
	lr.AssertExpectations(t)
}

func TestGardenService_AppendLog_BelowThresholdNoPromotion(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 7, model.StageSeed, 0), nil).Twice()
	lr.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	gr.On("AddXP", mock.Anything, "g1", XPPerLog).Return(50, nil).Once()

	_, _, err := svc.AppendLog(ctx, 7, "g1", AppendLogInput{})
	assert.NoError(t, err)
	// PromoteStage не вызывался
	gr.AssertNotCalled(t, "PromoteStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGardenService_AppendLog_BigJumpSingleStep(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	// скачок сразу к 1000 XP — всё равно только Seed→Sprout
	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 7, model.StageSeed, 950), nil).Twice()
	lr.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	gr.On("AddXP", mock.Anything, "g1", XPPerLog).Return(1000, nil).Once()
	gr.On("PromoteStage", mock.Anything, "g1", model.StageSeed, model.StageSprout).Return(true, nil).Once()

	_, _, err := svc.AppendLog(ctx, 7, "g1", AppendLogInput{})
	assert.NoError(t, err)
	gr.AssertExpectations(t)
}

func TestGardenService_AppendLog_MatureStays(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 7, model.StageMature, 5000), nil).Twice()
	lr.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	gr.On("AddXP", mock.Anything, "g1", XPPerLog).Return(5050, nil).Once()

	_, _, err := svc.AppendLog(ctx, 7, "g1", AppendLogInput{})
	assert.NoError(t, err)
	gr.AssertNotCalled(t, "PromoteStage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGardenService_AppendLog_Authorization(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		gr.ExpectedCalls = nil
		gr.On("GetByID", mock.Anything, "missing").Return((*model.GardenItem)(nil), gorm.ErrRecordNotFound).Once()
		_, _, err := svc.AppendLog(ctx, 7, "missing", AppendLogInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("forbidden leaves no side effects", func(t *testing.T) {
		gr.ExpectedCalls = nil
		gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 1, model.StageSeed, 0), nil).Once()
		_, _, err := svc.AppendLog(ctx, 999, "g1", AppendLogInput{})
		assert.ErrorIs(t, err, ErrForbidden)
		lr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		gr.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGardenService_DeleteLog_NoXPRollback(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	lr.On("GetByID", mock.Anything, "l1").Return(&model.GrowthLog{ID: "l1", GardenItemID: "g1"}, nil).Once()
	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 7, model.StageSprout, 150), nil).Once()
	lr.On("Delete", mock.Anything, "l1").Return(nil).Once()

	err := svc.DeleteLog(ctx, 7, "g1", "l1")
	assert.NoError(t, err)
	// удаление записи не откатывает опыт
	gr.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything, mock.Anything)
	lr.AssertExpectations(t)
}

func TestGardenService_DeleteLog_Errors(t *testing.T) {
	svc, gr, lr, _ := newGardenSvc()
	ctx := context.Background()

	t.Run("log not found", func(t *testing.T) {
		lr.ExpectedCalls = nil
		lr.On("GetByID", mock.Anything, "missing").Return((*model.GrowthLog)(nil), gorm.ErrRecordNotFound).Once()
		assert.ErrorIs(t, svc.DeleteLog(ctx, 7, "g1", "missing"), ErrNotFound)
	})

	t.Run("log belongs to another item", func(t *testing.T) {
		lr.ExpectedCalls = nil
		lr.On("GetByID", mock.Anything, "l1").Return(&model.GrowthLog{ID: "l1", GardenItemID: "other"}, nil).Once()
		assert.ErrorIs(t, svc.DeleteLog(ctx, 7, "g1", "l1"), ErrNotFound)
	})

	t.Run("forbidden does not delete", func(t *testing.T) {
		lr.ExpectedCalls = nil
		gr.ExpectedCalls = nil
		lr.On("GetByID", mock.Anything, "l1").Return(&model.GrowthLog{ID: "l1", GardenItemID: "g1"}, nil).Once()
		gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 1, model.StageSeed, 0), nil).Once()
		assert.ErrorIs(t, svc.DeleteLog(ctx, 999, "g1", "l1"), ErrForbidden)
		lr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestGardenService_AddToGarden_Validation(t *testing.T) {
	svc, _, _, pr := newGardenSvc()
	ctx := context.Background()

	_, err := svc.AddToGarden(ctx, 7, AddToGardenInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddToGarden(ctx, 7, AddToGardenInput{PlantID: "p1", Stage: "Bush"})
	assert.ErrorIs(t, err, ErrValidation)

	pr.On("GetByID", mock.Anything, "ghost").Return((*model.Plant)(nil), gorm.ErrRecordNotFound).Once()
	_, err = svc.AddToGarden(ctx, 7, AddToGardenInput{PlantID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGardenService_Update_StagePin(t *testing.T) {
	svc, gr, _, _ := newGardenSvc()
	ctx := context.Background()

	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 7, model.StageSeed, 0), nil).Twice()
	st := model.StageTree
	gr.On("Update", mock.Anything, "g1", mock.MatchedBy(func(u map[string]any) bool {
		// ручная правка стадии фиксирует её явно
		return u["stage"] == model.StageTree && u["stage_pinned"] == true
	})).Return(nil).Once()

	_, err := svc.Update(ctx, 7, "g1", UpdateItemInput{Stage: &st})
	assert.NoError(t, err)
	gr.AssertExpectations(t)
}

func TestGardenService_Lifecycle_OwnerOnly(t *testing.T) {
	svc, gr, _, _ := newGardenSvc()
	ctx := context.Background()

	gr.On("GetByID", mock.Anything, "g1").Return(ownedItem("g1", 1, model.StageSeed, 0), nil)

	assert.ErrorIs(t, svc.SoftDelete(ctx, 999, "g1"), ErrForbidden)
	_, err := svc.Restore(ctx, 999, "g1")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.HardDelete(ctx, 999, "g1"), ErrForbidden)

	gr.AssertNotCalled(t, "SetDeleted", mock.Anything, mock.Anything, mock.Anything)
	gr.AssertNotCalled(t, "HardDelete", mock.Anything, mock.Anything)
}
