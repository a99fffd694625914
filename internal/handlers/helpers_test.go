package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"GardenGuru/internal/config"
	"GardenGuru/internal/handlers"
	"GardenGuru/internal/middleware"
	"GardenGuru/internal/model"
	"GardenGuru/internal/repo"
	"GardenGuru/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var dsnSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// newTestRouter поднимает полный роутер поверх in-memory sqlite.
// DSN уникален per-test, иначе cache=shared перемешает данные тестов.
func newTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:h_%s?mode=memory&cache=shared", dsnSanitizer.ReplaceAllString(t.Name(), "_"))
	db, err := repo.InitDB(dsn)
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	cfg := &config.Config{AuthSecret: testSecret}

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	plantRepo := repo.NewPlantRepository(db)
	plantSvc := service.NewPlantService(plantRepo, logger)
	gardenSvc := service.NewGardenService(repo.NewGardenRepository(db), repo.NewGrowthLogRepository(db), plantRepo, logger)
	reminderSvc := service.NewReminderService(repo.NewReminderRepository(db), gardenSvc, logger)
	resourceSvc := service.NewResourceService(repo.NewResourceRepository(db), logger)

	h := handlers.NewHandler(userSvc, plantSvc, gardenSvc, reminderSvc, resourceSvc, logger, cfg)
	return h.Router, db
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	require.NoError(t, middleware.SetLoginCookie(rr, userID, testSecret))
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// doJSON выполняет запрос с телом и авторизацией (userID == 0 — аноним).
func doJSON(t *testing.T, router http.Handler, method, path string, userID int64, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Buffer
	if body != "" {
		rd = bytes.NewBufferString(body)
	} else {
		rd = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		addAuthCookie(t, req, userID)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(&v))
	return v
}

// seedUser создаёт пользователя напрямую в БД (пароль для API-тестов не нужен).
func seedUser(t *testing.T, db *gorm.DB, login string) int64 {
	t.Helper()
	u := &model.User{Login: login, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u.ID
}

func seedPlant(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	p := &model.Plant{ID: uuid.NewString(), Name: name, WaterFrequency: "weekly"}
	require.NoError(t, db.Create(p).Error)
	return p.ID
}
