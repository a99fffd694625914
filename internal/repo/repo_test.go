package repo

import (
	"fmt"
	"strings"
	"testing"

	"GardenGuru/internal/model"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов
// репозиториев. Имя базы берётся из имени теста, чтобы тесты не делили
// одну shared-память.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(
		&model.User{},
		&model.Plant{},
		&model.GardenItem{},
		&model.GrowthLog{},
		&model.Reminder{},
		&model.Resource{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}
