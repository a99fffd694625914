package repo

import (
	"strings"

	"GardenGuru/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение и прогоняет автомиграции.
// postgres://-DSN — Postgres, иначе DSN трактуется как путь к SQLite-файлу
// (драйвер modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Plant{},
		&model.GardenItem{},
		&model.GrowthLog{},
		&model.Reminder{},
		&model.Resource{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
