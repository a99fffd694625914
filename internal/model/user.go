package model

import "time"

// Серверная модель User — учётная запись садовода.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Login    string `gorm:"uniqueIndex;not null" json:"login"`
	Password string `gorm:"not null" json:"-"` // bcrypt-хеш, наружу не отдаём

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
