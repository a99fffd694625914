package model

import "time"

// GardenItem — экземпляр растения из каталога в саду пользователя.
// UserID и PlantID неизменяемы после создания.
type GardenItem struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID  int64  `gorm:"not null;index" json:"user_id"`
	PlantID string `gorm:"not null;type:uuid;index" json:"plant_id"`

	// Связи
	User  *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Plant *Plant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"plant,omitempty"`

	Nickname    string    `json:"nickname,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	PlantedDate time.Time `gorm:"autoCreateTime" json:"plantedDate"`

	Stage Stage `gorm:"not null;default:Seed" json:"stage"`
	XP    int   `gorm:"not null;default:0" json:"xp"`
	// StagePinned — стадия выставлена вручную, а не выведена движком.
	// Сбрасывается при следующем повышении движком.
	StagePinned bool `gorm:"not null;default:false" json:"stage_pinned"`

	Deleted bool `gorm:"not null;default:false" json:"deleted"` // soft delete: корзина

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
