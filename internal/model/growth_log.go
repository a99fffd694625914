package model

import "time"

// GrowthLog — запись дневника роста. Append-only, кроме явного удаления
// владельцем; при hard delete родительского GardenItem удаляется каскадно.
type GrowthLog struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	GardenItemID string `gorm:"not null;type:uuid;index" json:"garden_item_id"`

	GardenItem *GardenItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Date     time.Time `gorm:"autoCreateTime;index" json:"date"`
	Height   *float64  `json:"height,omitempty"` // высота в см, опционально
	PhotoURL string    `json:"photoUrl,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}
