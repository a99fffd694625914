package model

import "time"

// Plant — запись каталога растений. Глобальная, без владельца:
// создавать, менять и удалять может любой аутентифицированный пользователь.
type Plant struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Name           string `gorm:"not null;index" json:"name"`
	ScientificName string `json:"scientificName,omitempty"`
	WaterFrequency string `json:"waterFrequency,omitempty"` // e.g. "Every 3 days"
	Sunlight       string `json:"sunlight,omitempty"`       // e.g. "Full Sun"
	Fertilizer     string `json:"fertilizer,omitempty"`
	Pests          string `json:"pests,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	CareGuide      string `json:"careGuide,omitempty"` // длинный текст/markdown по уходу

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
