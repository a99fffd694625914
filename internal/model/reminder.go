package model

import "time"

// ReminderType — вид ухода, по которому ставится напоминание.
type ReminderType string

const (
	ReminderWater      ReminderType = "Water"
	ReminderFertilizer ReminderType = "Fertilizer"
	ReminderMedicine   ReminderType = "Medicine"
	ReminderPruning    ReminderType = "Pruning"
	ReminderHarvesting ReminderType = "Harvesting"
	ReminderOther      ReminderType = "Other"
)

// ValidReminderType проверяет значение перечисления.
func ValidReminderType(t ReminderType) bool {
	switch t {
	case ReminderWater, ReminderFertilizer, ReminderMedicine,
		ReminderPruning, ReminderHarvesting, ReminderOther:
		return true
	}
	return false
}

// Reminder — напоминание об уходе, привязано к дате и элементу сада.
// Таймеров нет: список читается и отрисовывается календарём на клиенте.
type Reminder struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       int64  `gorm:"not null;index" json:"user_id"`
	GardenItemID string `gorm:"not null;type:uuid;index" json:"garden_item_id"`

	User       *User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	GardenItem *GardenItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"gardenItem,omitempty"`

	Type      ReminderType `gorm:"not null" json:"type"`
	Date      time.Time    `gorm:"not null;index" json:"date"`
	Completed bool         `gorm:"not null;default:false" json:"completed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
