package model

import "time"

// ResourceType — тип материала на доске сообщества.
type ResourceType string

const (
	ResourceBook    ResourceType = "Book"
	ResourceArticle ResourceType = "Article"
	ResourceBlog    ResourceType = "Blog"
	ResourceVideo   ResourceType = "Video"
	ResourceOther   ResourceType = "Other"
)

// ValidResourceType проверяет значение перечисления.
func ValidResourceType(t ResourceType) bool {
	switch t {
	case ResourceBook, ResourceArticle, ResourceBlog, ResourceVideo, ResourceOther:
		return true
	}
	return false
}

// Resource — материал доски сообщества. UserID нужен для атрибуции
// и авторизации удаления (удалять может только автор).
type Resource struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title       string       `gorm:"not null" json:"title"`
	Type        ResourceType `gorm:"not null;default:Article" json:"type"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
