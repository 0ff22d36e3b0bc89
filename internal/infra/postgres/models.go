package postgres

import (
	"time"

	"github.com/lib/pq"

	"journey-catalog-service/internal/domain"
)

// VideoModel is the GORM model for the videos table.
type VideoModel struct {
	ID         string         `gorm:"type:uuid;primaryKey"`
	Title      string         `gorm:"type:varchar(500);not null"`
	YoutubeID  string         `gorm:"type:varchar(50);not null;column:youtube_id"`
	EmbedURL   string         `gorm:"type:varchar(500);not null;column:embed_url"`
	Day        int            `gorm:"not null;index"`
	Date       string         `gorm:"type:varchar(30);not null"`
	Reflection string         `gorm:"type:text;not null"`
	Excerpt    string         `gorm:"type:text"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

// TableName returns the table name for VideoModel.
func (VideoModel) TableName() string {
	return "videos"
}

// ToDomain converts VideoModel to domain.Video.
func (m *VideoModel) ToDomain() *domain.Video {
	return &domain.Video{
		ID:         m.ID,
		Title:      m.Title,
		YoutubeID:  m.YoutubeID,
		EmbedURL:   m.EmbedURL,
		Day:        m.Day,
		Date:       m.Date,
		Reflection: m.Reflection,
		Excerpt:    m.Excerpt,
		Tags:       m.Tags,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain creates a VideoModel from domain.Video.
func FromDomain(v *domain.Video) *VideoModel {
	return &VideoModel{
		ID:         v.ID,
		Title:      v.Title,
		YoutubeID:  v.YoutubeID,
		EmbedURL:   v.EmbedURL,
		Day:        v.Day,
		Date:       v.Date,
		Reflection: v.Reflection,
		Excerpt:    v.Excerpt,
		Tags:       v.Tags,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// AdminModel is the GORM model for the admins table.
type AdminModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100);not null;column:password_hash"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for AdminModel.
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain converts AdminModel to domain.Admin.
func (m *AdminModel) ToDomain() *domain.Admin {
	return &domain.Admin{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// ContactMessageModel is the GORM model for the contact_messages table.
type ContactMessageModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(200);not null"`
	Area      string    `gorm:"type:varchar(100)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for ContactMessageModel.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
