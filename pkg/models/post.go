package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

type Post struct {
	ID        string      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string      `gorm:"type:text;not null;default:''" json:"content"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      User        `gorm:"foreignKey:UserID" json:"user"`
	Media     []PostMedia `gorm:"foreignKey:PostID" json:"media,omitempty"`
	Likes     []PostLike  `gorm:"foreignKey:PostID" json:"-"`
	Shares    []PostShare `gorm:"foreignKey:PostID" json:"-"`
	Comments  []Comment   `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PostMedia is one uploaded image or video. Position orders the media of one
// kind within a post; Key is the media store object key.
type PostMedia struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	Kind      MediaKind `gorm:"type:varchar(10);not null" json:"kind"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	Key       string    `gorm:"type:varchar(500);not null" json:"-"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostMedia) TableName() string {
	return "post_media"
}

func (m *PostMedia) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
