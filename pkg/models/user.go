package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                string    `gorm:"type:uuid;primary_key" json:"id"`
	Email             string    `gorm:"type:varchar(320);uniqueIndex;not null" json:"email"`
	Name              string    `gorm:"type:varchar(100)" json:"name"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	ProfilePicture    string    `gorm:"type:varchar(500);not null" json:"profile_picture"`
	ProfilePictureKey string    `gorm:"type:varchar(500)" json:"-"`
	Bio               string    `gorm:"type:varchar(250);default:''" json:"bio"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
