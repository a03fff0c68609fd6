package entity

import "time"

type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PasswordHash      string    `json:"-"`
	ProfilePicture    string    `json:"profile_picture"`
	ProfilePictureKey string    `json:"-"`
	Bio               string    `json:"bio"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProfileUpdate carries the optional text fields of a profile edit. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Name *string
	Bio  *string
}
