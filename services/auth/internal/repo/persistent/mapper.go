package persistent

import (
	"media-verse/pkg/models"
	"media-verse/services/auth/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                m.ID,
		Email:             m.Email,
		Name:              m.Name,
		PasswordHash:      m.PasswordHash,
		ProfilePicture:    m.ProfilePicture,
		ProfilePictureKey: m.ProfilePictureKey,
		Bio:               m.Bio,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:                e.ID,
		Email:             e.Email,
		Name:              e.Name,
		PasswordHash:      e.PasswordHash,
		ProfilePicture:    e.ProfilePicture,
		ProfilePictureKey: e.ProfilePictureKey,
		Bio:               e.Bio,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
