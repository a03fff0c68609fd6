package persistent

import (
	"context"
	"strings"

	"media-verse/pkg/models"
	"media-verse/services/social/internal/entity"

	"gorm.io/gorm"
)

type SearchRepository interface {
	SearchUsers(ctx context.Context, query string, limit int) ([]*entity.Author, error)
	SearchPosts(ctx context.Context, query string, limit int) ([]*entity.Post, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns free text into a literal substring pattern for ILIKE.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

func (r *searchRepository) SearchUsers(ctx context.Context, query string, limit int) ([]*entity.Author, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "name", "profile_picture").
		Where("name ILIKE ?", likePattern(query)).
		Order("name ASC, id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	authors := make([]*entity.Author, len(users))
	for i := range users {
		authors[i] = ToAuthorEntity(&users[i])
	}
	return authors, nil
}

func (r *searchRepository) SearchPosts(ctx context.Context, query string, limit int) ([]*entity.Post, error) {
	var postModels []models.Post
	err := withFeedPreloads(r.db.WithContext(ctx)).
		Where("content ILIKE ?", likePattern(query)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}
