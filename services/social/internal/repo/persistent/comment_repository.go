package persistent

import (
	"context"
	"errors"

	"media-verse/pkg/models"
	"media-verse/services/social/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create holds a share lock on the post so a concurrent delete cannot leave an
// orphaned comment behind.
func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if !validID(comment.PostID) {
		return entity.ErrPostNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPostShared(tx, comment.PostID); err != nil {
			return err
		}

		commentModel := ToCommentModel(comment)
		if err := tx.Omit(clause.Associations).Create(commentModel).Error; err != nil {
			return err
		}

		var author models.User
		if err := tx.Where("id = ?", commentModel.UserID).Take(&author).Error; err == nil {
			commentModel.User = author
		}

		*comment = *ToCommentEntity(commentModel)
		return nil
	})
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if !validID(postID) {
		return nil, entity.ErrPostNotFound
	}

	var commentModels []models.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockPostShared(tx, postID); err != nil {
			return err
		}
		return tx.Preload("User").
			Where("post_id = ?", postID).
			Order("created_at ASC, id ASC").
			Find(&commentModels).Error
	})
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func lockPostShared(tx *gorm.DB, postID string) error {
	var post models.Post
	err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id").
		Where("id = ?", postID).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrPostNotFound
	}
	return err
}
