package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"media-verse/pkg/models"
	"media-verse/services/social/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementRepository interface {
	// Toggle flips userID's membership in the post's like or share set and
	// returns the resulting set size and membership.
	Toggle(ctx context.Context, postID, userID string, kind entity.Engagement) (entity.ToggleResult, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func membershipTable(kind entity.Engagement) (string, error) {
	switch kind {
	case entity.EngagementLike:
		return models.PostLike{}.TableName(), nil
	case entity.EngagementShare:
		return models.PostShare{}.TableName(), nil
	}
	return "", fmt.Errorf("unknown engagement kind %q", kind)
}

func membershipRow(kind entity.Engagement, postID, userID string) (interface{}, error) {
	switch kind {
	case entity.EngagementLike:
		return &models.PostLike{PostID: postID, UserID: userID}, nil
	case entity.EngagementShare:
		return &models.PostShare{PostID: postID, UserID: userID}, nil
	}
	return nil, fmt.Errorf("unknown engagement kind %q", kind)
}

// Toggle locks the post row so concurrent toggles on one post serialize and
// every caller observes a count consistent with its own change.
func (r *engagementRepository) Toggle(ctx context.Context, postID, userID string, kind entity.Engagement) (entity.ToggleResult, error) {
	var result entity.ToggleResult

	table, err := membershipTable(kind)
	if err != nil {
		return result, err
	}
	if !validID(postID) {
		return result, entity.ErrPostNotFound
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", postID).
			Take(&post).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrPostNotFound
			}
			return err
		}

		row, err := membershipRow(kind, postID, userID)
		if err != nil {
			return err
		}

		removed := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(row)
		if removed.Error != nil {
			return removed.Error
		}
		result.Member = removed.RowsAffected == 0

		if result.Member {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("updated_at", time.Now().UTC()).Error; err != nil {
			return err
		}

		return tx.Table(table).Where("post_id = ?", postID).Count(&result.Count).Error
	})
	if err != nil {
		return entity.ToggleResult{}, err
	}
	return result, nil
}
