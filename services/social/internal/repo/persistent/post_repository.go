package persistent

import (
	"context"
	"errors"

	"media-verse/pkg/models"
	"media-verse/services/social/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error)
	ListEngagedBy(ctx context.Context, userID string, kind entity.Engagement) ([]*entity.Post, error)
	GetAuthor(ctx context.Context, userID string) (*entity.Author, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// validID filters ids that could never name a row so that Postgres does not
// reject them with a uuid syntax error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func withFeedPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_media.kind ASC, post_media.position ASC")
		}).
		Preload("Likes").
		Preload("Shares")
}

func withComments(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.User")
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		media := postModel.Media
		postModel.Media = nil

		if err := tx.Omit(clause.Associations).Create(postModel).Error; err != nil {
			return err
		}

		for i := range media {
			media[i].PostID = postModel.ID
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		postModel.Media = media

		var author models.User
		if err := tx.Where("id = ?", postModel.UserID).Take(&author).Error; err == nil {
			postModel.User = author
		}

		*post = *ToPostEntity(postModel)
		return nil
	})
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if !validID(id) {
		return nil, entity.ErrPostNotFound
	}

	var postModel models.Post
	err := withComments(withFeedPreloads(r.db.WithContext(ctx))).
		Where("id = ?", id).
		Take(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// Delete removes the post with its comments, memberships and media rows in one
// transaction. Stored objects are not touched here.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return entity.ErrPostNotFound
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", id).
			Take(&post).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrPostNotFound
			}
			return err
		}

		for _, dependent := range []interface{}{
			&models.Comment{},
			&models.PostLike{},
			&models.PostShare{},
			&models.PostMedia{},
		} {
			if err := tx.Where("post_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}

func (r *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	query := withComments(withFeedPreloads(r.db.WithContext(ctx))).Order("created_at DESC, id DESC")
	return r.find(query)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error) {
	if !validID(authorID) {
		return []*entity.Post{}, nil
	}

	query := withFeedPreloads(r.db.WithContext(ctx)).
		Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC")
	return r.find(query)
}

// ListEngagedBy returns the posts a user liked or shared, most recent first.
func (r *postRepository) ListEngagedBy(ctx context.Context, userID string, kind entity.Engagement) ([]*entity.Post, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return nil, err
	}
	if !validID(userID) {
		return []*entity.Post{}, nil
	}

	query := withFeedPreloads(r.db.WithContext(ctx).Model(&models.Post{})).
		Joins("INNER JOIN "+table+" m ON posts.id = m.post_id").
		Where("m.user_id = ?", userID).
		Order("m.created_at DESC, posts.id DESC")
	return r.find(query)
}

func (r *postRepository) GetAuthor(ctx context.Context, userID string) (*entity.Author, error) {
	if !validID(userID) {
		return nil, entity.ErrUserNotFound
	}

	var user models.User
	err := r.db.WithContext(ctx).
		Select("id", "name", "profile_picture").
		Where("id = ?", userID).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return ToAuthorEntity(&user), nil
}

func (r *postRepository) find(query *gorm.DB) ([]*entity.Post, error) {
	var postModels []models.Post
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}
