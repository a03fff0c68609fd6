package usecase

import (
	"context"
	"strings"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"
	"media-verse/services/social/internal/repo/persistent"
)

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, content string, images, videos []entity.MediaRef) (*entity.Post, error)
	DeletePost(ctx context.Context, requesterID, postID string) error
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]*entity.Post, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	media    MediaStore
	events   eventEmitter
	limits   PostLimits
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	media MediaStore,
	publisher EventPublisher,
	limits PostLimits,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		media:    media,
		events:   eventEmitter{publisher: publisher, logger: logger},
		limits:   limits,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID, content string, images, videos []entity.MediaRef) (*entity.Post, error) {
	if authorID == "" {
		return nil, entity.ErrUnauthorized
	}

	content = strings.TrimSpace(content)
	if content == "" && len(images) == 0 && len(videos) == 0 {
		return nil, entity.ErrEmptyPost
	}
	if err := uc.limits.check(len(images), len(videos)); err != nil {
		return nil, err
	}

	post := &entity.Post{
		AuthorID: authorID,
		Content:  content,
		Images:   append([]entity.MediaRef{}, images...),
		Videos:   append([]entity.MediaRef{}, videos...),
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, storeError("create post", err)
	}

	uc.logger.Info("[POST] Created post: post_id=%s, user_id=%s, images=%d, videos=%d", post.ID, authorID, len(post.Images), len(post.Videos))
	uc.events.emit(ctx, entity.EventPostCreated, post.ID, authorID, "")

	return post, nil
}

// DeletePost removes the post and everything it owns from the store, then
// deletes its media objects. Media failures are logged and do not fail the call.
func (uc *postUseCase) DeletePost(ctx context.Context, requesterID, postID string) error {
	if requesterID == "" {
		return entity.ErrUnauthorized
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return storeError("load post", err)
	}
	if !post.IsOwnedBy(requesterID) {
		return entity.ErrForbidden
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return storeError("delete post", err)
	}

	uc.removeMedia(context.WithoutCancel(ctx), post)
	uc.logger.Info("[POST] Deleted post: post_id=%s, user_id=%s", postID, requesterID)
	uc.events.emit(ctx, entity.EventPostDeleted, postID, requesterID, "")

	return nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, storeError("load post", err)
	}
	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, storeError("list posts", err)
	}
	return posts, nil
}

func (uc *postUseCase) ListUserPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	if _, err := uc.postRepo.GetAuthor(ctx, userID); err != nil {
		return nil, storeError("load user", err)
	}

	posts, err := uc.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, storeError("list user posts", err)
	}
	return posts, nil
}

func (uc *postUseCase) removeMedia(ctx context.Context, post *entity.Post) {
	if uc.media == nil {
		return
	}
	for _, key := range post.MediaKeys() {
		if err := uc.media.DeleteFile(ctx, key); err != nil {
			uc.logger.Warn("[POST] Failed to delete media object: post_id=%s, key=%s: %v", post.ID, key, err)
		}
	}
}

func (l PostLimits) check(images, videos int) error {
	if l.MaxImages > 0 && images > l.MaxImages {
		return entity.ErrTooManyImages
	}
	if l.MaxVideos > 0 && videos > l.MaxVideos {
		return entity.ErrTooManyVideos
	}
	return nil
}
