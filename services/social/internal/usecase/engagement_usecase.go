package usecase

import (
	"context"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"
	"media-verse/services/social/internal/repo/persistent"
)

type EngagementUseCase interface {
	ToggleLike(ctx context.Context, userID, postID string) (entity.ToggleResult, error)
	ToggleShare(ctx context.Context, userID, postID string) (entity.ToggleResult, error)
	LikedPosts(ctx context.Context, userID string) ([]*entity.Post, error)
	SharedPosts(ctx context.Context, userID string) ([]*entity.Post, error)
}

type engagementUseCase struct {
	engagementRepo persistent.EngagementRepository
	postRepo       persistent.PostRepository
	events         eventEmitter
	logger         *logger.Logger
}

func NewEngagementUseCase(
	engagementRepo persistent.EngagementRepository,
	postRepo persistent.PostRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		events:         eventEmitter{publisher: publisher, logger: logger},
		logger:         logger,
	}
}

func (uc *engagementUseCase) ToggleLike(ctx context.Context, userID, postID string) (entity.ToggleResult, error) {
	return uc.toggle(ctx, userID, postID, entity.EngagementLike, entity.EventPostLiked)
}

func (uc *engagementUseCase) ToggleShare(ctx context.Context, userID, postID string) (entity.ToggleResult, error) {
	return uc.toggle(ctx, userID, postID, entity.EngagementShare, entity.EventPostShared)
}

func (uc *engagementUseCase) toggle(ctx context.Context, userID, postID string, kind entity.Engagement, event entity.EventType) (entity.ToggleResult, error) {
	if userID == "" {
		return entity.ToggleResult{}, entity.ErrUnauthorized
	}

	result, err := uc.engagementRepo.Toggle(ctx, postID, userID, kind)
	if err != nil {
		return entity.ToggleResult{}, storeError("toggle "+string(kind), err)
	}

	uc.logger.Debug("[ENGAGEMENT] Toggled %s: post_id=%s, user_id=%s, member=%t, count=%d", kind, postID, userID, result.Member, result.Count)
	if result.Member {
		uc.events.emit(ctx, event, postID, userID, "")
	}

	return result, nil
}

func (uc *engagementUseCase) LikedPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	return uc.engagedPosts(ctx, userID, entity.EngagementLike)
}

func (uc *engagementUseCase) SharedPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	return uc.engagedPosts(ctx, userID, entity.EngagementShare)
}

func (uc *engagementUseCase) engagedPosts(ctx context.Context, userID string, kind entity.Engagement) ([]*entity.Post, error) {
	if userID == "" {
		return nil, entity.ErrUnauthorized
	}

	posts, err := uc.postRepo.ListEngagedBy(ctx, userID, kind)
	if err != nil {
		return nil, storeError("list "+string(kind)+"d posts", err)
	}
	return posts, nil
}
