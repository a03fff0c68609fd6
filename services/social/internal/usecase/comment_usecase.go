package usecase

import (
	"context"
	"strings"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"
	"media-verse/services/social/internal/repo/persistent"
)

type CommentUseCase interface {
	AddComment(ctx context.Context, userID, postID, content string) (*entity.Comment, error)
	ListComments(ctx context.Context, postID string) ([]*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	events      eventEmitter
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, publisher EventPublisher, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		events:      eventEmitter{publisher: publisher, logger: logger},
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	if userID == "" {
		return nil, entity.ErrUnauthorized
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrEmptyComment
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, storeError("create comment", err)
	}

	uc.events.emit(ctx, entity.EventPostCommented, postID, userID, comment.ID)
	return comment, nil
}

func (uc *commentUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, storeError("list comments", err)
	}
	return comments, nil
}
