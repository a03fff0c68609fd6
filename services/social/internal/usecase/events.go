package usecase

import (
	"context"
	"time"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"
)

type eventEmitter struct {
	publisher EventPublisher
	logger    *logger.Logger
}

// emit publishes after the store change has committed. Failures are logged and
// never surface to the caller.
func (e eventEmitter) emit(ctx context.Context, eventType entity.EventType, postID, actorID, commentID string) {
	if e.publisher == nil {
		return
	}

	event := entity.Event{
		Type:       eventType,
		PostID:     postID,
		ActorID:    actorID,
		CommentID:  commentID,
		OccurredAt: time.Now().UTC(),
	}
	if err := e.publisher.Publish(ctx, string(eventType), event); err != nil {
		e.logger.Warn("[EVENTS] Failed to publish %s: post_id=%s, actor_id=%s: %v", eventType, postID, actorID, err)
	}
}

// storeError keeps domain sentinels intact and wraps everything else.
func storeError(op string, err error) error {
	if err == nil || entity.IsDomainError(err) {
		return err
	}
	return &entity.DependencyError{Op: op, Err: err}
}
