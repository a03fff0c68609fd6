package usecase

import (
	"context"
	"errors"
	"testing"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_AddPublishesEvent(t *testing.T) {
	repo := new(MockEngagementRepository)
	publisher := new(MockEventPublisher)
	uc := NewEngagementUseCase(repo, new(MockPostRepository), publisher, logger.NewNop())

	repo.On("Toggle", mock.Anything, "post-1", "user-2", entity.EngagementLike).
		Return(entity.ToggleResult{Count: 1, Member: true}, nil)
	publisher.On("Publish", mock.Anything, "post.liked", mock.Anything).Return(nil)

	result, err := uc.ToggleLike(context.Background(), "user-2", "post-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ToggleResult{Count: 1, Member: true}, result)
	publisher.AssertExpectations(t)
}

func TestToggleShare_RemoveDoesNotPublish(t *testing.T) {
	repo := new(MockEngagementRepository)
	publisher := new(MockEventPublisher)
	uc := NewEngagementUseCase(repo, new(MockPostRepository), publisher, logger.NewNop())

	repo.On("Toggle", mock.Anything, "post-1", "user-2", entity.EngagementShare).
		Return(entity.ToggleResult{Count: 0, Member: false}, nil)

	result, err := uc.ToggleShare(context.Background(), "user-2", "post-1")

	require.NoError(t, err)
	assert.False(t, result.Member)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggle_Errors(t *testing.T) {
	repo := new(MockEngagementRepository)
	uc := NewEngagementUseCase(repo, new(MockPostRepository), nil, logger.NewNop())

	_, err := uc.ToggleLike(context.Background(), "", "post-1")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	repo.On("Toggle", mock.Anything, "missing", "user-1", entity.EngagementLike).
		Return(entity.ToggleResult{}, entity.ErrPostNotFound)
	_, err = uc.ToggleLike(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	repo.On("Toggle", mock.Anything, "post-1", "user-1", entity.EngagementShare).
		Return(entity.ToggleResult{}, errors.New("timeout"))
	_, err = uc.ToggleShare(context.Background(), "user-1", "post-1")
	var depErr *entity.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "toggle share", depErr.Op)
}

func TestLikedAndSharedPosts(t *testing.T) {
	posts := new(MockPostRepository)
	uc := NewEngagementUseCase(new(MockEngagementRepository), posts, nil, logger.NewNop())

	liked := []*entity.Post{{ID: "p1"}}
	posts.On("ListEngagedBy", mock.Anything, "user-1", entity.EngagementLike).Return(liked, nil)
	posts.On("ListEngagedBy", mock.Anything, "user-1", entity.EngagementShare).Return([]*entity.Post{}, nil)

	got, err := uc.LikedPosts(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, liked, got)

	got, err = uc.SharedPosts(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = uc.SharedPosts(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}
