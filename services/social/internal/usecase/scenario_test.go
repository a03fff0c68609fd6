package usecase

import (
	"context"
	"sync"
	"testing"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engine struct {
	store      *memStore
	posts      PostUseCase
	engagement EngagementUseCase
	comments   CommentUseCase
}

func newEngine() *engine {
	store := newMemStore(
		&entity.Author{ID: "alice", Name: "Alice"},
		&entity.Author{ID: "bob", Name: "Bob"},
	)
	log := logger.NewNop()
	return &engine{
		store:      store,
		posts:      NewPostUseCase(store, nil, nil, testLimits, log),
		engagement: NewEngagementUseCase(store, store, nil, log),
		comments:   NewCommentUseCase(memComments{store}, nil, log),
	}
}

func TestScenario_LikeRoundTripThenDelete(t *testing.T) {
	ctx := context.Background()
	e := newEngine()

	post, err := e.posts.CreatePost(ctx, "alice", "hello", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice", post.Author.Name)

	result, err := e.engagement.ToggleLike(ctx, "bob", post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleResult{Count: 1, Member: true}, result)

	result, err = e.engagement.ToggleLike(ctx, "bob", post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleResult{Count: 0, Member: false}, result)

	require.NoError(t, e.posts.DeletePost(ctx, "alice", post.ID))

	_, err = e.engagement.ToggleLike(ctx, "bob", post.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestScenario_DeleteRemovesFromOwnerPosts(t *testing.T) {
	ctx := context.Background()
	e := newEngine()

	post, err := e.posts.CreatePost(ctx, "alice", "bye", nil, nil)
	require.NoError(t, err)
	_, err = e.comments.AddComment(ctx, "bob", post.ID, "see you")
	require.NoError(t, err)

	err = e.posts.DeletePost(ctx, "bob", post.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)
	unchanged, err := e.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "bye", unchanged.Content)
	assert.Len(t, unchanged.Comments, 1)

	require.NoError(t, e.posts.DeletePost(ctx, "alice", post.ID))

	mine, err := e.posts.ListUserPosts(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = e.comments.ListComments(ctx, post.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	err = e.posts.DeletePost(ctx, "alice", post.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestScenario_CommentAppendsLast(t *testing.T) {
	ctx := context.Background()
	e := newEngine()

	post, err := e.posts.CreatePost(ctx, "alice", "pic", nil, nil)
	require.NoError(t, err)
	_, err = e.comments.AddComment(ctx, "alice", post.ID, "first")
	require.NoError(t, err)

	before, err := e.comments.ListComments(ctx, post.ID)
	require.NoError(t, err)

	added, err := e.comments.AddComment(ctx, "bob", post.ID, "second")
	require.NoError(t, err)

	after, err := e.comments.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, added.ID, after[len(after)-1].ID)
	assert.Equal(t, "Bob", after[len(after)-1].Author.Name)

	_, err = e.comments.AddComment(ctx, "bob", post.ID, "  ")
	assert.ErrorIs(t, err, entity.ErrEmptyComment)
}

func TestScenario_ConcurrentTogglesStayConsistent(t *testing.T) {
	ctx := context.Background()
	e := newEngine()

	post, err := e.posts.CreatePost(ctx, "alice", "race", nil, nil)
	require.NoError(t, err)

	users := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8"}
	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			// three toggles leave each user a member
			for i := 0; i < 3; i++ {
				_, err := e.engagement.ToggleShare(ctx, userID, post.ID)
				assert.NoError(t, err)
			}
		}(u)
	}
	wg.Wait()

	got, err := e.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, got.SharedBy, len(users))
	assert.Empty(t, got.LikedBy)

	shared, err := e.engagement.SharedPosts(ctx, "u3")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, post.ID, shared[0].ID)
}
