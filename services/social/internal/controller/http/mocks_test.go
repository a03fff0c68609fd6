package http

import (
	"context"
	"mime/multipart"

	"media-verse/services/social/internal/entity"
	"media-verse/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, authorID, content string, images, videos []entity.MediaRef) (*entity.Post, error) {
	args := m.Called(authorID, content, images, videos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, requesterID, postID string) error {
	args := m.Called(requesterID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListUserPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

type MockMediaUseCase struct {
	mock.Mock
}

func (m *MockMediaUseCase) UploadPostMedia(ctx context.Context, userID string, images, videos []*multipart.FileHeader) (*usecase.UploadedMedia, error) {
	args := m.Called(userID, images, videos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UploadedMedia), args.Error(1)
}

func (m *MockMediaUseCase) Discard(ctx context.Context, media *usecase.UploadedMedia) {
	m.Called(media)
}

type MockEngagementUseCase struct {
	mock.Mock
}

func (m *MockEngagementUseCase) ToggleLike(ctx context.Context, userID, postID string) (entity.ToggleResult, error) {
	args := m.Called(userID, postID)
	return args.Get(0).(entity.ToggleResult), args.Error(1)
}

func (m *MockEngagementUseCase) ToggleShare(ctx context.Context, userID, postID string) (entity.ToggleResult, error) {
	args := m.Called(userID, postID)
	return args.Get(0).(entity.ToggleResult), args.Error(1)
}

func (m *MockEngagementUseCase) LikedPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockEngagementUseCase) SharedPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) AddComment(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	args := m.Called(userID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) Search(ctx context.Context, query string) (*entity.SearchResult, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SearchResult), args.Error(1)
}

var (
	_ usecase.PostUseCase       = (*MockPostUseCase)(nil)
	_ usecase.MediaUseCase      = (*MockMediaUseCase)(nil)
	_ usecase.EngagementUseCase = (*MockEngagementUseCase)(nil)
	_ usecase.CommentUseCase    = (*MockCommentUseCase)(nil)
	_ usecase.SearchUseCase     = (*MockSearchUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser stands in for the auth middleware.
func asUser(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		handler(c)
	}
}
