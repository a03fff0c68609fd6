package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Email:        "  Test@Example.COM ",
		Name:         "Test",
		PasswordHash: "hash",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{ID: existingID, Email: "test@example.com"}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
}

func TestPost_BeforeCreate(t *testing.T) {
	post := &Post{UserID: "user-123", Content: "hello"}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestPost_BeforeCreate_WithID(t *testing.T) {
	post := &Post{ID: "existing-post-id", UserID: "user-123"}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "existing-post-id", post.ID)
}

func TestPostMedia_BeforeCreate(t *testing.T) {
	media := &PostMedia{PostID: "post-1", Kind: MediaKindVideo, URL: "http://x/v.mp4", Key: "v.mp4"}

	assert.NoError(t, media.BeforeCreate(nil))
	assert.NotEmpty(t, media.ID)
}

func TestComment_BeforeCreate(t *testing.T) {
	comment := &Comment{PostID: "post-1", UserID: "user-1", Content: "nice"}

	assert.NoError(t, comment.BeforeCreate(nil))
	assert.NotEmpty(t, comment.ID)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
	assert.Equal(t, "posts", Post{}.TableName())
	assert.Equal(t, "post_media", PostMedia{}.TableName())
	assert.Equal(t, "post_likes", PostLike{}.TableName())
	assert.Equal(t, "post_shares", PostShare{}.TableName())
	assert.Equal(t, "comments", Comment{}.TableName())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.co", NormalizeEmail(" A@B.Co\n"))
}
