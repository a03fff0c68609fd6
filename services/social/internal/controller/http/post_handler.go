package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"media-verse/pkg/logger"
	"media-verse/pkg/middleware"
	"media-verse/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase    usecase.PostUseCase
	mediaUseCase   usecase.MediaUseCase
	maxUploadBytes int64
	logger         *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, mediaUseCase usecase.MediaUseCase, maxUploadBytes int64, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:    postUseCase,
		mediaUseCase:   mediaUseCase,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

type CreatePostRequest struct {
	Content string `form:"content" json:"content"`
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with text and up to 5 images and 2 videos. A post needs text or at least one file.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        content formData string false "Post text"
// @Param        images formData file false "Image files, also accepted as images[]"
// @Param        videos formData file false "Video files, also accepted as videos[]"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      413  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/create [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}

	images, videos := formFiles(c, "images"), formFiles(c, "videos")

	media, err := h.mediaUseCase.UploadPostMedia(c.Request.Context(), userID, images, videos)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, req.Content, media.Images, media.Videos)
	if err != nil {
		h.mediaUseCase.Discard(c.Request.Context(), media)
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "post": formatPost(post)})
}

// formFiles collects files sent under name or name[].
func formFiles(c *gin.Context, name string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := append([]*multipart.FileHeader{}, form.File[name]...)
	return append(files, form.File[name+"[]"]...)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete a post with its likes, shares, comments and media. Only the author can delete a post.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	postID := c.Param("id")

	if err := h.postUseCase.DeletePost(c.Request.Context(), userID, postID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a post with its author, media, likes, shares and comments
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatPost(post))
}

// ListPosts godoc
// @Summary      List posts
// @Description  All posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatPosts(posts)})
}

// MyPosts godoc
// @Summary      List my posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /posts/mine [get]
func (h *PostHandler) MyPosts(c *gin.Context) {
	h.listUserPosts(c, c.GetString(middleware.UserIDKey))
}

// UserPosts godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/posts [get]
func (h *PostHandler) UserPosts(c *gin.Context) {
	h.listUserPosts(c, c.Param("id"))
}

func (h *PostHandler) listUserPosts(c *gin.Context, userID string) {
	posts, err := h.postUseCase.ListUserPosts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatPosts(posts)})
}
