package http

import (
	"net/http"

	"media-verse/pkg/logger"
	"media-verse/pkg/middleware"
	"media-verse/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementUseCase usecase.EngagementUseCase
	logger            *logger.Logger
}

func NewEngagementHandler(engagementUseCase usecase.EngagementUseCase, logger *logger.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagementUseCase: engagementUseCase,
		logger:            logger,
	}
}

// LikePost godoc
// @Summary      Like or unlike a post
// @Description  Toggle the current user's like on a post
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *EngagementHandler) LikePost(c *gin.Context) {
	result, err := h.engagementUseCase.ToggleLike(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": result.Count, "liked": result.Member})
}

// SharePost godoc
// @Summary      Share or unshare a post
// @Description  Toggle the current user's share on a post
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/share [post]
func (h *EngagementHandler) SharePost(c *gin.Context) {
	result, err := h.engagementUseCase.ToggleShare(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shares": result.Count, "shared": result.Member})
}

// LikedPosts godoc
// @Summary      Posts I liked
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/liked [get]
func (h *EngagementHandler) LikedPosts(c *gin.Context) {
	posts, err := h.engagementUseCase.LikedPosts(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatPosts(posts)})
}

// SharedPosts godoc
// @Summary      Posts I shared
// @Tags         engagement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/shared [get]
func (h *EngagementHandler) SharedPosts(c *gin.Context) {
	posts, err := h.engagementUseCase.SharedPosts(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatPosts(posts)})
}
