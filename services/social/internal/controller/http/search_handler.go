package http

import (
	"net/http"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
	logger        *logger.Logger
}

func NewSearchHandler(searchUseCase usecase.SearchUseCase, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

// Search godoc
// @Summary      Search users and posts
// @Description  Case-insensitive substring match on user names and post text
// @Tags         search
// @Produce      json
// @Param        q query string false "Search text"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.searchUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	users := make([]map[string]interface{}, len(result.Users))
	for i, user := range result.Users {
		users[i] = formatAuthor(user)
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"posts": formatPosts(result.Posts),
	})
}
