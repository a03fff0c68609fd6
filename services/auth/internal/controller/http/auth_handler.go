package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"media-verse/pkg/logger"
	"media-verse/pkg/middleware"
	"media-verse/services/auth/internal/entity"
	"media-verse/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionManager issues and ends sessions. *session.Provider satisfies it.
type SessionManager interface {
	Start(w http.ResponseWriter, r *http.Request, userID string) (string, error)
	End(w http.ResponseWriter, r *http.Request) error
}

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	sessions    SessionManager
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, sessions SessionManager, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		sessions:    sessions,
		logger:      logger,
	}
}

type SignupRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UpdateProfileRequest struct {
	Name *string `json:"name" form:"name"`
	Bio  *string `json:"bio" form:"bio"`
}

var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func formatUser(user *entity.User, includeEmail bool) map[string]interface{} {
	response := map[string]interface{}{
		"id":              user.ID,
		"name":            user.Name,
		"profile_picture": user.ProfilePicture,
		"bio":             user.Bio,
		"created_at":      user.CreatedAt,
	}
	if includeEmail {
		response["email"] = user.Email
	}
	return response
}

// Signup godoc
// @Summary      Register a new user
// @Description  Create an account and start a session. The response carries a bearer token and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Registration data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.authUseCase.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.startSession(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate with email and password and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.startSession(c, http.StatusOK, user)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user *entity.User) {
	token, err := h.sessions.Start(c.Writer, c.Request, user.ID)
	if err != nil {
		h.logger.Error("Failed to start session: user_id=%s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(status, gin.H{
		"user":  formatUser(user, true),
		"token": token,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the session cookie and revoke the presented bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      500  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.End(c.Writer, c.Request); err != nil {
		h.logger.Error("Failed to end session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me godoc
// @Summary      Get current user info
// @Description  Get information about the currently authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatUser(user, true))
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update name, bio (at most 250 characters) and profile picture of the current user
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name formData string false "Display name"
// @Param        bio formData string false "Bio"
// @Param        profile_picture formData file false "Profile picture (jpg, jpeg, png, gif, webp)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/me [post]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	picture, err := c.FormFile("profile_picture")
	if err != nil {
		picture, _ = c.FormFile("profilePicture")
	}
	if picture != nil && !allowedAvatarExts[strings.ToLower(filepath.Ext(picture.Filename))] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Only jpg, jpeg, png, gif, webp are allowed"})
		return
	}

	update := entity.ProfileUpdate{Name: req.Name, Bio: req.Bio}
	user, err := h.authUseCase.UpdateProfile(c.Request.Context(), c.GetString(middleware.UserIDKey), update, picture)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatUser(user, true))
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Public profile of a user
// @Tags         auth
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, formatUser(user, false))
}
