package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"media-verse/pkg/logger"
	"media-verse/pkg/models"
	"media-verse/services/auth/internal/entity"
	"media-verse/services/auth/internal/repo/persistent"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MediaStore persists uploaded objects. *s3.Client satisfies it.
type MediaStore interface {
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type AuthUseCase interface {
	Signup(ctx context.Context, name, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate, picture *multipart.FileHeader) (*entity.User, error)
}

type authUseCase struct {
	userRepo       persistent.UserRepository
	media          MediaStore
	defaultPicture string
	logger         *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	media MediaStore,
	defaultPicture string,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:       userRepo,
		media:          media,
		defaultPicture: defaultPicture,
		logger:         logger,
	}
}

func (uc *authUseCase) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, entity.ErrEmailRequired
	}
	if utf8.RuneCountInString(password) < entity.MinPasswordLength {
		return nil, entity.ErrPasswordTooShort
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, entity.ErrEmailTaken
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, storeError("lookup email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &entity.DependencyError{Op: "hash password", Err: err}
	}

	user := &entity.User{
		Email:          email,
		Name:           strings.TrimSpace(name),
		PasswordHash:   string(hashedPassword),
		ProfilePicture: uc.defaultPicture,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, storeError("create user", err)
	}

	uc.logger.Info("[AUTH] User signed up: user_id=%s", user.ID)
	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, storeError("lookup email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	return user, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError("load user", err)
	}
	return user, nil
}

// UpdateProfile applies name and bio edits and replaces the profile picture
// when one is supplied. A blank name keeps the current one.
func (uc *authUseCase) UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate, picture *multipart.FileHeader) (*entity.User, error) {
	if userID == "" {
		return nil, entity.ErrUnauthorized
	}

	var bio string
	if update.Bio != nil {
		bio = strings.TrimSpace(*update.Bio)
		if utf8.RuneCountInString(bio) > entity.MaxBioLength {
			return nil, entity.ErrBioTooLong
		}
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError("load user", err)
	}

	if update.Name != nil {
		if name := strings.TrimSpace(*update.Name); name != "" {
			user.Name = name
		}
	}
	if update.Bio != nil {
		user.Bio = bio
	}

	previousKey := user.ProfilePictureKey
	if picture != nil {
		url, key, err := uc.uploadAvatar(ctx, userID, picture)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
		user.ProfilePictureKey = key
	}

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		if picture != nil {
			uc.deleteObject(ctx, user.ProfilePictureKey)
		}
		return nil, storeError("update profile", err)
	}

	if picture != nil && previousKey != "" {
		uc.deleteObject(ctx, previousKey)
	}

	return user, nil
}

func (uc *authUseCase) uploadAvatar(ctx context.Context, userID string, picture *multipart.FileHeader) (string, string, error) {
	src, err := picture.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := picture.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), strings.ToLower(filepath.Ext(picture.Filename)))
	url, err := uc.media.UploadFile(ctx, key, src, contentType)
	if err != nil {
		return "", "", &entity.DependencyError{Op: "upload avatar", Err: err}
	}
	return url, key, nil
}

func (uc *authUseCase) deleteObject(ctx context.Context, key string) {
	if err := uc.media.DeleteFile(context.WithoutCancel(ctx), key); err != nil {
		uc.logger.Warn("[AUTH] Failed to delete avatar object: key=%s: %v", key, err)
	}
}

// storeError keeps domain sentinels intact and wraps everything else.
func storeError(op string, err error) error {
	if err == nil || entity.IsDomainError(err) {
		return err
	}
	return &entity.DependencyError{Op: op, Err: err}
}
