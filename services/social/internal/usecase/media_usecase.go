package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"media-verse/pkg/logger"
	"media-verse/services/social/internal/entity"

	"github.com/google/uuid"
)

// UploadedMedia holds the references produced by one multipart upload.
type UploadedMedia struct {
	Images []entity.MediaRef
	Videos []entity.MediaRef
}

func (m *UploadedMedia) refs() []entity.MediaRef {
	return append(append([]entity.MediaRef{}, m.Images...), m.Videos...)
}

type MediaUseCase interface {
	UploadPostMedia(ctx context.Context, userID string, images, videos []*multipart.FileHeader) (*UploadedMedia, error)
	Discard(ctx context.Context, media *UploadedMedia)
}

type mediaUseCase struct {
	store  MediaStore
	limits PostLimits
	logger *logger.Logger
}

func NewMediaUseCase(store MediaStore, limits PostLimits, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{store: store, limits: limits, logger: logger}
}

// UploadPostMedia stores every file under posts/<user>/<kind>s/. On failure the
// objects already written are removed before the error is returned.
func (uc *mediaUseCase) UploadPostMedia(ctx context.Context, userID string, images, videos []*multipart.FileHeader) (*UploadedMedia, error) {
	if userID == "" {
		return nil, entity.ErrUnauthorized
	}
	if err := uc.limits.check(len(images), len(videos)); err != nil {
		return nil, err
	}

	uploaded := &UploadedMedia{
		Images: []entity.MediaRef{},
		Videos: []entity.MediaRef{},
	}
	for _, file := range images {
		ref, err := uc.upload(ctx, userID, entity.MediaImage, file)
		if err != nil {
			uc.Discard(ctx, uploaded)
			return nil, err
		}
		uploaded.Images = append(uploaded.Images, ref)
	}
	for _, file := range videos {
		ref, err := uc.upload(ctx, userID, entity.MediaVideo, file)
		if err != nil {
			uc.Discard(ctx, uploaded)
			return nil, err
		}
		uploaded.Videos = append(uploaded.Videos, ref)
	}

	return uploaded, nil
}

func (uc *mediaUseCase) Discard(ctx context.Context, media *UploadedMedia) {
	if media == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, ref := range media.refs() {
		if err := uc.store.DeleteFile(ctx, ref.Key); err != nil {
			uc.logger.Warn("[MEDIA] Failed to discard uploaded object: key=%s: %v", ref.Key, err)
		}
	}
}

func (uc *mediaUseCase) upload(ctx context.Context, userID string, kind entity.MediaKind, file *multipart.FileHeader) (entity.MediaRef, error) {
	src, err := file.Open()
	if err != nil {
		return entity.MediaRef{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	key := mediaKey(userID, kind, file.Filename)
	url, err := uc.store.UploadFile(ctx, key, src, contentType(kind, file))
	if err != nil {
		return entity.MediaRef{}, &entity.DependencyError{Op: "upload " + string(kind), Err: err}
	}

	return entity.MediaRef{URL: url, Key: key}, nil
}

func mediaKey(userID string, kind entity.MediaKind, filename string) string {
	return fmt.Sprintf("posts/%s/%ss/%s%s", userID, kind, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
}

func contentType(kind entity.MediaKind, file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	if kind == entity.MediaVideo {
		return "video/mp4"
	}
	return "image/jpeg"
}
