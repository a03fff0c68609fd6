package usecase

import (
	"context"
	"io"
)

// MediaStore persists uploaded objects. *s3.Client satisfies it.
type MediaStore interface {
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

// EventPublisher sends engagement events to a broker. *queue.Client satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// PostLimits bounds how much media a single post may carry.
type PostLimits struct {
	MaxImages int
	MaxVideos int
}
