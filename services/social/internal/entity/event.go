package entity

import "time"

type EventType string

const (
	EventPostCreated   EventType = "post.created"
	EventPostDeleted   EventType = "post.deleted"
	EventPostLiked     EventType = "post.liked"
	EventPostShared    EventType = "post.shared"
	EventPostCommented EventType = "post.commented"
)

type Event struct {
	Type       EventType `json:"type"`
	PostID     string    `json:"post_id"`
	ActorID    string    `json:"actor_id"`
	CommentID  string    `json:"comment_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
