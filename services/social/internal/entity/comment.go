package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"user_id"`
	Content   string    `json:"content"`
	Author    *Author   `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
