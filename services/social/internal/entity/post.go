package entity

import "time"

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaRef points at an uploaded object: URL for display, Key for deletion.
type MediaRef struct {
	URL string `json:"url"`
	Key string `json:"-"`
}

// Author is the public slice of a user attached to posts and comments.
type Author struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

type Post struct {
	ID        string     `json:"id"`
	AuthorID  string     `json:"user_id"`
	Content   string     `json:"content"`
	Images    []MediaRef `json:"images"`
	Videos    []MediaRef `json:"videos"`
	LikedBy   []string   `json:"likes"`
	SharedBy  []string   `json:"shares"`
	Author    *Author    `json:"user,omitempty"`
	Comments  []*Comment `json:"comments,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (p *Post) IsOwnedBy(userID string) bool {
	return userID != "" && p.AuthorID == userID
}

func (p *Post) HasMedia() bool {
	return len(p.Images) > 0 || len(p.Videos) > 0
}

// MediaKeys lists the store keys of every image and video, images first.
func (p *Post) MediaKeys() []string {
	keys := make([]string, 0, len(p.Images)+len(p.Videos))
	for _, m := range p.Images {
		if m.Key != "" {
			keys = append(keys, m.Key)
		}
	}
	for _, m := range p.Videos {
		if m.Key != "" {
			keys = append(keys, m.Key)
		}
	}
	return keys
}

type Engagement string

const (
	EngagementLike  Engagement = "like"
	EngagementShare Engagement = "share"
)

// ToggleResult is the state of a membership set after a toggle.
type ToggleResult struct {
	Count  int64 `json:"count"`
	Member bool  `json:"member"`
}

type SearchResult struct {
	Users []*Author `json:"users"`
	Posts []*Post   `json:"posts"`
}
