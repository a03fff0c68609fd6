package persistent

import (
	"media-verse/pkg/models"
	"media-verse/services/social/internal/entity"
)

func ToAuthorEntity(m *models.User) *entity.Author {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entity.Author{
		ID:             m.ID,
		Name:           m.Name,
		ProfilePicture: m.ProfilePicture,
	}
}

func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		AuthorID:  m.UserID,
		Content:   m.Content,
		Images:    []entity.MediaRef{},
		Videos:    []entity.MediaRef{},
		LikedBy:   make([]string, 0, len(m.Likes)),
		SharedBy:  make([]string, 0, len(m.Shares)),
		Author:    ToAuthorEntity(&m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	// Media is preloaded ordered by kind, position.
	for _, media := range m.Media {
		ref := entity.MediaRef{URL: media.URL, Key: media.Key}
		switch media.Kind {
		case models.MediaKindVideo:
			post.Videos = append(post.Videos, ref)
		default:
			post.Images = append(post.Images, ref)
		}
	}
	for _, like := range m.Likes {
		post.LikedBy = append(post.LikedBy, like.UserID)
	}
	for _, share := range m.Shares {
		post.SharedBy = append(post.SharedBy, share.UserID)
	}
	if len(m.Comments) > 0 {
		post.Comments = make([]*entity.Comment, len(m.Comments))
		for i := range m.Comments {
			post.Comments[i] = ToCommentEntity(&m.Comments[i])
		}
	}

	return post
}

// ToPostModel maps the writable columns of a post and its media rows.
func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	m := &models.Post{
		ID:        e.ID,
		UserID:    e.AuthorID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	for i, ref := range e.Images {
		m.Media = append(m.Media, models.PostMedia{Kind: models.MediaKindImage, URL: ref.URL, Key: ref.Key, Position: i})
	}
	for i, ref := range e.Videos {
		m.Media = append(m.Media, models.PostMedia{Kind: models.MediaKindVideo, URL: ref.URL, Key: ref.Key, Position: i})
	}
	return m
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.UserID,
		Content:   m.Content,
		Author:    ToAuthorEntity(&m.User),
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.AuthorID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}
