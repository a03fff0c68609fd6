package http

import "media-verse/services/social/internal/entity"

func formatAuthor(author *entity.Author) map[string]interface{} {
	if author == nil {
		return nil
	}
	return map[string]interface{}{
		"id":              author.ID,
		"name":            author.Name,
		"profile_picture": author.ProfilePicture,
	}
}

func formatComment(comment *entity.Comment) map[string]interface{} {
	return map[string]interface{}{
		"id":         comment.ID,
		"post_id":    comment.PostID,
		"user_id":    comment.AuthorID,
		"content":    comment.Content,
		"user":       formatAuthor(comment.Author),
		"created_at": comment.CreatedAt,
	}
}

func formatComments(comments []*entity.Comment) []map[string]interface{} {
	out := make([]map[string]interface{}, len(comments))
	for i, comment := range comments {
		out[i] = formatComment(comment)
	}
	return out
}

func mediaURLs(refs []entity.MediaRef) []string {
	urls := make([]string, len(refs))
	for i, ref := range refs {
		urls[i] = ref.URL
	}
	return urls
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// formatPost always emits arrays for images, videos, likes, shares and
// comments so clients never see null.
func formatPost(post *entity.Post) map[string]interface{} {
	return map[string]interface{}{
		"id":         post.ID,
		"user_id":    post.AuthorID,
		"user":       formatAuthor(post.Author),
		"content":    post.Content,
		"images":     mediaURLs(post.Images),
		"videos":     mediaURLs(post.Videos),
		"likes":      nonNil(post.LikedBy),
		"shares":     nonNil(post.SharedBy),
		"comments":   formatComments(post.Comments),
		"created_at": post.CreatedAt,
		"updated_at": post.UpdatedAt,
	}
}

func formatPosts(posts []*entity.Post) []map[string]interface{} {
	out := make([]map[string]interface{}, len(posts))
	for i, post := range posts {
		out[i] = formatPost(post)
	}
	return out
}
