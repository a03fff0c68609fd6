package usecase

import (
	"context"
	"strings"

	"media-verse/services/social/internal/entity"
	"media-verse/services/social/internal/repo/persistent"
)

const defaultSearchLimit = 10

type SearchUseCase interface {
	Search(ctx context.Context, query string) (*entity.SearchResult, error)
}

type searchUseCase struct {
	searchRepo persistent.SearchRepository
	limit      int
}

func NewSearchUseCase(searchRepo persistent.SearchRepository, limit int) SearchUseCase {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return &searchUseCase{searchRepo: searchRepo, limit: limit}
}

// Search matches users by name and posts by content. An unmatched query yields
// empty slices, not nil.
func (uc *searchUseCase) Search(ctx context.Context, query string) (*entity.SearchResult, error) {
	query = strings.TrimSpace(query)

	users, err := uc.searchRepo.SearchUsers(ctx, query, uc.limit)
	if err != nil {
		return nil, storeError("search users", err)
	}
	posts, err := uc.searchRepo.SearchPosts(ctx, query, uc.limit)
	if err != nil {
		return nil, storeError("search posts", err)
	}

	result := &entity.SearchResult{Users: users, Posts: posts}
	if result.Users == nil {
		result.Users = []*entity.Author{}
	}
	if result.Posts == nil {
		result.Posts = []*entity.Post{}
	}
	return result, nil
}
