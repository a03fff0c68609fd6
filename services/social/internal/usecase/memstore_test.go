package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"media-verse/services/social/internal/entity"
)

// memStore is an in-memory store backing the post, engagement and comment
// repositories. A single mutex plays the role of the row lock.
type memStore struct {
	mu       sync.Mutex
	seq      int
	authors  map[string]*entity.Author
	posts    map[string]*entity.Post
	likes    map[string]map[string]bool
	shares   map[string]map[string]bool
	comments map[string][]*entity.Comment
}

func newMemStore(authors ...*entity.Author) *memStore {
	s := &memStore{
		authors:  map[string]*entity.Author{},
		posts:    map[string]*entity.Post{},
		likes:    map[string]map[string]bool{},
		shares:   map[string]map[string]bool{},
		comments: map[string][]*entity.Comment{},
	}
	for _, a := range authors {
		s.authors[a.ID] = a
	}
	return s
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *memStore) Create(ctx context.Context, post *entity.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.nextID("post")
	post.CreatedAt = time.Now().Add(time.Duration(s.seq) * time.Millisecond)
	post.UpdatedAt = post.CreatedAt
	post.LikedBy = []string{}
	post.SharedBy = []string{}
	post.Author = s.authors[post.AuthorID]

	stored := *post
	s.posts[post.ID] = &stored
	s.likes[post.ID] = map[string]bool{}
	s.shares[post.ID] = map[string]bool{}
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, entity.ErrPostNotFound
	}
	return s.snapshot(post), nil
}

func (s *memStore) snapshot(post *entity.Post) *entity.Post {
	out := *post
	out.LikedBy = members(s.likes[post.ID])
	out.SharedBy = members(s.shares[post.ID])
	out.Comments = append([]*entity.Comment{}, s.comments[post.ID]...)
	return &out
}

func members(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return entity.ErrPostNotFound
	}
	delete(s.posts, id)
	delete(s.likes, id)
	delete(s.shares, id)
	delete(s.comments, id)
	return nil
}

func (s *memStore) List(ctx context.Context) ([]*entity.Post, error) {
	return s.filter(func(*entity.Post) bool { return true }), nil
}

func (s *memStore) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Post, error) {
	return s.filter(func(p *entity.Post) bool { return p.AuthorID == authorID }), nil
}

func (s *memStore) ListEngagedBy(ctx context.Context, userID string, kind entity.Engagement) ([]*entity.Post, error) {
	sets := s.likes
	if kind == entity.EngagementShare {
		sets = s.shares
	}
	return s.filter(func(p *entity.Post) bool { return sets[p.ID][userID] }), nil
}

func (s *memStore) filter(keep func(*entity.Post) bool) []*entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*entity.Post{}
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, s.snapshot(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memStore) GetAuthor(ctx context.Context, userID string) (*entity.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.authors[userID]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return author, nil
}

func (s *memStore) Toggle(ctx context.Context, postID, userID string, kind entity.Engagement) (entity.ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return entity.ToggleResult{}, entity.ErrPostNotFound
	}

	set := s.likes[postID]
	if kind == entity.EngagementShare {
		set = s.shares[postID]
	}
	if set[userID] {
		delete(set, userID)
	} else {
		set[userID] = true
	}
	return entity.ToggleResult{Count: int64(len(set)), Member: set[userID]}, nil
}

type memComments struct {
	*memStore
}

func (c memComments) Create(ctx context.Context, comment *entity.Comment) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.posts[comment.PostID]; !ok {
		return entity.ErrPostNotFound
	}
	comment.ID = c.nextID("comment")
	comment.CreatedAt = time.Now()
	comment.Author = c.authors[comment.AuthorID]

	stored := *comment
	c.comments[comment.PostID] = append(c.comments[comment.PostID], &stored)
	return nil
}

func (c memComments) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.posts[postID]; !ok {
		return nil, entity.ErrPostNotFound
	}
	return append([]*entity.Comment{}, c.comments[postID]...), nil
}
