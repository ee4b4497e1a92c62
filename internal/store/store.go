package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"blogspace/internal/models"
	"blogspace/internal/utils"
	"blogspace/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultSearchCacheSize = 256
	DefaultSearchCacheTTL  = time.Minute
)

type Config struct {
	SearchCacheSize int
	SearchCacheTTL  time.Duration
	// Now stamps new posts; defaults to time.Now.
	Now func() time.Time
}

// createPostRequest is what a draft must satisfy to be published.
type createPostRequest struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
	Tags    []string
}

// PostStore keeps posts newest first. It is safe for concurrent use.
type PostStore struct {
	mu     sync.RWMutex
	posts  []models.Post
	nextID int64

	searches *utils.Cache[string, []int64]
	validate *validator.Validate
	now      func() time.Time
}

func New(cfg Config, seed []models.Post) (*PostStore, error) {
	if cfg.SearchCacheSize <= 0 {
		cfg.SearchCacheSize = DefaultSearchCacheSize
	}
	if cfg.SearchCacheTTL <= 0 {
		cfg.SearchCacheTTL = DefaultSearchCacheTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	searches, err := utils.NewCache[string, []int64](cfg.SearchCacheSize, cfg.SearchCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}

	s := &PostStore{
		posts:    make([]models.Post, 0, len(seed)),
		searches: searches,
		validate: validator.New(),
		now:      cfg.Now,
	}
	for _, p := range seed {
		s.posts = append(s.posts, p.Clone())
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	s.nextID++
	return s, nil
}

// Create publishes draft as a new post by author and puts it first.
// Title and content are stored as typed; tags are split and trimmed. An empty
// title or content yields ErrInvalidDraft and leaves the store untouched.
func (s *PostStore) Create(ctx context.Context, author models.User, draft models.Draft) (models.Post, error) {
	req := createPostRequest{
		Title:   draft.Title,
		Content: draft.Content,
		Tags:    draft.TagList(),
	}
	if err := s.validate.Struct(req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	s.mu.Lock()
	post := models.Post{
		ID:        s.nextID,
		Title:     req.Title,
		Content:   req.Content,
		Author:    author.AsAuthor(),
		CreatedAt: s.now().UTC(),
		Tags:      req.Tags,
	}
	s.nextID++
	s.posts = append([]models.Post{post}, s.posts...)
	s.searches.Purge()
	s.mu.Unlock()

	logger.FromContext(ctx).Info("post created", "post_id", post.ID, "tags", len(post.Tags))
	return post.Clone(), nil
}

// Like adds exactly one like to the post with id.
func (s *PostStore) Like(ctx context.Context, id int64) (models.Post, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Post{}, fmt.Errorf("like %d: %w", id, ErrNotFound)
	}
	s.posts[idx].Likes++
	post := s.posts[idx].Clone()
	s.mu.Unlock()

	logger.FromContext(ctx).Debug("post liked", "post_id", id, "likes", post.Likes)
	return post, nil
}

// Search returns posts whose title, content or any tag contains term,
// ignoring case. An empty term matches everything. Store order is kept.
func (s *PostStore) Search(ctx context.Context, term string) []models.Post {
	needle := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if needle == "" {
		return s.copyAll()
	}

	if ids, ok := s.searches.Get(needle); ok {
		logger.FromContext(ctx).Debug("search cache hit", "term", term)
		return s.byIDs(ids)
	}

	out := make([]models.Post, 0)
	ids := make([]int64, 0)
	for _, p := range s.posts {
		if matches(p, needle) {
			out = append(out, p.Clone())
			ids = append(ids, p.ID)
		}
	}
	s.searches.Set(needle, ids)
	return out
}

func (s *PostStore) Get(_ context.Context, id int64) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Post{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return s.posts[idx].Clone(), nil
}

// List returns every post in store order.
func (s *PostStore) List(_ context.Context) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyAll()
}

func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *PostStore) indexOf(id int64) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *PostStore) copyAll() []models.Post {
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

func (s *PostStore) byIDs(ids []int64) []models.Post {
	out := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		if idx := s.indexOf(id); idx >= 0 {
			out = append(out, s.posts[idx].Clone())
		}
	}
	return out
}

func matches(p models.Post, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Content), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
