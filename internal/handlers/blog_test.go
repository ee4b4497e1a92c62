package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogspace/internal/middleware"
	"blogspace/internal/models"
	"blogspace/internal/state"
	"blogspace/internal/store"
	"blogspace/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStore struct {
	posts   map[int64]models.Post
	created []models.Draft
}

func (s *stubStore) Create(_ context.Context, author models.User, draft models.Draft) (models.Post, error) {
	if draft.Title == "" || draft.Content == "" {
		return models.Post{}, store.ErrInvalidDraft
	}
	s.created = append(s.created, draft)
	p := models.Post{ID: int64(100 + len(s.created)), Title: draft.Title, Author: author.AsAuthor()}
	s.posts[p.ID] = p
	return p, nil
}

func (s *stubStore) Like(_ context.Context, id int64) (models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, fmt.Errorf("like %d: %w", id, store.ErrNotFound)
	}
	p.Likes++
	s.posts[id] = p
	return p, nil
}

func (s *stubStore) Search(_ context.Context, term string) []models.Post {
	out := make([]models.Post, 0)
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out
}

func (s *stubStore) Get(_ context.Context, id int64) (models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, store.ErrNotFound
	}
	return p, nil
}

const testVisitor = "visitor-1"

func setup(t *testing.T) (*gin.Engine, *BlogHandler, *stubStore) {
	t.Helper()
	posts := &stubStore{posts: map[int64]models.Post{
		1: {ID: 1, Title: "First", Likes: 5},
	}}
	states, err := state.NewRegistry(10, 0)
	require.NoError(t, err)
	h := NewBlogHandler(posts, states)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.VisitorKey, testVisitor)
		c.Next()
	})
	r.GET("/search", h.Search)
	r.GET("/api/posts", h.ListJSON)
	r.POST("/posts/:id/like", h.Like)
	r.POST("/write", h.Compose)
	r.POST("/write/publish", h.Publish)
	r.POST("/write/cancel", h.Cancel)
	return r, h, posts
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSearch_TruncatesLongTerms(t *testing.T) {
	r, h, _ := setup(t)

	long := strings.Repeat("é", maxSearchLength+50)
	w := do(r, httptest.NewRequest(http.MethodGet, "/search?q="+url.QueryEscape(long), nil))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	got := h.states.Snapshot(testVisitor).SearchTerm
	require.Equal(t, strings.Repeat("é", maxSearchLength), got)
}

func TestLike_HTMXAndRedirect(t *testing.T) {
	r, _, posts := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/posts/1/like", nil)
	req.Header.Set("HX-Request", "true")
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "6", w.Body.String())

	w = do(r, httptest.NewRequest(http.MethodPost, "/posts/1/like", nil))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, 7, posts.posts[1].Likes)

	// unknown post without htmx goes back to the page untouched
	w = do(r, httptest.NewRequest(http.MethodPost, "/posts/9/like", nil))
	require.Equal(t, http.StatusFound, w.Code)
}

func TestPublish_Flow(t *testing.T) {
	r, h, posts := setup(t)

	do(r, postForm("/write", nil))
	require.Equal(t, view.Write, h.states.Snapshot(testVisitor).View)

	w := do(r, postForm("/write/publish", url.Values{"title": {"T"}, "tags": {"a"}}))
	require.Equal(t, http.StatusFound, w.Code)
	st := h.states.Snapshot(testVisitor)
	require.Equal(t, view.Write, st.View)
	require.Equal(t, models.Draft{Title: "T", Tags: "a"}, st.Draft)
	require.Empty(t, posts.created)

	do(r, postForm("/write/publish", url.Values{"title": {"T"}, "content": {"C"}}))
	st = h.states.Snapshot(testVisitor)
	require.Equal(t, view.Home, st.View)
	require.True(t, st.Draft.IsZero())
	require.Len(t, posts.created, 1)
}

func TestPublish_OutsideWriteIsIgnored(t *testing.T) {
	r, h, posts := setup(t)

	w := do(r, postForm("/write/publish", url.Values{"title": {"T"}, "content": {"C"}}))
	require.Equal(t, http.StatusFound, w.Code)
	require.Empty(t, posts.created)
	require.Equal(t, view.Home, h.states.Snapshot(testVisitor).View)
}

func TestCancel_ClearsDraft(t *testing.T) {
	r, h, _ := setup(t)

	do(r, postForm("/write", nil))
	do(r, postForm("/write/publish", url.Values{"title": {"keep me"}}))
	require.Equal(t, "keep me", h.states.Snapshot(testVisitor).Draft.Title)

	do(r, postForm("/write/cancel", nil))
	st := h.states.Snapshot(testVisitor)
	require.Equal(t, view.Home, st.View)
	require.True(t, st.Draft.IsZero())
}

func TestListJSON(t *testing.T) {
	r, _, _ := setup(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/posts?q=fir", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count":1,"posts":[{"id":1,"title":"First","content":"","author":{"id":0,"name":""},"createdAt":"0001-01-01T00:00:00Z","likes":5,"comments":0,"views":0,"tags":null}]}`, w.Body.String())
}
