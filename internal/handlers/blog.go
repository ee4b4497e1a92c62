package handlers

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"blogspace/internal/metrics"
	"blogspace/internal/middleware"
	"blogspace/internal/models"
	"blogspace/internal/state"
	"blogspace/internal/store"
	"blogspace/internal/utils"
	"blogspace/internal/view"
	"blogspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxSearchLength = 200

type PostStore interface {
	Create(ctx context.Context, author models.User, draft models.Draft) (models.Post, error)
	Like(ctx context.Context, id int64) (models.Post, error)
	Search(ctx context.Context, term string) []models.Post
	Get(ctx context.Context, id int64) (models.Post, error)
}

type BlogHandler struct {
	posts  PostStore
	states *state.Registry
}

func NewBlogHandler(posts PostStore, states *state.Registry) *BlogHandler {
	return &BlogHandler{
		posts:  posts,
		states: states,
	}
}

// Index renders whichever view the visitor is on.
func (h *BlogHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	visitorID := middleware.VisitorID(c)
	st := h.states.Snapshot(visitorID)

	switch st.View {
	case view.Post:
		post, err := h.posts.Get(ctx, st.SelectedID)
		if err != nil {
			// selection no longer resolves; fall back to the list
			logger.FromContext(ctx).Warn("selected post missing", "post_id", st.SelectedID, "error", err)
			h.apply(c, view.Brand, 0, nil)
			st = h.states.Snapshot(visitorID)
			h.renderHome(c, st)
			return
		}
		Render(c, http.StatusOK, "blog/post.html", gin.H{
			"Title":      post.Title,
			"View":       st.View.String(),
			"SearchTerm": st.SearchTerm,
			"Post":       post,
			"Comments":   models.MockComments,
		})

	case view.Write:
		Render(c, http.StatusOK, "blog/write.html", gin.H{
			"Title":      "Write a New Post",
			"View":       st.View.String(),
			"SearchTerm": st.SearchTerm,
			"Draft":      st.Draft,
		})

	default:
		h.renderHome(c, st)
	}
}

func (h *BlogHandler) renderHome(c *gin.Context, st state.UIState) {
	posts := h.posts.Search(c.Request.Context(), st.SearchTerm)
	Render(c, http.StatusOK, "blog/home.html", gin.H{
		"View":       view.Home.String(),
		"SearchTerm": st.SearchTerm,
		"Posts":      posts,
	})
}

// Search stores the visitor's filter term. The current view is kept.
func (h *BlogHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if utf8.RuneCountInString(term) > maxSearchLength {
		term = string([]rune(term)[:maxSearchLength])
	}

	err := h.states.Update(middleware.VisitorID(c), func(st *state.UIState) error {
		st.SearchTerm = term
		return nil
	})
	if err != nil {
		logger.FromContext(c.Request.Context()).Warn("search term not saved", "error", err)
	}
	metrics.Searches.Inc()
	redirectHome(c)
}

// Select opens the full view of a post from the list.
func (h *BlogHandler) Select(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusBadRequest, "Invalid post id")
		return
	}
	if _, err := h.posts.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "Post not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not load post")
		return
	}

	h.apply(c, view.SelectPost, id, nil)
	redirectHome(c)
}

func (h *BlogHandler) Compose(c *gin.Context) {
	h.apply(c, view.Compose, 0, nil)
	redirectHome(c)
}

// Publish turns the submitted form into a post. An empty title or content
// keeps the visitor on the form with what they typed.
func (h *BlogHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	var draft models.Draft
	if err := c.ShouldBind(&draft); err != nil {
		RenderError(c, http.StatusBadRequest, "Invalid form")
		return
	}

	err := h.states.Update(middleware.VisitorID(c), func(st *state.UIState) error {
		if _, err := view.Transition(st.View, view.Publish); err != nil {
			return err
		}

		st.Draft = draft
		post, err := h.posts.Create(ctx, models.CurrentUser, draft)
		if errors.Is(err, store.ErrInvalidDraft) {
			metrics.DraftsRejected.Inc()
			log.Debug("draft ignored", "error", err)
			return nil
		}
		if err != nil {
			return err
		}

		metrics.PostsCreated.Inc()
		st.Draft = models.Draft{}
		log.Info("post published", "post_id", post.ID)
		return st.Apply(view.Publish, 0)
	})
	h.recordTransition(c, view.Publish, err)
	redirectHome(c)
}

// Cancel throws the draft away and returns to the list.
func (h *BlogHandler) Cancel(c *gin.Context) {
	h.apply(c, view.Cancel, 0, func(st *state.UIState) {
		st.Draft = models.Draft{}
	})
	redirectHome(c)
}

func (h *BlogHandler) Back(c *gin.Context) {
	h.apply(c, view.Back, 0, nil)
	redirectHome(c)
}

// Home handles the brand link, which is valid from every view.
func (h *BlogHandler) Home(c *gin.Context) {
	h.apply(c, view.Brand, 0, nil)
	redirectHome(c)
}

// ListJSON returns the posts matching ?q= as JSON.
func (h *BlogHandler) ListJSON(c *gin.Context) {
	posts := h.posts.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// apply runs ev against the visitor's state and, on success, then.
// Rejected transitions leave the state as it was.
func (h *BlogHandler) apply(c *gin.Context, ev view.Event, selected int64, then func(*state.UIState)) {
	err := h.states.Update(middleware.VisitorID(c), func(st *state.UIState) error {
		if err := st.Apply(ev, selected); err != nil {
			return err
		}
		if then != nil {
			then(st)
		}
		return nil
	})
	h.recordTransition(c, ev, err)
}

func (h *BlogHandler) recordTransition(c *gin.Context, ev view.Event, err error) {
	if err != nil {
		metrics.Transitions.WithLabelValues(ev.String(), "rejected").Inc()
		logger.FromContext(c.Request.Context()).Warn("transition ignored", "event", ev.String(), "error", err)
		return
	}
	metrics.Transitions.WithLabelValues(ev.String(), "ok").Inc()
}
