package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"blogspace/internal/metrics"
	"blogspace/internal/store"
	"blogspace/internal/utils"
	"blogspace/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Like adds one like to a post. HTMX callers get the new count back as
// text; plain form posts are sent back to the page.
func (h *BlogHandler) Like(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, err := h.posts.Like(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContext(c.Request.Context()).Error("like post", "post_id", id, "error", err)
		}
		if isHTMX(c) {
			c.Status(http.StatusNotFound)
			return
		}
		redirectHome(c)
		return
	}
	metrics.Likes.Inc()

	if isHTMX(c) {
		c.String(http.StatusOK, strconv.Itoa(post.Likes))
		return
	}
	redirectHome(c)
}
