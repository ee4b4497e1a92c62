package handlers

import (
	"net/http"

	"blogspace/internal/models"

	"github.com/gin-gonic/gin"
)

// Render injects the values every page needs before rendering name.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	obj["CurrentUser"] = models.CurrentUser
	obj["CurrentPath"] = c.Request.URL.Path
	if _, ok := obj["Title"]; !ok {
		obj["Title"] = "BlogSpace"
	}

	c.HTML(code, name, obj)
}

func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Title": "Error"})
}

// isHTMX reports whether the request came from an hx-* attribute.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
