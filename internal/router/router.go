package router

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"blogspace/internal/handlers"
	"blogspace/internal/middleware"
	"blogspace/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionName = "blogspace_session"

type Options struct {
	SessionSecret string
	TemplatesDir  string
	StaticDir     string
	Logger        *slog.Logger
}

// New builds the engine with middleware, templates and routes in place.
func New(opts Options, blog *handlers.BlogHandler) (*gin.Engine, error) {
	renderer, err := LoadTemplates(opts.TemplatesDir)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(opts.Logger))

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.HTMLRender = renderer
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, blog)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, blog *handlers.BlogHandler) {
	api := r.Group("/api")
	{
		api.GET("/posts", blog.ListJSON) // read-only listing, ?q= filters
	}

	ui := r.Group("/")
	ui.Use(middleware.LoadVisitor())
	{
		ui.GET("/", blog.Index)        // current view
		ui.GET("/home", blog.Home)     // brand link
		ui.GET("/search", blog.Search) // set search term

		ui.POST("/posts/:id/select", blog.Select) // open full post
		ui.POST("/posts/:id/like", blog.Like)     // +1 like

		ui.POST("/write", blog.Compose)         // open compose form
		ui.POST("/write/publish", blog.Publish) // publish draft
		ui.POST("/write/cancel", blog.Cancel)   // discard draft
		ui.POST("/back", blog.Back)             // full post -> list
	}
}

// LoadTemplates registers one template set per view: the layout, all
// includes and components, then the view itself.
func LoadTemplates(templatesDir string) (multitemplate.Renderer, error) {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(filepath.Join(templatesDir, "layouts", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob layouts: %w", err)
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layouts found in %s", templatesDir)
	}

	includes, err := filepath.Glob(filepath.Join(templatesDir, "includes", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob includes: %w", err)
	}

	components, err := filepath.Glob(filepath.Join(templatesDir, "components", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("glob components: %w", err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(includes)+len(components)+1)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, components...)
		files = append(files, filepath.Join(templatesDir, "views", view))
		return files
	}

	for _, view := range []string{
		"blog/home.html",
		"blog/post.html",
		"blog/write.html",
		"error.html",
	} {
		r.AddFromFilesFuncs(view, FuncMap(), assemble(view)...)
	}
	return r, nil
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"formatDate": utils.FormatDate,
		"excerpt": func(s string) string {
			return utils.Excerpt(s, utils.ExcerptLength)
		},
		"isoDate": func(t time.Time) string {
			return t.UTC().Format(time.RFC3339)
		},
		"initial": utils.Initial,
	}
}
