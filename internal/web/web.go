package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// Register serves the bundled map editor page. Any other UI can be built
// against the /api surface instead.
func Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		page, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "editor page missing")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})
}
