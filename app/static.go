package app

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// useStatic serves the built SPA from dir, with index.html as the catchall
// for client-side routes.
func useStatic(r *gin.Engine, dir string) {
	r.Static("/assets", filepath.Join(dir, "assets"))
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, H{"error": "not found"})
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
