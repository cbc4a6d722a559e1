package controllers

import (
	"context"
	"net/http"
	"time"

	"Gin_postgres_library_loans/app"

	"github.com/gin-gonic/gin"
)

type MetadataController struct{ *Srv }

func NewMetadataController(s *Srv) *MetadataController { return &MetadataController{Srv: s} }

// Lookup asks the external catalog for an ISBN and cover. Best effort: any
// upstream failure degrades to found=false so the edit form falls back to
// manual entry. Never touches the ledger.
func (mc *MetadataController) Lookup(c *gin.Context) {
	title := c.Query("title")
	author := c.Query("author")
	if title == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing title"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	res, err := mc.Meta.Lookup(ctx, title, author)
	if err != nil || res == nil {
		c.JSON(http.StatusOK, app.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, app.H{"found": true, "isbn": res.ISBN, "cover_url": res.CoverURL})
}
