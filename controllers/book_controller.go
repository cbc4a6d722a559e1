package controllers

import (
	"net/http"

	"Gin_postgres_library_loans/app"
	"Gin_postgres_library_loans/db"
	"Gin_postgres_library_loans/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

// the SPA historically sent either key
type bookInput struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	ISBN        string `json:"isbn" binding:"required"`
	Quantity    int    `json:"quantity"`
	CoverURL    string `json:"cover_url"`
	CoverURLAlt string `json:"coverUrl"`
}

func (in bookInput) coverURL() string {
	if in.CoverURL != "" {
		return in.CoverURL
	}
	return in.CoverURLAlt
}

func (bc *BookController) ListBooks(c *gin.Context) {
	books, err := bc.Repo.ListBooks(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (bc *BookController) CreateBook(c *gin.Context) {
	var in bookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !models.ValidISBN(in.ISBN) {
		c.JSON(http.StatusBadRequest, app.H{"error": "Invalid ISBN format"})
		return
	}

	b := &models.Book{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Author:   in.Author,
		ISBN:     in.ISBN,
		Quantity: in.Quantity,
		CoverURL: in.coverURL(),
	}
	if err := bc.Repo.CreateBook(c.Request.Context(), b); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (bc *BookController) UpdateBook(c *gin.Context) {
	id := c.Param("id")
	var in bookInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !models.ValidISBN(in.ISBN) {
		c.JSON(http.StatusBadRequest, app.H{"error": "Invalid ISBN format"})
		return
	}

	updated, err := bc.Repo.UpdateBook(c.Request.Context(), id, db.UpdateBookInput{
		Title:    in.Title,
		Author:   in.Author,
		ISBN:     in.ISBN,
		Quantity: in.Quantity,
		CoverURL: in.coverURL(),
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (bc *BookController) DeleteBook(c *gin.Context) {
	if err := bc.Repo.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"success": true})
}
