package controllers

import (
	"net/http"

	"Gin_postgres_library_loans/app"
	"Gin_postgres_library_loans/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PatronController struct{ *Srv }

func NewPatronController(s *Srv) *PatronController { return &PatronController{Srv: s} }

func (pc *PatronController) ListPatrons(c *gin.Context) {
	patrons, err := pc.Repo.ListPatrons(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, patrons)
}

func (pc *PatronController) CreatePatron(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		MemberID string `json:"memberId"`
		Avatar   string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	p := &models.Patron{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		MemberID: in.MemberID,
		Avatar:   in.Avatar,
	}
	if err := pc.Repo.CreatePatron(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
