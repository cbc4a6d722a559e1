package controllers

import (
	"net/http"

	"Gin_postgres_library_loans/app"

	"github.com/gin-gonic/gin"
)

type LoanController struct{ *Srv }

func NewLoanController(s *Srv) *LoanController { return &LoanController{Srv: s} }

// 借还记录 / loan history, optionally filtered
func (lc *LoanController) ListLoans(c *gin.Context) {
	// ?status=all|active|overdue|returned
	loans, err := lc.Repo.ListLoans(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

// Checkout
func (lc *LoanController) CreateLoan(c *gin.Context) {
	var in struct {
		BookID   string `json:"bookId" binding:"required"`
		PatronID string `json:"patronId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	loan, err := lc.Repo.CheckoutBook(c.Request.Context(), in.BookID, in.PatronID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

// Return
func (lc *LoanController) ReturnLoan(c *gin.Context) {
	loan, err := lc.Repo.ReturnLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}
