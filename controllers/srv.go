// controllers/srv.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"Gin_postgres_library_loans/app"
	"Gin_postgres_library_loans/db"
	"Gin_postgres_library_loans/metadata"

	"github.com/gin-gonic/gin"
)

type Srv struct {
	Repo *db.Repo
	Meta *metadata.Client
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo: db.NewRepo(a.DB),
		Meta: metadata.NewClient(),
	}
}

// --- helpers ---

// respondErr maps repo sentinels onto the REST error contract. Anything not
// in the taxonomy is a storage failure: logged here, opaque to the caller.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrBookNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "Book not found"})
	case errors.Is(err, db.ErrLoanNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": "Loan not found"})
	case errors.Is(err, db.ErrBookUnavailable):
		c.JSON(http.StatusBadRequest, app.H{"error": "Book not available"})
	case errors.Is(err, db.ErrLoanAlreadyReturned):
		c.JSON(http.StatusBadRequest, app.H{"error": "Loan already returned"})
	case errors.Is(err, db.ErrBookHasActiveLoans):
		c.JSON(http.StatusBadRequest, app.H{"error": "Cannot delete book with active loans"})
	case errors.Is(err, db.ErrQuantityBelowLoaned):
		c.JSON(http.StatusBadRequest, app.H{"error": "Cannot reduce quantity below currently loaned amount"})
	default:
		log.Printf("storage error: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "internal error"})
	}
}
