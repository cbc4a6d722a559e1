package routes

import (
	"Gin_postgres_library_loans/app"
	"Gin_postgres_library_loans/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	bookCtl := controllers.NewBookController(s)
	patronCtl := controllers.NewPatronController(s)
	loanCtl := controllers.NewLoanController(s)
	dashCtl := controllers.NewDashboardController(s)
	metaCtl := controllers.NewMetadataController(s)

	// ------------------------------
	// Inventory
	// ------------------------------
	books := r.Group("/api/books")
	{
		books.GET("", bookCtl.ListBooks)
		books.POST("", bookCtl.CreateBook)
		books.PUT("/:id", bookCtl.UpdateBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
	}

	// ------------------------------
	// Patrons (create + list only; no update or delete)
	// ------------------------------
	patrons := r.Group("/api/patrons")
	{
		patrons.GET("", patronCtl.ListPatrons)
		patrons.POST("", patronCtl.CreatePatron)
	}

	// ------------------------------
	// Loans
	// ------------------------------
	loans := r.Group("/api/loans")
	{
		loans.GET("", loanCtl.ListLoans) // ?status=all|active|overdue|returned
		loans.POST("", loanCtl.CreateLoan)
		loans.PUT("/:id/return", loanCtl.ReturnLoan)
	}

	// ------------------------------
	// Read-side extras
	// ------------------------------
	dash := r.Group("/api/dashboard")
	{
		dash.GET("/stats", dashCtl.Stats)
		dash.GET("/activity", dashCtl.RecentActivity) // ?limit=
	}

	r.GET("/api/metadata/lookup", metaCtl.Lookup) // ?title=&author=
}
