package db

import (
	"Gin_postgres_library_loans/models"
	"context"
)

type DashboardStats struct {
	TotalBooks   int64 `json:"totalBooks"` // sum of quantities, not titles
	TotalPatrons int64 `json:"totalPatrons"`
	ActiveLoans  int64 `json:"activeLoans"`
	OverdueLoans int64 `json:"overdueLoans"`
}

func (r *Repo) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var s DashboardStats

	if err := r.DB.WithContext(ctx).Model(&models.Book{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&s.TotalBooks).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&models.Patron{}).
		Count(&s.TotalPatrons).Error; err != nil {
		return nil, err
	}

	open, err := r.ListLoans(ctx, "active")
	if err != nil {
		return nil, err
	}
	s.ActiveLoans = int64(len(open))
	now := r.Now()
	for _, l := range open {
		if l.OverdueAt(now) {
			s.OverdueLoans++
		}
	}
	return &s, nil
}

// ActivityRow is a loan joined with display fields for the dashboard feed.
type ActivityRow struct {
	LoanID     string `json:"loanId"`
	BookID     string `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	PatronID   string `json:"patronId"`
	PatronName string `json:"patronName"`
	LoanDate   string `json:"loanDate"`
	DueDate    string `json:"dueDate"`
	Returned   bool   `json:"returned"`
	Overdue    bool   `json:"overdue"`
}

// RecentActivity returns the last limit loans, newest first, joined against
// books and patrons. LEFT JOINs keep rows whose book was deleted after the
// loan closed.
func (r *Repo) RecentActivity(ctx context.Context, limit int) ([]ActivityRow, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	var rows []ActivityRow
	err := r.DB.WithContext(ctx).
		Table(models.LoanTable+" l").
		Select(`
			l.id        AS loan_id,
			l.book_id,
			l.patron_id,
			l.loan_date,
			l.due_date,
			l.returned,
			b.title     AS book_title,
			p.name      AS patron_name
		`).
		Joins("LEFT JOIN "+models.BookTable+" b ON b.id = l.book_id").
		Joins("LEFT JOIN "+models.PatronTable+" p ON p.id = l.patron_id").
		Order("l.loan_date DESC, l.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	now := r.Now()
	for i := range rows {
		rows[i].Overdue = models.Loan{
			DueDate:  rows[i].DueDate,
			Returned: rows[i].Returned,
		}.OverdueAt(now)
	}
	return rows, nil
}
