package db

import (
	"Gin_postgres_library_loans/models"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const loanPeriod = 14 * 24 * time.Hour

// Loans

// CheckoutBook opens a loan: conditional decrement first, so two concurrent
// checkouts can never both take the last copy. Zero rows affected means the
// book is unknown or has nothing left to lend.
func (r *Repo) CheckoutBook(ctx context.Context, bookID, patronID string) (*models.Loan, error) {
	var loan *models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Book{}).
			Where("id = ? AND available > 0", bookID).
			Update("available", gorm.Expr("available - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookUnavailable
		}

		now := r.Now().UTC()
		l := &models.Loan{
			ID:       uuid.NewString(),
			BookID:   bookID,
			PatronID: patronID,
			LoanDate: models.Day(now),
			DueDate:  models.Day(now.Add(loanPeriod)),
		}
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		loan = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// ReturnLoan closes a loan and gives the copy back. The flip is conditional
// on returned = FALSE, so a second return fails instead of incrementing
// available twice.
func (r *Repo) ReturnLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	var loan models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, "id = ?", loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoanNotFound
			}
			return err
		}

		res := tx.Model(&models.Loan{}).
			Where("id = ? AND returned = ?", loanID, false).
			Update("returned", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLoanAlreadyReturned
		}

		if err := tx.Model(&models.Book{}).
			Where("id = ?", loan.BookID).
			Update("available", gorm.Expr("available + 1")).Error; err != nil {
			return err
		}
		loan.Returned = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListLoans returns loans newest first. status filters:
// "" / "all", "active", "returned", "overdue". Overdue is decided by the
// shared predicate against the repo clock, not in SQL.
func (r *Repo) ListLoans(ctx context.Context, status string) ([]models.Loan, error) {
	q := r.DB.WithContext(ctx).Model(&models.Loan{}).
		Order("loan_date DESC, created_at DESC")
	switch status {
	case "active", "overdue":
		q = q.Where("returned = ?", false)
	case "returned":
		q = q.Where("returned = ?", true)
	}

	var ls []models.Loan
	if err := q.Find(&ls).Error; err != nil {
		return nil, err
	}

	if status == "overdue" {
		now := r.Now()
		overdue := ls[:0]
		for _, l := range ls {
			if l.OverdueAt(now) {
				overdue = append(overdue, l)
			}
		}
		ls = overdue
	}
	return ls, nil
}

func (r *Repo) FindLoanByID(ctx context.Context, id string) (*models.Loan, error) {
	var l models.Loan
	if err := r.DB.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return &l, nil
}
