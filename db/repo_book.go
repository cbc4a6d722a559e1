package db

import (
	"Gin_postgres_library_loans/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Books

// CreateBook inserts a new book with every copy available.
func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Available = b.Quantity
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) FindBookByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&books).Error
	return books, err
}

type UpdateBookInput struct {
	Title    string
	Author   string
	ISBN     string
	Quantity int
	CoverURL string
}

// UpdateBook rewrites a book's fields, carrying the availability delta along
// with the quantity change: newAvailable = available + (newQuantity - quantity).
// One conditional UPDATE keeps the read-modify-write atomic against
// concurrent checkouts and returns on the same row; every SET expression is
// evaluated against the pre-update row.
func (r *Repo) UpdateBook(ctx context.Context, id string, in UpdateBookInput) (*models.Book, error) {
	var book models.Book
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Book{}).
			Where("id = ? AND available + ? - quantity >= 0", id, in.Quantity).
			Updates(map[string]any{
				"title":     in.Title,
				"author":    in.Author,
				"isbn":      in.ISBN,
				"cover_url": in.CoverURL,
				"available": gorm.Expr("available + ? - quantity", in.Quantity),
				"quantity":  in.Quantity,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the id is unknown or the shrink would leave
			// available negative.
			var n int64
			if err := tx.Model(&models.Book{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrBookNotFound
			}
			return ErrQuantityBelowLoaned
		}
		return tx.First(&book, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book unless an open loan still references it. The
// guard lives in the DELETE itself so a concurrent checkout cannot slip in
// between check and delete. Deleting an unknown id is a no-op.
func (r *Repo) DeleteBook(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(
			"id = ? AND NOT EXISTS (SELECT 1 FROM "+models.LoanTable+
				" l WHERE l.book_id = "+models.BookTable+".id AND l.returned = ?)",
			id, false,
		).Delete(&models.Book{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&models.Book{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return ErrBookHasActiveLoans
			}
		}
		return nil
	})
}
