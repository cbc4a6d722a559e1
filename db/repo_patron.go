package db

import (
	"Gin_postgres_library_loans/models"
	"context"

	"github.com/google/uuid"
)

// Patrons

func (r *Repo) CreatePatron(ctx context.Context, p *models.Patron) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *Repo) FindPatronByID(ctx context.Context, id string) (*models.Patron, error) {
	var p models.Patron
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) ListPatrons(ctx context.Context) ([]models.Patron, error) {
	var ps []models.Patron
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&ps).Error
	return ps, err
}
