package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/connectin/connectin/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	List(ctx context.Context) ([]models.JobListing, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) List(ctx context.Context) ([]models.JobListing, error) {
	var rows []models.JobListing
	err := r.db.WithContext(ctx).Raw(`
		SELECT j.job_id, j.title, j.company, j.location, j.description,
		       j.posted_by, j.created_at, j.contact_email, j.contact_phone,
		       j.application_link, u.name AS posted_by_name
		FROM jobs j
		JOIN users u ON j.posted_by = u.user_id
		ORDER BY j.created_at DESC`).
		Scan(&rows).Error
	return rows, err
}
