package services

import (
	"context"
	"strings"
	"time"

	"github.com/connectin/connectin/internal/cache"
	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

const (
	jobListCacheKey = "jobs:list"
	jobListCacheTTL = 30 * time.Second
)

type JobInput struct {
	Title           string
	Company         string
	Location        string
	Description     string
	ContactEmail    *string
	ContactPhone    *string
	ApplicationLink *string
}

type JobService interface {
	Create(ctx context.Context, posterID uint64, role models.Role, in JobInput) (uint64, error)
	List(ctx context.Context, viewerID uint64, role models.Role) ([]models.JobListing, error)
}

type jobService struct {
	jobs  pgrepo.JobRepository
	cache cache.Cache
}

func NewJobService(jobs pgrepo.JobRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, cache: c}
}

func (s *jobService) Create(ctx context.Context, posterID uint64, role models.Role, in JobInput) (uint64, error) {
	const op = "JobService.Create"

	if !role.IsEmployer() {
		return 0, utils.E(utils.CodeForbidden, op, "only employers can post jobs", nil)
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" ||
		strings.TrimSpace(in.Location) == "" || strings.TrimSpace(in.Description) == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "title, company, location, and description are required", nil)
	}

	j := &models.Job{
		Title:           in.Title,
		Company:         in.Company,
		Location:        in.Location,
		Description:     in.Description,
		PostedBy:        posterID,
		CreatedAt:       time.Now().UTC(),
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		ApplicationLink: in.ApplicationLink,
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, jobListCacheKey)
	}
	return j.JobID, nil
}

// List serves the full board through the cache, then redacts contact
// details per viewer: only job seekers and the posting employer see them.
func (s *jobService) List(ctx context.Context, viewerID uint64, role models.Role) ([]models.JobListing, error) {
	const op = "JobService.List"

	var rows []models.JobListing
	hit := false
	if s.cache != nil {
		hit, _ = s.cache.GetJSON(ctx, jobListCacheKey, &rows)
	}
	if !hit {
		var err error
		rows, err = s.jobs.List(ctx)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
		}
		if s.cache != nil {
			_ = s.cache.SetJSON(ctx, jobListCacheKey, rows, jobListCacheTTL)
		}
	}

	out := make([]models.JobListing, 0, len(rows))
	for _, row := range rows {
		if role.IsEmployer() && row.PostedBy != viewerID {
			row.ContactEmail = nil
			row.ContactPhone = nil
			row.ApplicationLink = nil
		}
		out = append(out, row)
	}
	return out, nil
}
