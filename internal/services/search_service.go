package services

import (
	"context"
	"strings"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

// searchLimit caps every search variant; there is no pagination below it.
const searchLimit = 20

type SearchService interface {
	Users(ctx context.Context, q string) ([]models.Profile, error)
	Posts(ctx context.Context, q string) ([]models.FeedPost, error)
	Hashtags(ctx context.Context, q string) ([]models.FeedPost, error)
}

type searchService struct {
	users pgrepo.UserRepository
	posts pgrepo.PostRepository
}

func NewSearchService(users pgrepo.UserRepository, posts pgrepo.PostRepository) SearchService {
	return &searchService{users: users, posts: posts}
}

func (s *searchService) Users(ctx context.Context, q string) ([]models.Profile, error) {
	const op = "SearchService.Users"

	q = strings.TrimSpace(q)
	if q == "" {
		return []models.Profile{}, nil
	}
	rows, err := s.users.SearchByName(ctx, q, searchLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search users", err)
	}
	return rows, nil
}

func (s *searchService) Posts(ctx context.Context, q string) ([]models.FeedPost, error) {
	const op = "SearchService.Posts"

	q = strings.TrimSpace(q)
	if q == "" {
		return []models.FeedPost{}, nil
	}
	rows, err := s.posts.SearchContent(ctx, q, searchLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search posts", err)
	}
	return rows, nil
}

// Hashtags matches posts by exact tag after stripping a leading '#' from
// the query, so "#Remote" finds posts tagged "Remote".
func (s *searchService) Hashtags(ctx context.Context, q string) ([]models.FeedPost, error) {
	const op = "SearchService.Hashtags"

	tag := strings.TrimPrefix(strings.TrimSpace(q), "#")
	if tag == "" {
		return []models.FeedPost{}, nil
	}
	rows, err := s.posts.SearchHashtag(ctx, tag, searchLimit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search hashtags", err)
	}
	return rows, nil
}
