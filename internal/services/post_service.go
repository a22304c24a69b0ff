package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

type PostService interface {
	Create(ctx context.Context, authorID uint64, content, hashtags string, imageURL *string) (uint64, error)
	List(ctx context.Context, sort string) ([]models.FeedPost, error)
	Get(ctx context.Context, postID uint64) (*models.FeedPost, error)
	Hashtags(ctx context.Context, postID uint64) ([]models.Hashtag, error)
	Comments(ctx context.Context, postID uint64) ([]models.CommentWithAuthor, error)
	AddComment(ctx context.Context, postID, commenterID uint64, content string) (uint64, error)
}

type postService struct {
	posts pgrepo.PostRepository
}

func NewPostService(posts pgrepo.PostRepository) PostService {
	return &postService{posts: posts}
}

// parseHashtags splits free text on commas, trims each token, strips a
// leading '#' and discards empty leftovers. No dedup beyond that.
func parseHashtags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tok := range strings.Split(raw, ",") {
		tag := strings.TrimPrefix(strings.TrimSpace(tok), "#")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (s *postService) Create(ctx context.Context, authorID uint64, content, hashtags string, imageURL *string) (uint64, error) {
	const op = "PostService.Create"

	if content == "" && imageURL == nil {
		return 0, utils.E(utils.CodeInvalidArgument, op, "post content or an image is required", nil)
	}

	post := &models.Post{
		Content:       content,
		ContentSentAt: time.Now().UTC(),
		UserID:        authorID,
		ImageURL:      imageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to create post", err)
	}

	tags := parseHashtags(hashtags)
	if len(tags) > 0 {
		rows := make([]models.Hashtag, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, models.Hashtag{Hashtag: tag, PostID: post.PostID})
		}
		// The post is already committed; a failed tag insert leaves an
		// untagged post, which is a tolerated inconsistency.
		_ = s.posts.AddHashtags(ctx, rows)
	}
	return post.PostID, nil
}

func (s *postService) List(ctx context.Context, sort string) ([]models.FeedPost, error) {
	const op = "PostService.List"

	rows, err := s.posts.List(ctx, sort == "oldest")
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list posts", err)
	}
	return rows, nil
}

func (s *postService) Get(ctx context.Context, postID uint64) (*models.FeedPost, error) {
	const op = "PostService.Get"

	row, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "post not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch post", err)
	}
	return row, nil
}

func (s *postService) Hashtags(ctx context.Context, postID uint64) ([]models.Hashtag, error) {
	const op = "PostService.Hashtags"

	rows, err := s.posts.HashtagsOf(ctx, postID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch hashtags", err)
	}
	return rows, nil
}

func (s *postService) Comments(ctx context.Context, postID uint64) ([]models.CommentWithAuthor, error) {
	const op = "PostService.Comments"

	rows, err := s.posts.CommentsOf(ctx, postID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch comments", err)
	}
	return rows, nil
}

func (s *postService) AddComment(ctx context.Context, postID, commenterID uint64, content string) (uint64, error) {
	const op = "PostService.AddComment"

	if content == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "comment content is required", nil)
	}

	c := &models.Comment{
		Content:     content,
		CreatedAt:   time.Now().UTC(),
		PostID:      postID,
		CommenterID: commenterID,
	}
	if err := s.posts.AddComment(ctx, c); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to add comment", err)
	}
	return c.CommentID, nil
}
