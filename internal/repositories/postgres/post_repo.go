package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/connectin/connectin/internal/models"
	"github.com/connectin/connectin/internal/utils"
)

type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	AddHashtags(ctx context.Context, tags []models.Hashtag) error
	GetByID(ctx context.Context, postID uint64) (*models.FeedPost, error)
	List(ctx context.Context, oldestFirst bool) ([]models.FeedPost, error)
	HashtagsOf(ctx context.Context, postID uint64) ([]models.Hashtag, error)
	CommentsOf(ctx context.Context, postID uint64) ([]models.CommentWithAuthor, error)
	AddComment(ctx context.Context, c *models.Comment) error
	SearchContent(ctx context.Context, q string, limit int) ([]models.FeedPost, error)
	SearchHashtag(ctx context.Context, tag string, limit int) ([]models.FeedPost, error)
}

type postRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepo) AddHashtags(ctx context.Context, tags []models.Hashtag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tags).Error
}

func (r *postRepo) GetByID(ctx context.Context, postID uint64) (*models.FeedPost, error) {
	var row models.FeedPost
	res := r.db.WithContext(ctx).Raw(`
		SELECT p.post_id, p.content, p.content_sent_at, p.user_id, p.image_url, u.name
		FROM posts p
		JOIN users u ON p.user_id = u.user_id
		WHERE p.post_id = ?`, postID).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return &row, nil
}

func (r *postRepo) List(ctx context.Context, oldestFirst bool) ([]models.FeedPost, error) {
	order := "p.content_sent_at DESC"
	if oldestFirst {
		order = "p.content_sent_at ASC"
	}
	var rows []models.FeedPost
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.post_id, p.content, p.content_sent_at, p.user_id, p.image_url, u.name
		FROM posts p
		JOIN users u ON p.user_id = u.user_id
		ORDER BY ` + order).
		Scan(&rows).Error
	return rows, err
}

func (r *postRepo) HashtagsOf(ctx context.Context, postID uint64) ([]models.Hashtag, error) {
	var rows []models.Hashtag
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&rows).Error
	return rows, err
}

func (r *postRepo) CommentsOf(ctx context.Context, postID uint64) ([]models.CommentWithAuthor, error) {
	var rows []models.CommentWithAuthor
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.comment_id, c.comment_content, c.created_at, c.commenter_id, u.name
		FROM comments c
		JOIN users u ON c.commenter_id = u.user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC`, postID).
		Scan(&rows).Error
	return rows, err
}

func (r *postRepo) AddComment(ctx context.Context, c *models.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *postRepo) SearchContent(ctx context.Context, q string, limit int) ([]models.FeedPost, error) {
	var rows []models.FeedPost
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.post_id, p.content, p.content_sent_at, p.user_id, p.image_url, u.name
		FROM posts p
		JOIN users u ON p.user_id = u.user_id
		WHERE p.content LIKE ?
		ORDER BY p.content_sent_at DESC
		LIMIT ?`, "%"+q+"%", limit).
		Scan(&rows).Error
	return rows, err
}

func (r *postRepo) SearchHashtag(ctx context.Context, tag string, limit int) ([]models.FeedPost, error) {
	var rows []models.FeedPost
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT p.post_id, p.content, p.content_sent_at, p.user_id, p.image_url, u.name
		FROM posts p
		JOIN users u ON p.user_id = u.user_id
		JOIN hashtags h ON h.post_id = p.post_id
		WHERE h.hashtag = ?
		ORDER BY p.content_sent_at DESC
		LIMIT ?`, tag, limit).
		Scan(&rows).Error
	return rows, err
}
