package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/connectin/connectin/internal/models"
)

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	Thread(ctx context.Context, userID, otherID uint64) ([]models.Message, error)
	Conversations(ctx context.Context, userID uint64) ([]models.Conversation, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *models.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepo) Thread(ctx context.Context, userID, otherID uint64) ([]models.Message, error) {
	var rows []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("content_sent_at ASC").
		Find(&rows).Error
	return rows, err
}

// Conversations computes the distinct counterparts of every message the
// user took part in, then pulls each counterpart's most recent message
// body with a correlated subquery. Ordering of the outer result is
// implementation-defined.
func (r *messageRepo) Conversations(ctx context.Context, userID uint64) ([]models.Conversation, error) {
	var rows []models.Conversation
	err := r.db.WithContext(ctx).Raw(`
		WITH user_conversations AS (
			SELECT CASE WHEN sender_id = @uid THEN receiver_id ELSE sender_id END AS other_user_id
			FROM messages
			WHERE sender_id = @uid OR receiver_id = @uid
			GROUP BY other_user_id
		)
		SELECT uc.other_user_id AS user_id, u.name,
		       (SELECT content FROM messages
		        WHERE (sender_id = @uid AND receiver_id = uc.other_user_id)
		           OR (sender_id = uc.other_user_id AND receiver_id = @uid)
		        ORDER BY content_sent_at DESC LIMIT 1) AS last_message
		FROM user_conversations uc
		JOIN users u ON uc.other_user_id = u.user_id`,
		map[string]any{"uid": userID}).
		Scan(&rows).Error
	return rows, err
}
