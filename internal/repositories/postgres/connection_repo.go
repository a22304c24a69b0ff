package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/connectin/connectin/internal/models"
	"github.com/connectin/connectin/internal/utils"
)

// ErrPairExists reports a canonical-pair collision on insert: a request
// (or an accepted connection) already exists for the two users.
var ErrPairExists = errors.New("connection pair already exists")

type ConnectionRepository interface {
	CreatePending(ctx context.Context, pair models.UserPair) error
	AcceptPending(ctx context.Context, pair models.UserPair) error
	GetByPair(ctx context.Context, pair models.UserPair) (*models.Connection, error)
	AcceptedCount(ctx context.Context, userID uint64) (int64, error)
	ListAccepted(ctx context.Context, userID uint64) ([]models.Peer, error)
	ListAllStatuses(ctx context.Context, userID uint64) ([]models.PeerStatus, error)
}

type connectionRepo struct {
	db *gorm.DB
}

func NewConnectionRepo(db *gorm.DB) ConnectionRepository {
	return &connectionRepo{db: db}
}

func (r *connectionRepo) CreatePending(ctx context.Context, pair models.UserPair) error {
	row := &models.Connection{
		Connection1ID: pair.Low,
		Connection2ID: pair.High,
		Status:        models.StatePending,
		CreatedAt:     time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrPairExists
	}
	return err
}

func (r *connectionRepo) AcceptPending(ctx context.Context, pair models.UserPair) error {
	res := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("connection1_id = ? AND connection2_id = ? AND status = ?",
			pair.Low, pair.High, models.StatePending).
		Update("status", models.StateAccepted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *connectionRepo) GetByPair(ctx context.Context, pair models.UserPair) (*models.Connection, error) {
	var row models.Connection
	err := r.db.WithContext(ctx).
		Where("connection1_id = ? AND connection2_id = ?", pair.Low, pair.High).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *connectionRepo) AcceptedCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("(connection1_id = ? OR connection2_id = ?) AND status = ?",
			userID, userID, models.StateAccepted).
		Count(&count).Error
	return count, err
}

func (r *connectionRepo) ListAccepted(ctx context.Context, userID uint64) ([]models.Peer, error) {
	var rows []models.Peer
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.user_id, u.name, u.headline
		FROM users u
		JOIN connections c
		  ON (u.user_id = c.connection1_id OR u.user_id = c.connection2_id)
		WHERE (c.connection1_id = ? OR c.connection2_id = ?)
		  AND c.status = ?
		  AND u.user_id != ?`,
		userID, userID, models.StateAccepted, userID).
		Scan(&rows).Error
	return rows, err
}

// peerStatusRow is the raw shape of the bulk status listing. status is
// NULL for users with no connection row against the viewer.
type peerStatusRow struct {
	UserID   uint64  `gorm:"column:user_id"`
	Name     string  `gorm:"column:name"`
	Headline *string `gorm:"column:headline"`
	Status   *int16  `gorm:"column:status"`
	IsSender int     `gorm:"column:is_sender"`
}

// ListAllStatuses joins every other user against at most one connection
// row per pair and resolves each peer's status in one pass.
func (r *connectionRepo) ListAllStatuses(ctx context.Context, userID uint64) ([]models.PeerStatus, error) {
	var raw []peerStatusRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.user_id, u.name, u.headline,
		       MAX(c.status) AS status,
		       MAX(CASE WHEN c.connection1_id = ? THEN 1 ELSE 0 END) AS is_sender
		FROM users u
		LEFT JOIN connections c
		  ON (c.connection1_id = u.user_id AND c.connection2_id = ?)
		  OR (c.connection1_id = ? AND c.connection2_id = u.user_id)
		WHERE u.user_id != ?
		GROUP BY u.user_id, u.name, u.headline`,
		userID, userID, userID, userID).
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	out := make([]models.PeerStatus, 0, len(raw))
	for _, row := range raw {
		ps := models.PeerStatus{
			UserID:   row.UserID,
			Name:     row.Name,
			Headline: row.Headline,
			Status:   models.StatusNotConnected,
		}
		if row.Status != nil {
			switch models.ConnectionState(*row.Status) {
			case models.StateAccepted:
				ps.Status = models.StatusConnected
			case models.StatePending:
				if row.IsSender == 1 {
					ps.Status = models.StatusPendingSent
				} else {
					ps.Status = models.StatusPendingReceived
				}
			}
		}
		out = append(out, ps)
	}
	return out, nil
}
