package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/connectin/connectin/internal/models"
	"github.com/connectin/connectin/internal/utils"
)

var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfileImage(ctx context.Context, id uint64, url string) error
	SearchByName(ctx context.Context, q string, limit int) ([]models.Profile, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uint64) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("user_id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) UpdateProfileImage(ctx context.Context, id uint64, url string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", id).
		Update("profile_image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *userRepo) SearchByName(ctx context.Context, q string, limit int) ([]models.Profile, error) {
	var rows []models.Profile
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("user_id, name, headline, summary, description").
		Where("name LIKE ?", "%"+q+"%").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
