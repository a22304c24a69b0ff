package services

import (
	"context"
	"errors"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

type UserService interface {
	// Profile returns the target's public profile with the connection
	// status resolved from the viewer's perspective.
	Profile(ctx context.Context, viewerID, targetID uint64) (*models.Profile, error)
	SetProfileImage(ctx context.Context, userID uint64, url string) error
}

type userService struct {
	users       pgrepo.UserRepository
	connections ConnectionService
}

func NewUserService(users pgrepo.UserRepository, connections ConnectionService) UserService {
	return &userService{users: users, connections: connections}
}

func (s *userService) Profile(ctx context.Context, viewerID, targetID uint64) (*models.Profile, error) {
	const op = "UserService.Profile"

	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch user", err)
	}

	status, err := s.connections.StatusFor(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}

	p := u.Profile()
	p.Status = status
	return &p, nil
}

func (s *userService) SetProfileImage(ctx context.Context, userID uint64, url string) error {
	const op = "UserService.SetProfileImage"

	if url == "" {
		return utils.E(utils.CodeInvalidArgument, op, "image url is required", nil)
	}
	if err := s.users.UpdateProfileImage(ctx, userID, url); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update profile image", err)
	}
	return nil
}
