package services

import (
	"context"
	"errors"
	"strings"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	RoleFlag string
	Headline *string
	Summary  *string
	Age      *int
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *utils.Claims, error)
}

type authService struct {
	users  pgrepo.UserRepository
	secret []byte
}

func NewAuthService(users pgrepo.UserRepository, secret []byte) AuthService {
	return &authService{users: users, secret: secret}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "AuthService.Register"

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}

	role, err := models.ParseRoleFlag(in.RoleFlag)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid role flag", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         role,
		Headline:     in.Headline,
		Summary:      in.Summary,
		Age:          in.Age,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, pgrepo.ErrDuplicateEmail) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "email already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *utils.Claims, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeInvalidArgument, op, "invalid email or password", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if utils.CheckPassword(u.PasswordHash, password) != nil {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "invalid email or password", nil)
	}

	token, err := utils.GenerateToken(s.secret, u)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}

	claims := &utils.Claims{
		UserID:   u.UserID,
		Email:    u.Email,
		Name:     u.Name,
		RoleFlag: u.Role.Flag(),
	}
	return token, claims, nil
}
