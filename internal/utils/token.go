package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connectin/connectin/internal/models"
)

// TokenTTL is the fixed validity window of an issued credential. There is
// no refresh or revocation; an expired token forces a fresh login.
const TokenTTL = 24 * time.Hour

const tokenIssuer = "connectin"

// Claims is the signed identity blob carried as a bearer credential on
// every protected call.
type Claims struct {
	UserID   uint64 `json:"userId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleFlag string `json:"roleFlag"`
	jwt.RegisteredClaims
}

func (c *Claims) Role() models.Role {
	role, err := models.ParseRoleFlag(c.RoleFlag)
	if err != nil {
		return models.RoleEmployee
	}
	return role
}

func GenerateToken(secret []byte, u *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   u.UserID,
		Email:    u.Email,
		Name:     u.Name,
		RoleFlag: u.Role.Flag(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ParseToken(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
