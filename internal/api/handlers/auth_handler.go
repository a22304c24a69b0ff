package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectin/connectin/internal/services"
	"github.com/connectin/connectin/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	RoleFlag string  `json:"roleFlag"`
	Headline *string `json:"headline"`
	Summary  *string `json:"summary"`
	Age      *int    `json:"age"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Register", "invalid request body", err))
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleFlag: req.RoleFlag,
		Headline: req.Headline,
		Summary:  req.Summary,
		Age:      req.Age,
	}); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUser struct {
	UserID   uint64 `json:"userId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	RoleFlag string `json:"roleFlag"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	token, claims, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful!",
		Token:   token,
		User: LoginUser{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Name:     claims.Name,
			RoleFlag: claims.RoleFlag,
		},
	})
}
